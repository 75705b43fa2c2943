package system

import (
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// AudioSystem pauses and resumes the background track on the mute toggle.
// Playback is a pure side effect; nothing in the core reads it back.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	toggle := false
	if _, in, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		toggle = in.MuteTogglePressed
	}
	if !toggle {
		return
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, au *component.Audio) {
		if au.Player == nil {
			return
		}
		au.Muted = !au.Muted
		if au.Muted {
			au.Player.Pause()
		} else {
			au.Player.Play()
		}
	})
}
