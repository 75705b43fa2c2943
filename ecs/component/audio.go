package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds the looping background track player and its mute state.
type Audio struct {
	Player *audio.Player
	Muted  bool
}

var AudioComponent = NewComponent[Audio]()
