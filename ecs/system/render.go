package system

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// DrawWorld renders the arena, every live obstacle, and the soul from a
// read-only pass over the world. The core never reads anything back.
func DrawWorld(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	_, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok {
		return
	}

	a := battle.Tuning.Arena
	vector.StrokeRect(screen, float32(a.X), float32(a.Y), float32(a.W), float32(a.H), 2, colornames.White, false)

	ecs.ForEach2(w, component.BoneComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, bone *component.Bone, tr *component.Transform) {
			c := colornames.White
			if bone.Guarded {
				c = colornames.Deepskyblue
			}
			vector.DrawFilledRect(screen, float32(tr.X), float32(tr.Y), float32(bone.W), float32(bone.H), c, false)
		})

	ecs.ForEach2(w, component.BlasterComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, b *component.Blaster, tr *component.Transform) {
			x0, y0 := float32(tr.X), float32(tr.Y)
			x1 := float32(tr.X + math.Cos(b.Angle)*b.Length)
			y1 := float32(tr.Y + math.Sin(b.Angle)*b.Length)
			if b.Firing() {
				vector.StrokeLine(screen, x0, y0, x1, y1, float32(2*b.HalfWidth), colornames.White, false)
			} else {
				// charging telegraph: a faint aim line and the emitter box
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, colornames.Gray, false)
				vector.StrokeRect(screen, x0-8, y0-8, 16, 16, 2, colornames.Lightgray, false)
			}
		})

	ecs.ForEach2(w, component.SoulComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, soul *component.Soul, tr *component.Transform) {
			c := colornames.Crimson
			if soul.Mode == component.ModePlatforming {
				c = colornames.Royalblue
			}
			vector.DrawFilledRect(screen, float32(tr.X), float32(tr.Y), float32(soul.W), float32(soul.H), c, false)
		})
}

// DrawHUD renders hp and corruption as bars plus a numeric readout.
func DrawHUD(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	se, health, ok := ecs.First(w, component.HealthComponent.Kind())
	if !ok {
		return
	}
	kr, ok := ecs.Get(w, se, component.CorruptionComponent.Kind())
	if !ok {
		return
	}

	const barX, barY, barW, barH = 240, 420, 160, 14
	frac := 0.0
	if health.Max > 0 {
		frac = health.Current / health.Max
	}
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colornames.Darkred, false)
	vector.DrawFilledRect(screen, barX, barY, float32(barW*frac), barH, colornames.Yellow, false)
	if kr.KR > 0 {
		vector.DrawFilledRect(screen, barX+float32(barW*frac)-2, barY, 4, barH, colornames.Magenta, false)
	}

	hp := int(math.Ceil(health.Current))
	if hp < 0 {
		hp = 0
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d  KR %d", hp, int(health.Max), int(kr.KR)), barX, barY+barH+4)
}
