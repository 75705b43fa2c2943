package system

import (
	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// gravityStep scales the per-tick gravity accumulation.
const gravityStep = 0.4

// SoulSystem runs the two movement-mode physics models and keeps the soul
// inside the arena's interior margin.
type SoulSystem struct{}

func NewSoulSystem() *SoulSystem {
	return &SoulSystem{}
}

func (s *SoulSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok || battle.Phase.Terminal() {
		return
	}

	inner := battle.Tuning.Arena.Inset(battle.Tuning.Margin)

	ecs.ForEach3(w, component.SoulComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(),
		func(_ ecs.Entity, soul *component.Soul, tr *component.Transform, in *component.Input) {
			if in.ModeTogglePressed {
				if soul.Mode == component.ModeFreeRoam {
					soul.Mode = component.ModePlatforming
				} else {
					soul.Mode = component.ModeFreeRoam
				}
				soul.VX = 0
				soul.VY = 0
				soul.Grounded = false
			}

			switch soul.Mode {
			case component.ModePlatforming:
				s.platforming(soul, tr, in, inner)
			default:
				s.freeRoam(soul, tr, in)
			}

			soul.Moved = in.AnyDirection()

			tr.X = common.Clamp(tr.X, inner.X, inner.X+inner.W-soul.W)
			tr.Y = common.Clamp(tr.Y, inner.Y, inner.Y+inner.H-soul.H)
		})
}

// freeRoam moves along every held axis independently; diagonals are simply
// additive and unnormalized.
func (s *SoulSystem) freeRoam(soul *component.Soul, tr *component.Transform, in *component.Input) {
	if in.Left {
		tr.X -= soul.Speed
	}
	if in.Right {
		tr.X += soul.Speed
	}
	if in.Up {
		tr.Y -= soul.Speed
	}
	if in.Down {
		tr.Y += soul.Speed
	}
}

func (s *SoulSystem) platforming(soul *component.Soul, tr *component.Transform, in *component.Input, inner common.Rect) {
	// single-direction horizontal check: left wins while held
	switch {
	case in.Left:
		soul.VX = -soul.Speed
	case in.Right:
		soul.VX = soul.Speed
	default:
		soul.VX = 0
	}

	if in.Up && soul.Grounded {
		// the jump impulse flips with gravity direction
		if soul.Gravity >= 0 {
			soul.VY = -soul.JumpSpeed
		} else {
			soul.VY = soul.JumpSpeed
		}
		soul.Grounded = false
	}

	soul.VY += soul.Gravity * gravityStep
	tr.X += soul.VX
	tr.Y += soul.VY

	// the floor is whichever bound gravity pulls toward
	if soul.Gravity >= 0 {
		floor := inner.Y + inner.H - soul.H
		if tr.Y >= floor {
			tr.Y = floor
			soul.VY = 0
			soul.Grounded = true
		} else {
			soul.Grounded = false
		}
	} else {
		ceiling := inner.Y
		if tr.Y <= ceiling {
			tr.Y = ceiling
			soul.VY = 0
			soul.Grounded = true
		} else {
			soul.Grounded = false
		}
	}
}
