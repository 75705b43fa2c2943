package system

import (
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// StallSystem tracks continuous inactivity during the stall phase and fires
// the three escalation thresholds, each at most once.
type StallSystem struct{}

func NewStallSystem() *StallSystem {
	return &StallSystem{}
}

func (s *StallSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	be, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok || battle.Phase != component.PhaseStall || battle.FinisherArmed {
		return
	}
	clock, ok := ecs.Get(w, be, component.ClockComponent.Kind())
	if !ok {
		return
	}

	if _, in, ok := ecs.First(w, component.InputComponent.Kind()); ok && in.AnyDirection() {
		battle.StallIdleMS = 0
	} else {
		battle.StallIdleMS += clock.DeltaMS
	}

	t := battle.Tuning
	if battle.StallStage < 1 && battle.StallIdleMS >= t.StallDrowsyMS {
		battle.StallStage = 1
		battle.Dialogue = battle.Messages.Drowsy
	}
	if battle.StallStage < 2 && battle.StallIdleMS >= t.StallGuardMS {
		battle.StallStage = 2
		battle.Dialogue = battle.Messages.Escape
		s.dropGuard(w, battle)
	}
	if battle.StallStage < 3 && battle.StallIdleMS >= t.StallFinisherMS {
		battle.StallStage = 3
		battle.FinisherArmed = true
		battle.MenuOpen = true
		battle.Pending = component.ActionNone
		battle.Dialogue = battle.Messages.Ready
	}
}

// dropGuard converts one enclosure wall from neutral to guarded, signaling
// that escape is possible for a soul that keeps still.
func (s *StallSystem) dropGuard(w *ecs.World, battle *component.Battle) {
	for _, id := range battle.WallIDs {
		e := ecs.Entity(id)
		if bone, ok := ecs.Get(w, e, component.BoneComponent.Kind()); ok {
			bone.Guarded = true
			return
		}
	}
}
