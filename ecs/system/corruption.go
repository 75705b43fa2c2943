package system

import (
	"math"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// CorruptionSystem applies the per-tick KR drain and decay, scaled by the
// elapsed time on the battle clock. Drain alone never takes hp below zero.
type CorruptionSystem struct{}

func NewCorruptionSystem() *CorruptionSystem {
	return &CorruptionSystem{}
}

func (s *CorruptionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	be, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok || battle.Phase.Terminal() {
		return
	}
	clock, ok := ecs.Get(w, be, component.ClockComponent.Kind())
	if !ok || clock.DeltaMS <= 0 {
		return
	}

	t := battle.Tuning

	ecs.ForEach2(w, component.CorruptionComponent.Kind(), component.HealthComponent.Kind(),
		func(_ ecs.Entity, kr *component.Corruption, health *component.Health) {
			if kr.KR <= 0 {
				kr.KR = 0
				return
			}

			if health.Current > 0 {
				drain := math.Min(kr.KR, t.KRDrainRate*clock.DeltaMS)
				drain = math.Min(drain, health.Current)
				health.Current -= drain
			}

			kr.KR = math.Max(0, kr.KR-t.KRDecayRate*clock.DeltaMS)
		})
}
