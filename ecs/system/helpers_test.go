package system

import (
	"testing"

	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

func testTuning() component.BattleTuning {
	return component.BattleTuning{
		Arena:           common.Rect{X: 170, Y: 130, W: 300, H: 220},
		Margin:          20,
		CullMargin:      200,
		PlayMS:          1800,
		FirstMenuMS:     2600,
		IntroAutoMS:     2400,
		ItemHeal:        12,
		BeamLength:      480,
		BeamHalfWidth:   14,
		BoneDamage:      1.2,
		BoneKR:          5,
		BeamDamage:      0.9,
		BeamKR:          6,
		KRCap:           60,
		KRDrainRate:     0.08,
		KRDecayRate:     0.02,
		StallDrowsyMS:   3000,
		StallGuardMS:    6000,
		StallFinisherMS: 8000,
	}
}

func testMessages() component.BattleMessages {
	return component.BattleMessages{
		Intro:  []string{"line one", "line two"},
		Fight:  "fight msg",
		Act:    "act msg",
		Item:   "item msg",
		Mercy:  "mercy msg",
		Stall:  "stall msg",
		Drowsy: "drowsy msg",
		Escape: "escape msg",
		Ready:  "ready msg",
		Win:    "win msg",
		Loss:   "loss msg",
	}
}

// newBattleWorld builds a world with the battle singleton in the given
// phase, a clock, and the soul with its input, health, and corruption.
func newBattleWorld(t *testing.T, phase component.BattlePhase) (*ecs.World, *component.Battle, *component.Clock) {
	t.Helper()
	w := ecs.NewWorld()

	battle := &component.Battle{
		Phase:          phase,
		Pattern:        -1,
		PatternRequest: -1,
		PatternCount:   8,
		Tuning:         testTuning(),
		Messages:       testMessages(),
	}
	be := ecs.CreateEntity(w)
	if err := ecs.Add(w, be, component.BattleComponent.Kind(), battle); err != nil {
		t.Fatalf("add battle: %v", err)
	}
	clock := &component.Clock{}
	if err := ecs.Add(w, be, component.ClockComponent.Kind(), clock); err != nil {
		t.Fatalf("add clock: %v", err)
	}

	spawnTestSoul(t, w, battle.Tuning)

	return w, battle, clock
}

func spawnTestSoul(t *testing.T, w *ecs.World, tuning component.BattleTuning) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	center := tuning.Arena.Center()
	soul := &component.Soul{W: 16, H: 16, Speed: 2.5, JumpSpeed: 7, Gravity: 1.5, Mode: component.ModeFreeRoam}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: center.X - 8, Y: center.Y - 8}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.SoulComponent.Kind(), soul); err != nil {
		t.Fatalf("add soul: %v", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 92, Max: 92}); err != nil {
		t.Fatalf("add health: %v", err)
	}
	if err := ecs.Add(w, e, component.CorruptionComponent.Kind(), &component.Corruption{}); err != nil {
		t.Fatalf("add corruption: %v", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		t.Fatalf("add input: %v", err)
	}
	return e
}

func soulParts(t *testing.T, w *ecs.World) (ecs.Entity, *component.Soul, *component.Transform, *component.Health, *component.Corruption, *component.Input) {
	t.Helper()
	e, soul, ok := ecs.First(w, component.SoulComponent.Kind())
	if !ok {
		t.Fatalf("no soul in world")
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	health, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	kr, _ := ecs.Get(w, e, component.CorruptionComponent.Kind())
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	return e, soul, tr, health, kr, in
}

// tick advances the battle clock by delta and runs the given systems once.
func tick(clock *component.Clock, delta float64, w *ecs.World, systems ...ecs.System) {
	clock.DeltaMS = delta
	clock.NowMS += delta
	clock.Tick++
	for _, s := range systems {
		s.Update(w)
	}
}

func countBones(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.BoneComponent.Kind(), func(ecs.Entity, *component.Bone) { n++ })
	return n
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
