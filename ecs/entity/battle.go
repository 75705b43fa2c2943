package entity

import (
	"fmt"

	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
	"github.com/milk9111/bossrush/prefabs"
)

// NewBattle builds the singleton battle entity: state machine, clock, and
// tuning from the battle prefab spec. Zero-valued spec fields fall back to
// the reference constants.
func NewBattle(w *ecs.World, spec prefabs.BattleSpec) (ecs.Entity, error) {
	tuning := tuningFromSpec(spec)

	patterns := spec.Patterns
	if len(patterns) == 0 {
		patterns = []string{"p0.tengo", "p1.tengo", "p2.tengo", "p3.tengo", "p4.tengo", "p5.tengo", "p6.tengo", "p7.tengo"}
	}

	battle := &component.Battle{
		Phase:          component.PhaseIntro,
		Pattern:        -1,
		PatternRequest: -1,
		PatternCount:   len(patterns),
		Tuning:         tuning,
		Messages:       messagesFromSpec(spec.Messages),
	}
	if len(battle.Messages.Intro) > 0 {
		battle.Dialogue = battle.Messages.Intro[0]
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BattleComponent.Kind(), battle); err != nil {
		return 0, fmt.Errorf("battle: add battle: %w", err)
	}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{}); err != nil {
		return 0, fmt.Errorf("battle: add clock: %w", err)
	}
	if err := ecs.Add(w, e, component.BattleTagComponent.Kind(), &component.BattleTag{}); err != nil {
		return 0, fmt.Errorf("battle: add tag: %w", err)
	}

	return e, nil
}

// PatternNames returns the script list the battle was configured with.
func PatternNames(spec prefabs.BattleSpec) []string {
	if len(spec.Patterns) > 0 {
		return spec.Patterns
	}
	return []string{"p0.tengo", "p1.tengo", "p2.tengo", "p3.tengo", "p4.tengo", "p5.tengo", "p6.tengo", "p7.tengo"}
}

func tuningFromSpec(spec prefabs.BattleSpec) component.BattleTuning {
	t := component.BattleTuning{
		Arena:           common.Rect{X: spec.Arena.X, Y: spec.Arena.Y, W: spec.Arena.W, H: spec.Arena.H},
		Margin:          spec.Margin,
		CullMargin:      spec.CullMargin,
		PlayMS:          spec.PlayMS,
		FirstMenuMS:     spec.FirstMenuMS,
		IntroAutoMS:     spec.IntroAutoMS,
		ItemHeal:        spec.ItemHeal,
		BeamLength:      spec.Beam.Length,
		BeamHalfWidth:   spec.Beam.HalfWidth,
		BoneDamage:      spec.Damage.BoneHP,
		BoneKR:          spec.Damage.BoneKR,
		BeamDamage:      spec.Damage.BeamHP,
		BeamKR:          spec.Damage.BeamKR,
		KRCap:           spec.KR.Cap,
		KRDrainRate:     spec.KR.Drain,
		KRDecayRate:     spec.KR.Decay,
		StallDrowsyMS:   spec.Stall.DrowsyMS,
		StallGuardMS:    spec.Stall.GuardMS,
		StallFinisherMS: spec.Stall.FinisherMS,
	}
	if t.Arena.W <= 0 || t.Arena.H <= 0 {
		t.Arena = common.Rect{X: 170, Y: 130, W: 300, H: 220}
	}
	if t.Margin <= 0 {
		t.Margin = 20
	}
	if t.CullMargin <= 0 {
		t.CullMargin = 200
	}
	if t.PlayMS <= 0 {
		t.PlayMS = 1800
	}
	if t.FirstMenuMS <= 0 {
		t.FirstMenuMS = 2600
	}
	if t.IntroAutoMS <= 0 {
		t.IntroAutoMS = 2400
	}
	if t.ItemHeal <= 0 {
		t.ItemHeal = 12
	}
	if t.BeamLength <= 0 {
		t.BeamLength = 480
	}
	if t.BeamHalfWidth <= 0 {
		t.BeamHalfWidth = 14
	}
	if t.BoneDamage <= 0 {
		t.BoneDamage = 1.2
	}
	if t.BoneKR <= 0 {
		t.BoneKR = 5
	}
	if t.BeamDamage <= 0 {
		t.BeamDamage = 0.9
	}
	if t.BeamKR <= 0 {
		t.BeamKR = 6
	}
	if t.KRCap <= 0 {
		t.KRCap = 60
	}
	if t.KRDrainRate <= 0 {
		t.KRDrainRate = 0.08
	}
	if t.KRDecayRate <= 0 {
		t.KRDecayRate = 0.02
	}
	if t.StallDrowsyMS <= 0 {
		t.StallDrowsyMS = 3000
	}
	if t.StallGuardMS <= 0 {
		t.StallGuardMS = 6000
	}
	if t.StallFinisherMS <= 0 {
		t.StallFinisherMS = 8000
	}
	return t
}

func messagesFromSpec(m prefabs.MessagesSpec) component.BattleMessages {
	out := component.BattleMessages{
		Intro:  m.Intro,
		Fight:  m.Fight,
		Act:    m.Act,
		Item:   m.Item,
		Mercy:  m.Mercy,
		Stall:  m.Stall,
		Drowsy: m.Drowsy,
		Escape: m.Escape,
		Ready:  m.Ready,
		Win:    m.Win,
		Loss:   m.Loss,
	}
	if len(out.Intro) == 0 {
		out.Intro = []string{"let's get this over with."}
	}
	if out.Stall == "" {
		out.Stall = "...this is the part where you do nothing."
	}
	if out.Drowsy == "" {
		out.Drowsy = "...getting sleepy over there?"
	}
	if out.Escape == "" {
		out.Escape = "one wall hums quietly. it only bites if you move."
	}
	if out.Ready == "" {
		out.Ready = "now's your chance."
	}
	if out.Win == "" {
		out.Win = "you take it. the room goes quiet."
	}
	if out.Loss == "" {
		out.Loss = "your journey ends here."
	}
	return out
}
