package system

import (
	"testing"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

func TestIntroAdvancesOnConfirm(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseIntro)
	battle.Dialogue = battle.Messages.Intro[0]
	_, _, _, _, _, in := soulParts(t, w)
	s := NewBattleSystem(false)

	in.ConfirmPressed = true
	tick(clock, 16, w, s)
	if battle.Dialogue != "line two" {
		t.Fatalf("expected second intro line, got %q", battle.Dialogue)
	}
	if battle.Phase != component.PhaseIntro {
		t.Fatalf("still mid-intro, got phase %s", battle.Phase)
	}

	// past the last line the ambush starts with no menu in between
	tick(clock, 16, w, s)
	if battle.Phase != component.PhasePlaying {
		t.Fatalf("expected playing after intro, got %s", battle.Phase)
	}
	if battle.PatternRequest != 0 {
		t.Fatalf("expected pattern request 0, got %d", battle.PatternRequest)
	}
	if !almostEqual(battle.PlayUntilMS, clock.NowMS+battle.Tuning.FirstMenuMS) {
		t.Fatalf("expected first menu at %v, got %v", clock.NowMS+battle.Tuning.FirstMenuMS, battle.PlayUntilMS)
	}
	if battle.MenuOpen {
		t.Fatalf("cold open must not show a menu")
	}
}

func TestIntroAutoAdvances(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseIntro)
	s := NewBattleSystem(false)

	for i := 0; i < 149; i++ {
		tick(clock, 16, w, s)
	}
	if battle.IntroIndex != 0 {
		t.Fatalf("intro advanced too early at %v ms", battle.IntroShownMS)
	}
	tick(clock, 16, w, s)
	if battle.IntroIndex != 1 {
		t.Fatalf("expected auto-advance at %v ms, index %d", battle.Tuning.IntroAutoMS, battle.IntroIndex)
	}
}

func TestPlayingHandsOverToMenu(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhasePlaying)
	battle.Pattern = 0
	battle.PlayUntilMS = 100
	s := NewBattleSystem(false)

	tick(clock, 50, w, s)
	if battle.Phase != component.PhasePlaying || battle.MenuOpen {
		t.Fatalf("menu opened early")
	}

	tick(clock, 50, w, s)
	if battle.Phase != component.PhaseMenu || !battle.MenuOpen {
		t.Fatalf("expected open menu at deadline, got phase %s open=%v", battle.Phase, battle.MenuOpen)
	}
}

func TestMenuActionStartsNextPattern(t *testing.T) {
	cases := []struct {
		name     string
		action   component.MenuAction
		dialogue string
	}{
		{"fight", component.ActionFight, "fight msg"},
		{"act", component.ActionAct, "act msg"},
		{"item", component.ActionItem, "item msg"},
		{"mercy", component.ActionMercy, "mercy msg"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, battle, clock := newBattleWorld(t, component.PhaseMenu)
			battle.Pattern = 2
			battle.MenuOpen = true
			battle.Pending = c.action
			s := NewBattleSystem(false)

			tick(clock, 16, w, s)
			if battle.Dialogue != c.dialogue {
				t.Fatalf("expected %q, got %q", c.dialogue, battle.Dialogue)
			}
			if battle.Phase != component.PhasePlaying || battle.MenuOpen {
				t.Fatalf("expected playing with closed menu, got %s open=%v", battle.Phase, battle.MenuOpen)
			}
			if battle.PatternRequest != 3 {
				t.Fatalf("expected request for pattern 3, got %d", battle.PatternRequest)
			}
			if battle.Pending != component.ActionNone {
				t.Fatalf("pending action not consumed")
			}
		})
	}
}

func TestMenuWithoutActionWaits(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseMenu)
	battle.MenuOpen = true
	s := NewBattleSystem(false)

	for i := 0; i < 100; i++ {
		tick(clock, 16, w, s)
	}
	if battle.Phase != component.PhaseMenu || !battle.MenuOpen {
		t.Fatalf("menu must wait indefinitely, got %s", battle.Phase)
	}
}

func TestItemHealsClamped(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseMenu)
	battle.Pattern = 0
	battle.MenuOpen = true
	_, _, _, health, _, _ := soulParts(t, w)
	s := NewBattleSystem(false)

	health.Current = 50
	battle.Pending = component.ActionItem
	tick(clock, 16, w, s)
	if health.Current != 62 {
		t.Fatalf("expected 62 hp after heal, got %v", health.Current)
	}

	// healing never exceeds max
	battle.Phase = component.PhaseMenu
	battle.MenuOpen = true
	health.Current = 85
	battle.Pending = component.ActionItem
	tick(clock, 16, w, s)
	if health.Current != 92 {
		t.Fatalf("expected heal clamped to 92, got %v", health.Current)
	}
}

func TestLastPatternLeadsToStall(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseMenu)
	battle.Pattern = 7 // last of 8
	battle.MenuOpen = true
	battle.Pending = component.ActionFight
	s := NewBattleSystem(false)

	tick(clock, 16, w, s)
	if battle.Phase != component.PhaseStall {
		t.Fatalf("expected stall after final pattern, got %s", battle.Phase)
	}
	if battle.Dialogue != "stall msg" {
		t.Fatalf("expected stall dialogue, got %q", battle.Dialogue)
	}
	if !battle.StallBuilt {
		t.Fatalf("enclosure not built")
	}
	if got := countBones(w); got != 4 {
		t.Fatalf("expected 4 enclosure walls, got %d", got)
	}
	if len(battle.WallIDs) != 4 {
		t.Fatalf("expected 4 wall ids, got %d", len(battle.WallIDs))
	}

	// all four walls start neutral
	ecs.ForEach(w, component.BoneComponent.Kind(), func(_ ecs.Entity, bone *component.Bone) {
		if bone.Guarded {
			t.Fatalf("enclosure wall should start neutral")
		}
	})
}

func TestStallNeverRebuildsEnclosure(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseMenu)
	battle.Pattern = 7
	battle.MenuOpen = true
	battle.Pending = component.ActionFight
	s := NewBattleSystem(false)
	tick(clock, 16, w, s)

	before := countBones(w)
	s.enterStall(w, battle)
	if got := countBones(w); got != before {
		t.Fatalf("re-entering stall rebuilt walls: %d -> %d", before, got)
	}
}

func TestStallFightWinsOnlyWhenArmed(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseStall)
	battle.StallBuilt = true
	s := NewBattleSystem(false)

	// a stray action with the menu closed is dropped
	battle.Pending = component.ActionFight
	tick(clock, 16, w, s)
	if battle.Phase != component.PhaseStall {
		t.Fatalf("closed-menu action must be ignored, got %s", battle.Phase)
	}

	// the menu is open but the finisher is not armed yet
	battle.MenuOpen = true
	battle.Pending = component.ActionFight
	tick(clock, 16, w, s)
	if battle.Phase != component.PhaseStall {
		t.Fatalf("unarmed finisher must not win, got %s", battle.Phase)
	}

	// non-fight actions never finish it
	battle.FinisherArmed = true
	battle.MenuOpen = true
	battle.Pending = component.ActionMercy
	tick(clock, 16, w, s)
	if battle.Phase != component.PhaseStall {
		t.Fatalf("mercy must not trigger the finisher, got %s", battle.Phase)
	}

	battle.MenuOpen = true
	battle.Pending = component.ActionFight
	tick(clock, 16, w, s)
	if battle.Phase != component.PhaseWon {
		t.Fatalf("armed fight should win, got %s", battle.Phase)
	}
	if battle.Dialogue != "win msg" {
		t.Fatalf("expected win dialogue, got %q", battle.Dialogue)
	}
}

func TestDeathEndsEncounterFromAnyPhase(t *testing.T) {
	phases := []component.BattlePhase{
		component.PhaseIntro,
		component.PhasePlaying,
		component.PhaseMenu,
		component.PhaseStall,
	}

	for _, phase := range phases {
		t.Run(phase.String(), func(t *testing.T) {
			w, battle, clock := newBattleWorld(t, phase)
			battle.ScheduleAt(9999, func() {})
			_, _, _, health, _, _ := soulParts(t, w)
			health.Current = -0.5
			s := NewBattleSystem(false)

			tick(clock, 16, w, s)
			if battle.Phase != component.PhaseLost {
				t.Fatalf("expected loss from %s, got %s", phase, battle.Phase)
			}
			if health.Current != 0 {
				t.Fatalf("hp should rest at zero, got %v", health.Current)
			}
			if battle.Dialogue != "loss msg" {
				t.Fatalf("expected loss dialogue, got %q", battle.Dialogue)
			}
			if len(battle.Schedule) != 0 {
				t.Fatalf("terminal state must cancel the schedule")
			}
		})
	}
}

func TestTerminalPhaseDropsActions(t *testing.T) {
	w, battle, clock := newBattleWorld(t, component.PhaseWon)
	s := NewBattleSystem(false)

	battle.Pending = component.ActionFight
	tick(clock, 16, w, s)
	if battle.Pending != component.ActionNone {
		t.Fatalf("terminal phase must drop pending actions")
	}
	if battle.Phase != component.PhaseWon {
		t.Fatalf("terminal phase must never change, got %s", battle.Phase)
	}
}
