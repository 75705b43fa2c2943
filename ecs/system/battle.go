package system

import (
	"fmt"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
	"github.com/milk9111/bossrush/ecs/entity"
)

// stallWallThickness reaches a few units past the interior clamp margin so
// the enclosure actually threatens a soul pressed against it.
const stallWallThickness = 24.0

// BattleSystem is the top-level state machine: intro dialogue, the
// playing/menu turn loop, the terminal stall phase, and both endings.
type BattleSystem struct {
	debug bool
}

func NewBattleSystem(debug bool) *BattleSystem {
	return &BattleSystem{debug: debug}
}

func (s *BattleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	be, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok {
		return
	}
	if battle.Phase.Terminal() {
		// finishing is idempotent; stray actions after the end are dropped
		battle.Pending = component.ActionNone
		return
	}
	clock, ok := ecs.Get(w, be, component.ClockComponent.Kind())
	if !ok {
		return
	}

	// death wins over everything, from any state
	if _, health, ok := ecs.First(w, component.HealthComponent.Kind()); ok && health.Current <= 0 {
		health.Current = 0
		s.finish(battle, component.PhaseLost, battle.Messages.Loss)
		return
	}

	switch battle.Phase {
	case component.PhaseIntro:
		s.updateIntro(w, battle, clock)
	case component.PhasePlaying:
		battle.Pending = component.ActionNone
		if clock.NowMS >= battle.PlayUntilMS {
			battle.Phase = component.PhaseMenu
			battle.MenuOpen = true
			battle.Pending = component.ActionNone
			s.trace("menu open, pattern %d done", battle.Pattern)
		}
	case component.PhaseMenu:
		s.updateMenu(w, battle, clock)
	case component.PhaseStall:
		s.updateStall(battle)
	}
}

func (s *BattleSystem) updateIntro(w *ecs.World, battle *component.Battle, clock *component.Clock) {
	confirm := false
	if _, in, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		confirm = in.ConfirmPressed
	}

	battle.IntroShownMS += clock.DeltaMS
	if !confirm && battle.IntroShownMS < battle.Tuning.IntroAutoMS {
		return
	}

	battle.IntroIndex++
	battle.IntroShownMS = 0
	if battle.IntroIndex < len(battle.Messages.Intro) {
		battle.Dialogue = battle.Messages.Intro[battle.IntroIndex]
		return
	}

	// cold open: the first pattern starts without a menu in between
	battle.PatternRequest = 0
	battle.Phase = component.PhasePlaying
	battle.PlayUntilMS = clock.NowMS + battle.Tuning.FirstMenuMS
	s.trace("intro done, ambush begins")
}

func (s *BattleSystem) updateMenu(w *ecs.World, battle *component.Battle, clock *component.Clock) {
	act := battle.Pending
	battle.Pending = component.ActionNone
	if act == component.ActionNone {
		return
	}

	battle.MenuOpen = false
	switch act {
	case component.ActionFight:
		battle.Dialogue = battle.Messages.Fight
	case component.ActionAct:
		battle.Dialogue = battle.Messages.Act
	case component.ActionItem:
		battle.Dialogue = battle.Messages.Item
		if _, health, ok := ecs.First(w, component.HealthComponent.Kind()); ok {
			health.Current += battle.Tuning.ItemHeal
			if health.Current > health.Max {
				health.Current = health.Max
			}
		}
	case component.ActionMercy:
		battle.Dialogue = battle.Messages.Mercy
	}
	s.trace("menu action %s", act)

	next := battle.Pattern + 1
	if next >= battle.PatternCount {
		s.enterStall(w, battle)
		return
	}
	battle.PatternRequest = next
	battle.Phase = component.PhasePlaying
	battle.PlayUntilMS = clock.NowMS + battle.Tuning.PlayMS
}

// enterStall moves into the terminal phase. Re-entry never rebuilds the
// enclosure.
func (s *BattleSystem) enterStall(w *ecs.World, battle *component.Battle) {
	battle.Phase = component.PhaseStall
	battle.MenuOpen = false
	battle.Pending = component.ActionNone
	battle.Dialogue = battle.Messages.Stall
	battle.CancelScheduled()

	if battle.StallBuilt {
		return
	}
	battle.StallBuilt = true
	battle.StallIdleMS = 0

	a := battle.Tuning.Arena
	walls := [][4]float64{
		{a.X, a.Y, a.W, stallWallThickness},                          // top
		{a.X, a.Y + a.H - stallWallThickness, a.W, stallWallThickness}, // bottom
		{a.X, a.Y, stallWallThickness, a.H},                          // left
		{a.X + a.W - stallWallThickness, a.Y, stallWallThickness, a.H}, // right
	}
	for _, r := range walls {
		e, err := entity.NewBone(w, r[0], r[1], r[2], r[3], 0, 0, false)
		if err != nil {
			s.trace("stall wall: %v", err)
			continue
		}
		battle.WallIDs = append(battle.WallIDs, uint64(e))
	}
	s.trace("stall enclosure built")
}

// updateStall handles the one meaningful action of the terminal phase: the
// armed finisher. Everything else is ignored because there is no next
// pattern to advance to.
func (s *BattleSystem) updateStall(battle *component.Battle) {
	act := battle.Pending
	battle.Pending = component.ActionNone
	if !battle.MenuOpen || act == component.ActionNone {
		return
	}
	if act == component.ActionFight && battle.FinisherArmed {
		s.finish(battle, component.PhaseWon, battle.Messages.Win)
	}
}

func (s *BattleSystem) finish(battle *component.Battle, phase component.BattlePhase, msg string) {
	battle.Phase = phase
	battle.MenuOpen = false
	battle.Pending = component.ActionNone
	battle.Dialogue = msg
	battle.CancelScheduled()
	s.trace("encounter finished: %s", phase)
}

func (s *BattleSystem) trace(format string, args ...any) {
	if s.debug {
		fmt.Printf("battle: "+format+"\n", args...)
	}
}
