package system

import (
	"fmt"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
	"github.com/milk9111/bossrush/prefabs"
)

// PatternSystem runs attack-pattern scripts and drains the deterministic
// deferred-effect queue they build. A script executes exactly once when its
// pattern starts; anything it wants later goes through the schedule.
type PatternSystem struct {
	names   []string
	sources map[string][]byte
	watcher *prefabs.Watcher
	debug   bool
}

func NewPatternSystem(names []string, watcher *prefabs.Watcher, debug bool) *PatternSystem {
	return &PatternSystem{
		names:   append([]string(nil), names...),
		sources: map[string][]byte{},
		watcher: watcher,
		debug:   debug,
	}
}

func (s *PatternSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.drainWatcher()

	be, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok {
		return
	}
	clock, ok := ecs.Get(w, be, component.ClockComponent.Kind())
	if !ok {
		return
	}
	if battle.Phase.Terminal() {
		battle.CancelScheduled()
		return
	}

	if req := battle.PatternRequest; req >= 0 {
		battle.PatternRequest = -1
		s.start(w, battle, clock, req)
	}

	s.drainSchedule(battle, clock)
}

func (s *PatternSystem) start(w *ecs.World, battle *component.Battle, clock *component.Clock, idx int) {
	if idx < 0 || idx >= len(s.names) {
		s.trace("no script for pattern %d", idx)
		return
	}

	// stale spawns from the previous pattern must never leak forward
	battle.CancelScheduled()
	battle.Pattern = idx
	battle.PatternStartMS = clock.NowMS

	name := s.names[idx]
	src, err := s.source(name)
	if err != nil {
		fmt.Printf("pattern: load %s: %v\n", name, err)
		return
	}

	script := tengo.NewScript(src)
	for fname, fn := range patternEngine(w, battle, clock.NowMS) {
		_ = script.Add(fname, fn)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	if _, err := script.Run(); err != nil {
		fmt.Printf("pattern: run %s: %v\n", name, err)
		return
	}
	s.trace("pattern %d (%s) started, %d deferred effects", idx, name, len(battle.Schedule))
}

// drainSchedule fires every effect whose deadline has passed. Effects are
// collected before running so one may safely append new entries.
func (s *PatternSystem) drainSchedule(battle *component.Battle, clock *component.Clock) {
	if len(battle.Schedule) == 0 {
		return
	}
	var due []func()
	rest := battle.Schedule[:0]
	for _, eff := range battle.Schedule {
		if eff.DueMS <= clock.NowMS {
			due = append(due, eff.Run)
		} else {
			rest = append(rest, eff)
		}
	}
	battle.Schedule = rest
	for _, run := range due {
		run()
	}
}

func (s *PatternSystem) source(name string) ([]byte, error) {
	if src, ok := s.sources[name]; ok {
		return src, nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	s.sources[name] = src
	return src, nil
}

// drainWatcher evicts cached script sources that changed on disk so the
// next pattern start picks up the edit.
func (s *PatternSystem) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.watcher.Events:
			if !ok {
				s.watcher = nil
				return
			}
			name := filepath.Base(path)
			delete(s.sources, name)
			s.trace("reloaded %s", name)
		case err := <-s.watcher.Errors:
			fmt.Printf("pattern: watcher: %v\n", err)
		default:
			return
		}
	}
}

func (s *PatternSystem) trace(format string, args ...any) {
	if s.debug {
		fmt.Printf("pattern: "+format+"\n", args...)
	}
}
