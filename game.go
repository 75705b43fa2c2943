package main

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/bossrush/assets"
	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
	"github.com/milk9111/bossrush/ecs/entity"
	"github.com/milk9111/bossrush/ecs/system"
	"github.com/milk9111/bossrush/prefabs"
)

const sampleRate = 44100

type Game struct {
	world  *ecs.World
	battle ecs.Entity

	ui *battleUI

	watcher    *prefabs.Watcher
	lastUpdate time.Time
	debug      bool
}

func NewGame(debug, mute, watch bool, startPattern int) (*Game, error) {
	soulSpec, err := prefabs.LoadSpec[prefabs.SoulSpec]("soul.yaml")
	if err != nil {
		log.Printf("failed to load soul spec, using defaults: %v", err)
	}
	battleSpec, err := prefabs.LoadSpec[prefabs.BattleSpec]("battle.yaml")
	if err != nil {
		log.Printf("failed to load battle spec, using defaults: %v", err)
	}

	w := ecs.NewWorld()

	be, err := entity.NewBattle(w, battleSpec)
	if err != nil {
		return nil, fmt.Errorf("game: build battle: %w", err)
	}
	battle, _ := ecs.Get(w, be, component.BattleComponent.Kind())

	if _, err := entity.NewSoul(w, soulSpec, battle.Tuning); err != nil {
		return nil, fmt.Errorf("game: build soul: %w", err)
	}

	// dev shortcut: jump straight into a pattern, skipping the intro
	if startPattern >= 0 && startPattern < battle.PatternCount {
		battle.Phase = component.PhasePlaying
		battle.PatternRequest = startPattern
		battle.PlayUntilMS = battle.Tuning.PlayMS
		battle.Dialogue = ""
	}

	g := &Game{
		world:      w,
		battle:     be,
		lastUpdate: time.Now(),
		debug:      debug,
	}

	if watch {
		watcher, err := prefabs.NewWatcher("prefabs/patterns", "prefabs/specs")
		if err != nil {
			log.Printf("pattern watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.setupAudio(w, be, mute)

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewBattleSystem(debug))
	w.AddSystem(system.NewPatternSystem(entity.PatternNames(battleSpec), g.watcher, debug))
	w.AddSystem(system.NewSoulSystem())
	w.AddSystem(system.NewProjectileSystem())
	w.AddSystem(system.NewDamageSystem())
	w.AddSystem(system.NewCorruptionSystem())
	w.AddSystem(system.NewStallSystem())
	w.AddSystem(system.NewAudioSystem())

	g.ui = newBattleUI(func(action component.MenuAction) {
		// at most one action per menu session; anything sent while the
		// menu is closed is dropped
		if battle.MenuOpen && battle.Pending == component.ActionNone && !battle.Phase.Terminal() {
			battle.Pending = action
		}
	})

	return g, nil
}

func (g *Game) setupAudio(w *ecs.World, be ecs.Entity, mute bool) {
	ctx := audio.NewContext(sampleRate)
	track := assets.Track(sampleRate)
	loop := audio.NewInfiniteLoop(bytes.NewReader(track), int64(len(track)))
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("background track disabled: %v", err)
		return
	}
	if !mute {
		player.Play()
	}
	if err := ecs.Add(w, be, component.AudioComponent.Kind(), &component.Audio{Player: player, Muted: mute}); err != nil {
		log.Printf("background track disabled: %v", err)
	}
}

func (g *Game) Update() error {
	now := time.Now()
	delta := float64(now.Sub(g.lastUpdate)) / float64(time.Millisecond)
	g.lastUpdate = now

	// negative or zero deltas are a no-op; large ones are capped to bound
	// integration error under frame drops
	if delta > 0 {
		if delta > component.MaxDeltaMS {
			delta = component.MaxDeltaMS
		}
		if clock, ok := ecs.Get(g.world, g.battle, component.ClockComponent.Kind()); ok {
			clock.DeltaMS = delta
			clock.NowMS += delta
			clock.Tick++
		}
		g.world.Update()
	}

	g.ui.sync(g.world)
	g.ui.ui.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	system.DrawWorld(g.world, screen)
	system.DrawHUD(g.world, screen)
	g.ui.ui.Draw(screen)

	if g.debug {
		if battle, ok := ecs.Get(g.world, g.battle, component.BattleComponent.Kind()); ok {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS %.1f  phase=%s pattern=%d", ebiten.ActualFPS(), battle.Phase, battle.Pattern))
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
