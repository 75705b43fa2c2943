package entity

import (
	"fmt"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
	"github.com/milk9111/bossrush/prefabs"
)

// NewSoul builds the player avatar from the soul prefab spec, centered in
// the arena.
func NewSoul(w *ecs.World, spec prefabs.SoulSpec, tuning component.BattleTuning) (ecs.Entity, error) {
	soul := &component.Soul{
		W:         spec.Width,
		H:         spec.Height,
		Speed:     spec.Speed,
		JumpSpeed: spec.JumpSpeed,
		Gravity:   spec.Gravity,
		Mode:      component.ModeFreeRoam,
	}
	if soul.W <= 0 {
		soul.W = 16
	}
	if soul.H <= 0 {
		soul.H = 16
	}
	if soul.Speed <= 0 {
		soul.Speed = 2.5
	}
	if soul.JumpSpeed <= 0 {
		soul.JumpSpeed = 7
	}
	if soul.Gravity == 0 {
		soul.Gravity = 1.5
	}

	hp := spec.HP
	if hp <= 0 {
		hp = 92
	}

	e := ecs.CreateEntity(w)

	center := tuning.Arena.Center()
	tr := &component.Transform{X: center.X - soul.W/2, Y: center.Y - soul.H/2}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return 0, fmt.Errorf("soul: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SoulComponent.Kind(), soul); err != nil {
		return 0, fmt.Errorf("soul: add soul: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: hp, Max: hp}); err != nil {
		return 0, fmt.Errorf("soul: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.CorruptionComponent.Kind(), &component.Corruption{}); err != nil {
		return 0, fmt.Errorf("soul: add corruption: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("soul: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.SoulTagComponent.Kind(), &component.SoulTag{}); err != nil {
		return 0, fmt.Errorf("soul: add tag: %w", err)
	}

	return e, nil
}
