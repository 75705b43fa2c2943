package entity

import (
	"fmt"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// NewBlaster spawns a beam emitter at its full charging lifetime.
func NewBlaster(w *ecs.World, x, y, angle, length, halfWidth float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("blaster: add transform: %w", err)
	}
	b := &component.Blaster{
		Angle:     angle,
		Lifetime:  component.BlasterLifetime,
		Length:    length,
		HalfWidth: halfWidth,
	}
	if b.Length <= 0 {
		b.Length = 480
	}
	if b.HalfWidth <= 0 {
		b.HalfWidth = 14
	}
	if err := ecs.Add(w, e, component.BlasterComponent.Kind(), b); err != nil {
		return 0, fmt.Errorf("blaster: add blaster: %w", err)
	}
	return e, nil
}
