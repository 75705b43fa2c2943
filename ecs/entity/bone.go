package entity

import (
	"fmt"

	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// NewBone spawns a rectangular obstacle with a per-tick velocity.
func NewBone(w *ecs.World, x, y, bw, bh, vx, vy float64, guarded bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("bone: add transform: %w", err)
	}
	bone := &component.Bone{W: bw, H: bh, VX: vx, VY: vy, Guarded: guarded}
	if err := ecs.Add(w, e, component.BoneComponent.Kind(), bone); err != nil {
		return 0, fmt.Errorf("bone: add bone: %w", err)
	}
	return e, nil
}
