package system

import (
	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// ProjectileSystem advances every bone by its velocity, counts blaster
// lifetimes down, and culls whatever has left the expanded arena.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok || battle.Phase.Terminal() {
		return
	}

	cullBB := battle.Tuning.Arena.Expand(battle.Tuning.CullMargin).BB()

	ecs.ForEach2(w, component.BoneComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, bone *component.Bone, tr *component.Transform) {
			tr.X += bone.VX
			tr.Y += bone.VY

			bb := common.Rect{X: tr.X, Y: tr.Y, W: bone.W, H: bone.H}.BB()
			if !common.Overlap(bb, cullBB) {
				ecs.DestroyEntity(w, e)
			}
		})

	ecs.ForEach(w, component.BlasterComponent.Kind(), func(e ecs.Entity, b *component.Blaster) {
		b.Lifetime--
		if b.Lifetime <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
