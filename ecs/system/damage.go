package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossrush/common"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
)

// DamageSystem resolves bone overlaps and firing beams into hp loss and
// corruption. Multiple simultaneous hits all land in the same tick; there is
// no invulnerability window.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, battle, ok := ecs.First(w, component.BattleComponent.Kind())
	if !ok || battle.Phase.Terminal() {
		return
	}

	se, soul, ok := ecs.First(w, component.SoulComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, se, component.TransformComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, se, component.HealthComponent.Kind())
	if !ok {
		return
	}
	kr, ok := ecs.Get(w, se, component.CorruptionComponent.Kind())
	if !ok {
		return
	}

	t := battle.Tuning
	soulRect := common.Rect{X: tr.X, Y: tr.Y, W: soul.W, H: soul.H}
	soulBB := soulRect.BB()
	center := soulRect.Center()

	ecs.ForEach2(w, component.BoneComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, bone *component.Bone, bt *component.Transform) {
			bb := common.Rect{X: bt.X, Y: bt.Y, W: bone.W, H: bone.H}.BB()
			if !common.Overlap(soulBB, bb) {
				return
			}
			if bone.Guarded && !soul.Moved {
				return
			}
			applyHit(health, kr, t.BoneDamage, t.BoneKR, t.KRCap)
		})

	ecs.ForEach2(w, component.BlasterComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, b *component.Blaster, bt *component.Transform) {
			if !b.Firing() {
				return
			}
			origin := cp.Vector{X: bt.X, Y: bt.Y}
			if common.RayHit(center, origin, b.Angle, b.Length, b.HalfWidth) {
				applyHit(health, kr, t.BeamDamage, t.BeamKR, t.KRCap)
			}
		})
}

func applyHit(health *component.Health, kr *component.Corruption, damage, corruption, krCap float64) {
	health.Current -= damage
	kr.KR += corruption
	if kr.KR > krCap {
		kr.KR = krCap
	}
}
