package system

import (
	"math"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/bossrush/ecs"
	"github.com/milk9111/bossrush/ecs/component"
	"github.com/milk9111/bossrush/ecs/entity"
)

// patternEngine builds the globals a pattern script runs against. Immediate
// calls spawn right away; the *_at variants enqueue deferred effects keyed
// to millisecond offsets from pattern start.
func patternEngine(w *ecs.World, battle *component.Battle, startMS float64) map[string]tengo.Object {
	spawnBone := func(x, y, bw, bh, vx, vy float64, guarded bool) {
		_, _ = entity.NewBone(w, x, y, bw, bh, vx, vy, guarded)
	}
	spawnBlaster := func(x, y, angle float64) {
		_, _ = entity.NewBlaster(w, x, y, angle, battle.Tuning.BeamLength, battle.Tuning.BeamHalfWidth)
	}
	setGravity := func(dir float64) {
		if _, soul, ok := ecs.First(w, component.SoulComponent.Kind()); ok {
			mag := math.Abs(soul.Gravity)
			if dir < 0 {
				soul.Gravity = -mag
			} else {
				soul.Gravity = mag
			}
			soul.Grounded = false
		}
	}

	return map[string]tengo.Object{
		"say": &tengo.UserFunction{Name: "say", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			battle.Dialogue = argString(args[0])
			return tengo.TrueValue, nil
		}},

		"arena": &tengo.UserFunction{Name: "arena", Value: func(args ...tengo.Object) (tengo.Object, error) {
			a := battle.Tuning.Arena
			return &tengo.Array{Value: []tengo.Object{
				&tengo.Float{Value: a.X},
				&tengo.Float{Value: a.Y},
				&tengo.Float{Value: a.W},
				&tengo.Float{Value: a.H},
			}}, nil
		}},

		"bone": &tengo.UserFunction{Name: "bone", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 7 {
				return tengo.FalseValue, nil
			}
			spawnBone(argFloat(args[0]), argFloat(args[1]), argFloat(args[2]), argFloat(args[3]), argFloat(args[4]), argFloat(args[5]), argBool(args[6]))
			return tengo.TrueValue, nil
		}},

		"bone_at": &tengo.UserFunction{Name: "bone_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 8 {
				return tengo.FalseValue, nil
			}
			due := startMS + argFloat(args[0])
			x, y := argFloat(args[1]), argFloat(args[2])
			bw, bh := argFloat(args[3]), argFloat(args[4])
			vx, vy := argFloat(args[5]), argFloat(args[6])
			guarded := argBool(args[7])
			battle.ScheduleAt(due, func() { spawnBone(x, y, bw, bh, vx, vy, guarded) })
			return tengo.TrueValue, nil
		}},

		"blaster": &tengo.UserFunction{Name: "blaster", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 3 {
				return tengo.FalseValue, nil
			}
			spawnBlaster(argFloat(args[0]), argFloat(args[1]), argFloat(args[2]))
			return tengo.TrueValue, nil
		}},

		"blaster_at": &tengo.UserFunction{Name: "blaster_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 4 {
				return tengo.FalseValue, nil
			}
			due := startMS + argFloat(args[0])
			x, y, angle := argFloat(args[1]), argFloat(args[2]), argFloat(args[3])
			battle.ScheduleAt(due, func() { spawnBlaster(x, y, angle) })
			return tengo.TrueValue, nil
		}},

		"gravity_at": &tengo.UserFunction{Name: "gravity_at", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 2 {
				return tengo.FalseValue, nil
			}
			due := startMS + argFloat(args[0])
			dir := argFloat(args[1])
			battle.ScheduleAt(due, func() { setGravity(dir) })
			return tengo.TrueValue, nil
		}},
	}
}

func argFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	default:
		return 0
	}
}

func argBool(obj tengo.Object) bool {
	if obj == nil {
		return false
	}
	return !obj.IsFalsy()
}

func argString(obj tengo.Object) string {
	if s, ok := obj.(*tengo.String); ok {
		return s.Value
	}
	if obj == nil {
		return ""
	}
	return obj.String()
}
