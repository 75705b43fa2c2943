package ecs

import "github.com/milk9111/bossrush/ecs/component"

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// World owns entity slots, component stores, and system order. It is a plain
// value owned by the driver; nothing in this package keeps ambient state.
type World struct {
	slots   entitySlots
	stores  map[component.ComponentID]componentStore
	systems []System
}

// componentStore is the type-erased face of a store[T] so DestroyEntity can
// sweep every store without knowing component types.
type componentStore interface {
	removeIndex(idx uint32) bool
	hasIndex(idx uint32) bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]componentStore{}}
}

// CreateEntity allocates a fresh entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.slots.create()
}

// DestroyEntity kills an entity and drops all of its components. Returns
// false for dead or stale handles.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.slots.alive(e) {
		return false
	}
	w.slots.destroy(e)
	for _, s := range w.stores {
		s.removeIndex(e.Index())
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.slots.alive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.slots.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs every registered system once, in registration order.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
}

// entitySlots tracks slot generations and the free list. Slot 0 is reserved
// so the zero Entity is never live.
type entitySlots struct {
	gens  []uint32
	live  []bool
	free  []uint32
	count int
}

func (s *entitySlots) create() Entity {
	if len(s.gens) == 0 {
		s.gens = append(s.gens, 0)
		s.live = append(s.live, false)
	}
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.gens))
		s.gens = append(s.gens, 0)
		s.live = append(s.live, false)
	}
	s.live[idx] = true
	s.count++
	return makeEntity(idx, s.gens[idx])
}

func (s *entitySlots) destroy(e Entity) {
	idx := e.Index()
	s.gens[idx]++
	s.live[idx] = false
	s.free = append(s.free, idx)
	s.count--
}

func (s *entitySlots) alive(e Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) >= len(s.gens) {
		return false
	}
	return s.live[idx] && s.gens[idx] == e.Generation()
}

func (s *entitySlots) all() []Entity {
	out := make([]Entity, 0, s.count)
	for idx := 1; idx < len(s.gens); idx++ {
		if s.live[idx] {
			out = append(out, makeEntity(uint32(idx), s.gens[idx]))
		}
	}
	return out
}
