package ecs

import "github.com/milk9111/bossrush/ecs/component"

// store is dense component storage keyed by entity slot index.
type store[T any] struct {
	dense  []Entity
	values []*T
	sparse map[uint32]int
}

func newStore[T any]() *store[T] {
	return &store[T]{sparse: map[uint32]int{}}
}

func (s *store[T]) set(e Entity, v *T) {
	if i, ok := s.sparse[e.Index()]; ok {
		s.dense[i] = e
		s.values[i] = v
		return
	}
	s.sparse[e.Index()] = len(s.dense)
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
}

func (s *store[T]) get(e Entity) (*T, bool) {
	i, ok := s.sparse[e.Index()]
	if !ok || s.dense[i] != e {
		return nil, false
	}
	return s.values[i], true
}

func (s *store[T]) removeIndex(idx uint32) bool {
	i, ok := s.sparse[idx]
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[i] = moved
	s.values[i] = s.values[last]
	s.sparse[moved.Index()] = i
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	delete(s.sparse, idx)
	return true
}

func (s *store[T]) hasIndex(idx uint32) bool {
	_, ok := s.sparse[idx]
	return ok
}

// entities returns a snapshot of the dense entity list so callers may
// destroy entities mid-iteration.
func (s *store[T]) entities() []Entity {
	return append([]Entity(nil), s.dense...)
}

// storeFor finds the typed store for a component kind, creating it when
// create is set. Returns nil when the kind is unknown and create is false.
func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *store[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if raw, ok := w.stores[kind.ID()]; ok {
		st, _ := raw.(*store[T])
		return st
	}
	if !create {
		return nil
	}
	st := newStore[T]()
	w.stores[kind.ID()] = st
	return st
}
