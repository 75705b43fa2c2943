package ecs

import "github.com/milk9111/bossrush/ecs/component"

// Add attaches value to e, replacing any existing component of this kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

// Get returns e's component of this kind, or false when absent.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	st := storeFor(w, kind, false)
	if st == nil {
		return nil, false
	}
	return st.get(e)
}

// Has reports whether e carries a component of this kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove drops e's component of this kind, reporting whether one existed.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	st := storeFor(w, kind, false)
	if st == nil {
		return false
	}
	if _, ok := st.get(e); !ok {
		return false
	}
	return st.removeIndex(e.Index())
}

// First returns any one live entity carrying this kind. Useful for
// singleton components like the battle state or the soul.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	st := storeFor(w, kind, false)
	if st == nil {
		return 0, nil, false
	}
	for _, e := range st.dense {
		if IsAlive(w, e) {
			v, _ := st.get(e)
			return e, v, true
		}
	}
	return 0, nil, false
}

// ForEach visits every live entity carrying this kind. The iteration works
// over a snapshot, so fn may destroy entities as it goes.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	st := storeFor(w, kind, false)
	if st == nil || fn == nil {
		return
	}
	for _, e := range st.entities() {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := st.get(e); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, e := range sa.entities() {
		if !IsAlive(w, e) {
			continue
		}
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 visits every live entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, e := range sa.entities() {
		if !IsAlive(w, e) {
			continue
		}
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		c, ok := sc.get(e)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
