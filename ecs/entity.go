package ecs

import "strconv"

// Entity is a handle packing a 32-bit slot index with a 32-bit generation.
// A stale handle (generation mismatch) is treated as dead everywhere.
type Entity uint64

const indexBits = 32

func makeEntity(idx, gen uint32) Entity {
	return Entity(uint64(gen)<<indexBits | uint64(idx))
}

// Index returns the entity's slot index.
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the entity's generation counter.
func (e Entity) Generation() uint32 {
	return uint32(uint64(e) >> indexBits)
}

// Valid reports whether the handle refers to any slot at all.
func (e Entity) Valid() bool {
	return e != 0
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
