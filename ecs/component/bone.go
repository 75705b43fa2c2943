package component

// Bone is a rectangular obstacle. Neutral bones damage on any overlap;
// guarded bones damage only while the soul moved this tick.
type Bone struct {
	W  float64
	H  float64
	VX float64
	VY float64

	Guarded bool
}

var BoneComponent = NewComponent[Bone]()
