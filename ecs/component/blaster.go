package component

const (
	// BlasterLifetime is the total lifetime of a blaster in ticks.
	BlasterLifetime = 70
	// BlasterFireAt is the remaining-lifetime threshold at which the beam
	// switches from the charging telegraph to the damaging ray.
	BlasterFireAt = 40
)

// Blaster is a beam emitter anchored at its Transform. It telegraphs while
// charging, then fires a fixed-width ray along Angle until it expires.
type Blaster struct {
	Angle float64
	// Lifetime is remaining ticks; the projectile system decrements it and
	// destroys the entity at zero.
	Lifetime int

	Length    float64
	HalfWidth float64
}

// Firing reports whether the beam is in its damaging sub-state.
func (b *Blaster) Firing() bool {
	return b != nil && b.Lifetime <= BlasterFireAt
}

var BlasterComponent = NewComponent[Blaster]()
