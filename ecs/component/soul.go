package component

// SoulMode selects which movement physics drives the soul.
type SoulMode int

const (
	// ModeFreeRoam moves along all four axes independently.
	ModeFreeRoam SoulMode = iota
	// ModePlatforming is gravity platforming with jumps.
	ModePlatforming
)

func (m SoulMode) String() string {
	switch m {
	case ModeFreeRoam:
		return "freeroam"
	case ModePlatforming:
		return "platforming"
	default:
		return "unknown"
	}
}

// Soul is the player-controlled avatar. Position lives in Transform; this
// holds size, velocity, and the movement-mode state.
type Soul struct {
	W float64
	H float64

	VX float64
	VY float64

	Mode SoulMode

	// Speed is the per-tick movement step; JumpSpeed the jump impulse.
	Speed     float64
	JumpSpeed float64
	// Gravity carries both magnitude and sign. Patterns flip the sign as a
	// scripted effect; the jump impulse and floor selection follow it.
	Gravity float64

	Grounded bool
	// Moved is recomputed every tick: whether any movement key was held.
	// Guarded bones only damage while it is set.
	Moved bool
}

var SoulComponent = NewComponent[Soul]()
