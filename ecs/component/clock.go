package component

// Clock is the singleton simulation clock, written by the driver before the
// world updates. DeltaMS is already validated: zero means "skip this tick"
// and the driver caps it at MaxDeltaMS to bound integration error.
type Clock struct {
	// DeltaMS is the elapsed time for this tick in milliseconds.
	DeltaMS float64
	// NowMS is the accumulated time since the encounter started.
	NowMS float64
	// Tick counts world updates.
	Tick uint64
}

// MaxDeltaMS bounds a single tick under frame drops.
const MaxDeltaMS = 32.0

var ClockComponent = NewComponent[Clock]()
