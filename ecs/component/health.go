package component

// Health is the soul's hit points. Current never exceeds Max; reaching zero
// ends the encounter.
type Health struct {
	Current float64
	Max     float64
}

var HealthComponent = NewComponent[Health]()

// Corruption ("KR") is the capped damage-over-time meter accrued on hits.
// It decays slowly and separately drains hp while above zero.
type Corruption struct {
	KR float64
}

var CorruptionComponent = NewComponent[Corruption]()
