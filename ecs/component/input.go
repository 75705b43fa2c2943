package component

// Input stores the per-frame held-key snapshot for an entity.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	ConfirmPressed    bool
	ModeTogglePressed bool
	MuteTogglePressed bool
}

// AnyDirection reports whether any directional key is held this tick.
func (in *Input) AnyDirection() bool {
	return in != nil && (in.Left || in.Right || in.Up || in.Down)
}

var InputComponent = NewComponent[Input]()
