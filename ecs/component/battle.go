package component

import "github.com/milk9111/bossrush/common"

// BattlePhase is the top-level encounter state.
type BattlePhase int

const (
	PhaseIntro BattlePhase = iota
	PhasePlaying
	PhaseMenu
	PhaseStall
	PhaseWon
	PhaseLost
)

func (p BattlePhase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseMenu:
		return "menu"
	case PhaseStall:
		return "stall"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the encounter has finished.
func (p BattlePhase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// MenuAction is the closed set of discrete menu choices.
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionFight
	ActionAct
	ActionItem
	ActionMercy
)

func (a MenuAction) String() string {
	switch a {
	case ActionFight:
		return "FIGHT"
	case ActionAct:
		return "ACT"
	case ActionItem:
		return "ITEM"
	case ActionMercy:
		return "MERCY"
	default:
		return "none"
	}
}

// ScheduledEffect is a fire-once deferred pattern effect keyed to a
// millisecond deadline on the battle clock.
type ScheduledEffect struct {
	DueMS float64
	Run   func()
}

// BattleTuning collects the encounter constants loaded from the battle
// prefab spec.
type BattleTuning struct {
	Arena common.Rect
	// Margin is the interior clamp inset keeping the soul inside the box.
	Margin float64
	// CullMargin is how far outside the arena a bone may drift before the
	// projectile system destroys it.
	CullMargin float64

	PlayMS      float64
	FirstMenuMS float64
	IntroAutoMS float64

	ItemHeal float64

	BeamLength    float64
	BeamHalfWidth float64

	BoneDamage float64
	BoneKR     float64
	BeamDamage float64
	BeamKR     float64

	KRCap       float64
	KRDrainRate float64
	KRDecayRate float64

	StallDrowsyMS   float64
	StallGuardMS    float64
	StallFinisherMS float64
}

// BattleMessages is the fixed flavor text shown by the state machine.
type BattleMessages struct {
	Intro  []string
	Fight  string
	Act    string
	Item   string
	Mercy  string
	Stall  string
	Drowsy string
	Escape string
	Ready  string
	Win    string
	Loss   string
}

// Battle is the singleton state machine component driving the encounter.
type Battle struct {
	Phase BattlePhase

	// Pattern is the current pattern index; -1 before the cold open.
	Pattern int
	// PatternCount is the number of numbered pattern scripts.
	PatternCount int
	// PatternRequest asks the pattern system to start a script this frame;
	// -1 means no request.
	PatternRequest int
	PatternStartMS float64

	// PlayUntilMS is when the current Playing phase hands over to the menu.
	PlayUntilMS float64

	MenuOpen bool
	// Pending holds at most one unconsumed menu action per menu session.
	Pending MenuAction

	Dialogue     string
	IntroIndex   int
	IntroShownMS float64

	// Schedule is the deterministic deferred-effect queue for the current
	// pattern. Starting a pattern or reaching a terminal state clears it.
	Schedule []ScheduledEffect

	StallBuilt    bool
	StallIdleMS   float64
	StallStage    int
	FinisherArmed bool
	// WallIDs are the stall enclosure bone entities (raw handles; the
	// component package does not know the ecs package).
	WallIDs []uint64

	Tuning   BattleTuning
	Messages BattleMessages
}

// ScheduleAt enqueues a deferred effect due at the given battle-clock time.
func (b *Battle) ScheduleAt(dueMS float64, run func()) {
	if b == nil || run == nil {
		return
	}
	b.Schedule = append(b.Schedule, ScheduledEffect{DueMS: dueMS, Run: run})
}

// CancelScheduled drops every pending deferred effect.
func (b *Battle) CancelScheduled() {
	b.Schedule = b.Schedule[:0]
}

var BattleComponent = NewComponent[Battle]()
