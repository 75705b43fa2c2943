package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SoulSpec tunes the player avatar.
type SoulSpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
	HP        float64 `yaml:"hp"`
}

// ArenaSpec is the battle box rectangle.
type ArenaSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BeamSpec tunes blaster beams.
type BeamSpec struct {
	Length    float64 `yaml:"length"`
	HalfWidth float64 `yaml:"half_width"`
}

// DamageSpec is the fixed per-hit numbers.
type DamageSpec struct {
	BoneHP float64 `yaml:"bone_hp"`
	BoneKR float64 `yaml:"bone_kr"`
	BeamHP float64 `yaml:"beam_hp"`
	BeamKR float64 `yaml:"beam_kr"`
}

// KRSpec tunes the corruption meter.
type KRSpec struct {
	Cap   float64 `yaml:"cap"`
	Drain float64 `yaml:"drain"`
	Decay float64 `yaml:"decay"`
}

// StallSpec holds the idle-escalation thresholds in milliseconds.
type StallSpec struct {
	DrowsyMS   float64 `yaml:"drowsy_ms"`
	GuardMS    float64 `yaml:"guard_ms"`
	FinisherMS float64 `yaml:"finisher_ms"`
}

// MessagesSpec is the scripted flavor text.
type MessagesSpec struct {
	Intro  []string `yaml:"intro"`
	Fight  string   `yaml:"fight"`
	Act    string   `yaml:"act"`
	Item   string   `yaml:"item"`
	Mercy  string   `yaml:"mercy"`
	Stall  string   `yaml:"stall"`
	Drowsy string   `yaml:"drowsy"`
	Escape string   `yaml:"escape"`
	Ready  string   `yaml:"ready"`
	Win    string   `yaml:"win"`
	Loss   string   `yaml:"loss"`
}

// BattleSpec tunes the whole encounter.
type BattleSpec struct {
	Arena       ArenaSpec    `yaml:"arena"`
	Margin      float64      `yaml:"margin"`
	CullMargin  float64      `yaml:"cull_margin"`
	PlayMS      float64      `yaml:"play_ms"`
	FirstMenuMS float64      `yaml:"first_menu_ms"`
	IntroAutoMS float64      `yaml:"intro_auto_ms"`
	ItemHeal    float64      `yaml:"item_heal"`
	Beam        BeamSpec     `yaml:"beam"`
	Damage      DamageSpec   `yaml:"damage"`
	KR          KRSpec       `yaml:"kr"`
	Stall       StallSpec    `yaml:"stall"`
	Patterns    []string     `yaml:"patterns"`
	Messages    MessagesSpec `yaml:"messages"`
}

// LoadSpec loads and unmarshals a yaml spec by filename.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}
