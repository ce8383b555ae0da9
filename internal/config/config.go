// Package config provides YAML-based game configuration with embedded
// defaults, following the search order custom path -> user config ->
// local configs directory -> embedded default.
package config

// GameConfig contains all tunable parameters of the game.
type GameConfig struct {
	Field     Field     `yaml:"field"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Audio     Audio     `yaml:"audio"`
}

// Field defines the logical playfield dimensions and simulation rate.
type Field struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// FrameDurationMS is the accumulated elapsed time required before a
	// physics step runs, decoupling simulation rate from the tick rate.
	FrameDurationMS float64 `yaml:"frame_duration_ms"`
}

// Physics defines the entity physics parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per step
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Upward velocity on flap (negative = up)
}

// Obstacles defines obstacle generation parameters.
type Obstacles struct {
	InitialCount int `yaml:"initial_count"` // Size of the rolling obstacle set
	Interval     int `yaml:"interval"`      // Horizontal distance between obstacles
	BaseGap      int `yaml:"base_gap"`      // Gap size at score 0
	MinGap       int `yaml:"min_gap"`       // Gap size floor
	Margin       int `yaml:"margin"`        // Distance the gap keeps from the field edges
}

// Audio defines the initial audio toggles.
type Audio struct {
	Effects bool `yaml:"effects"` // Sound effects on at startup
	Music   bool `yaml:"music"`   // Background music on at startup
}
