package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It is the last
// fallback when even the embedded YAML fails to parse.
func Default() GameConfig {
	return GameConfig{
		Field: Field{
			Width:           80,
			Height:          50,
			FrameDurationMS: 75.0,
		},
		Physics: Physics{
			Gravity:      0.2,
			MaxFallSpeed: 2.0,
			FlapImpulse:  -2.0,
		},
		Obstacles: Obstacles{
			InitialCount: 3,
			Interval:     30,
			BaseGap:      20,
			MinGap:       5,
			Margin:       2,
		},
		Audio: Audio{
			Effects: true,
			Music:   true,
		},
	}
}
