package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Area: FlappyArea{
			Width:  800,
			Height: 480,
		},
		Bird: FlappyBird{
			X:        100,
			InitialY: 200,
			Width:    50,
			Height:   40,
		},
		Physics: FlappyPhysics{
			Gravity:         3.1,
			GravityInterval: 10 * time.Millisecond,
			JumpHeight:      11,
			MicroJumps:      10,
			JumpInterval:    10 * time.Millisecond,
		},
		Obstacles: FlappyObstacles{
			Width:         60,
			Gap:           180,
			Velocity:      7,
			MoveInterval:  10 * time.Millisecond,
			SpawnInterval: 2 * time.Second,
			MinSky:        50,
			MaxSky:        370,
		},
		DeathDelay: 800 * time.Millisecond,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
