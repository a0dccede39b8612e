// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
// Lengths are in play-area units (logical pixels); the terminal renderer
// scales the area to whatever screen it gets.
type FlappyConfig struct {
	Area       FlappyArea      `yaml:"area"`
	Bird       FlappyBird      `yaml:"bird"`
	Physics    FlappyPhysics   `yaml:"physics"`
	Obstacles  FlappyObstacles `yaml:"obstacles"`
	DeathDelay time.Duration   `yaml:"death_delay"` // Dying -> WaitingRestart
}

// FlappyArea defines the size of the logical play area.
type FlappyArea struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyBird defines the player entity.
type FlappyBird struct {
	X        float64 `yaml:"x"`
	InitialY float64 `yaml:"initial_y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

// FlappyPhysics defines fall and jump parameters.
type FlappyPhysics struct {
	Gravity         float64       `yaml:"gravity"`          // Added to Y on every fall tick
	GravityInterval time.Duration `yaml:"gravity_interval"` // Fall tick period
	JumpHeight      float64       `yaml:"jump_height"`      // Upward move per jump step
	MicroJumps      int           `yaml:"micro_jumps"`      // Steps per jump
	JumpInterval    time.Duration `yaml:"jump_interval"`    // Jump step period
}

// FlappyObstacles defines obstacle pair parameters.
type FlappyObstacles struct {
	Width         float64       `yaml:"width"`
	Gap           float64       `yaml:"gap"`      // Vertical opening between top and bottom
	Velocity      float64       `yaml:"velocity"` // Leftward move per advance tick
	MoveInterval  time.Duration `yaml:"move_interval"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MinSky        float64       `yaml:"min_sky"` // Lower clamp for the top obstacle height
	MaxSky        float64       `yaml:"max_sky"` // Upper clamp for the top obstacle height
}

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Area.Width > 0 && c.Area.Height > 0, "area must be positive, got %gx%g", c.Area.Width, c.Area.Height)
	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird size must be positive, got %gx%g", c.Bird.Width, c.Bird.Height)
	check(c.Bird.InitialY >= 0 && c.Bird.InitialY+c.Bird.Height <= c.Area.Height,
		"bird initial_y %g puts the bird outside the area", c.Bird.InitialY)
	check(c.Bird.X >= 0 && c.Bird.X+c.Bird.Width <= c.Area.Width, "bird x %g is outside the area", c.Bird.X)

	check(c.Physics.Gravity >= 0, "gravity must not be negative, got %g", c.Physics.Gravity)
	check(c.Physics.GravityInterval > 0, "gravity_interval must be positive, got %s", c.Physics.GravityInterval)
	check(c.Physics.JumpHeight >= 0, "jump_height must not be negative, got %g", c.Physics.JumpHeight)
	check(c.Physics.MicroJumps > 0, "micro_jumps must be positive, got %d", c.Physics.MicroJumps)
	check(c.Physics.JumpInterval > 0, "jump_interval must be positive, got %s", c.Physics.JumpInterval)

	o := c.Obstacles
	check(o.Width > 0, "obstacle width must be positive, got %g", o.Width)
	check(o.Velocity > 0, "obstacle velocity must be positive, got %g", o.Velocity)
	check(o.MoveInterval > 0, "move_interval must be positive, got %s", o.MoveInterval)
	check(o.SpawnInterval > 0, "spawn_interval must be positive, got %s", o.SpawnInterval)
	check(o.Gap > 0 && o.Gap < c.Area.Height, "gap %g must be inside (0, area height)", o.Gap)
	check(c.Bird.Height < o.Gap, "gap %g must exceed bird height %g", o.Gap, c.Bird.Height)
	check(o.MinSky >= 0 && o.MinSky <= o.MaxSky, "sky range [%g, %g] is invalid", o.MinSky, o.MaxSky)
	check(o.MinSky <= c.Area.Height-o.Gap, "min_sky %g leaves no room for the bottom obstacle", o.MinSky)

	check(c.DeathDelay > 0, "death_delay must be positive, got %s", c.DeathDelay)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
