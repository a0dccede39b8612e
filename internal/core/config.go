package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the simulated time covered by one Step.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Phase is the coarse lifecycle state of a game session.
type Phase int

const (
	PhaseRunning        Phase = iota // Simulation ticking, input moves the player
	PhaseDying                       // Collision animation, input ignored
	PhaseWaitingRestart              // Frozen, waiting for an activate to restart
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseDying:
		return "dying"
	case PhaseWaitingRestart:
		return "waiting_restart"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Phase Phase // Current lifecycle phase
}

// GameOver reports whether the session has ended (dying or waiting restart).
func (s GameState) GameOver() bool {
	return s.Phase != PhaseRunning
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventJump    EventKind = iota // A jump impulse started
	EventSpawn                    // An obstacle pair entered the field
	EventScore                    // An obstacle pair was passed
	EventDeath                    // Fatal collision, session entered Dying
	EventReady                    // Death animation over, restart accepted
	EventRestart                  // A new session started
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventDeath:
		return "death"
	case EventReady:
		return "ready"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by a game for the presentation layer.
type Event struct {
	Kind  EventKind
	At    time.Duration // Simulated time since the session clock started
	Score int           // Score right after the event
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
