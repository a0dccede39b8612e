package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// Game is the simulation driven by the terminal UI.
// Implementations must be deterministic given the same seed and input
// sequence, and must not depend on Bubble Tea.
type Game interface {
	// ID returns a unique identifier used in logs.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh session with the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state to the screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and phase.
	State() core.GameState
}
