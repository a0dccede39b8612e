package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// DefaultAutopilotMargin is the clearance kept between the bird's bottom
// edge and the lower lip of the next opening.
const DefaultAutopilotMargin = 20.0

// Autopilot is a simple policy that keeps the bird just above the lower
// edge of the next opening. It is used by the headless simulator and the
// demo mode of the terminal UI.
type Autopilot struct {
	Margin float64
}

// NewAutopilot creates an autopilot with the default margin.
func NewAutopilot() Autopilot {
	return Autopilot{Margin: DefaultAutopilotMargin}
}

// ShouldJump reports whether a jump should be requested for the given frame.
// With no pair ahead the bird holds the middle of the play area.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	if s.Phase != core.PhaseRunning || s.Bird.Jumping || !s.Bird.Alive {
		return false
	}

	lip := (s.Area.H + s.Gap) / 2
	if p, ok := s.NextPair(); ok {
		lip = s.Area.H - p.BottomHeight
	}
	return s.Bird.Bounds.Bottom()+a.Margin >= lip
}
