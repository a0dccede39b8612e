package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled entity. It only moves vertically.
type Bird struct {
	X, Y          float64 // Top-left corner in play-area units
	Width, Height float64
	Jumping       bool // A jump impulse is in progress
	JumpSteps     int  // Steps already taken by the current jump
	Alive         bool

	initialY float64
}

// NewBird creates a live bird at its configured starting position.
func NewBird(cfg config.FlappyBird) *Bird {
	b := &Bird{
		X:        cfg.X,
		Width:    cfg.Width,
		Height:   cfg.Height,
		initialY: cfg.InitialY,
	}
	b.Reset()
	return b
}

// Reset puts the bird back at its starting position, alive and not jumping.
func (b *Bird) Reset() {
	b.Y = b.initialY
	b.Jumping = false
	b.JumpSteps = 0
	b.Alive = true
}

// ApplyGravity moves the bird down by one tick's worth of fall.
func (b *Bird) ApplyGravity(gravity float64) {
	b.Y += gravity
}

// BeginJump starts a jump impulse. It is a no-op returning false while a
// jump is already running or the bird is dead.
func (b *Bird) BeginJump() bool {
	if b.Jumping || !b.Alive {
		return false
	}
	b.Jumping = true
	b.JumpSteps = 0
	return true
}

// JumpStep moves the bird up by one step of the current jump.
// Returns true when this was the last of steps and the jump is over.
func (b *Bird) JumpStep(height float64, steps int) bool {
	if !b.Jumping {
		return true
	}
	b.Y -= height
	b.JumpSteps++
	if b.JumpSteps >= steps {
		b.Jumping = false
		return true
	}
	return false
}

// ClampToBounds keeps the bird inside the play area.
// Touching the floor is fatal and reported as true; the ceiling only stops
// the bird.
func (b *Bird) ClampToBounds(areaHeight float64) (fatal bool) {
	floor := areaHeight - b.Height
	if b.Y >= floor {
		b.Y = floor
		return true
	}
	if b.Y <= 0 {
		b.Y = 0
	}
	return false
}

// Kill marks the bird dead and aborts any jump in progress.
func (b *Bird) Kill() {
	b.Alive = false
	b.Jumping = false
}

// Bounds returns the bird's collision rectangle.
func (b *Bird) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}
