// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird alive by jumping through the openings of
// obstacle pairs that scroll in from the right.
//
// All timing runs on a sched.Scheduler owned by the game: a fall tick, an
// obstacle advance tick and a spawn tick run at independent fixed periods,
// a jump adds a short-lived step timer, and a one-shot timer ends the death
// animation. Step and Advance move that clock forward.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sched"
)

// ID is the identifier used for this game in logs and the CLI.
const ID = "flappy"

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig

	clock  *sched.Scheduler
	timers *sched.Group // Every timer of the current session
	jump   sched.Handle // Step timer of the jump in progress

	bird    *Bird
	field   *Field
	score   int
	phase   core.Phase
	started time.Duration // Clock time the current session began
	spawned int           // Pairs spawned this session

	events []core.Event // Emitted since the last Step/Advance returned
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset discards everything, including pending timers, and starts a fresh
// session on a new clock.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = sched.New()
	g.timers = sched.NewGroup(g.clock)
	g.jump = 0
	g.bird = NewBird(g.cfg.Bird)
	g.field = NewField(runtime.Seed, g.cfg.Area, g.cfg.Obstacles)
	g.events = nil
	g.begin()
}

// begin enters Running with a clean bird, field and score and starts the
// session timers.
func (g *Game) begin() {
	g.bird.Reset()
	g.field.Clear()
	g.score = 0
	g.spawned = 0
	g.phase = core.PhaseRunning
	g.started = g.clock.Now()

	g.timers.Start(g.cfg.Physics.GravityInterval, g.fallTick)
	g.timers.Start(g.cfg.Obstacles.MoveInterval, g.advanceTick)
	g.timers.Start(g.cfg.Obstacles.SpawnInterval, g.spawnTick)
}

// Step applies one frame of input and advances the clock by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionActivate) {
		g.Activate()
	}
	return g.Advance(g.runtime.FrameDuration())
}

// Advance moves the clock forward by dt, running every tick that comes due.
func (g *Game) Advance(dt time.Duration) core.StepResult {
	g.clock.Advance(dt)

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Activate handles the single player input: jump while running, restart
// once the death animation is over, nothing while dying.
func (g *Game) Activate() {
	switch g.phase {
	case core.PhaseRunning:
		g.requestJump()
	case core.PhaseWaitingRestart:
		g.restart()
	}
}

// requestJump starts a jump unless one is already running.
func (g *Game) requestJump() {
	if !g.bird.BeginJump() {
		return
	}
	g.jump = g.timers.Start(g.cfg.Physics.JumpInterval, g.jumpStep)
	g.emit(core.EventJump)
}

// jumpStep moves the bird up one step and disposes of the step timer when
// the jump is complete.
func (g *Game) jumpStep() {
	if g.phase != core.PhaseRunning {
		g.timers.Cancel(g.jump)
		return
	}
	if g.bird.JumpStep(g.cfg.Physics.JumpHeight, g.cfg.Physics.MicroJumps) {
		g.timers.Cancel(g.jump)
		g.jump = 0
	}
	if g.bird.ClampToBounds(g.cfg.Area.Height) {
		g.die()
	}
}

// fallTick applies gravity and checks the floor and ceiling.
func (g *Game) fallTick() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.bird.ApplyGravity(g.cfg.Physics.Gravity)
	if g.bird.ClampToBounds(g.cfg.Area.Height) {
		g.die()
	}
}

// advanceTick scrolls the obstacles, scores the ones that left the field
// and checks the bird against the rest.
func (g *Game) advanceTick() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.field.Advance(g.cfg.Obstacles.Velocity)
	for n := g.field.Reap(); n > 0; n-- {
		g.score++
		g.emit(core.EventScore)
	}
	if g.field.CollideWith(g.bird.Bounds()) {
		g.die()
	}
}

// spawnTick adds a new obstacle pair at the right edge.
func (g *Game) spawnTick() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.field.SpawnPair()
	g.spawned++
	g.emit(core.EventSpawn)
}

// die stops the session and schedules the end of the death animation.
// Safe to call more than once per session.
func (g *Game) die() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.timers.CancelAll()
	g.jump = 0
	g.bird.Kill()
	g.phase = core.PhaseDying
	g.emit(core.EventDeath)

	g.timers.After(g.cfg.DeathDelay, func() {
		if g.phase != core.PhaseDying {
			return
		}
		g.phase = core.PhaseWaitingRestart
		g.emit(core.EventReady)
	})
}

// restart begins a new session on the same clock. Every timer of the old
// session is invalidated before the new ones are created.
func (g *Game) restart() {
	if g.phase != core.PhaseWaitingRestart {
		return
	}
	g.timers.CancelAll()
	g.timers = sched.NewGroup(g.clock)
	g.jump = 0
	g.begin()
	g.emit(core.EventRestart)
}

// emit records an event for the caller of Step/Advance.
func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		At:    g.clock.Now(),
		Score: g.score,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}
