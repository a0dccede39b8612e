package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the terminal program.
type Options struct {
	// Logger receives game events. Defaults to a discarding logger.
	Logger *log.Logger

	// Pilot, when set, is consulted every frame; returning true activates
	// as if the player had pressed the key.
	Pilot func() bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	history    *History
	logger     *log.Logger
	pilot      func() bool
	started    time.Duration // Simulated time the current session began
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       h,
		history:    NewHistory(),
		logger:     logger,
		pilot:      opts.Pilot,
	}
}

// playHeight returns the rows left for the game after the help footer.
func playHeight(screenH int) int {
	return core.Max(screenH-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.mapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "runs", m.history.Len(), "best", m.history.Best())
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The game scales its play
// area to the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pilot != nil && m.pilot() {
		m.inputFrame.Set(core.ActionActivate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordEvents logs game events and keeps the run history current.
func (m *Model) recordEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventJump, core.EventSpawn, core.EventReady:
			m.logger.Debug(e.Kind.String(), "at", e.At, "score", e.Score)
		case core.EventScore:
			m.logger.Info("score", "score", e.Score)
		case core.EventDeath:
			run := m.history.Add(e.Score, e.At-m.started)
			m.logger.Info("game over", "run", run.Number, "score", run.Score, "survived", run.Survived, "best", m.history.Best())
		case core.EventRestart:
			m.started = e.At
			m.logger.Info("restart", "run", m.history.Len()+1)
		}
	}
}

// History returns the runs finished in this program.
func (m Model) History() *History {
	return m.history
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.gameState.Phase == core.PhaseWaitingRestart {
		body = renderResults(m.gameState.Score, m.history, m.screen.Width(), m.screen.Height())
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
