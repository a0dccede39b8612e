package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BirdView is the presentation-facing copy of the bird.
type BirdView struct {
	Bounds  core.RectF
	Jumping bool
	Alive   bool
}

// Snapshot is a read-only copy of everything a presentation layer needs to
// paint one frame. It shares no memory with the game.
type Snapshot struct {
	Elapsed   time.Duration // Time since the current session began
	Phase     core.Phase
	Score     int
	Spawned   int // Pairs spawned this session
	Bird      BirdView
	Pairs     []Pair
	Obstacles []Obstacle // Top then bottom of every pair, left to right
	Area      core.RectF
	Gap       float64
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	pairs := g.field.Pairs()
	s := Snapshot{
		Elapsed: g.clock.Now() - g.started,
		Phase:   g.phase,
		Score:   g.score,
		Spawned: g.spawned,
		Bird: BirdView{
			Bounds:  g.bird.Bounds(),
			Jumping: g.bird.Jumping,
			Alive:   g.bird.Alive,
		},
		Pairs:     make([]Pair, len(pairs)),
		Obstacles: make([]Obstacle, 0, 2*len(pairs)),
		Area:      core.NewRectF(0, 0, g.cfg.Area.Width, g.cfg.Area.Height),
		Gap:       g.cfg.Obstacles.Gap,
	}
	copy(s.Pairs, pairs)
	for _, p := range pairs {
		s.Obstacles = append(s.Obstacles, p.Top(), p.Bottom())
	}
	return s
}

// NextPair returns the first pair whose right edge is not yet behind the
// bird's left edge.
func (s Snapshot) NextPair() (Pair, bool) {
	for _, p := range s.Pairs {
		if p.X+p.Width >= s.Bird.Bounds.X {
			return p, true
		}
	}
	return Pair{}, false
}
