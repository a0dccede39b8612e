// Package sim runs game sessions headlessly on the virtual clock, without
// a terminal. It is used for balancing and for reproducing runs by seed.
package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options controls a simulation batch.
type Options struct {
	Runs      int           // Sessions to play
	Duration  time.Duration // Maximum simulated time per session
	TickRate  int           // Frames per simulated second
	Seed      int64         // Seed of the first run; run i uses Seed+i
	JumpEvery int           // Jump every N frames; 0 uses the autopilot
	Logger    *log.Logger
}

// Result summarizes one simulated session.
type Result struct {
	Run      int
	Seed     int64
	Score    int
	Survived time.Duration
	Died     bool
	Spawned  int
	Jumps    int
}

// Run plays opts.Runs sessions of the game and returns one result per run.
func Run(cfg config.FlappyConfig, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("sim: runs must be positive, got %d", opts.Runs)
	}
	if opts.Duration <= 0 {
		return nil, fmt.Errorf("sim: duration must be positive, got %s", opts.Duration)
	}
	if opts.JumpEvery < 0 {
		return nil, fmt.Errorf("sim: jump-every must not be negative, got %d", opts.JumpEvery)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, 0, opts.Runs)
	for i := 0; i < opts.Runs; i++ {
		r := runOne(cfg, opts, i, logger.With("run", i+1))
		logger.Info("run finished",
			"run", r.Run, "seed", r.Seed, "score", r.Score,
			"survived", r.Survived, "died", r.Died)
		results = append(results, r)
	}
	return results, nil
}

func runOne(cfg config.FlappyConfig, opts Options, i int, logger *log.Logger) Result {
	rt := core.DefaultConfig()
	if opts.TickRate > 0 {
		rt.TickRate = opts.TickRate
	}
	rt.Seed = opts.Seed + int64(i)

	g := flappy.New(cfg)
	g.Reset(rt)
	pilot := flappy.NewAutopilot()

	r := Result{Run: i + 1, Seed: rt.Seed}
	frame := rt.FrameDuration()
	in := core.NewInputFrame()

	for f := 0; time.Duration(f)*frame < opts.Duration; f++ {
		in.Clear()
		if shouldJump(g, pilot, opts.JumpEvery, f) {
			in.Set(core.ActionActivate)
		}

		res := g.Step(in)
		r.Score = res.State.Score
		r.Survived = time.Duration(f+1) * frame

		for _, e := range res.Events {
			switch e.Kind {
			case core.EventJump:
				r.Jumps++
			case core.EventScore:
				logger.Debug("score", "at", e.At, "score", e.Score)
			case core.EventDeath:
				r.Died = true
				r.Survived = e.At
				logger.Debug("death", "at", e.At, "score", e.Score)
			}
		}
		if r.Died {
			break
		}
	}

	r.Spawned = g.Snapshot().Spawned
	return r
}

func shouldJump(g *flappy.Game, pilot flappy.Autopilot, every, frame int) bool {
	if every > 0 {
		return frame%every == 0
	}
	return pilot.ShouldJump(g.Snapshot())
}

// Summary aggregates a batch of results.
type Summary struct {
	Runs      int
	Deaths    int
	BestScore int
	MeanScore float64
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		total += r.Score
		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		if r.Died {
			s.Deaths++
		}
	}
	s.MeanScore = float64(total) / float64(len(results))
	return s
}
