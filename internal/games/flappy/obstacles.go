package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Anchor tells which edge of the play area an obstacle hangs from.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
)

// String returns "top" or "bottom".
func (a Anchor) String() string {
	if a == AnchorTop {
		return "top"
	}
	return "bottom"
}

// Obstacle is one half of a pair.
type Obstacle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
	Anchor Anchor
}

// Rect returns the obstacle's collision rectangle in an area of the given height.
func (o Obstacle) Rect(areaHeight float64) core.RectF {
	if o.Anchor == AnchorTop {
		return core.NewRectF(o.X, 0, o.Width, o.Height)
	}
	return core.NewRectF(o.X, areaHeight-o.Height, o.Width, o.Height)
}

// Pair is a top and a bottom obstacle sharing a horizontal position, with a
// fixed gap between them.
type Pair struct {
	ID           uint64
	X            float64 // Left edge of both obstacles
	Width        float64
	TopHeight    float64
	BottomHeight float64
}

// Top returns the obstacle hanging from the ceiling.
func (p Pair) Top() Obstacle {
	return Obstacle{X: p.X, Width: p.Width, Height: p.TopHeight, Anchor: AnchorTop}
}

// Bottom returns the obstacle standing on the floor.
func (p Pair) Bottom() Obstacle {
	return Obstacle{X: p.X, Width: p.Width, Height: p.BottomHeight, Anchor: AnchorBottom}
}

// Field handles spawning, movement, scoring and removal of obstacle pairs.
// Pairs are kept in spawn order, which is also left-to-right order because
// every pair moves at the same speed.
type Field struct {
	pairs  []Pair
	rng    *rand.Rand
	cfg    config.FlappyObstacles
	areaW  float64
	areaH  float64
	nextID uint64
}

// NewField creates an empty field with the given RNG seed.
func NewField(seed int64, area config.FlappyArea, cfg config.FlappyObstacles) *Field {
	f := &Field{
		pairs: make([]Pair, 0, 4),
		cfg:   cfg,
		areaW: area.Width,
		areaH: area.Height,
	}
	f.Reset(seed)
	return f
}

// Reset clears all pairs and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.Clear()
	f.rng = rand.New(rand.NewSource(seed))
}

// SpawnPair appends a new pair at the right edge of the field.
// The top height is drawn uniformly from the whole pixels in
// [0, areaHeight-gap] and then clamped into [MinSky, MaxSky]; the clamp
// bounds are fixed, so unusual area sizes get lopsided openings.
func (f *Field) SpawnPair() Pair {
	span := int(f.areaH - f.cfg.Gap)
	sky := 0.0
	if span > 0 {
		sky = float64(f.rng.Intn(span + 1))
	}
	return f.spawnAt(sky)
}

// spawnAt appends a pair whose top obstacle is sky high (before clamping).
func (f *Field) spawnAt(sky float64) Pair {
	sky = core.ClampF(sky, f.cfg.MinSky, f.cfg.MaxSky)

	f.nextID++
	p := Pair{
		ID:           f.nextID,
		X:            f.areaW,
		Width:        f.cfg.Width,
		TopHeight:    sky,
		BottomHeight: f.areaH - sky - f.cfg.Gap,
	}
	f.pairs = append(f.pairs, p)
	return p
}

// Advance moves every pair left by velocity.
func (f *Field) Advance(velocity float64) {
	for i := range f.pairs {
		f.pairs[i].X -= velocity
	}
}

// CollideWith reports whether r overlaps any obstacle.
func (f *Field) CollideWith(r core.RectF) bool {
	for _, p := range f.pairs {
		if r.Intersects(p.Top().Rect(f.areaH)) || r.Intersects(p.Bottom().Rect(f.areaH)) {
			return true
		}
	}
	return false
}

// Reap removes pairs that are fully off the left edge and returns the
// points earned, one per removed pair. Both obstacles of a pair leave
// together, so a pair can never be counted twice or skipped.
func (f *Field) Reap() int {
	points := 0
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if p.X < -p.Width {
			points++
			continue
		}
		kept = append(kept, p)
	}
	f.pairs = kept
	return points
}

// Clear removes all pairs.
func (f *Field) Clear() {
	f.pairs = f.pairs[:0]
}

// Pairs returns the active pairs in left-to-right order.
// The slice is owned by the field and must not be modified.
func (f *Field) Pairs() []Pair {
	return f.pairs
}

// Len returns the number of active pairs.
func (f *Field) Len() int {
	return len(f.pairs)
}
