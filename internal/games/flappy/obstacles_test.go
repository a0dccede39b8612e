package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestField(seed int64) *Field {
	cfg := config.DefaultFlappyConfig()
	return NewField(seed, cfg.Area, cfg.Obstacles)
}

func TestSpawnPairHeights(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		f := newTestField(seed)
		for i := 0; i < 50; i++ {
			p := f.SpawnPair()
			if p.TopHeight+p.BottomHeight+180 != 480 {
				t.Fatalf("seed %d: top %v + bottom %v + gap != 480", seed, p.TopHeight, p.BottomHeight)
			}
			if p.TopHeight < 50 || p.TopHeight > 370 {
				t.Fatalf("seed %d: top height %v outside [50, 370]", seed, p.TopHeight)
			}
			if p.X != 800 {
				t.Fatalf("seed %d: spawned at X=%v, want 800", seed, p.X)
			}
		}
	}
}

func TestSpawnPairFixedSky(t *testing.T) {
	tests := []struct {
		sky        float64
		wantTop    float64
		wantBottom float64
	}{
		{50, 50, 250},
		{0, 50, 250},
		{120, 120, 180},
		{300, 300, 0},
	}

	for _, tt := range tests {
		f := newTestField(1)
		p := f.spawnAt(tt.sky)
		if p.TopHeight != tt.wantTop || p.BottomHeight != tt.wantBottom {
			t.Errorf("spawnAt(%v) = top %v bottom %v, want %v/%v",
				tt.sky, p.TopHeight, p.BottomHeight, tt.wantTop, tt.wantBottom)
		}
	}
}

func TestSpawnPairDeterministic(t *testing.T) {
	a := newTestField(42)
	b := newTestField(42)

	for i := 0; i < 20; i++ {
		pa, pb := a.SpawnPair(), b.SpawnPair()
		if pa != pb {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestFieldAdvance(t *testing.T) {
	f := newTestField(1)
	f.spawnAt(100)
	f.Advance(7)
	f.Advance(7)

	if got := f.Pairs()[0].X; got != 786 {
		t.Errorf("X = %v, want 786", got)
	}
}

func TestFieldReapScoresOncePerPair(t *testing.T) {
	f := newTestField(1)
	f.spawnAt(100)
	f.spawnAt(100)
	f.pairs[0].X = -61 // Fully off screen
	f.pairs[1].X = -60 // Right edge exactly at 0, still visible

	if got := f.Reap(); got != 1 {
		t.Fatalf("Reap() = %d, want 1", got)
	}
	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.Len())
	}
	if got := f.Reap(); got != 0 {
		t.Errorf("second Reap() = %d, want 0", got)
	}

	f.Advance(7)
	if got := f.Reap(); got != 1 {
		t.Errorf("Reap() after advance = %d, want 1", got)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}

func TestFieldCollideWith(t *testing.T) {
	f := newTestField(1)
	f.spawnAt(100) // Top 0..100, bottom 280..480
	f.pairs[0].X = 200

	tests := []struct {
		name string
		r    core.RectF
		want bool
	}{
		{"in gap", core.NewRectF(210, 150, 50, 40), false},
		{"hits top", core.NewRectF(210, 90, 50, 40), true},
		{"hits bottom", core.NewRectF(210, 250, 50, 40), true},
		{"left of pair", core.NewRectF(100, 50, 50, 40), false},
		{"touching left edge", core.NewRectF(150, 50, 50, 40), false},
		{"touching top lip", core.NewRectF(210, 100, 50, 40), false},
		{"touching bottom lip", core.NewRectF(210, 240, 50, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.CollideWith(tt.r); got != tt.want {
				t.Errorf("CollideWith(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFieldClear(t *testing.T) {
	f := newTestField(1)
	f.SpawnPair()
	f.SpawnPair()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", f.Len())
	}
	if f.CollideWith(core.NewRectF(0, 0, 800, 480)) {
		t.Error("empty field should not collide")
	}
}

func TestObstacleRect(t *testing.T) {
	p := Pair{X: 10, Width: 60, TopHeight: 100, BottomHeight: 200}

	top := p.Top().Rect(480)
	if top != core.NewRectF(10, 0, 60, 100) {
		t.Errorf("top rect = %+v", top)
	}
	bottom := p.Bottom().Rect(480)
	if bottom != core.NewRectF(10, 280, 60, 200) {
		t.Errorf("bottom rect = %+v", bottom)
	}
	if p.Bottom().Anchor.String() != "bottom" {
		t.Errorf("anchor = %s, want bottom", p.Bottom().Anchor)
	}
}
