package core

import (
	"testing"
	"time"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{100, 10 * time.Millisecond},
		{0, time.Second / 60}, // falls back to the default rate
	}
	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.FrameDuration(); got != tc.want {
			t.Errorf("FrameDuration() with rate %d = %v, want %v", tc.rate, got, tc.want)
		}
	}
}

func TestGameStateGameOver(t *testing.T) {
	tests := []struct {
		phase Phase
		want  bool
	}{
		{PhaseRunning, false},
		{PhaseDying, true},
		{PhaseWaitingRestart, true},
	}
	for _, tc := range tests {
		s := GameState{Phase: tc.phase}
		if got := s.GameOver(); got != tc.want {
			t.Errorf("GameOver() in %s = %v, want %v", tc.phase, got, tc.want)
		}
	}
}
