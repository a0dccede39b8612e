package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Fatalf("DefaultFlappyConfig() should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseFlappy(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded YAML differs from DefaultFlappyConfig():\n got %+v\nwant %+v", cfg, DefaultFlappyConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero gravity interval", func(c *FlappyConfig) { c.Physics.GravityInterval = 0 }, "gravity_interval"},
		{"zero jump interval", func(c *FlappyConfig) { c.Physics.JumpInterval = 0 }, "jump_interval"},
		{"no micro jumps", func(c *FlappyConfig) { c.Physics.MicroJumps = 0 }, "micro_jumps"},
		{"zero spawn interval", func(c *FlappyConfig) { c.Obstacles.SpawnInterval = 0 }, "spawn_interval"},
		{"gap taller than area", func(c *FlappyConfig) { c.Obstacles.Gap = 500 }, "gap"},
		{"gap smaller than bird", func(c *FlappyConfig) { c.Obstacles.Gap = 30 }, "exceed bird height"},
		{"inverted sky range", func(c *FlappyConfig) { c.Obstacles.MinSky, c.Obstacles.MaxSky = 200, 100 }, "sky range"},
		{"min sky leaves no floor", func(c *FlappyConfig) { c.Obstacles.MinSky = 301 }, "min_sky"},
		{"bird below floor", func(c *FlappyConfig) { c.Bird.InitialY = 450 }, "initial_y"},
		{"no death delay", func(c *FlappyConfig) { c.DeathDelay = 0 }, "death_delay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 2.5\n  gravity_interval: 20ms\nobstacles:\n  spawn_interval: 1500ms\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Physics.Gravity != 2.5 {
		t.Errorf("Gravity = %g, expected 2.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.GravityInterval != 20*time.Millisecond {
		t.Errorf("GravityInterval = %s, expected 20ms", cfg.Physics.GravityInterval)
	}
	if cfg.Obstacles.SpawnInterval != 1500*time.Millisecond {
		t.Errorf("SpawnInterval = %s, expected 1.5s", cfg.Obstacles.SpawnInterval)
	}
	// Keys absent from the file keep their defaults
	if cfg.Obstacles.Gap != 180 {
		t.Errorf("Gap = %g, expected default 180", cfg.Obstacles.Gap)
	}
}

func TestLoadFlappyErrors(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFlappy() with a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("LoadFlappy() with malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  gap: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(invalid); err == nil {
		t.Error("LoadFlappy() should report validation errors")
	}
}

func TestLoadFlappyFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy(\"\") failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadFlappyUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, userDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "flappy.yaml"), []byte("death_delay: 1s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy(\"\") failed: %v", err)
	}
	if cfg.DeathDelay != time.Second {
		t.Errorf("DeathDelay = %s, expected 1s from user config", cfg.DeathDelay)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "gravity_interval: 10ms") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}
	cfg, err := parseFlappy(data)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("round trip changed the config: %+v", cfg)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
