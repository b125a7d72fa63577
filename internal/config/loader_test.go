package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMazeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `rules:
  initial_lives: 5
input:
  method: tilt
  tilt:
    deadzone_deg: 12.0
levels:
  dir: /tmp/packs
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	if cfg.Rules.InitialLives != 5 {
		t.Errorf("InitialLives = %d, want 5", cfg.Rules.InitialLives)
	}
	if cfg.Input.Method != "tilt" {
		t.Errorf("Method = %q, want tilt", cfg.Input.Method)
	}
	if cfg.Input.Tilt.DeadzoneDeg != 12.0 {
		t.Errorf("DeadzoneDeg = %v, want 12.0", cfg.Input.Tilt.DeadzoneDeg)
	}
	if cfg.Levels.Dir != "/tmp/packs" {
		t.Errorf("Levels.Dir = %q", cfg.Levels.Dir)
	}

	// Fields the file omitted come from the defaults.
	if cfg.Rules.CollectiblePoints != 100 {
		t.Errorf("CollectiblePoints = %d, want 100", cfg.Rules.CollectiblePoints)
	}
	if cfg.Input.Tilt.Smoothing != 0.25 {
		t.Errorf("Smoothing = %v, want 0.25", cfg.Input.Tilt.Smoothing)
	}
}

func TestLoadMazeMissingCustomPath(t *testing.T) {
	if _, err := LoadMaze("/nonexistent/maze.yaml"); err == nil {
		t.Error("LoadMaze accepted a missing explicit config path")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if len(GetDefaultYAML()) == 0 {
		t.Fatal("embedded default YAML is empty")
	}

	// The embedded YAML and the hardcoded fallback must agree.
	cfg, err := LoadMaze("")
	if err != nil {
		t.Fatalf("LoadMaze: %v", err)
	}
	def := DefaultMazeConfig()
	if cfg.Rules != def.Rules {
		t.Errorf("embedded rules %+v differ from defaults %+v", cfg.Rules, def.Rules)
	}
	if cfg.Input != def.Input {
		t.Errorf("embedded input %+v differs from defaults %+v", cfg.Input, def.Input)
	}
}

func TestNormalizeFillsZeroFields(t *testing.T) {
	var cfg MazeConfig
	cfg.Normalize()

	def := DefaultMazeConfig()
	if cfg.Rules != def.Rules {
		t.Errorf("normalized rules %+v, want %+v", cfg.Rules, def.Rules)
	}
	if cfg.Input.Method != "keyboard" {
		t.Errorf("Method = %q, want keyboard", cfg.Input.Method)
	}
}
