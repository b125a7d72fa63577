package levels

import (
	"os"
	"path/filepath"
	"testing"
)

const validLevel = `name: Test Hallway
rows:
  - "WWWWW"
  - "WP EW"
  - "WWWWW"
collectibles:
  - {x: 2, y: 1}
time_limit: 45
`

const noExitLevel = `name: Broken
rows:
  - "WWWW"
  - "WP W"
  - "WWWW"
time_limit: 30
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hallway.yaml", validLevel)

	level, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if level.Name != "Test Hallway" {
		t.Errorf("Name = %q", level.Name)
	}
	if level.TimeLimit != 45 {
		t.Errorf("TimeLimit = %d, want 45", level.TimeLimit)
	}
	if len(level.Collectibles) != 1 || level.Collectibles[0].X != 2 || level.Collectibles[0].Y != 1 {
		t.Errorf("Collectibles = %v", level.Collectibles)
	}
	if _, err := level.Compile(); err != nil {
		t.Errorf("loaded level does not compile: %v", err)
	}
}

func TestLoadFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "minimal.yml", "rows:\n  - \"PE\"\n")

	level, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	// Name falls back to the file name, time limit to the default.
	if level.Name != "minimal" {
		t.Errorf("Name = %q, want minimal", level.Name)
	}
	if level.TimeLimit != 60 {
		t.Errorf("TimeLimit = %d, want 60", level.TimeLimit)
	}
}

func TestLoadFileRejectsUnplayableLevel(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", noExitLevel)

	if _, err := NewLoader(dir).LoadFile(path); err == nil {
		t.Error("LoadFile accepted a level with no exit")
	}
}

func TestLoadAllSortsAndSkips(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "02-second.yaml", "name: Second\nrows:\n  - \"PE\"\n")
	writeFile(t, dir, "01-first.yaml", "name: First\nrows:\n  - \"PE\"\n")
	writeFile(t, dir, "broken.yaml", noExitLevel)
	writeFile(t, dir, "notes.txt", "not a level")

	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("LoadAll returned %d levels, want 2", len(levels))
	}
	if levels[0].Name != "First" || levels[1].Name != "Second" {
		t.Errorf("order = [%s, %s], want [First, Second]", levels[0].Name, levels[1].Name)
	}
}

func TestValidateReportsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", validLevel)
	bad := writeFile(t, dir, "broken.yaml", noExitLevel)

	problems, err := NewLoader(dir).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("Validate found %d problems, want 1: %v", len(problems), problems)
	}
	if _, ok := problems[bad]; !ok {
		t.Errorf("Validate missed %s", bad)
	}
}
