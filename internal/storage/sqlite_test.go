package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestProfileLifecycle(t *testing.T) {
	store := openStore(t)

	// Missing profile reads as nil, not an error.
	p, err := store.Profile("nobody")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p != nil {
		t.Errorf("Profile(nobody) = %+v, want nil", p)
	}

	if err := store.CreateProfile("alice"); err != nil {
		t.Fatalf("CreateProfile() failed: %v", err)
	}
	// Creating twice is a no-op.
	if err := store.CreateProfile("alice"); err != nil {
		t.Fatalf("CreateProfile() second call failed: %v", err)
	}

	p, err = store.Profile("alice")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p == nil || p.Name != "alice" || p.GamesPlayed != 0 {
		t.Errorf("Profile(alice) = %+v", p)
	}

	if err := store.CreateProfile(""); err == nil {
		t.Error("CreateProfile accepted an empty name")
	}
}

func TestRecordResultUpdatesAggregates(t *testing.T) {
	store := openStore(t)

	// First result creates the profile implicitly.
	if _, err := store.RecordResult("bob", 700, 3); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if _, err := store.RecordResult("bob", 400, 5); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	p, err := store.Profile("bob")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", p.GamesPlayed)
	}
	if p.BestScore != 700 {
		t.Errorf("BestScore = %d, want 700", p.BestScore)
	}
	if p.HighestLevel != 5 {
		t.Errorf("HighestLevel = %d, want 5", p.HighestLevel)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store := openStore(t)

	store.RecordResult("alice", 100, 1)
	store.RecordResult("bob", 300, 4)
	store.RecordResult("alice", 200, 2)

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[1].Score != 200 || scores[2].Score != 100 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Profile != "bob" {
		t.Errorf("Top profile = %q, want bob", scores[0].Profile)
	}
	if scores[0].LevelReached != 4 {
		t.Errorf("Top LevelReached = %d, want 4", scores[0].LevelReached)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.RecordResult("alice", (i+1)*100, i+1)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestProfileScores(t *testing.T) {
	store := openStore(t)

	store.RecordResult("alice", 100, 1)
	store.RecordResult("bob", 900, 9)
	store.RecordResult("alice", 250, 2)

	scores, err := store.ProfileScores("alice", 10)
	if err != nil {
		t.Fatalf("ProfileScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 alice scores, got %d", len(scores))
	}
	if scores[0].Score != 250 {
		t.Errorf("Top alice score = %d, want 250", scores[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 on empty store, got %d", high)
	}

	store.RecordResult("alice", 100, 1)
	store.RecordResult("bob", 300, 3)
	store.RecordResult("alice", 200, 2)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openStore(t)

	store.RecordResult("alice", 100, 1)
	store.RecordResult("alice", 200, 2)
	store.RecordResult("bob", 300, 3)

	if err := store.ClearScores("alice"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	aliceScores, _ := store.ProfileScores("alice", 10)
	if len(aliceScores) != 0 {
		t.Errorf("Expected 0 alice scores after clear, got %d", len(aliceScores))
	}
	bobScores, _ := store.ProfileScores("bob", 10)
	if len(bobScores) != 1 {
		t.Errorf("Bob's scores should not be affected by clearing alice's")
	}
}

func TestProfilesList(t *testing.T) {
	store := openStore(t)

	store.CreateProfile("alice")
	store.CreateProfile("bob")

	profiles, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("Expected 2 profiles, got %d", len(profiles))
	}
}
