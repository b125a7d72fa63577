// Package storage provides SQLite-based persistence for player profiles
// and run results. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Profile is a named player with aggregated run statistics.
type Profile struct {
	Name         string
	CreatedAt    time.Time
	GamesPlayed  int
	BestScore    int
	HighestLevel int
}

// ScoreEntry represents a single recorded run.
type ScoreEntry struct {
	ID           int64
	Profile      string
	Score        int
	LevelReached int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			games_played INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			highest_level INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_profile ON scores(profile);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateProfile adds a profile if it doesn't exist already.
func (s *Store) CreateProfile(name string) error {
	if name == "" {
		return fmt.Errorf("storage: profile name is empty")
	}
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO profiles (name) VALUES (?)", name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot create profile: %w", err)
	}
	return nil
}

// Profile retrieves a profile by name. Returns nil if it doesn't exist.
func (s *Store) Profile(name string) (*Profile, error) {
	var p Profile
	var createdAt any

	err := s.db.QueryRow(
		`SELECT name, created_at, games_played, best_score, highest_level
		 FROM profiles WHERE name = ?`,
		name,
	).Scan(&p.Name, &createdAt, &p.GamesPlayed, &p.BestScore, &p.HighestLevel)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	p.CreatedAt = parseDatetime(createdAt)
	return &p, nil
}

// Profiles retrieves all profiles, most recently created first.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query(
		`SELECT name, created_at, games_played, best_score, highest_level
		 FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var createdAt any
		if err := rows.Scan(&p.Name, &createdAt, &p.GamesPlayed, &p.BestScore, &p.HighestLevel); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseDatetime(createdAt)
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return profiles, nil
}

// RecordResult records a finished run for the profile and updates the
// profile's aggregates. The profile is created on first use.
func (s *Store) RecordResult(profile string, score, levelReached int) (int64, error) {
	if err := s.CreateProfile(profile); err != nil {
		return 0, err
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (profile, score, level_reached) VALUES (?, ?, ?)",
		profile, score, levelReached,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	_, err = s.db.Exec(
		`UPDATE profiles
		 SET games_played = games_played + 1,
		     best_score = MAX(best_score, ?),
		     highest_level = MAX(highest_level, ?)
		 WHERE name = ?`,
		score, levelReached, profile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot update profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N runs across all profiles, ordered by
// score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, score, level_reached, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// ProfileScores retrieves the top N runs for one profile.
func (s *Store) ProfileScores(profile string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, score, level_reached, created_at
		 FROM scores
		 WHERE profile = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// HighScore returns the highest recorded score across all profiles.
// Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all recorded runs for the given profile.
func (s *Store) ClearScores(profile string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// scanScores drains a scores result set.
func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Score, &e.LevelReached, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseDatetime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseDatetime handles the driver returning either time.Time or string.
func parseDatetime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
