// Package storage persists finished rounds in SQLite through the pure-Go
// modernc.org/sqlite driver, so the binary needs no CGO.
//
// A Store is safe for concurrent use; the SSH host shares one across
// sessions.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPreset is recorded for rounds saved without one.
const DefaultPreset = "normal"

const sqliteTime = "2006-01-02 15:04:05"

// migrations[i] moves the schema from user_version i to i+1. Step 0 uses
// IF NOT EXISTS so databases created before versioning pass through it.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`,

	`ALTER TABLE scores ADD COLUMN preset TEXT NOT NULL DEFAULT 'normal';`,
}

// Store holds the scores database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished round.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Preset    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the rounds of one scene.
type GameStats struct {
	GameID     string
	Rounds     int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open opens or creates the database at path, creating parent directories
// and bringing the schema up to date. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: expand %q: %w", path, err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return s, nil
}

// migrate applies every pending step, each in its own transaction.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for ; version < len(migrations); version++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[version]); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", version+1, err)
		}
		// PRAGMA does not take bind parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Version returns the schema version.
func (s *Store) Version() (int, error) {
	var v int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&v)
	return v, err
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished round and returns its row id.
func (s *Store) SaveScore(gameID, preset string, score int) (int64, error) {
	if preset == "" {
		preset = DefaultPreset
	}
	res, err := s.db.Exec("INSERT INTO scores (game_id, preset, score) VALUES (?, ?, ?)", gameID, preset, score)
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: save score: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit rounds of a scene, best first; equal
// scores keep the order they were played in. limit <= 0 means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`SELECT id, game_id, preset, score, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Preset, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: top scores: %w", err)
		}
		e.CreatedAt = sqliteTimeOf(at)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	return out, nil
}

// HighScore returns the best score of a scene, 0 if it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow("SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return best, nil
}

// ClearScores deletes every round of a scene.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: clear scores: %w", err)
	}
	return nil
}

const statsColumns = `game_id, COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)`

// Stats returns the aggregate for one scene. A scene that was never played
// yields zero stats.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	all, err := s.stats("WHERE game_id = ?", gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// AllStats returns the aggregate of every scene that has rounds.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	return s.stats("")
}

func (s *Store) stats(where string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT "+statsColumns+" FROM scores "+where+" GROUP BY game_id", args...)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st   GameStats
			last any
		)
		if err := rows.Scan(&st.GameID, &st.Rounds, &st.HighScore, &st.AvgScore, &last); err != nil {
			return nil, fmt.Errorf("storage: stats: %w", err)
		}
		st.LastPlayed = sqliteTimeOf(last)
		out[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	return out, nil
}

// sqliteTimeOf converts a DATETIME value as the driver hands it back.
func sqliteTimeOf(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
