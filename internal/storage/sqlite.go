// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-guess/internal/match"
)

// timeLayout is how SQLite's CURRENT_TIMESTAMP renders datetimes.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one stored match.
type MatchRecord struct {
	ID         int64
	MatchID    string
	Mode       string
	SourceX    string
	SourceO    string
	Faces      int
	Secret     int
	ChoiceX    int
	ChoiceO    int
	Outcome    int
	Winner     string // Empty on a tie
	DurationMS int64
	CreatedAt  time.Time
}

// Stats contains aggregated results over all stored matches.
type Stats struct {
	Matches    int
	XWins      int
	OWins      int
	Ties       int
	ExactX     int // Matches where X hit the secret
	ExactO     int // Matches where O hit the secret
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			source_x TEXT NOT NULL DEFAULT '',
			source_o TEXT NOT NULL DEFAULT '',
			faces INTEGER NOT NULL,
			secret INTEGER NOT NULL,
			choice_x INTEGER NOT NULL,
			choice_o INTEGER NOT NULL,
			outcome INTEGER NOT NULL,
			winner TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r MatchRecord) (int64, error) {
	var winner sql.NullString
	if r.Winner != "" {
		winner = sql.NullString{String: r.Winner, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, mode, source_x, source_o, faces, secret, choice_x, choice_o, outcome, winner, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Mode, r.SourceX, r.SourceO,
		r.Faces, r.Secret, r.ChoiceX, r.ChoiceO, r.Outcome,
		winner, r.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectMatch = `SELECT id, match_id, mode, source_x, source_o, faces, secret,
		        choice_x, choice_o, outcome, winner, duration_ms, created_at
		 FROM matches`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var r MatchRecord
	var winner sql.NullString
	var createdAt any

	if err := row.Scan(
		&r.ID, &r.MatchID, &r.Mode, &r.SourceX, &r.SourceO, &r.Faces, &r.Secret,
		&r.ChoiceX, &r.ChoiceO, &r.Outcome, &winner, &r.DurationMS, &createdAt,
	); err != nil {
		return r, err
	}

	if winner.Valid {
		r.Winner = winner.String
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	r, err := scanMatch(s.db.QueryRow(selectMatch+` WHERE match_id = ?`, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(selectMatch+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		r, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats aggregates results over all stored matches.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome > 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome < 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN choice_x = secret THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN choice_o = secret THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.XWins, &stats.OWins, &stats.Ties, &stats.ExactX, &stats.ExactO, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearMatches deletes all stored matches.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// SaveMatchResult implements match.ResultSaver.
func (s *Store) SaveMatchResult(r match.Result) error {
	_, err := s.SaveMatch(MatchRecord{
		MatchID:    string(r.ID),
		Mode:       r.Mode.String(),
		SourceX:    r.SourceX,
		SourceO:    r.SourceO,
		Faces:      r.Final.Faces,
		Secret:     int(r.Final.Secret),
		ChoiceX:    int(r.Final.ChoiceX),
		ChoiceO:    int(r.Final.ChoiceO),
		Outcome:    r.Final.Outcome,
		Winner:     string(r.Winner),
		DurationMS: r.Duration.Milliseconds(),
	})
	return err
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)

// WinnerLabel renders a stored winner for display.
func WinnerLabel(winner string) string {
	if winner == "" {
		return "tie"
	}
	return winner
}
