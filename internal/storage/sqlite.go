// Package storage provides SQLite-based persistence for solver run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only results are stored; simulations always start from an empty shaft.
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is a single recorded height computation.
type Run struct {
	ID          int64
	RunID       string // UUID assigned when saved
	PatternHash string // see HashPattern
	PatternLen  int
	Strategy    string
	Pieces      int64
	Height      int64
	Simulated   int64
	CycleStart  int64 // 0 when no cycle was used
	CycleLength int64
	CycleGain   int64
	Verified    bool // height confirmed by brute force
	CreatedAt   time.Time
}

// PatternStats contains aggregated statistics for one jet pattern.
type PatternStats struct {
	PatternHash string
	Runs        int
	MaxPieces   int64
	MaxHeight   int64
	LastRun     time.Time
}

// HashPattern returns a stable identifier for a jet pattern.
func HashPattern(pattern string) string {
	sum := sha256.Sum256([]byte(pattern))
	return hex.EncodeToString(sum[:8])
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			pattern_hash TEXT NOT NULL,
			pattern_len INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			pieces INTEGER NOT NULL,
			height INTEGER NOT NULL,
			simulated INTEGER NOT NULL DEFAULT 0,
			cycle_start INTEGER NOT NULL DEFAULT 0,
			cycle_length INTEGER NOT NULL DEFAULT 0,
			cycle_gain INTEGER NOT NULL DEFAULT 0,
			verified INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern_hash, pieces);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a run. A RunID is generated when r.RunID is empty.
// Returns the stored run with ID and RunID filled in.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, pattern_hash, pattern_len, strategy, pieces, height, simulated,
		  cycle_start, cycle_length, cycle_gain, verified)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.PatternHash,
		r.PatternLen,
		r.Strategy,
		r.Pieces,
		r.Height,
		r.Simulated,
		r.CycleStart,
		r.CycleLength,
		r.CycleGain,
		r.Verified,
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id

	return r, nil
}

const runColumns = `id, run_id, pattern_hash, pattern_len, strategy, pieces, height,
		        simulated, cycle_start, cycle_length, cycle_gain, verified, created_at`

// RecentRuns retrieves the most recent runs across all patterns.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunsForPattern retrieves runs for one pattern, largest piece count first.
func (s *Store) RunsForPattern(patternHash string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE pattern_hash = ?
		 ORDER BY pieces DESC, id DESC
		 LIMIT ?`,
		patternHash, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pattern runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RunByID retrieves a run by its RunID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// PatternStats retrieves aggregated statistics for one pattern.
func (s *Store) PatternStats(patternHash string) (*PatternStats, error) {
	stats := &PatternStats{PatternHash: patternHash}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(pieces), 0), COALESCE(MAX(height), 0)
		 FROM runs WHERE pattern_hash = ?`,
		patternHash,
	).Scan(&stats.Runs, &stats.MaxPieces, &stats.MaxHeight)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pattern stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE pattern_hash = ? ORDER BY created_at DESC LIMIT 1`,
		patternHash,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given pattern.
func (s *Store) ClearRuns(patternHash string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE pattern_hash = ?", patternHash)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.PatternHash,
			&r.PatternLen,
			&r.Strategy,
			&r.Pieces,
			&r.Height,
			&r.Simulated,
			&r.CycleStart,
			&r.CycleLength,
			&r.CycleGain,
			&r.Verified,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
