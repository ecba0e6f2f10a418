// Package storage provides SQLite-based persistence for finished ski runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunResult is what the host reports when a run ends.
type RunResult struct {
	Level    string
	Score    int
	Distance float64
	Elapsed  time.Duration
}

// RunEntry is a stored run.
type RunEntry struct {
	ID        int64
	RunID     string
	Level     string
	Score     int
	Distance  float64
	Elapsed   time.Duration
	CreatedAt time.Time
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
			level TEXT NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level, score DESC, distance DESC);
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

// SaveRun records a finished run and reports whether it beats the previous
// best score for its level. The first run of a level is always a new best.
func (s *Store) SaveRun(r RunResult) (runID string, newBest bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var best sql.NullInt64
	if err := tx.QueryRow("SELECT MAX(score) FROM runs WHERE level = ?", r.Level).Scan(&best); err != nil {
		return "", false, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	runID = uuid.NewString()
	_, err = tx.Exec(
		"INSERT INTO runs (run_id, level, score, distance, elapsed_ms) VALUES (?, ?, ?, ?, ?)",
		runID, r.Level, r.Score, r.Distance, r.Elapsed.Milliseconds(),
	)
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot save run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	return runID, !best.Valid || int64(r.Score) > best.Int64, nil
}

// BestRun returns the highest-scoring run for the level, breaking ties by
// distance. Returns nil, nil when the level has no runs.
func (s *Store) BestRun(level string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, level, score, distance, elapsed_ms, created_at
		 FROM runs
		 WHERE level = ?
		 ORDER BY score DESC, distance DESC, id ASC
		 LIMIT 1`,
		level,
	)

	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return e, nil
}

// RunByID looks up a run by its UUID. Returns nil, nil if not found.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, level, score, distance, elapsed_ms, created_at
		 FROM runs WHERE run_id = ?`,
		runID,
	)

	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return e, nil
}

// TopRuns retrieves the top N runs for the level.
// Results are ordered by score, then distance, descending.
func (s *Store) TopRuns(level string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level, score, distance, elapsed_ms, created_at
		 FROM runs
		 WHERE level = ?
		 ORDER BY score DESC, distance DESC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(level string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats holds aggregated statistics for one level.
type LevelStats struct {
	Level         string
	RunsCount     int
	BestScore     int
	AvgScore      float64
	LongestRun    float64
	TotalDistance float64
	LastPlayed    time.Time
}

// GetLevelStats retrieves aggregated statistics for a level.
func (s *Store) GetLevelStats(level string) (*LevelStats, error) {
	stats := &LevelStats{Level: level}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(distance), 0), COALESCE(SUM(distance), 0), MAX(created_at)
		 FROM runs WHERE level = ?`,
		level,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore,
		&stats.LongestRun, &stats.TotalDistance, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level that has been played.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MAX(score), AVG(score), MAX(distance), SUM(distance), MAX(created_at)
		 FROM runs
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.Level, &ls.RunsCount, &ls.BestScore, &ls.AvgScore,
			&ls.LongestRun, &ls.TotalDistance, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.Level] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*RunEntry, error) {
	var e RunEntry
	var elapsedMS int64
	var createdAt any
	if err := row.Scan(&e.ID, &e.RunID, &e.Level, &e.Score, &e.Distance, &elapsedMS, &createdAt); err != nil {
		return nil, err
	}
	e.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
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
