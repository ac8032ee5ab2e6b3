// Package storage keeps the solve history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The score file (internal/scores) keeps the first win per level; this
// database keeps every win, repeat solves included.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the solve history.
type Store struct {
	db *sql.DB
}

// Solve is one completed level.
type Solve struct {
	ID        int64
	Level     int // 0-based level index
	Moves     int
	Pushes    int
	Elapsed   int // seconds
	Undos     int
	CreatedAt time.Time
}

// LevelStats aggregates the solves of one level.
type LevelStats struct {
	Level      int
	Solves     int
	Best       Solve // as returned by Best
	LastSolved time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			elapsed INTEGER NOT NULL DEFAULT 0,
			undos INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(level);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(level, pushes, moves);
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

// RecordSolve appends a solve. CreatedAt is filled in by the database.
func (s *Store) RecordSolve(solve Solve) error {
	_, err := s.AddSolve(solve)
	return err
}

// AddSolve appends a solve and returns its ID.
func (s *Store) AddSolve(solve Solve) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (level, moves, pushes, elapsed, undos) VALUES (?, ?, ?, ?, ?)",
		solve.Level, solve.Moves, solve.Pushes, solve.Elapsed, solve.Undos,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Best returns the solve with the fewest pushes for level, ties broken by
// moves then time. ok is false when the level was never solved.
func (s *Store) Best(level int) (best Solve, ok bool, err error) {
	var createdAt any
	err = s.db.QueryRow(
		`SELECT id, level, moves, pushes, elapsed, undos, created_at
		 FROM solves
		 WHERE level = ?
		 ORDER BY pushes ASC, moves ASC, elapsed ASC, id ASC
		 LIMIT 1`,
		level,
	).Scan(&best.ID, &best.Level, &best.Moves, &best.Pushes, &best.Elapsed, &best.Undos, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Solve{}, false, nil
	}
	if err != nil {
		return Solve{}, false, fmt.Errorf("storage: cannot query best solve: %w", err)
	}

	best.CreatedAt = parseTime(createdAt)
	return best, true, nil
}

// History returns the most recent solves of level, newest first.
func (s *Store) History(level, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, moves, pushes, elapsed, undos, created_at
		 FROM solves
		 WHERE level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Moves, &e.Pushes, &e.Elapsed, &e.Undos, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// Stats returns aggregates for every level that has been solved, keyed by
// level index.
func (s *Store) Stats() (map[int]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MAX(created_at)
		 FROM solves
		 GROUP BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	stats := make(map[int]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastSolved any
		if err := rows.Scan(&ls.Level, &ls.Solves, &lastSolved); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastSolved = parseTime(lastSolved)
		stats[ls.Level] = &ls
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	// Best figures must come from one solve, not per-column minimums.
	for level, ls := range stats {
		best, _, err := s.Best(level)
		if err != nil {
			return nil, err
		}
		ls.Best = best
	}

	return stats, nil
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
