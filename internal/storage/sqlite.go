// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished board: how many moves it took and how long.
// Results are keyed by grid so a 2x2 time never competes with a 6x6 one.
type ResultEntry struct {
	ID         int64
	Grid       string // Canonical grid key, e.g. "4x4"
	Moves      int
	DurationMs int64
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grid TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_grid ON results(grid);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(grid, duration_ms ASC);
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

// SaveResult records a finished board for the given grid.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(grid string, moves int, durationMs int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (grid, moves, duration_ms) VALUES (?, ?, ?)",
		grid, moves, durationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for the given grid.
// Results are ordered by duration ascending, moves as tiebreaker.
func (s *Store) TopResults(grid string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, grid, moves, duration_ms, created_at
		 FROM results
		 WHERE grid = ?
		 ORDER BY duration_ms ASC, moves ASC
		 LIMIT ?`,
		grid, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// AllResults retrieves all results for the given grid (no limit).
func (s *Store) AllResults(grid string) ([]ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, grid, moves, duration_ms, created_at
		 FROM results
		 WHERE grid = ?
		 ORDER BY duration_ms ASC, moves ASC`,
		grid,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// scanResults reads result rows, parsing created_at from either a
// time.Time or the driver's datetime string form.
func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Grid, &e.Moves, &e.DurationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func parseCreatedAt(v any) time.Time {
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

// BestTime returns the fastest solve in milliseconds for the given grid.
// Returns 0 if no results exist.
func (s *Store) BestTime(grid string) (int64, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM results WHERE grid = ?",
		grid,
	).Scan(&ms)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, nil
	}

	return ms.Int64, nil
}

// BestMoves returns the fewest moves for the given grid.
// Returns 0 if no results exist.
func (s *Store) BestMoves(grid string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM results WHERE grid = ?",
		grid,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearResults deletes all results for the given grid.
func (s *Store) ClearResults(grid string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE grid = ?", grid)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// GridStats contains aggregated statistics for one grid size.
type GridStats struct {
	Grid       string
	GamesCount int
	BestTimeMs int64
	BestMoves  int
	AvgTimeMs  float64
	LastPlayed time.Time
}

// GetGridStats retrieves aggregated statistics for a specific grid.
func (s *Store) GetGridStats(grid string) (*GridStats, error) {
	stats := &GridStats{Grid: grid}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ms), 0), COALESCE(MIN(moves), 0), COALESCE(AVG(duration_ms), 0)
		 FROM results WHERE grid = ?`,
		grid,
	).Scan(&stats.GamesCount, &stats.BestTimeMs, &stats.BestMoves, &stats.AvgTimeMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get grid stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE grid = ? ORDER BY created_at DESC LIMIT 1`,
		grid,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// GetAllGridStats retrieves statistics for every grid that has results.
func (s *Store) GetAllGridStats() (map[string]*GridStats, error) {
	rows, err := s.db.Query(
		`SELECT grid, COUNT(*), MIN(duration_ms), MIN(moves), AVG(duration_ms), MAX(created_at)
		 FROM results
		 GROUP BY grid`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all grid stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GridStats)
	for rows.Next() {
		var g GridStats
		var lastPlayed any
		if err := rows.Scan(&g.Grid, &g.GamesCount, &g.BestTimeMs, &g.BestMoves, &g.AvgTimeMs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = parseCreatedAt(lastPlayed)
		stats[g.Grid] = &g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
