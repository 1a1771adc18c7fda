// Package storage provides SQLite-based persistence for benchmark history.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one aggregated benchmark row for a (map, algorithm) pair.
type RunRecord struct {
	ID                int64
	MapID             string
	Algorithm         string
	Runs              int
	AvgTimeMS         float64
	AvgMemoryBytes    float64
	SuccessRate       float64 // 0..1
	AvgSolutionLength float64 // Unit moves, successful runs only
	AvgStatesExplored float64
	CreatedAt         time.Time
}

// MapSummary aggregates the history of one map.
type MapSummary struct {
	MapID   string
	Runs    int
	LastRun time.Time
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
		CREATE TABLE IF NOT EXISTS bench_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			map_id TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			runs INTEGER NOT NULL DEFAULT 1,
			avg_time_ms REAL NOT NULL,
			avg_memory_bytes REAL NOT NULL,
			success_rate REAL NOT NULL,
			avg_solution_length REAL NOT NULL,
			avg_states_explored REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_map_id ON bench_runs(map_id);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_algorithm ON bench_runs(map_id, algorithm);
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

// SaveRun records one benchmark row.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO bench_runs
		 (map_id, algorithm, runs, avg_time_ms, avg_memory_bytes, success_rate, avg_solution_length, avg_states_explored)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MapID, r.Algorithm, r.Runs, r.AvgTimeMS, r.AvgMemoryBytes,
		r.SuccessRate, r.AvgSolutionLength, r.AvgStatesExplored,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest N rows for the given map, newest first.
func (s *Store) RecentRuns(mapID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, algorithm, runs, avg_time_ms, avg_memory_bytes,
		        success_rate, avg_solution_length, avg_states_explored, created_at
		 FROM bench_runs
		 WHERE map_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestRuns returns, per algorithm, the fastest fully successful row recorded
// for the map, falling back to the fastest row of any success rate.
// Results are ordered by algorithm name.
func (s *Store) BestRuns(mapID string) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, map_id, algorithm, runs, avg_time_ms, avg_memory_bytes,
		        success_rate, avg_solution_length, avg_states_explored, created_at
		 FROM bench_runs
		 WHERE map_id = ?
		 ORDER BY algorithm, success_rate DESC, avg_time_ms, id`,
		mapID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	all, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}

	var best []RunRecord
	for _, r := range all {
		if len(best) == 0 || best[len(best)-1].Algorithm != r.Algorithm {
			best = append(best, r)
		}
	}
	return best, nil
}

// Maps summarises every map that has recorded runs, ordered by map ID.
func (s *Store) Maps() ([]MapSummary, error) {
	rows, err := s.db.Query(
		`SELECT map_id, COUNT(*), MAX(created_at)
		 FROM bench_runs
		 GROUP BY map_id
		 ORDER BY map_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get map summaries: %w", err)
	}
	defer rows.Close()

	var out []MapSummary
	for rows.Next() {
		var m MapSummary
		var lastRun any
		if err := rows.Scan(&m.MapID, &m.Runs, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		m.LastRun = parseTime(lastRun)
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearRuns deletes all rows for the given map.
func (s *Store) ClearRuns(mapID string) error {
	_, err := s.db.Exec("DELETE FROM bench_runs WHERE map_id = ?", mapID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.MapID, &r.Algorithm, &r.Runs, &r.AvgTimeMS, &r.AvgMemoryBytes,
			&r.SuccessRate, &r.AvgSolutionLength, &r.AvgStatesExplored, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
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
