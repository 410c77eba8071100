package history

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Run is one recorded conversion.
type Run struct {
	ID           string
	StartedAt    time.Time
	FinishedAt   time.Time
	Inputs       []string
	Skipped      []string
	Items        int
	Duplicates   int
	IDCollisions int
	Categories   int
	TotalMovies  int
	TotalSeries  int
	TotalAdult   int
	OutputBytes  int64
	LargestFile  string
}

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordRun inserts one completed run.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	inputs, err := json.Marshal(orEmptyStrings(run.Inputs))
	if err != nil {
		return fmt.Errorf("marshal inputs: %w", err)
	}
	skipped, err := json.Marshal(orEmptyStrings(run.Skipped))
	if err != nil {
		return fmt.Errorf("marshal skipped: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, inputs_json, skipped_json,
            items, duplicates, id_collisions, categories,
            total_movies, total_series, total_adult,
            output_bytes, largest_file
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		string(inputs),
		string(skipped),
		run.Items,
		run.Duplicates,
		run.IDCollisions,
		run.Categories,
		run.TotalMovies,
		run.TotalSeries,
		run.TotalAdult,
		run.OutputBytes,
		run.LargestFile,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// returns every recorded run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, started_at, finished_at, inputs_json, skipped_json,
            items, duplicates, id_collisions, categories,
            total_movies, total_series, total_adult,
            output_bytes, largest_file
        FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func scanRun(rows *sql.Rows) (Run, error) {
	var (
		run                  Run
		startedAt, finished  string
		inputsJSON, skipJSON string
	)
	if err := rows.Scan(
		&run.ID,
		&startedAt,
		&finished,
		&inputsJSON,
		&skipJSON,
		&run.Items,
		&run.Duplicates,
		&run.IDCollisions,
		&run.Categories,
		&run.TotalMovies,
		&run.TotalSeries,
		&run.TotalAdult,
		&run.OutputBytes,
		&run.LargestFile,
	); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}

	var err error
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
		return Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return Run{}, fmt.Errorf("parse finished_at: %w", err)
	}
	if err := json.Unmarshal([]byte(inputsJSON), &run.Inputs); err != nil {
		return Run{}, fmt.Errorf("decode inputs: %w", err)
	}
	if err := json.Unmarshal([]byte(skipJSON), &run.Skipped); err != nil {
		return Run{}, fmt.Errorf("decode skipped: %w", err)
	}
	return run, nil
}

func orEmptyStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
