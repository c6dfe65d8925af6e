// Package results provides SQLite-backed history for validation runs.
//
// Every CLI command that validates something records one row: which check
// ran, against which fixture, with which engine, and how it came out. The
// history answers "when did this fixture last pass" without re-running a
// five-century sweep.
package results

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const currentSchemaVersion = 1

// Run statuses.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Run is one recorded command invocation.
type Run struct {
	ID       string        `json:"id"`
	Command  string        `json:"command"`
	Target   string        `json:"target"`
	Engine   string        `json:"engine"`
	Status   string        `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	MaxError float64       `json:"max_error,omitempty"`
	Unit     string        `json:"unit,omitempty"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// Store provides durable storage for run history.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a run-history database at the given path.
// Applies required pragmas and the schema automatically; safe to call on
// an existing database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun inserts one run into the history. A zero ID gets a fresh UUID;
// the (possibly assigned) ID is returned.
func (s *Store) RecordRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Status != StatusPass && run.Status != StatusFail {
		return "", fmt.Errorf("record run: invalid status %q", run.Status)
	}
	if run.Started.IsZero() {
		run.Started = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, command, target, engine, status, detail, max_error, unit, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Command,
		run.Target,
		run.Engine,
		run.Status,
		run.Detail,
		run.MaxError,
		run.Unit,
		run.Started.UnixMilli(),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns the most recent runs, newest first, at most limit rows.
// A non-positive limit returns the full history.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, command, target, engine, status, detail, max_error, unit, started_at, duration_ms
		FROM runs
		ORDER BY started_at DESC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedMs  int64
			durationMs int64
		)
		if err := rows.Scan(&run.ID, &run.Command, &run.Target, &run.Engine,
			&run.Status, &run.Detail, &run.MaxError, &run.Unit,
			&startedMs, &durationMs); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		run.Started = time.UnixMilli(startedMs).UTC()
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// LastRun returns the most recent run for one command and target, or
// sql.ErrNoRows if the pair has never been recorded.
func (s *Store) LastRun(ctx context.Context, command, target string) (Run, error) {
	var (
		run        Run
		startedMs  int64
		durationMs int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, command, target, engine, status, detail, max_error, unit, started_at, duration_ms
		FROM runs
		WHERE command = ? AND target = ?
		ORDER BY started_at DESC, id ASC
		LIMIT 1
	`, command, target).Scan(&run.ID, &run.Command, &run.Target, &run.Engine,
		&run.Status, &run.Detail, &run.MaxError, &run.Unit, &startedMs, &durationMs)
	if err != nil {
		return Run{}, err
	}
	run.Started = time.UnixMilli(startedMs).UTC()
	run.Duration = time.Duration(durationMs) * time.Millisecond
	return run, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
