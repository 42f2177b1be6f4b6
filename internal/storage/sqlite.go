package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

const (
	defaultListLimit = 50
	// fixed width so created_at sorts as text
	timeLayout       = "2006-01-02T15:04:05.000000000Z07:00"
)

// SQLiteStore implements RunStore using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath.
// Use ":memory:" in tests.
func NewSQLiteStore(dbPath string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	// one connection: keeps ":memory:" a single database and writes serialized
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	return &SQLiteStore{
		db:     db,
		logger: logger.With().Str("component", "store").Logger(),
	}, nil
}

// Migrate creates the tables if they do not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug().Str("op", "migrate").Msg("sql")
	return migrate(ctx, s.db)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts run, assigning an ID and creation time when missing.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.Result.RunID = run.ID
	s.logger.Debug().Str("op", "insert").Str("table", "runs").Str("run", run.ID).Msg("sql")

	processesJSON, err := json.Marshal(run.Processes)
	if err != nil {
		return fmt.Errorf("marshal processes: %w", err)
	}
	responseJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, algorithm, time_quantum, processes, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Algorithm, run.TimeQuantum, string(processesJSON), string(responseJSON),
		run.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	s.logger.Debug().Str("op", "select").Str("table", "runs").Str("run", id).Msg("sql")
	row := s.db.QueryRowContext(ctx,
		`SELECT id, algorithm, time_quantum, processes, response, created_at
		 FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	return run, err
}

// ListRuns returns the newest runs first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	s.logger.Debug().Str("op", "select").Str("table", "runs").Int("limit", limit).Msg("sql")

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, algorithm, time_quantum, processes, response, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var run Run
	var processesJSON, responseJSON, createdAt string
	if err := row.Scan(&run.ID, &run.Algorithm, &run.TimeQuantum, &processesJSON, &responseJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(processesJSON), &run.Processes); err != nil {
		return nil, fmt.Errorf("unmarshal processes: %w", err)
	}
	if err := json.Unmarshal([]byte(responseJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	run.CreatedAt = t
	return &run, nil
}
