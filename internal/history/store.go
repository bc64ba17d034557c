// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a ledger of generation runs in SQLite: which deck
// was built, where the output went, how long it took and what failed.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

const defaultLimit = 20

// timeFormat is fixed-width so started_at sorts lexically in time order.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Store manages the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			input TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			error TEXT,
			stats TEXT,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run. Recording the same ID twice replaces the row.
func (s *Store) Record(ctx context.Context, r types.RunRecord) error {
	statsJSON, err := json.Marshal(r.Stats)
	if err != nil {
		return fmt.Errorf("marshaling stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (id, input, output, status, error, stats, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Input, r.Output, string(r.Status), r.Error, string(statsJSON),
		r.StartedAt.UTC().Format(timeFormat),
		r.FinishedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", r.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A limit of zero or less
// means the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output, status, error, stats, started_at, finished_at
		 FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []types.RunRecord
	for rows.Next() {
		var (
			r                 types.RunRecord
			output, errText   sql.NullString
			stats             sql.NullString
			status            string
			started, finished string
		)
		if err := rows.Scan(&r.ID, &r.Input, &output, &status, &errText, &stats, &started, &finished); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Output = output.String
		r.Error = errText.String
		r.Status = types.RunStatus(status)
		if stats.Valid && stats.String != "" {
			if err := json.Unmarshal([]byte(stats.String), &r.Stats); err != nil {
				return nil, fmt.Errorf("decoding stats for run %s: %w", r.ID, err)
			}
		}
		if r.StartedAt, err = time.Parse(timeFormat, started); err != nil {
			return nil, fmt.Errorf("parsing started_at for run %s: %w", r.ID, err)
		}
		if r.FinishedAt, err = time.Parse(timeFormat, finished); err != nil {
			return nil, fmt.Errorf("parsing finished_at for run %s: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ExportYAML writes runs as a YAML sequence.
func ExportYAML(w io.Writer, runs []types.RunRecord) error {
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes runs as an indented JSON array.
func ExportJSON(w io.Writer, runs []types.RunRecord) error {
	if runs == nil {
		runs = []types.RunRecord{}
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
