package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store is the run journal: one row per updater invocation.
type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		started_at  DATETIME NOT NULL,
		finished_at DATETIME NOT NULL,
		outcome     TEXT NOT NULL,
		config_path TEXT NOT NULL DEFAULT '',
		performed   TEXT NOT NULL DEFAULT '',
		cleaned     INTEGER NOT NULL DEFAULT 0,
		error       TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun stores r, assigning an ID and finish time when they are unset.
func (s *Store) RecordRun(r Run) (*Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	_, err := s.db.Exec(
		"INSERT INTO runs (id, started_at, finished_at, outcome, config_path, performed, cleaned, error) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		r.ID, r.StartedAt, r.FinishedAt, r.Outcome, r.ConfigPath, strings.Join(r.Performed, ","), r.Cleaned, r.Error,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &r, nil
}

func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		"SELECT id, started_at, finished_at, outcome, config_path, performed, cleaned, error FROM runs ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			performed string
		)
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Outcome, &r.ConfigPath, &performed, &r.Cleaned, &r.Error); err != nil {
			return nil, err
		}
		if performed != "" {
			r.Performed = strings.Split(performed, ",")
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountByOutcome tallies journal rows per outcome.
func (s *Store) CountByOutcome() (map[string]int, error) {
	rows, err := s.db.Query("SELECT outcome, COUNT(*) FROM runs GROUP BY outcome")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			outcome string
			n       int
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
