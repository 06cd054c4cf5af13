package scan

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded pass over a text source.
type Run struct {
	ID         int64  `json:"id"`
	Source     string `json:"source"`
	StartedAt  int64  `json:"started_at"`
	FinishedAt *int64 `json:"finished_at,omitempty"`
	Lines      int    `json:"lines"`
	Candidates int    `json:"candidates"`
	Viable     int    `json:"viable"`
}

// Candidate is one extracted number within a run.
type Candidate struct {
	RunID      int64  `json:"run_id"`
	Line       int    `json:"line"`
	Raw        string `json:"raw"`
	Extracted  string `json:"extracted"`
	Viable     bool   `json:"viable"`
	Normalized string `json:"normalized,omitempty"`
	Extension  string `json:"extension,omitempty"`
}

// Store persists scan runs and their candidates in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite database at path and ensures the
// scan tables exist.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open scan db: %w", err)
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS scan_runs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		source      TEXT NOT NULL,
		started_at  INTEGER NOT NULL,
		finished_at INTEGER,
		lines       INTEGER NOT NULL DEFAULT 0,
		candidates  INTEGER NOT NULL DEFAULT 0,
		viable      INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS scan_candidates (
		run_id     INTEGER NOT NULL REFERENCES scan_runs(id),
		line       INTEGER NOT NULL,
		raw        TEXT NOT NULL,
		extracted  TEXT NOT NULL,
		viable     INTEGER NOT NULL,
		normalized TEXT NOT NULL DEFAULT '',
		extension  TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_candidates_run ON scan_candidates(run_id)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create scan tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the SQLite connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateRun inserts a new run row and returns its ID.
func (s *Store) CreateRun(source string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scan_runs (source, started_at) VALUES (?, ?)`,
		source, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("create run: %w", err)
	}
	return res.LastInsertId()
}

// AddCandidate persists one candidate for a run.
func (s *Store) AddCandidate(c Candidate) error {
	_, err := s.db.Exec(
		`INSERT INTO scan_candidates (run_id, line, raw, extracted, viable, normalized, extension)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.RunID, c.Line, c.Raw, c.Extracted, c.Viable, c.Normalized, c.Extension,
	)
	if err != nil {
		return fmt.Errorf("add candidate: %w", err)
	}
	return nil
}

// FinishRun records the final counters of a run.
func (s *Store) FinishRun(id int64, lines, candidates, viable int) error {
	res, err := s.db.Exec(
		`UPDATE scan_runs SET finished_at = ?, lines = ?, candidates = ?, viable = ? WHERE id = ?`,
		time.Now().Unix(), lines, candidates, viable, id,
	)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("run %d not found", id)
	}
	return nil
}

// GetRun returns one run by ID.
func (s *Store) GetRun(id int64) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, source, started_at, finished_at, lines, candidates, viable
		 FROM scan_runs WHERE id = ?`, id)

	var r Run
	if err := row.Scan(&r.ID, &r.Source, &r.StartedAt, &r.FinishedAt, &r.Lines, &r.Candidates, &r.Viable); err != nil {
		return nil, fmt.Errorf("get run %d: %w", id, err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, source, started_at, finished_at, lines, candidates, viable
		 FROM scan_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.StartedAt, &r.FinishedAt, &r.Lines, &r.Candidates, &r.Viable); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunCandidates returns every candidate recorded for a run, in line order.
func (s *Store) RunCandidates(runID int64) ([]Candidate, error) {
	rows, err := s.db.Query(
		`SELECT run_id, line, raw, extracted, viable, normalized, extension
		 FROM scan_candidates WHERE run_id = ? ORDER BY line`, runID)
	if err != nil {
		return nil, fmt.Errorf("list candidates for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.RunID, &c.Line, &c.Raw, &c.Extracted, &c.Viable, &c.Normalized, &c.Extension); err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
