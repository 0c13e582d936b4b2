// Package index persists a per-run crawl manifest in a single-file SQLite
// database inside the output directory. The manifest records one row per
// processed URL so runs can be inspected after the fact; disabling it never
// changes which Markdown files are written.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mdcrawl/mdcrawl/internal/crawler"
)

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id      TEXT NOT NULL,
	url         TEXT NOT NULL,
	final_url   TEXT,
	title       TEXT,
	filename    TEXT,
	status      TEXT NOT NULL,
	error       TEXT,
	used_js     INTEGER NOT NULL DEFAULT 0,
	fetched_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pages_run ON pages(run_id);
`

// Page statuses stored in the manifest.
const (
	StatusSaved  = "saved"
	StatusFailed = "failed"
)

// Manifest is a crawler.Recorder backed by SQLite.
type Manifest struct {
	db    *sql.DB
	runID string
}

// Open creates or opens the manifest database at path and ensures the
// schema exists. runID tags every row written through this handle.
func Open(path, runID string) (*Manifest, error) {
	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open manifest db: %w", err)
	}
	// A single writer is enough; the crawl loop is sequential.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create manifest schema: %w", err)
	}
	return &Manifest{db: db, runID: runID}, nil
}

// Close releases the database handle.
func (m *Manifest) Close() error {
	return m.db.Close()
}

// RunID returns the identifier tagging this run's rows.
func (m *Manifest) RunID() string {
	return m.runID
}

// RecordSaved implements crawler.Recorder for successfully persisted pages.
func (m *Manifest) RecordSaved(ctx context.Context, page crawler.PageRecord) error {
	return m.insert(ctx, page, StatusSaved)
}

// RecordFailed implements crawler.Recorder for skipped pages.
func (m *Manifest) RecordFailed(ctx context.Context, page crawler.PageRecord) error {
	return m.insert(ctx, page, StatusFailed)
}

func (m *Manifest) insert(ctx context.Context, page crawler.PageRecord, status string) error {
	const q = `INSERT INTO pages (run_id, url, final_url, title, filename, status, error, used_js, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := m.db.ExecContext(ctx, q,
		m.runID, page.URL, page.FinalURL, page.Title, page.Filename,
		status, page.Error, page.UsedJS, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert manifest row: %w", err)
	}
	return nil
}

// Entry is one manifest row.
type Entry struct {
	URL       string
	FinalURL  string
	Title     string
	Filename  string
	Status    string
	Error     string
	UsedJS    bool
	FetchedAt time.Time
}

// Pages returns all rows for a run in insertion order.
func (m *Manifest) Pages(ctx context.Context, runID string) ([]Entry, error) {
	const q = `SELECT url, final_url, title, filename, status, error, used_js, fetched_at
		FROM pages WHERE run_id = ? ORDER BY id`
	rows, err := m.db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, fmt.Errorf("query manifest pages: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.URL, &e.FinalURL, &e.Title, &e.Filename, &e.Status, &e.Error, &e.UsedJS, &e.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan manifest row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manifest rows: %w", err)
	}
	return entries, nil
}

// Count returns how many rows a run wrote, optionally filtered by status
// ("" counts everything).
func (m *Manifest) Count(ctx context.Context, runID, status string) (int, error) {
	var (
		n   int
		err error
	)
	if status == "" {
		err = m.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM pages WHERE run_id = ?`, runID).Scan(&n)
	} else {
		err = m.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM pages WHERE run_id = ? AND status = ?`, runID, status).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count manifest rows: %w", err)
	}
	return n, nil
}
