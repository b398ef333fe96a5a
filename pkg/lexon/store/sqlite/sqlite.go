package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognilaw/lexon/pkg/lexon/internalerr"
	"github.com/cognilaw/lexon/pkg/lexon/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and the
// analysis schema initialized.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	method TEXT NOT NULL,
	text_len INTEGER NOT NULL,
	pages INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS clauses (
	analysis_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	name TEXT NOT NULL,
	content TEXT NOT NULL,
	clause_type TEXT,
	section_number TEXT,
	page_reference TEXT,
	PRIMARY KEY(analysis_id, seq),
	FOREIGN KEY(analysis_id) REFERENCES analyses(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
CREATE INDEX IF NOT EXISTS idx_clauses_type ON clauses(clause_type);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveAnalysis inserts or replaces an analysis and its clause rows in one
// transaction.
func (s *sqliteStore) SaveAnalysis(ctx context.Context, a store.Analysis) error {
	if a.ID == "" {
		return internalerr.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO analyses (id, filename, method, text_len, pages, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			filename = excluded.filename,
			method = excluded.method,
			text_len = excluded.text_len,
			pages = excluded.pages,
			created_at = excluded.created_at`,
		a.ID, a.Filename, a.Method, a.TextLen, a.Pages, a.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM clauses WHERE analysis_id = ?", a.ID); err != nil {
		return fmt.Errorf("clear clauses: %w", err)
	}

	for _, c := range a.Clauses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO clauses (analysis_id, seq, name, content, clause_type, section_number, page_reference)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.ID, c.Seq, c.Name, c.Content, c.Type, c.SectionNumber, c.PageReference)
		if err != nil {
			return fmt.Errorf("save clause %d: %w", c.Seq, err)
		}
	}

	return tx.Commit()
}

// GetAnalysis returns an analysis with its clauses in source order.
func (s *sqliteStore) GetAnalysis(ctx context.Context, id string) (store.Analysis, bool, error) {
	var a store.Analysis
	var created string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, method, text_len, pages, created_at
		FROM analyses WHERE id = ?`, id).
		Scan(&a.ID, &a.Filename, &a.Method, &a.TextLen, &a.Pages, &created)
	if err == sql.ErrNoRows {
		return store.Analysis{}, false, nil
	}
	if err != nil {
		return store.Analysis{}, false, err
	}
	a.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return store.Analysis{}, false, fmt.Errorf("parse created_at: %w", err)
	}

	clauses, err := s.loadClauses(ctx, id)
	if err != nil {
		return store.Analysis{}, false, err
	}
	a.Clauses = clauses
	return a, true, nil
}

// ListAnalyses returns analyses newest first, each with its clause rows
// in source order.
func (s *sqliteStore) ListAnalyses(ctx context.Context, limit int) ([]store.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, method, text_len, pages, created_at
		FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []store.Analysis
	for rows.Next() {
		var a store.Analysis
		var created string
		if err := rows.Scan(&a.ID, &a.Filename, &a.Method, &a.TextLen, &a.Pages, &created); err != nil {
			return nil, err
		}
		a.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		clauses, err := s.loadClauses(ctx, results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].Clauses = clauses
	}
	return results, nil
}

// DeleteAnalysis removes an analysis and, via the foreign key cascade,
// its clauses.
func (s *sqliteStore) DeleteAnalysis(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return internalerr.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) loadClauses(ctx context.Context, id string) ([]store.Clause, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, name, content, COALESCE(clause_type, ''), COALESCE(section_number, ''), COALESCE(page_reference, '')
		FROM clauses WHERE analysis_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clauses []store.Clause
	for rows.Next() {
		var c store.Clause
		if err := rows.Scan(&c.Seq, &c.Name, &c.Content, &c.Type, &c.SectionNumber, &c.PageReference); err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, rows.Err()
}
