// SPDX-License-Identifier: MIT

// Package sqlstore keeps ortholog tuples in a SQLite database and serves
// them to an orthology.Store as a Loader.
//
// One row is one relationship in the orientation it was inserted; Load
// returns the rows of both orientations of a species pair, swapped as needed.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/ppin/orthology"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS orthologs (
	species1 TEXT NOT NULL,
	protein1 TEXT NOT NULL,
	species2 TEXT NOT NULL,
	protein2 TEXT NOT NULL,
	kind     INTEGER NOT NULL DEFAULT 0,
	source   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (species1, protein1, species2, protein2, kind, source)
);
CREATE INDEX IF NOT EXISTS orthologs_by_pair ON orthologs (species1, species2);
`

const loadQuery = `
SELECT protein1, protein2, kind, source FROM orthologs WHERE species1 = ? AND species2 = ?
UNION ALL
SELECT protein2, protein1, kind, source FROM orthologs WHERE species1 = ? AND species2 = ? AND species1 <> species2
`

// Option configures a Store.
type Option func(*Store)

// WithLogger routes query events to log. Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Store is a SQLite-backed ortholog tuple source.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

var _ orthology.Loader = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: opening %s: %w", path, err)
	}
	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", path, err)
	}
	if path != MemoryPath {
		if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlstore: enabling WAL mode: %w", err)
		}
	}
	// Wait up to 5s on lock instead of failing immediately.
	_, _ = db.Exec("PRAGMA busy_timeout=5000")

	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if err = s.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// EnsureSchema creates the tables and indexes if they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlstore: applying schema: %w", err)
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Insert stores records, Protein1 in species1, in one transaction.
// Duplicate rows are ignored. It returns the number of rows added.
func (s *Store) Insert(ctx context.Context, species1, species2 string, records []orthology.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO orthologs (species1, protein1, species2, protein2, kind, source) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, r := range records {
		res, err := stmt.ExecContext(ctx, species1, r.Protein1, species2, r.Protein2, int(r.Source.Kind), r.Source.Name)
		if err != nil {
			return 0, fmt.Errorf("sqlstore: insert %s/%s: %w", r.Protein1, r.Protein2, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlstore: commit: %w", err)
	}
	s.log.Debug("inserted orthologs",
		zap.String("species1", species1), zap.String("species2", species2), zap.Int("rows", added))

	return added, nil
}

// Load implements orthology.Loader: it returns every relationship between
// species1 and species2, oriented with Protein1 in species1.
func (s *Store) Load(ctx context.Context, species1, species2 string) ([]orthology.Record, error) {
	rows, err := s.db.QueryContext(ctx, loadQuery, species1, species2, species2, species1)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: load %s/%s: %w", species1, species2, err)
	}
	defer rows.Close()

	var out []orthology.Record
	for rows.Next() {
		var (
			r    orthology.Record
			kind int
		)
		if err = rows.Scan(&r.Protein1, &r.Protein2, &kind, &r.Source.Name); err != nil {
			return nil, fmt.Errorf("sqlstore: scan %s/%s: %w", species1, species2, err)
		}
		r.Source.Kind = orthology.SourceKind(kind)
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlstore: load %s/%s: %w", species1, species2, err)
	}
	s.log.Debug("loaded orthologs",
		zap.String("species1", species1), zap.String("species2", species2), zap.Int("rows", len(out)))

	return out, nil
}
