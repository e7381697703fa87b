// Package sqlite implements the record store on SQLite via the pure-Go
// modernc.org driver (no CGO).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/huffman"
)

// Store implements core.Store backed by SQLite. The code table rides along
// as a JSON column: it is side information without which the compressed
// code cannot be decoded.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite DB at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Conservative pool settings for SQLite.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	_, _ = db.Exec("PRAGMA busy_timeout = 5000;")
	_, _ = db.Exec("PRAGMA journal_mode = WAL;")

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying DB.
func (s *Store) Close() error { return s.db.Close() }

// Insert adds a new record. Returns core.ErrConflict when the short code or
// the URL is already stored; the UNIQUE constraints make the row either
// fully present or absent.
func (s *Store) Insert(ctx context.Context, rec *core.Record) error {
	table, err := json.Marshal(rec.CodeTable)
	if err != nil {
		return fmt.Errorf("marshal code table: %w", err)
	}
	const q = `
INSERT INTO links(short_code, long_url, compressed, bit_len, code_table, created_at)
VALUES (?, ?, ?, ?, ?, ?);`
	_, err = s.db.ExecContext(ctx, q,
		rec.ShortCode, rec.LongURL, rec.Compressed, rec.BitLen, string(table), rec.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return core.ErrConflict
		}
		return err
	}
	return nil
}

// FindByURL returns the record shortened from longURL.
func (s *Store) FindByURL(ctx context.Context, longURL string) (*core.Record, error) {
	const q = selectCols + ` WHERE long_url = ? LIMIT 1;`
	return one(s.db.QueryRowContext(ctx, q, longURL))
}

// FindByCode returns the record for a short code.
func (s *Store) FindByCode(ctx context.Context, shortCode string) (*core.Record, error) {
	const q = selectCols + ` WHERE short_code = ? LIMIT 1;`
	return one(s.db.QueryRowContext(ctx, q, shortCode))
}

// FindByCompressed returns all records sharing a compressed form, oldest first.
func (s *Store) FindByCompressed(ctx context.Context, compressed string) ([]*core.Record, error) {
	const q = selectCols + ` WHERE compressed = ? ORDER BY id;`
	rows, err := s.db.QueryContext(ctx, q, compressed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*core.Record
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, core.ErrNotFound
	}
	return recs, nil
}

// CodeExists reports whether shortCode is taken.
func (s *Store) CodeExists(ctx context.Context, shortCode string) (bool, error) {
	const q = `SELECT 1 FROM links WHERE short_code = ? LIMIT 1;`
	var one int
	err := s.db.QueryRowContext(ctx, q, shortCode).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

const selectCols = `
SELECT short_code, long_url, compressed, bit_len, code_table, created_at
FROM links`

type rowScanner interface {
	Scan(dest ...any) error
}

func one(row *sql.Row) (*core.Record, error) {
	rec, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	return rec, err
}

func scan(row rowScanner) (*core.Record, error) {
	var rec core.Record
	var table string
	var created time.Time
	if err := row.Scan(&rec.ShortCode, &rec.LongURL, &rec.Compressed, &rec.BitLen, &table, &created); err != nil {
		return nil, err
	}
	var ct huffman.CodeTable
	if err := json.Unmarshal([]byte(table), &ct); err != nil {
		return nil, fmt.Errorf("unmarshal code table: %w", err)
	}
	rec.CodeTable = ct
	rec.CreatedAt = created.UTC()
	return &rec, nil
}

// isUniqueViolation detects UNIQUE constraint failures. Driver error codes
// vary between SQLite bindings, so detect by message.
func isUniqueViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}

// Compile-time check: *Store implements core.Store.
var _ core.Store = (*Store)(nil)
