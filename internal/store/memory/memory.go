// Package memory implements the in-memory record store. It is the reference
// implementation of the store contract: three maps guarded by one lock, so
// either all views of a record are visible or none is.
package memory

import (
	"context"
	"sync"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/huffman"
)

// Store keeps every record resident. Suitable for tests, development, and
// single-process demos; nothing survives a restart.
type Store struct {
	mu           sync.RWMutex
	byURL        map[string]string       // long URL -> short code
	byCode       map[string]*core.Record // short code -> record
	byCompressed map[string][]string     // compressed code -> short codes, insertion order
}

func New() *Store {
	return &Store{
		byURL:        make(map[string]string),
		byCode:       make(map[string]*core.Record),
		byCompressed: make(map[string][]string),
	}
}

// Insert adds rec to all three indexes under one lock.
func (s *Store) Insert(ctx context.Context, rec *core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCode[rec.ShortCode]; ok {
		return core.ErrConflict
	}
	if _, ok := s.byURL[rec.LongURL]; ok {
		return core.ErrConflict
	}

	stored := clone(rec)
	s.byURL[rec.LongURL] = rec.ShortCode
	s.byCode[rec.ShortCode] = stored
	s.byCompressed[rec.Compressed] = append(s.byCompressed[rec.Compressed], rec.ShortCode)
	return nil
}

// FindByURL returns the record shortened from longURL.
func (s *Store) FindByURL(ctx context.Context, longURL string) (*core.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	code, ok := s.byURL[longURL]
	if !ok {
		return nil, core.ErrNotFound
	}
	return clone(s.byCode[code]), nil
}

// FindByCode returns the record for a short code.
func (s *Store) FindByCode(ctx context.Context, shortCode string) (*core.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byCode[shortCode]
	if !ok {
		return nil, core.ErrNotFound
	}
	return clone(rec), nil
}

// FindByCompressed returns all records sharing a compressed form, in the
// order they were inserted.
func (s *Store) FindByCompressed(ctx context.Context, compressed string) ([]*core.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := s.byCompressed[compressed]
	if len(codes) == 0 {
		return nil, core.ErrNotFound
	}
	recs := make([]*core.Record, 0, len(codes))
	for _, code := range codes {
		recs = append(recs, clone(s.byCode[code]))
	}
	return recs, nil
}

// CodeExists reports whether shortCode is taken.
func (s *Store) CodeExists(ctx context.Context, shortCode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byCode[shortCode]
	return ok, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }

// clone copies a record, including its code table, so callers cannot mutate
// stored state through the returned pointer.
func clone(rec *core.Record) *core.Record {
	cp := *rec
	cp.CodeTable = make(huffman.CodeTable, len(rec.CodeTable))
	for r, code := range rec.CodeTable {
		cp.CodeTable[r] = code
	}
	return &cp
}

// Compile-time check: *Store implements core.Store.
var _ core.Store = (*Store)(nil)
