package core

import (
	"context"
	"time"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/huffman"
)

// Record binds a long URL to its short code and the code's Huffman-packed
// form. Created once on the first Shorten of a URL and immutable after that;
// repeat calls hand back the same record.
type Record struct {
	ShortCode  string            `json:"short_code"`
	LongURL    string            `json:"url"`
	Compressed string            `json:"compressed_code"`
	BitLen     int               `json:"bit_len"`
	CodeTable  huffman.CodeTable `json:"code_table"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Store abstracts persistence for records. Implementations must keep the
// three views of a record (by URL, by short code, by compressed code)
// consistent: Insert either lands in all of them or in none.
type Store interface {
	// Insert adds a new record. Must fail with ErrConflict if the short code
	// or the URL is already present.
	Insert(ctx context.Context, rec *Record) error
	// FindByURL returns the record for a long URL, or ErrNotFound.
	FindByURL(ctx context.Context, longURL string) (*Record, error)
	// FindByCode returns the record for a short code, or ErrNotFound.
	FindByCode(ctx context.Context, shortCode string) (*Record, error)
	// FindByCompressed returns every record whose compressed form equals
	// compressed, oldest first. Compressed codes are not unique, so callers
	// must verify each candidate before trusting it.
	FindByCompressed(ctx context.Context, compressed string) ([]*Record, error)
	// CodeExists reports whether a short code is already taken.
	CodeExists(ctx context.Context, shortCode string) (bool, error)
	// Close releases the store's resources.
	Close() error
}

// CodeGenerator mints short codes that are unused according to exists at the
// moment of return. Generators never insert; that stays with the caller.
type CodeGenerator interface {
	NewCode(ctx context.Context, longURL string, exists func(context.Context, string) (bool, error)) (string, error)
}
