package core

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/huffman"
)

const maxURLLength = 2048

// Service implements the business logic for shortening URLs and expanding
// their compressed codes. It owns the consistency discipline around the
// store: the idempotency check, code generation against live membership,
// compression, and the single insert that makes all three views visible.
type Service struct {
	store   Store
	gen     CodeGenerator
	nowFunc func() time.Time
}

func NewService(store Store, gen CodeGenerator) *Service {
	return &Service{
		store:   store,
		gen:     gen,
		nowFunc: time.Now,
	}
}

// Shorten returns the record for longURL, minting one on first sight.
// Calling it again with the same URL returns the existing record unchanged.
func (s *Service) Shorten(ctx context.Context, longURL string) (*Record, error) {
	longURL, err := normalizeURL(longURL)
	if err != nil {
		return nil, ErrInvalidURL
	}

	if rec, err := s.store.FindByURL(ctx, longURL); err == nil {
		return rec, nil
	} else if !IsNotFound(err) {
		return nil, fmt.Errorf("lookup url: %w", err)
	}

	code, err := s.gen.NewCode(ctx, longURL, s.store.CodeExists)
	if err != nil {
		return nil, err
	}

	compressed, bitLen, table, err := huffman.Compress(code)
	if err != nil {
		return nil, fmt.Errorf("compress %q: %w", code, err)
	}

	rec := &Record{
		ShortCode:  code,
		LongURL:    longURL,
		Compressed: compressed,
		BitLen:     bitLen,
		CodeTable:  table,
		CreatedAt:  s.nowFunc(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		if IsConflict(err) {
			// Another writer got the same URL in first; fall back to theirs.
			if existing, ferr := s.store.FindByURL(ctx, longURL); ferr == nil {
				return existing, nil
			}
			return nil, err
		}
		return nil, fmt.Errorf("insert: %w", err)
	}
	return rec, nil
}

// Expand maps a compressed code back to the URL it was minted for.
//
// Compressed codes are not globally unique, so every stored candidate is
// verified before it is trusted: the queried text must decode, under the
// candidate's own code table and bit length, to that candidate's short code.
// Decode failures count as non-matches. No verified candidate means
// ErrNotFound — never a wrong URL.
func (s *Service) Expand(ctx context.Context, compressed string) (*Record, error) {
	if compressed == "" {
		return nil, ErrNotFound
	}
	candidates, err := s.store.FindByCompressed(ctx, compressed)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup compressed: %w", err)
	}
	for _, rec := range candidates {
		decoded, err := huffman.Decompress(compressed, rec.CodeTable, rec.BitLen)
		if err != nil {
			if errors.Is(err, huffman.ErrDecode) || errors.Is(err, huffman.ErrBadCodeTable) {
				continue
			}
			return nil, fmt.Errorf("decompress: %w", err)
		}
		if decoded == rec.ShortCode {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

// Resolve returns the record for a short code, for redirect-style lookups.
func (s *Service) Resolve(ctx context.Context, shortCode string) (*Record, error) {
	if shortCode == "" {
		return nil, ErrNotFound
	}
	rec, err := s.store.FindByCode(ctx, shortCode)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup code: %w", err)
	}
	return rec, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxURLLength {
		return "", ErrInvalidURL
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}
	// Require an explicit http/https scheme and a non-empty host.
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", ErrInvalidURL
	}
	if parsed.Host == "" {
		return "", ErrInvalidURL
	}
	return parsed.String(), nil
}
