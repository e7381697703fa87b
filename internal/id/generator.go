// Package id mints short codes from a deterministic hash seed plus a random
// suffix, retrying under a bounded collision policy.
package id

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
)

const (
	// DefaultMaxAttempts bounds the collision retry loop.
	DefaultMaxAttempts = 10
	// DefaultSuffixLength is the number of random lowercase letters appended.
	DefaultSuffixLength = 4

	prefixLen = 8 // characters of the seed-derived prefix
	seedBytes = 8 // digest bytes feeding the prefix
)

// Hasher maps text to a digest. Only used to spread similar URLs across
// different seeds; nothing here relies on cryptographic strength.
type Hasher func([]byte) []byte

// SHA256 is the default Hasher.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Generator implements core.CodeGenerator. A code is a fixed-length prefix
// derived from hashing the URL, followed by a short random suffix. On
// repeated collisions the seed itself is perturbed so two URLs that hash
// alike stop producing the same prefix forever.
type Generator struct {
	hash        Hasher
	entropy     Entropy
	suffixLen   int
	maxAttempts int
}

// NewGenerator creates a generator using hash (nil means SHA-256) and
// entropy. Non-positive suffixLen or maxAttempts fall back to the defaults.
func NewGenerator(hash Hasher, entropy Entropy, suffixLen, maxAttempts int) *Generator {
	if hash == nil {
		hash = SHA256
	}
	if suffixLen <= 0 {
		suffixLen = DefaultSuffixLength
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		hash:        hash,
		entropy:     entropy,
		suffixLen:   suffixLen,
		maxAttempts: maxAttempts,
	}
}

// NewCode returns a code that exists reported as unused at the moment of
// return. It never inserts anything; check-then-insert stays with the caller.
// Exhausting the attempt budget returns core.ErrExhausted.
func (g *Generator) NewCode(ctx context.Context, longURL string, exists func(context.Context, string) (bool, error)) (string, error) {
	seed := longURL
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if attempt > 0 {
			// Perturb the seed so a stubborn prefix collision cannot survive
			// every retry.
			letter, err := g.entropy.Letters(1)
			if err != nil {
				return "", fmt.Errorf("entropy: %w", err)
			}
			seed += letter
		}

		suffix, err := g.entropy.Letters(g.suffixLen)
		if err != nil {
			return "", fmt.Errorf("entropy: %w", err)
		}
		code := g.prefix(seed) + suffix

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("membership check: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", core.ErrExhausted, g.maxAttempts)
}

// prefix derives the deterministic part of a code from seed.
func (g *Generator) prefix(seed string) string {
	digest := g.hash([]byte(seed))
	if len(digest) > seedBytes {
		digest = digest[:seedBytes]
	}
	p := base64.RawURLEncoding.EncodeToString(digest)
	if len(p) > prefixLen {
		p = p[:prefixLen]
	}
	return p
}

// Ensure *Generator satisfies the interface at compile-time.
var _ core.CodeGenerator = (*Generator)(nil)
