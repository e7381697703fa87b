package id

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const lowercase = "abcdefghijklmnopqrstuvwxyz"

var alphabetSize = big.NewInt(int64(len(lowercase)))

// Entropy supplies the random suffix appended to every short code.
// Tests substitute a scripted implementation to force collisions.
type Entropy interface {
	// Letters returns a random lowercase-letter string of length n.
	Letters(n int) (string, error)
}

// CryptoEntropy draws uniformly from crypto/rand.
type CryptoEntropy struct{}

// Letters returns a cryptographically-strong random lowercase string of length n.
func (CryptoEntropy) Letters(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, alphabetSize) // uniform in [0,26)
		if err != nil {
			return "", err
		}
		b.WriteByte(lowercase[idx.Int64()])
	}
	return b.String(), nil
}

// Ensure CryptoEntropy satisfies the interface at compile-time.
var _ Entropy = CryptoEntropy{}
