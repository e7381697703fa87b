package id

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
)

// scriptedEntropy returns 'a' letters forever, so generated codes repeat.
type scriptedEntropy struct{}

func (scriptedEntropy) Letters(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b), nil
}

func neverExists(context.Context, string) (bool, error)  { return false, nil }
func alwaysExists(context.Context, string) (bool, error) { return true, nil }

func TestNewCodeShape(t *testing.T) {
	g := NewGenerator(nil, CryptoEntropy{}, 4, 10)

	code, err := g.NewCode(context.Background(), "https://go.dev/doc/", neverExists)
	require.NoError(t, err)
	assert.Len(t, code, 12, "8-char seed prefix plus 4-letter suffix")

	suffix := code[8:]
	for _, c := range suffix {
		assert.GreaterOrEqual(t, c, 'a')
		assert.LessOrEqual(t, c, 'z')
	}
}

func TestNewCodePrefixDeterministic(t *testing.T) {
	g := NewGenerator(nil, CryptoEntropy{}, 4, 10)
	const url = "https://example.com/some/long/path"

	a, err := g.NewCode(context.Background(), url, neverExists)
	require.NoError(t, err)
	b, err := g.NewCode(context.Background(), url, neverExists)
	require.NoError(t, err)

	assert.Equal(t, a[:8], b[:8], "first-attempt prefix is a pure function of the URL")
}

func TestNewCodeRetriesUntilFree(t *testing.T) {
	g := NewGenerator(nil, CryptoEntropy{}, 4, 10)

	calls := 0
	threeTaken := func(_ context.Context, code string) (bool, error) {
		calls++
		return calls <= 3, nil
	}
	code, err := g.NewCode(context.Background(), "https://go.dev/", threeTaken)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.Equal(t, 4, calls)
}

func TestNewCodeExhausted(t *testing.T) {
	// One attempt, entropy that cannot vary, membership always positive.
	g := NewGenerator(nil, scriptedEntropy{}, 4, 1)

	_, err := g.NewCode(context.Background(), "https://go.dev/", alwaysExists)
	assert.ErrorIs(t, err, core.ErrExhausted)
}

func TestNewCodeSeedPerturbation(t *testing.T) {
	g := NewGenerator(nil, scriptedEntropy{}, 4, 5)

	var seen []string
	rememberAll := func(_ context.Context, code string) (bool, error) {
		seen = append(seen, code)
		return true, nil
	}
	_, err := g.NewCode(context.Background(), "https://go.dev/", rememberAll)
	require.ErrorIs(t, err, core.ErrExhausted)
	require.Len(t, seen, 5)

	// The suffix is pinned to "aaaa" by the scripted entropy, so any change
	// between attempts must come from the perturbed seed prefix.
	assert.NotEqual(t, seen[0], seen[1])
}
