package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/core"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/huffman"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/id"
	"github.com/nikhil470707/URL-Shortener-with-Huffman-Encoding/internal/store/memory"
)

func newService() (*core.Service, *memory.Store) {
	store := memory.New()
	gen := id.NewGenerator(nil, id.CryptoEntropy{}, 4, 10)
	return core.NewService(store, gen), store
}

func TestShortenAndExpand(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	rec, err := svc.Shorten(ctx, "https://go.dev/blog/slices-intro")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ShortCode)
	assert.NotEmpty(t, rec.Compressed)
	assert.Positive(t, rec.BitLen)
	assert.NotEmpty(t, rec.CodeTable)

	// The stored compressed form must decode back to the short code.
	decoded, err := huffman.Decompress(rec.Compressed, rec.CodeTable, rec.BitLen)
	require.NoError(t, err)
	assert.Equal(t, rec.ShortCode, decoded)

	// Inverse law: expanding the compressed code yields the original URL.
	expanded, err := svc.Expand(ctx, rec.Compressed)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/blog/slices-intro", expanded.LongURL)
}

func TestShortenIdempotent(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	const url = "https://example.com/a/b?c=d"

	first, err := svc.Shorten(ctx, url)
	require.NoError(t, err)
	second, err := svc.Shorten(ctx, url)
	require.NoError(t, err)

	assert.Equal(t, first.ShortCode, second.ShortCode)
	assert.Equal(t, first.Compressed, second.Compressed)
}

func TestShortenDistinctURLsDistinctCodes(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	urls := []string{
		"https://example.com/one",
		"https://example.com/two",
		"https://example.org/one",
		"https://go.dev/",
		"https://pkg.go.dev/net/http",
	}
	seen := make(map[string]string)
	for _, u := range urls {
		rec, err := svc.Shorten(ctx, u)
		require.NoError(t, err)
		if prev, dup := seen[rec.ShortCode]; dup {
			t.Fatalf("short code %q issued for both %q and %q", rec.ShortCode, prev, u)
		}
		seen[rec.ShortCode] = u
	}
}

func TestShortenInvalidURL(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	for _, raw := range []string{"", "   ", "ftp://example.com/x", "not a url", "https://"} {
		_, err := svc.Shorten(ctx, raw)
		assert.ErrorIs(t, err, core.ErrInvalidURL, "input %q", raw)
	}
}

func TestExpandUnknown(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Expand(ctx, "not-a-real-code")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.Expand(ctx, "")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestExpandInverseLawManyURLs(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	urls := []string{
		"https://www.example.com/very/long/path/to/resource?param1=value1&param2=value2",
		"https://another-example.com/blog/post/2024/01/15/how-to-implement-url-shortener",
		"https://third-example.net/products/category/subcategory/item?id=12345&sort=price",
	}
	for _, u := range urls {
		rec, err := svc.Shorten(ctx, u)
		require.NoError(t, err)

		got, err := svc.Expand(ctx, rec.Compressed)
		require.NoError(t, err)
		assert.Equal(t, u, got.LongURL)
	}
}

func TestResolveShortCode(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	rec, err := svc.Shorten(ctx, "https://go.dev/doc/effective_go")
	require.NoError(t, err)

	got, err := svc.Resolve(ctx, rec.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/doc/effective_go", got.LongURL)

	_, err = svc.Resolve(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// pinnedEntropy always emits the same letters, so the generator cannot
// escape a collision by redrawing the suffix alone.
type pinnedEntropy struct{}

func (pinnedEntropy) Letters(n int) (string, error) {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'q'
	}
	return string(b), nil
}

func TestShortenExhaustedSurfaces(t *testing.T) {
	store := memory.New()
	gen := id.NewGenerator(nil, pinnedEntropy{}, 4, 1)
	svc := core.NewService(store, gen)
	ctx := context.Background()

	const url = "https://example.com/only"

	// Occupy the single code the pinned generator can mint for this URL.
	probe, err := gen.NewCode(ctx, url, func(context.Context, string) (bool, error) { return false, nil })
	require.NoError(t, err)
	require.NoError(t, store.Insert(ctx, &core.Record{
		ShortCode:  probe,
		LongURL:    "https://example.com/occupier",
		Compressed: "AA",
		BitLen:     1,
		CodeTable:  huffman.CodeTable{'a': "0"},
	}))

	_, err = svc.Shorten(ctx, url)
	assert.ErrorIs(t, err, core.ErrExhausted)

	// The failed shorten must not leave a record for the URL behind.
	_, err = store.FindByURL(ctx, url)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

// TestExpandVerifiesCandidates plants two records that share a compressed
// form and checks each expands through its own code table.
func TestExpandVerifiesCandidates(t *testing.T) {
	store := memory.New()
	svc := core.NewService(store, id.NewGenerator(nil, id.CryptoEntropy{}, 4, 10))
	ctx := context.Background()

	// "ab" under {a:0,b:1} and "ba" under {b:0,a:1} both pack to 0x40 ("QA").
	encodedA, bitsA, err := huffman.Pack("ab", huffman.CodeTable{'a': "0", 'b': "1"})
	require.NoError(t, err)
	encodedB, bitsB, err := huffman.Pack("ba", huffman.CodeTable{'b': "0", 'a': "1"})
	require.NoError(t, err)
	require.Equal(t, encodedA, encodedB, "the two records must collide for this test")

	require.NoError(t, store.Insert(ctx, &core.Record{
		ShortCode: "ab", LongURL: "https://a.example/",
		Compressed: encodedA, BitLen: bitsA,
		CodeTable: huffman.CodeTable{'a': "0", 'b': "1"},
	}))
	require.NoError(t, store.Insert(ctx, &core.Record{
		ShortCode: "ba", LongURL: "https://b.example/",
		Compressed: encodedB, BitLen: bitsB,
		CodeTable: huffman.CodeTable{'b': "0", 'a': "1"},
	}))

	rec, err := svc.Expand(ctx, encodedA)
	require.NoError(t, err)
	// First inserted verified candidate wins; its URL matches its own table.
	assert.Equal(t, "ab", rec.ShortCode)
	assert.Equal(t, "https://a.example/", rec.LongURL)
}
