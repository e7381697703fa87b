// Package huffman implements a per-input Huffman codec: a frequency table is
// built fresh for each Compress call, turned into a prefix-code table, and
// the input is bit-packed under that table into URL-safe text. The code
// table must be kept alongside the encoded text to decode it again.
package huffman

import (
	"encoding/json"
	"errors"
)

var (
	// ErrEmptyInput is returned when there is nothing to build codes from.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol is returned by Pack when a symbol is missing from the table.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

	// ErrBadCodeTable is returned when a supplied table cannot decode anything
	// unambiguously (empty, or not injective).
	ErrBadCodeTable = errors.New("huffman: malformed code table")

	// ErrDecode is returned when encoded text is inconsistent with the table.
	ErrDecode = errors.New("huffman: cannot decode")
)

// Compress encodes text and returns the URL-safe encoded form, the exact bit
// length of the packed stream, and the code table needed to reverse it.
func Compress(text string) (encoded string, bitLen int, table CodeTable, err error) {
	if text == "" {
		return "", 0, nil, ErrEmptyInput
	}
	table, err = BuildCodes(Frequencies(text))
	if err != nil {
		return "", 0, nil, err
	}
	encoded, bitLen, err = Pack(text, table)
	if err != nil {
		return "", 0, nil, err
	}
	return encoded, bitLen, table, nil
}

// Decompress reverses Compress. bitLen should be the value Compress reported;
// pass 0 if it is unknown and trailing pad bits will be dropped best-effort.
func Decompress(encoded string, table CodeTable, bitLen int) (string, error) {
	return Unpack(encoded, table, bitLen)
}

// MarshalJSON writes the table as {"symbol": "code"} so it can be stored as
// a plain JSON object by SQL backends.
func (t CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(t))
	for r, code := range t {
		m[string(r)] = code
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the {"symbol": "code"} form written by MarshalJSON.
func (t *CodeTable) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	table := make(CodeTable, len(m))
	for s, code := range m {
		runes := []rune(s)
		if len(runes) != 1 {
			return ErrBadCodeTable
		}
		table[runes[0]] = code
	}
	*t = table
	return nil
}
