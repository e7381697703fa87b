package huffman

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Pack concatenates each symbol's code in input order, right-pads the bit
// string with zeros to a byte boundary, and returns the bytes as unpadded
// URL-safe base64 together with the exact number of meaningful bits.
//
// The bit count travels with the encoded text because the padding is not
// self-describing: pad zeros can themselves spell a short valid code, and
// only the recorded length lets Unpack stop before reading them.
func Pack(s string, table CodeTable) (text string, bitLen int, err error) {
	var bits strings.Builder
	for _, r := range s {
		code, ok := table[r]
		if !ok {
			return "", 0, fmt.Errorf("%w: symbol %q has no code", ErrUnknownSymbol, r)
		}
		bits.WriteString(code)
	}

	bitLen = bits.Len()
	padded := bits.String()
	if rem := bitLen % 8; rem != 0 {
		padded += strings.Repeat("0", 8-rem)
	}

	buf := make([]byte, len(padded)/8)
	for i := 0; i < len(padded); i++ {
		if padded[i] == '1' {
			buf[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return base64.RawURLEncoding.EncodeToString(buf), bitLen, nil
}

// Unpack reverses Pack. bitLen limits decoding to the meaningful prefix of
// the bit stream; pass 0 when the length is unknown, in which case all
// 8×len(bytes) bits are scanned and a trailing partial code is discarded.
//
// It fails with ErrDecode when the text is not valid base64, when the code
// table is not injective, when the running buffer outgrows every known code,
// or when an explicit bitLen leaves an incomplete code behind.
func Unpack(text string, table CodeTable, bitLen int) (string, error) {
	buf, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(text, "="))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	reverse := make(map[string]rune, len(table))
	maxLen := 0
	for r, code := range table {
		if code == "" {
			return "", fmt.Errorf("%w: empty code for %q", ErrBadCodeTable, r)
		}
		if _, dup := reverse[code]; dup {
			return "", fmt.Errorf("%w: duplicate code %q", ErrBadCodeTable, code)
		}
		reverse[code] = r
		if len(code) > maxLen {
			maxLen = len(code)
		}
	}
	if len(reverse) == 0 {
		return "", ErrBadCodeTable
	}

	total := len(buf) * 8
	strict := bitLen > 0
	if strict {
		if bitLen > total {
			return "", fmt.Errorf("%w: bit length %d exceeds %d available bits", ErrDecode, bitLen, total)
		}
		total = bitLen
	}

	var out strings.Builder
	var current strings.Builder
	for i := 0; i < total; i++ {
		if buf[i/8]&(1<<(7-uint(i%8))) != 0 {
			current.WriteByte('1')
		} else {
			current.WriteByte('0')
		}
		if r, ok := reverse[current.String()]; ok {
			out.WriteRune(r)
			current.Reset()
			continue
		}
		if current.Len() > maxLen {
			return "", fmt.Errorf("%w: no code matches bit run at offset %d", ErrDecode, i)
		}
	}
	if strict && current.Len() > 0 {
		return "", fmt.Errorf("%w: %d trailing bits form no code", ErrDecode, current.Len())
	}
	return out.String(), nil
}
