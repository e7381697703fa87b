package huffman

// Frequencies counts how often each symbol occurs in s.
// The caller is responsible for rejecting empty input; an empty string
// yields an empty table, which BuildCodes refuses.
func Frequencies(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	return freq
}
