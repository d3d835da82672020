package gen

import (
	"strings"
)

// Text generates a string of runes drawn from alphabet, with length in
// [minLen, maxLen], built as Vectors of the alphabet joined — exactly
// the composition spec.md §4.2 describes for Text.
func Text(alphabet string, minLen, maxLen int) Possibility[string] {
	if alphabet == "" {
		alphabet = AlphabetAlphaNum
	}
	runes := AlphabetRunes(alphabet)
	vec := Vectors(runes, minLen, maxLen)
	return Map(vec, func(rs []rune) string {
		var b strings.Builder
		b.Grow(len(rs))
		for _, r := range rs {
			b.WriteRune(r)
		}
		return b.String()
	})
}

// TextFromRunes generates a string from a rune-valued Possibility
// (e.g. UnicodeCharacters) rather than a fixed alphabet string.
func TextFromRunes(elem Possibility[rune], minLen, maxLen int) Possibility[string] {
	vec := Vectors(elem, minLen, maxLen)
	return Map(vec, func(rs []rune) string {
		var b strings.Builder
		b.Grow(len(rs))
		for _, r := range rs {
			b.WriteRune(r)
		}
		return b.String()
	})
}
