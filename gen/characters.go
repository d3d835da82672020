package gen

import "github.com/lucaskalb/choicex/choice"

// Alphabet shortcuts, kept from the teacher's gen/string.go constants.
const (
	AlphabetLower    = "abcdefghijklmnopqrstuvwxyz"
	AlphabetUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphabetAlpha    = AlphabetLower + AlphabetUpper
	AlphabetDigits   = "0123456789"
	AlphabetAlphaNum = AlphabetAlpha + AlphabetDigits
	AlphabetASCII    = AlphabetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"
)

// Characters draws a rune uniformly from the given code-point range
// [lo, hi], via SampledFrom over an implicit index range — spec.md §4.2
// describes Characters as "SampledFrom an appropriate code-point range."
func Characters(lo, hi rune) Possibility[rune] {
	span := uint64(hi - lo)
	return From(func(tc *choice.TestCase) (rune, error) {
		v, err := choice.Choice(tc, span)
		if err != nil {
			return 0, err
		}
		return lo + rune(v), nil
	})
}

// AsciiCharacters draws a printable ASCII rune (0x20..0x7E).
func AsciiCharacters() Possibility[rune] {
	return Characters(0x20, 0x7E)
}

// UnicodeCharacters draws a rune from the Basic Multilingual Plane,
// excluding the UTF-16 surrogate range so the result is always a valid
// code point on its own.
func UnicodeCharacters() Possibility[rune] {
	return Filter(Characters(0x0020, 0xFFFD), func(r rune) bool {
		return r < 0xD800 || r > 0xDFFF
	}, 3)
}

// AlphabetRunes draws a rune uniformly from an explicit alphabet
// string, used by Text when a fixed character set (rather than a
// code-point range) is wanted.
func AlphabetRunes(alphabet string) Possibility[rune] {
	runes := []rune(alphabet)
	return SampledFrom(runes)
}
