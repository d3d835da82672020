// Package domain holds generators for values with real-world validity
// rules, kept from the teacher's gen/domain/cpf.go as the canonical
// example of a composite, domain-specific Possibility built entirely
// from primitives — no direct *rand.Rand access anywhere below.
package domain

import (
	"errors"
	"strings"
	"unicode"

	"github.com/lucaskalb/choicex/gen"
)

// digit is a single base-10 digit, generated with Integers(0, 9) rather
// than a direct r.Intn(10) call, so CPF participates in shrinking like
// any other Possibility.
var digit = gen.Integers(0, 9)

// root9 draws nine digits that are not all identical (an invalid CPF
// root), retrying via Filter up to a generous retry budget since all-
// same-digit roots are rare but not vanishingly so.
var root9 = gen.Filter(gen.Vectors(digit, 9, 9), func(ds []int64) bool {
	return !allSameInt64(ds)
}, 10)

// CPF generates valid Brazilian CPF numbers. If masked is true the
// result is formatted "123.456.789-01"; otherwise it is the bare 11
// digits.
func CPF(masked bool) gen.Possibility[string] {
	return gen.Map(root9, func(ds []int64) string {
		root := make([]byte, 9)
		for i, d := range ds {
			root[i] = byte(d)
		}
		d1, d2 := computeCPFVerifiers(root)
		raw := make([]byte, 0, 11)
		for _, n := range root {
			raw = append(raw, '0'+n)
		}
		raw = append(raw, d1, d2)
		if masked {
			return MaskCPF(string(raw))
		}
		return string(raw)
	})
}

// CPFAny generates a CPF with a 50/50 chance of being masked, the
// choice itself drawn from the choice stream via Booleans rather than
// an ad-hoc coin flip.
func CPFAny() gen.Possibility[string] {
	return gen.Bind(gen.Booleans(), func(masked bool) gen.Possibility[string] {
		return CPF(masked)
	})
}

// ValidCPF reports whether s is a valid CPF, masked or not.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSameByte(b) {
		return false
	}
	root := make([]byte, 9)
	for i := range root {
		root[i] = b[i] - '0'
	}
	d1, d2 := computeCPFVerifiers(root)
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats a raw 11-digit CPF with dots and a dash.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("domain.MaskCPF: needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF strips any non-digit characters from s.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameByte(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	for _, x := range b[1:] {
		if x != b[0] {
			return false
		}
	}
	return true
}

func allSameInt64(ds []int64) bool {
	if len(ds) == 0 {
		return true
	}
	for _, x := range ds[1:] {
		if x != ds[0] {
			return false
		}
	}
	return true
}

// computeCPFVerifiers calculates the two CPF check digits for a 9-digit
// root.
func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("domain.computeCPFVerifiers: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
