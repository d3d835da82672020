package gen

import "github.com/lucaskalb/choicex/choice"

// Integers generates an int64 uniformly in [lo, hi] (inclusive). It is
// built on a single choice.Choice call offset by lo, so smaller
// magnitudes shrink to 0 first and then towards lo, exactly as
// spec.md §4.2 specifies.
func Integers(lo, hi int64) Possibility[int64] {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(hi - lo)
	return From(func(tc *choice.TestCase) (int64, error) {
		v, err := choice.Choice(tc, span)
		if err != nil {
			return 0, err
		}
		return lo + int64(v), nil
	})
}

// WideIntegers generates a uint64 uniformly across the full unsigned
// 64-bit range by composing two sequential choice.Choice calls — a high
// half and a low half — as spec.md §4.2 prescribes for widths wider
// than a single choice call can address cleanly.
func WideIntegers() Possibility[uint64] {
	return From(func(tc *choice.TestCase) (uint64, error) {
		hi, err := choice.Choice(tc, ^uint64(0)>>32)
		if err != nil {
			return 0, err
		}
		lo, err := choice.Choice(tc, ^uint64(0)&0xFFFFFFFF)
		if err != nil {
			return 0, err
		}
		return hi<<32 + lo, nil
	})
}

// Uint64s generates a uint64 uniformly in [lo, hi].
func Uint64s(lo, hi uint64) Possibility[uint64] {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	return From(func(tc *choice.TestCase) (uint64, error) {
		v, err := choice.Choice(tc, span)
		if err != nil {
			return 0, err
		}
		return lo + v, nil
	})
}
