package gen

import (
	"math"

	"github.com/lucaskalb/choicex/choice"
)

// FloatOptions configures a Floats Possibility. The zero value allows
// NaN and infinities and applies no clamp.
type FloatOptions struct {
	SuppressNaN bool
	SuppressInf bool
	// Clamped reports whether Minimum/Maximum should be enforced.
	Clamped bool
	Minimum float64
	Maximum float64
}

// Floats64 draws a uint64, reinterprets its bits as a float64, and
// applies the configured post-hoc validity rules, per spec.md §4.2. A
// bit pattern rejected by the options causes ErrInvalid rather than
// silently resampling, so the caller's retry policy (e.g. Filter's
// bounded retries) governs how many attempts are made.
func Floats64(opts FloatOptions) Possibility[float64] {
	if opts.Clamped {
		if math.IsNaN(opts.Minimum) || math.IsNaN(opts.Maximum) {
			panic("gen: Floats64 clamp bounds must not be NaN")
		}
		if opts.Minimum > opts.Maximum {
			panic("gen: Floats64 minimum must be <= maximum")
		}
	}
	bits := WideIntegers()
	return From(func(tc *choice.TestCase) (float64, error) {
		b, err := bits.Produce(tc)
		if err != nil {
			return 0, err
		}
		v := math.Float64frombits(b)
		if opts.SuppressNaN && math.IsNaN(v) {
			return 0, choice.ErrInvalid
		}
		if opts.SuppressInf && math.IsInf(v, 0) {
			return 0, choice.ErrInvalid
		}
		if opts.Clamped {
			if math.IsNaN(v) || v < opts.Minimum || v > opts.Maximum {
				return 0, choice.ErrInvalid
			}
		}
		return v, nil
	})
}

// Floats32 is the float32 analog of Floats64, drawing a single
// 32-bit-wide choice instead of two.
func Floats32(opts FloatOptions) Possibility[float32] {
	if opts.Clamped {
		if math.IsNaN(opts.Minimum) || math.IsNaN(opts.Maximum) {
			panic("gen: Floats32 clamp bounds must not be NaN")
		}
		if opts.Minimum > opts.Maximum {
			panic("gen: Floats32 minimum must be <= maximum")
		}
	}
	return From(func(tc *choice.TestCase) (float32, error) {
		b, err := choice.Choice(tc, 0xFFFFFFFF)
		if err != nil {
			return 0, err
		}
		v := math.Float32frombits(uint32(b))
		f64 := float64(v)
		if opts.SuppressNaN && math.IsNaN(f64) {
			return 0, choice.ErrInvalid
		}
		if opts.SuppressInf && math.IsInf(f64, 0) {
			return 0, choice.ErrInvalid
		}
		if opts.Clamped {
			if math.IsNaN(f64) || f64 < opts.Minimum || f64 > opts.Maximum {
				return 0, choice.ErrInvalid
			}
		}
		return v, nil
	})
}
