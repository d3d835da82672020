package gen

import "github.com/lucaskalb/choicex/choice"

// Map applies f to every value Produce returns from p.
func Map[A, B any](p Possibility[A], f func(A) B) Possibility[B] {
	return From(func(tc *choice.TestCase) (B, error) {
		a, err := p.Produce(tc)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// filterMaxTries is the number of retries Filter allows before
// rejecting with ErrInvalid (spec.md §4.2). The source this engine
// follows chose 3; spec.md §9 leaves this as an implementer's judgment
// call rather than a configuration knob.
const filterMaxTries = 3

// Filter keeps only values from p that satisfy pred, drawing up to
// maxTries times (filterMaxTries when maxTries <= 0) before giving up
// with ErrInvalid.
func Filter[T any](p Possibility[T], pred func(T) bool, maxTries int) Possibility[T] {
	if maxTries <= 0 {
		maxTries = filterMaxTries
	}
	return From(func(tc *choice.TestCase) (T, error) {
		for i := 0; i < maxTries; i++ {
			v, err := p.Produce(tc)
			if err != nil {
				var zero T
				return zero, err
			}
			if pred(v) {
				return v, nil
			}
		}
		var zero T
		return zero, choice.ErrInvalid
	})
}

// Bind threads the value produced by pa into f to obtain the
// Possibility that actually produces the result — the monadic flatMap
// over the choice sequence.
func Bind[A, B any](pa Possibility[A], f func(A) Possibility[B]) Possibility[B] {
	return From(func(tc *choice.TestCase) (B, error) {
		a, err := pa.Produce(tc)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Produce(tc)
	})
}

// OneOf picks one of the given Possibilities uniformly, via a single
// choice.Choice call over the branch index, then produces from that
// branch.
func OneOf[T any](ps ...Possibility[T]) Possibility[T] {
	if len(ps) == 0 {
		panic("gen.OneOf: at least one Possibility is required")
	}
	return From(func(tc *choice.TestCase) (T, error) {
		idx, err := choice.Choice(tc, uint64(len(ps)-1))
		if err != nil {
			var zero T
			return zero, err
		}
		return ps[idx].Produce(tc)
	})
}

// SampledFrom draws an index via Integers(0, len(seq)-1) and returns
// seq at that index, as spec.md §4.2 specifies.
func SampledFrom[T any](seq []T) Possibility[T] {
	if len(seq) == 0 {
		panic("gen.SampledFrom: sequence must not be empty")
	}
	idx := Integers(0, int64(len(seq)-1))
	return Map(idx, func(i int64) T { return seq[i] })
}
