package gen

import "github.com/lucaskalb/choicex/choice"

// Pair is the value type produced by Pairs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Pairs produces pa and pb in sequence from the same TestCase, per
// spec.md §4.2's "Pairs: sequential produce."
func Pairs[A, B any](pa Possibility[A], pb Possibility[B]) Possibility[Pair[A, B]] {
	return From(func(tc *choice.TestCase) (Pair[A, B], error) {
		a, err := pa.Produce(tc)
		if err != nil {
			return Pair[A, B]{}, err
		}
		b, err := pb.Produce(tc)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: a, Second: b}, nil
	})
}
