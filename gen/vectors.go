package gen

import "github.com/lucaskalb/choicex/choice"

// continueProbability biases the per-element continuation bit towards
// "keep going", so freshly generated vectors have a natural, non-tiny
// length distribution while still shrinking cleanly: a shrink pass that
// forces the bit to 0 truncates the collection without touching
// anything generated after it (spec.md §9, "length-before-value
// encoding").
const continueProbability = 0.9

// Vectors generates a []T of length in [min, max] from elem. Before min
// elements have been produced the continuation bit is forced to 1;
// once max have been produced it is forced to 0; in between it is a
// weighted coin so the "remove k" shrink pass can collapse the
// collection by flipping a single bit to 0.
func Vectors[T any](elem Possibility[T], min, max int) Possibility[[]T] {
	if max < min {
		max = min
	}
	return From(func(tc *choice.TestCase) ([]T, error) {
		out := make([]T, 0, min)
		for {
			n := len(out)
			var cont bool
			var err error
			switch {
			case n < min:
				_, err = choice.Forced(tc, 1)
				cont = true
			case n >= max:
				_, err = choice.Forced(tc, 0)
				cont = false
			default:
				cont, err = choice.Weighted(tc, continueProbability)
			}
			if err != nil {
				return nil, err
			}
			if !cont {
				return out, nil
			}
			v, err := elem.Produce(tc)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	})
}
