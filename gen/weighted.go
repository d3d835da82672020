package gen

import "github.com/lucaskalb/choicex/choice"

// WeightedNumbers draws an index in [0, len(weights)-1] distributed as
// weights/sum(weights), via a single wide choice compared against a
// cumulative-weight table — spec.md §4.2.
func WeightedNumbers(weights []float64) Possibility[int] {
	if len(weights) == 0 {
		panic("gen.WeightedNumbers: at least one weight is required")
	}
	const precision = uint64(1) << 32
	cum := make([]uint64, len(weights))
	var total float64
	for _, w := range weights {
		total += w
	}
	var running float64
	for i, w := range weights {
		running += w
		cum[i] = uint64(running / total * float64(precision))
	}
	cum[len(cum)-1] = precision

	return From(func(tc *choice.TestCase) (int, error) {
		v, err := choice.Choice(tc, precision-1)
		if err != nil {
			return 0, err
		}
		for i, c := range cum {
			if v < c {
				return i, nil
			}
		}
		return len(weights) - 1, nil
	})
}

// WeightedSample draws an index via WeightedNumbers and returns the
// corresponding value.
func WeightedSample[T any](values []T, weights []float64) Possibility[T] {
	if len(values) != len(weights) {
		panic("gen.WeightedSample: values and weights must be the same length")
	}
	idx := WeightedNumbers(weights)
	return Map(idx, func(i int) T { return values[i] })
}
