package gen

import "github.com/lucaskalb/choicex/choice"

// Recursive builds a bounded-depth recursive generator: it draws a
// layer count in [0, maxLayers], applies wrap that many times to base,
// and produces from the result. Each wrap call operates on the
// already-constructed child Possibility, so the composition is a DAG
// rather than a self-referential cycle — spec.md §9 calls this out
// explicitly as the way to avoid cyclic references in Possibility
// composition.
func Recursive[T any](base Possibility[T], wrap func(Possibility[T]) Possibility[T], maxLayers int) Possibility[T] {
	if maxLayers < 0 {
		maxLayers = 0
	}
	layers := make([]Possibility[T], maxLayers+1)
	layers[0] = base
	for i := 1; i <= maxLayers; i++ {
		layers[i] = wrap(layers[i-1])
	}
	depth := Integers(0, int64(maxLayers))
	return From(func(tc *choice.TestCase) (T, error) {
		n, err := depth.Produce(tc)
		if err != nil {
			var zero T
			return zero, err
		}
		return layers[n].Produce(tc)
	})
}
