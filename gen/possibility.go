// Package gen is the possibility library: a compositional set of
// generators that consume integers from a choice.TestCase to produce
// typed values. No Possibility ever touches math/rand directly — every
// decision point routes through choice.Choice/choice.Weighted/
// choice.Forced, which is what makes shrinking the recorded choice
// sequence meaningful (spec.md §9).
package gen

import "github.com/lucaskalb/choicex/choice"

// Possibility is the public contract every generator implements. Produce
// either returns a T, having consumed some choices from tc, or fails
// with choice.ErrOverrun or choice.ErrInvalid.
type Possibility[T any] interface {
	Produce(tc *choice.TestCase) (T, error)
}

// Func adapts a plain function to the Possibility interface.
type Func[T any] struct {
	fn func(tc *choice.TestCase) (T, error)
}

// Produce implements Possibility.
func (f Func[T]) Produce(tc *choice.TestCase) (T, error) { return f.fn(tc) }

// From builds a Possibility from a closure. This is the escape hatch
// for custom generators, the way the teacher's gen.From built custom
// Generator[T] values from a (*rand.Rand, Size) closure.
func From[T any](fn func(tc *choice.TestCase) (T, error)) Possibility[T] {
	return Func[T]{fn: fn}
}
