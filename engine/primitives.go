package engine

import (
	"fmt"

	"github.com/lucaskalb/choicex/choice"
)

// Assume rejects the current draw (Invalid) if cond is false, spec.md
// §6.2's assume(cond). It is implemented as a panic carrying
// choice.ErrInvalid so it can be called from anywhere inside a
// Property's Holds function and unwind straight back to the Evaluator,
// which recognizes the sentinel and classifies the draw as Invalid
// rather than as an arbitrary property exception.
func Assume(tc *choice.TestCase, cond bool) {
	if !cond {
		panic(choice.ErrInvalid)
	}
}

// Reject unconditionally rejects the current draw, spec.md §6.2's
// reject().
func Reject(tc *choice.TestCase) {
	panic(choice.ErrInvalid)
}

// Target records score for hill climbing, spec.md §6.2's target(score).
func Target(tc *choice.TestCase, score float64) {
	tc.SetTargetingScore(score)
}

// RecordEvent appends a (label, value) pair to the current draw's event
// log, spec.md §6.2's event(label, value).
func RecordEvent(tc *choice.TestCase, label string, value any) {
	choice.RecordEvent(tc, label, value)
}

// Fail is the engine's built-in error-raising helper: a property body
// can call it instead of panicking directly. It exists so
// §4.3.1's source-frame heuristic has a concrete helper identity to
// recognize and skip, attributing the error to Fail's caller rather
// than to Fail itself.
func Fail(tc *choice.TestCase, format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
