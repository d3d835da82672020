package engine

import (
	"fmt"

	"github.com/lucaskalb/choicex/choice"
)

// Outcome is the top-level result taxonomy from spec.md §4.10.
type Outcome int

const (
	Pass Outcome = iota
	Fail
	Error
	Timeout
	Nondeterministic
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "Pass"
	case Fail:
		return "Fail"
	case Error:
		return "Error"
	case Timeout:
		return "Timeout"
	case Nondeterministic:
		return "Nondeterministic"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// CapturedError holds an exception value raised by a property body,
// together with the heuristic attribution spec.md §4.3.1 describes.
type CapturedError struct {
	// Value is the recovered panic value.
	Value any
	// Frames is the filtered call stack at the point of the panic,
	// innermost first.
	Frames []string
	// SourceFrame is the frame §4.3.1 attributes the error to: the top
	// frame, or the second frame when the top frame belongs to a
	// known error-raising helper.
	SourceFrame string
	// UserDepth is the number of frames before the Evaluator's own
	// frame — smaller means "closer to the property body".
	UserDepth int
}

// errorCacheKey identifies a (exception-kind, source-frame) pair
// already warned about once, per spec.md §4.3 step 6.
type errorCacheKey struct {
	Kind        string
	SourceFrame string
}

// Result is the outcome of a finished run: the Outcome tag plus
// whichever payload fields apply to it (spec.md §4.10).
type Result struct {
	Outcome Outcome

	// Fail / Error payload.
	Attempt *choice.Attempt
	Values  map[string]any
	Score   *float64
	Events  []choice.Event

	// Error-only payload.
	Err *CapturedError

	Stats Snapshot
}
