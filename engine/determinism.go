package engine

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/lucaskalb/choicex/choice"
)

// DeterminismClass classifies a property's input generator per
// spec.md §4.7.
type DeterminismClass int

const (
	Deterministic DeterminismClass = iota
	Indeterminate
	GenTypeNondeterministic
	ThrowsNondeterministic
)

func (d DeterminismClass) String() string {
	switch d {
	case Deterministic:
		return "Deterministic"
	case Indeterminate:
		return "Indeterminate"
	case GenTypeNondeterministic:
		return "GenTypeNondeterministic"
	case ThrowsNondeterministic:
		return "ThrowsNondeterministic"
	default:
		return fmt.Sprintf("DeterminismClass(%d)", int(d))
	}
}

type genRun struct {
	values map[string]any
	threw  bool
	thrown any
}

func runGenOnce(prop *Property, rng choice.RNGState, maxSize int) (run genRun) {
	defer func() {
		if r := recover(); r != nil {
			run.threw = true
			run.thrown = r
		}
	}()
	tc := choice.New(nil, rng, maxSize)
	values, err := prop.GenInput(tc)
	if err != nil {
		run.threw = true
		run.thrown = err
		return
	}
	run.values = values
	return
}

// CheckDeterminism runs prop's input generator twice from the same
// initial RNG state and classifies the result per spec.md §4.7. It must
// run before search begins; a Nondeterministic classification means
// search is skipped entirely.
func CheckDeterminism(prop *Property, rng choice.RNGState, maxSize int) DeterminismClass {
	a := runGenOnce(prop, rng, maxSize)
	b := runGenOnce(prop, rng, maxSize)

	if a.threw || b.threw {
		if a.threw != b.threw {
			return ThrowsNondeterministic
		}
		// both threw
		if reflect.TypeOf(a.thrown) != reflect.TypeOf(b.thrown) || fmt.Sprint(a.thrown) != fmt.Sprint(b.thrown) {
			return ThrowsNondeterministic
		}
		return Deterministic
	}

	for _, arg := range prop.Args {
		va, vb := a.values[arg.Name], b.values[arg.Name]
		if reflect.TypeOf(va) != reflect.TypeOf(vb) {
			return GenTypeNondeterministic
		}
	}

	return compareValues(a.values, b.values)
}

// compareValues reports Deterministic when a and b compare equal via
// cmp.Equal (which itself prefers a type's own Equal(T) bool method),
// Indeterminate when cmp.Equal panics — unexported fields or cyclic
// types with no meaningful equality defined, per spec.md §4.7's escape
// hatch — and GenTypeNondeterministic when a real equality was
// available but the two draws genuinely differed; spec.md §4.7 does
// not name this last case separately, so it is folded into the
// "generator itself is not reproducible" bucket rather than treated as
// a passing Indeterminate.
func compareValues(a, b map[string]any) (class DeterminismClass) {
	defer func() {
		if recover() != nil {
			class = Indeterminate
		}
	}()
	if cmp.Equal(a, b) {
		return Deterministic
	}
	return GenTypeNondeterministic
}
