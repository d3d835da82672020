package engine

import (
	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/gen"
)

// NamedArg binds one property parameter's name to the Possibility that
// draws it. The surface macro that would normally derive this list from
// a user function's parameter names is out of scope (spec.md §1); a
// Property is built by listing NamedArgs directly.
type NamedArg struct {
	Name        string
	Possibility gen.Possibility[any]
}

// Named wraps a typed Possibility as a NamedArg, erasing its type to
// any so heterogeneous parameter lists can share one slice.
func Named[T any](name string, p gen.Possibility[T]) NamedArg {
	return NamedArg{
		Name:        name,
		Possibility: gen.Map(p, func(v T) any { return v }),
	}
}

// Property is the engine-side half of spec.md §6.1: a name, an ordered
// list of arguments, and a Holds function that returns true when the
// property is satisfied for the drawn values. The macro front-end
// (out of scope) would normally derive Args from Holds's own parameter
// list; here they are supplied explicitly.
type Property struct {
	Name string
	Args []NamedArg
	// Holds runs the user's check against the drawn argument values. It
	// may call choice.TestCase-scoped primitives (target, event) via tc,
	// and may panic to report an error condition like any other Go code;
	// the Evaluator recovers it.
	Holds func(tc *choice.TestCase, values map[string]any) bool
}

// GenInput draws one value per Arg in declaration order, threading the
// same TestCase through each (spec.md §6.1's gen_input).
func (p *Property) GenInput(tc *choice.TestCase) (map[string]any, error) {
	values := make(map[string]any, len(p.Args))
	for _, a := range p.Args {
		v, err := a.Possibility.Produce(tc)
		if err != nil {
			return nil, err
		}
		values[a.Name] = v
	}
	return values, nil
}

// IsInteresting draws input and calls Holds, returning the negation of
// its result: true means a counterexample (spec.md §6.1's
// is_interesting). A non-nil error means the draw itself failed
// (Overrun/Invalid) before Holds ever ran.
func (p *Property) IsInteresting(tc *choice.TestCase) (bool, map[string]any, error) {
	values, err := p.GenInput(tc)
	if err != nil {
		return false, nil, err
	}
	return !p.Holds(tc, values), values, nil
}
