package gen

import "github.com/lucaskalb/choicex/choice"

// Just always produces v, consuming no choices.
func Just[T any](v T) Possibility[T] {
	return From(func(_ *choice.TestCase) (T, error) { return v, nil })
}
