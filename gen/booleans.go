package gen

import "github.com/lucaskalb/choicex/choice"

// Booleans generates a boolean with choice.Weighted(tc, 0.5), per
// spec.md §4.2.
func Booleans() Possibility[bool] {
	return From(func(tc *choice.TestCase) (bool, error) {
		return choice.Weighted(tc, 0.5)
	})
}
