package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/gen"
)

func TestCheckDeterminism_DeterministicGenerator(t *testing.T) {
	prop := &Property{
		Name: "deterministic",
		Args: []NamedArg{Named("n", gen.Integers(0, 1000)), Named("s", gen.Text(gen.AlphabetLower, 0, 5))},
	}
	class := CheckDeterminism(prop, choice.NewRNGState(42), 1000)
	assert.Equal(t, Deterministic, class)
}

func TestCheckDeterminism_SamePanicBothTimesIsDeterministic(t *testing.T) {
	evil := gen.From(func(tc *choice.TestCase) (int, error) {
		panic("always the same panic")
	})
	prop := &Property{
		Name: "throws consistently",
		Args: []NamedArg{Named("n", evil)},
	}
	class := CheckDeterminism(prop, choice.NewRNGState(1), 1000)
	assert.Equal(t, Deterministic, class)
}

func TestCheckDeterminism_DivergingTypesIsGenTypeNondeterministic(t *testing.T) {
	calls := 0
	flaky := gen.From(func(tc *choice.TestCase) (any, error) {
		calls++
		if calls%2 == 1 {
			return int64(1), nil
		}
		return "one", nil
	})
	prop := &Property{
		Name: "flaky type",
		Args: []NamedArg{Named("n", flaky)},
	}
	class := CheckDeterminism(prop, choice.NewRNGState(1), 1000)
	assert.Equal(t, GenTypeNondeterministic, class)
}
