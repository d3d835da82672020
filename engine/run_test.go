package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/db"
	"github.com/lucaskalb/choicex/gen"
)

func TestRun_PassingPropertyReportsPass(t *testing.T) {
	prop := &Property{
		Name: "identity",
		Args: []NamedArg{Named("n", gen.Integers(0, 100))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			return true
		},
	}
	cfg := Config{MaxExamples: 30, BufferSize: 32, RNG: choice.NewRNGState(1), DB: db.NoRecord, MaxShrinks: 100}
	res := Run(nil, prop, cfg)
	assert.Equal(t, Pass, res.Outcome)
}

func TestRun_FailingPropertyPersistsAndReportsFail(t *testing.T) {
	prop := &Property{
		Name: "sum<=1000",
		Args: []NamedArg{Named("xs", gen.Vectors(gen.Integers(0, 10_000), 0, 1000))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			xs := v["xs"].([]int64)
			sum := int64(0)
			for _, x := range xs {
				sum += x
			}
			return sum <= 1000
		},
	}
	memDB := newMemDB()
	cfg := Config{MaxExamples: 200, BufferSize: 256, RNG: choice.NewRNGState(5), DB: memDB, MaxShrinks: 2000}
	res := Run(nil, prop, cfg)
	require.Equal(t, Fail, res.Outcome)
	require.NotNil(t, res.Attempt)

	stored, ok, err := memDB.Get(prop.Name)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, *res.Attempt, stored)
}

func TestRun_BrokenPassingPropertyReportsError(t *testing.T) {
	prop := &Property{
		Name: "broken but passes",
		Args: []NamedArg{Named("n", gen.Integers(0, 10))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			return true
		},
	}
	cfg := Config{MaxExamples: 20, BufferSize: 32, RNG: choice.NewRNGState(1), DB: db.NoRecord, MaxShrinks: 100, Broken: true}
	res := Run(nil, prop, cfg)
	assert.Equal(t, Error, res.Outcome)
}

func TestRun_VacuousPropertyReportsPassWithZeroAcceptions(t *testing.T) {
	prop := &Property{
		Name: "always rejected",
		Args: []NamedArg{Named("n", gen.Integers(0, 10))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			Assume(tc, false)
			return true
		},
	}
	cfg := Config{MaxExamples: 20, BufferSize: 32, RNG: choice.NewRNGState(1), DB: db.NoRecord, MaxShrinks: 100}
	res := Run(nil, prop, cfg)
	assert.Equal(t, Pass, res.Outcome)
	assert.Equal(t, int64(0), res.Stats.Acceptions)
	assert.Greater(t, res.Stats.Rejections, int64(0))
}
