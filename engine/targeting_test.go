package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/db"
	"github.com/lucaskalb/choicex/gen"
)

// TestTarget_ClimbsTowardHigherScore exercises the S3-style scenario:
// a property that scores -|target-n| should climb uphill from a random
// starting point toward the target within a generous example budget.
func TestTarget_ClimbsTowardHigherScore(t *testing.T) {
	const wanted = int64(500)
	prop := &Property{
		Name: "climb",
		Args: []NamedArg{Named("n", gen.Integers(0, 1000))},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			n := v["n"].(int64)
			delta := wanted - n
			if delta < 0 {
				delta = -delta
			}
			Target(tc, -float64(delta))
			return n != wanted
		},
	}
	cfg := Config{MaxExamples: 2000, BufferSize: 64, RNG: choice.NewRNGState(3), DB: db.NoRecord, MaxShrinks: 100}
	ts := NewTestState(prop, "k", cfg, zerolog.Nop())

	Generate(ts)
	RunTargeting(ts)

	require.NotNil(t, ts.BestScoring)
	if ts.Result == nil {
		assert.GreaterOrEqual(t, ts.BestScoring.Score, -100.0)
	}
}

func TestCurrentTargetAttempt_PrefersTargetErrOverBestScoring(t *testing.T) {
	cfg := Config{MaxExamples: 10, BufferSize: 8, RNG: choice.NewRNGState(1), DB: db.NoRecord, MaxShrinks: 10}
	ts := NewTestState(&Property{Name: "p"}, "k", cfg, zerolog.Nop())
	ts.BestScoring = &BestScoring{Score: 1, Attempt: choice.Attempt{Choices: []uint64{1}}}
	ts.TargetErr = &TargetErrState{Attempt: choice.Attempt{Choices: []uint64{2}}}

	a, ok := currentTargetAttempt(ts)
	require.True(t, ok)
	assert.Equal(t, []uint64{2}, a.Choices)
}
