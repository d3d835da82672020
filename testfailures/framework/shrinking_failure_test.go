//go:build demo
// +build demo

package framework

import (
	"testing"

	"github.com/lucaskalb/choicex/choice"
	"github.com/lucaskalb/choicex/db"
	"github.com/lucaskalb/choicex/engine"
	"github.com/lucaskalb/choicex/gen"
)

// TestForAll_ShrinkingFailure exercises the multi-pass shrinker ahead
// of an intentional ForAll failure, so the Fatalf output shows a
// minimized counterexample rather than whatever was first generated.
func TestForAll_ShrinkingFailure(t *testing.T) {
	prop := &engine.Property{
		Name: "n stays below 10",
		Args: []engine.NamedArg{
			engine.Named("n", gen.Integers(0, 1000)),
		},
		Holds: func(tc *choice.TestCase, v map[string]any) bool {
			return v["n"].(int64) < 10
		},
	}
	cfg := engine.Config{MaxExamples: 200, BufferSize: 32, RNG: choice.NewRNGState(12345), DB: db.NoRecord, MaxShrinks: 500}
	engine.ForAll(t, prop, cfg)
}
