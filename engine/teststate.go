package engine

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lucaskalb/choicex/choice"
)

// BestScoring is the (score, Attempt) pair maximizing the last-recorded
// targeting score, per spec.md §3.
type BestScoring struct {
	Score   float64
	Attempt choice.Attempt
}

// TargetErrState is the smallest-known error-raising Attempt, together
// with the exception it raised (spec.md §3's target_err).
type TargetErrState struct {
	Err     CapturedError
	Attempt choice.Attempt
	Values  map[string]any
}

// TestState owns the whole search for one property run (spec.md §3):
// config, running statistics, the best counterexample found so far, the
// best scoring example for targeting, and the tracked error.
type TestState struct {
	Config   Config
	Property *Property
	Key      string // stable DB key for this property

	Stats Stats

	Result       *choice.Attempt
	ResultValues map[string]any
	ResultEvents []choice.Event

	BestScoring *BestScoring
	TargetErr   *TargetErrState

	ErrorCache map[errorCacheKey]bool

	TestIsTrivial           bool
	GenerationIndeterminate DeterminismClass

	Logger zerolog.Logger

	warn *warnOnce

	// masterRand derives one distinct, still-reproducible RNGState per
	// draw from Config.RNG: every draw needs its own independent
	// sub-stream, but the run as a whole must stay deterministic given
	// Config.RNG, so each sub-seed itself comes from a deterministic
	// source rather than fresh entropy.
	masterRand *rand.Rand

	startTime time.Time
	deadline  time.Time // zero value means "no deadline"
}

// NewTestState builds a fresh TestState for prop under cfg, storing key
// as its DB key and logging through logger.
func NewTestState(prop *Property, key string, cfg Config, logger zerolog.Logger) *TestState {
	ts := &TestState{
		Config:     cfg,
		Property:   prop,
		Key:        key,
		ErrorCache: make(map[errorCacheKey]bool),
		Logger:     logger,
		warn:       newWarnOnce(),
		masterRand: cfg.RNG.New(),
		startTime:  monotonicNow(),
	}
	if cfg.Timeout > 0 {
		ts.deadline = ts.startTime.Add(cfg.Timeout)
	}
	return ts
}

// nextRNGState returns the next in a deterministic sequence of distinct
// RNGStates, one per draw, derived from Config.RNG.
func (ts *TestState) nextRNGState() choice.RNGState {
	return choice.NewRNGState(ts.masterRand.Int63())
}

// bufferCap is the effective per-draw choice budget, spec.md §4.4 step
// 2's buffer_size*8.
func (ts *TestState) bufferCap() int {
	return ts.Config.BufferSize * 8
}

// DeadlineReached reports whether a configured deadline has passed.
func (ts *TestState) DeadlineReached() bool {
	if ts.deadline.IsZero() {
		return false
	}
	return monotonicNow().After(ts.deadline)
}

// ShouldKeepGenerating implements spec.md §4.4 step 3: whether the
// generator loop (or targeting) should draw another example.
func (ts *TestState) ShouldKeepGenerating() bool {
	if ts.TestIsTrivial {
		return false
	}
	if ts.Result != nil || ts.TargetErr != nil {
		return false
	}
	if ts.Config.MaxExamples >= 0 && ts.Stats.Acceptions >= int64(ts.Config.MaxExamples) {
		return false
	}
	if ts.Config.MaxExamples >= 0 && ts.Stats.Attempts >= 10*int64(ts.Config.MaxExamples) {
		return false
	}
	if ts.DeadlineReached() {
		return false
	}
	return true
}

// ShouldSwitchToTargeting reports whether the generator loop should
// stop drawing fresh examples and hand off to hill-climbing, per
// spec.md §4.4 step 4: once a targeting score is known, switch after
// roughly half the example budget is consumed.
func (ts *TestState) ShouldSwitchToTargeting() bool {
	if ts.BestScoring == nil {
		return false
	}
	if ts.Config.MaxExamples < 0 {
		return false
	}
	return ts.Stats.Acceptions >= int64(ts.Config.MaxExamples)/2
}

// monotonicNow is the engine's one time source, kept in one place; it
// is never stored verbatim into any replayable Attempt, only used for
// deadline and duration bookkeeping.
func monotonicNow() time.Time { return time.Now() }
