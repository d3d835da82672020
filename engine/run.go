package engine

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucaskalb/choicex/db"
)

// Run drives one full property check end to end: the determinism
// check (spec.md §4.7), generation (§4.4), targeting (§4.5), shrinking
// (§4.6), and Example DB persistence (§4.9), returning the final
// Result (§4.10). t may be nil for non-test callers; when non-nil,
// logging is routed through it.
func Run(t *testing.T, prop *Property, cfg Config) Result {
	key := stableKey(t, prop)
	cfg.DB = resolveDB(cfg, t)

	logger := loggerFor(t, cfg.Verbose)
	ts := NewTestState(prop, key, cfg, logger)

	res := runSearch(ts, prop, cfg)

	if cfg.StatsFile != "" {
		if err := writeStatsFile(cfg.StatsFile, res.Stats); err != nil {
			ts.Logger.Warn().Err(err).Str("path", cfg.StatsFile).Msg("failed to write statistics snapshot")
		}
	}

	if cfg.Record {
		ts.Logger.Log().
			Str("property", prop.Name).
			Str("outcome", res.Outcome.String()).
			Int64("attempts", res.Stats.Attempts).
			Msg("property run complete")
	}

	return res
}

// runSearch drives the search proper (spec.md §4.7-§4.10); split out of
// Run so every exit path funnels through one place that can still write
// -choicex.statsfile afterward.
func runSearch(ts *TestState, prop *Property, cfg Config) Result {
	ts.GenerationIndeterminate = CheckDeterminism(prop, cfg.RNG, ts.bufferCap())
	if ts.GenerationIndeterminate == ThrowsNondeterministic || ts.GenerationIndeterminate == GenTypeNondeterministic {
		return buildResult(ts, Nondeterministic)
	}

	Generate(ts)
	RunTargeting(ts)

	if ts.Result != nil || ts.TargetErr != nil {
		Shrink(ts)
		persist(ts)
	}

	if ts.Stats.Invocations == 0 && ts.DeadlineReached() {
		return buildResult(ts, Timeout)
	}

	outcome := Pass
	switch {
	case ts.TargetErr != nil:
		outcome = Error
	case ts.Result != nil:
		outcome = Fail
	}

	if outcome == Pass && cfg.Broken {
		ts.Logger.Warn().Str("property", prop.Name).Msg("marked broken but passed; fix the property or un-mark broken")
		ts.Stats.WallTime = monotonicNow().Sub(ts.startTime)
		return Result{
			Outcome: Error,
			Stats:   ts.Stats.Snapshot(),
			Err: &CapturedError{
				Value:       fmt.Errorf("property %q is marked broken but passed", prop.Name),
				SourceFrame: "",
			},
		}
	}

	return buildResult(ts, outcome)
}

// ForAll wraps Run with the teacher's t.Fatalf-on-failure ergonomics,
// so a property reads like a normal Go test instead of requiring the
// caller to inspect a Result by hand.
func ForAll(t *testing.T, prop *Property, cfg Config) Result {
	t.Helper()
	res := Run(t, prop, cfg)
	switch res.Outcome {
	case Fail:
		t.Fatalf("[choicex] property %q failed\ncounterexample: %#v\nevents: %v",
			prop.Name, res.Values, res.Events)
	case Error:
		var errVal any
		if res.Err != nil {
			errVal = res.Err.Value
		}
		t.Fatalf("[choicex] property %q raised an error: %v\nexample: %#v",
			prop.Name, errVal, res.Values)
	case Timeout:
		t.Fatalf("[choicex] property %q timed out before any example completed", prop.Name)
	case Nondeterministic:
		t.Fatalf("[choicex] property %q has a nondeterministic generator or body", prop.Name)
	}
	return res
}

func buildResult(ts *TestState, outcome Outcome) Result {
	ts.Stats.WallTime = monotonicNow().Sub(ts.startTime)
	res := Result{Outcome: outcome, Stats: ts.Stats.Snapshot()}
	switch outcome {
	case Fail:
		res.Attempt = ts.Result
		res.Values = ts.ResultValues
		res.Events = ts.ResultEvents
		if ts.BestScoring != nil {
			res.Score = &ts.BestScoring.Score
		}
	case Error:
		if ts.TargetErr != nil {
			res.Attempt = &ts.TargetErr.Attempt
			res.Values = ts.TargetErr.Values
			res.Events = ts.TargetErr.Attempt.Events
			errCopy := ts.TargetErr.Err
			res.Err = &errCopy
		}
	case Pass:
		if ts.BestScoring != nil {
			res.Attempt = &ts.BestScoring.Attempt
			res.Score = &ts.BestScoring.Score
			res.Events = ts.BestScoring.Attempt.Events
		}
	}
	return res
}

// persist writes the best-known interesting Attempt under ts.Key,
// preferring a genuine failure over a tracked error, per spec.md §4.9's
// "on failure (Fail or Error), write under a key derived from the
// property's stable identifier."
func persist(ts *TestState) {
	var attempt = ts.Result
	if attempt == nil && ts.TargetErr != nil {
		attempt = &ts.TargetErr.Attempt
	}
	if attempt == nil {
		return
	}
	if err := ts.Config.DB.Put(ts.Key, *attempt); err != nil {
		ts.Logger.Warn().Err(err).Str("key", ts.Key).Msg("failed to persist counterexample to the example DB")
	}
}

// stableKey derives spec.md §4.9's "property's stable identifier":
// the test name (if any) joined with the property's own name.
func stableKey(t *testing.T, prop *Property) string {
	if t == nil {
		return prop.Name
	}
	return t.Name() + "/" + prop.Name
}

// resolveDB substitutes a directory-backed DB for the db.Unset
// sentinel the first time one is needed, per spec.md §4.9.
func resolveDB(cfg Config, t *testing.T) db.DB {
	if cfg.DB != nil && cfg.DB != db.Unset {
		return cfg.DB
	}
	dir := filepath.Join(".choicex", moduleDirFor(t))
	fdb, err := db.NewFileDB(dir)
	if err != nil {
		// Falling back to NoRecord rather than failing the run outright:
		// an unwritable DB directory should not itself fail properties
		// that would otherwise pass.
		return db.NoRecord
	}
	return fdb
}

// moduleDirFor derives spec.md §6.5's "one directory per
// property-owning test module" from the root of t's test name, since a
// *testing.T does not otherwise expose its package path at runtime.
func moduleDirFor(t *testing.T) string {
	if t == nil {
		return "default"
	}
	name := t.Name()
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	return name
}
