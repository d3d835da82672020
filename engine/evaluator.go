package engine

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/lucaskalb/choicex/choice"
)

// helperFrameMarkers identifies frames belonging to a built-in
// error-raising helper, so §4.3.1's source-frame heuristic can skip
// past it to the caller that actually decided to fail.
var helperFrameMarkers = []string{
	"github.com/lucaskalb/choicex/engine.Fail",
}

// TestFunction is the single point at which the user property runs
// (spec.md §4.3). It returns whether this draw was more interesting
// than anything seen so far, and whether it improved the tracked
// targeting score.
func TestFunction(ts *TestState, tc *choice.TestCase) (wasMoreInteresting, wasBetter bool) {
	ts.Stats.Attempts++

	genStart := monotonicNow()
	values, err := ts.Property.GenInput(tc)
	ts.Stats.recordGenTime(monotonicNow().Sub(genStart))

	if err != nil {
		switch {
		case errors.Is(err, choice.ErrOverrun):
			ts.Stats.Overruns++
		default:
			ts.Stats.Rejections++
		}
		return false, false
	}

	propStart := monotonicNow()
	holds, rejected, captured := runHolds(ts, tc, values)
	ts.Stats.recordPropTime(monotonicNow().Sub(propStart))
	ts.Stats.Invocations++

	ts.TestIsTrivial = len(tc.Attempt.Choices) == 0

	if rejected {
		ts.Stats.Rejections++
		return false, false
	}
	ts.Stats.Acceptions++

	if captured != nil {
		return handleError(ts, tc, values, captured)
	}

	interesting := !holds
	if !interesting {
		_, better := updateBestScoring(ts, tc, false)
		return false, better
	}

	return handleCounterexample(ts, tc, values)
}

// runHolds calls the property body, recovering a panic into either a
// rejection (Assume/Reject's choice.ErrInvalid sentinel) or a captured
// error with its attributed source frame.
func runHolds(ts *TestState, tc *choice.TestCase, values map[string]any) (holds, rejected bool, captured *CapturedError) {
	defer func() {
		if r := recover(); r != nil {
			if errors.Is(asError(r), choice.ErrInvalid) {
				rejected = true
				return
			}
			captured = capturePanic(r)
		}
	}()
	holds = ts.Property.Holds(tc, values)
	return
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return nil
}

// capturePanic builds a CapturedError from a recovered panic value,
// filtering the stack to frames above this function and attributing a
// source frame per spec.md §4.3.1.
func capturePanic(r any) *CapturedError {
	const maxFrames = 32
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(4, pcs) // skip runtime.Callers, capturePanic, the deferred closure, runtime.gopanic
	frames := runtime.CallersFrames(pcs[:n])

	var names []string
	userDepth := -1
	for {
		f, more := frames.Next()
		if userDepth < 0 && f.Function == "github.com/lucaskalb/choicex/engine.runHolds" {
			userDepth = len(names)
		}
		names = append(names, fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line))
		if !more || len(names) >= maxFrames {
			break
		}
	}
	if userDepth < 0 {
		userDepth = len(names)
	}

	return &CapturedError{
		Value:       r,
		Frames:      names,
		SourceFrame: sourceFrame(names),
		UserDepth:   userDepth,
	}
}

func sourceFrame(frames []string) string {
	if len(frames) == 0 {
		return ""
	}
	if len(frames) >= 2 && isHelperFrame(frames[0]) {
		return frames[1]
	}
	return frames[0]
}

func isHelperFrame(frame string) bool {
	for _, marker := range helperFrameMarkers {
		if strings.Contains(frame, marker) {
			return true
		}
	}
	return false
}

func errorKind(v any) string {
	return reflect.TypeOf(v).String()
}

// handleError implements spec.md §4.3 step 6's "if an error was
// raised" branch.
func handleError(ts *TestState, tc *choice.TestCase, values map[string]any, captured *CapturedError) (wasMoreInteresting, wasBetter bool) {
	_, wasBetter = updateBestScoring(ts, tc, true)

	if ts.TargetErr == nil {
		ts.TargetErr = &TargetErrState{Err: *captured, Attempt: tc.Attempt.Clone(), Values: values}
		return true, wasBetter
	}

	prior := ts.TargetErr.Err
	sameError := errorKind(captured.Value) == errorKind(prior.Value) && captured.SourceFrame == prior.SourceFrame
	if !sameError {
		key := errorCacheKey{Kind: errorKind(captured.Value), SourceFrame: captured.SourceFrame}
		if !ts.ErrorCache[key] {
			ts.ErrorCache[key] = true
			ts.Logger.Warn().
				Str("kind", key.Kind).
				Str("sourceFrame", key.SourceFrame).
				Msg("ignoring distinct error while a different target_err is already tracked")
		}
		return false, wasBetter
	}

	better := captured.UserDepth < prior.UserDepth ||
		(captured.UserDepth == prior.UserDepth && tc.Attempt.Less(ts.TargetErr.Attempt))
	if better {
		ts.TargetErr = &TargetErrState{Err: *captured, Attempt: tc.Attempt.Clone(), Values: values}
		return true, wasBetter
	}
	return false, wasBetter
}

// handleCounterexample implements spec.md §4.3 step 6's "if no error"
// branch plus the shared targeting update.
func handleCounterexample(ts *TestState, tc *choice.TestCase, values map[string]any) (wasMoreInteresting, wasBetter bool) {
	if ts.Result == nil || tc.Attempt.Less(*ts.Result) {
		clone := tc.Attempt.Clone()
		ts.Result = &clone
		ts.ResultValues = values
		ts.ResultEvents = append([]choice.Event(nil), tc.Attempt.Events...)
		wasMoreInteresting = true
	}
	_, wasBetter = updateBestScoring(ts, tc, true)
	return wasMoreInteresting, wasBetter
}

// updateBestScoring applies the targeting-score update shared by every
// branch of step 6 (and the non-interesting path of step 5). When
// preferLargerOnTie is set (the interesting-path case), a tied score
// still replaces BestScoring if the new Attempt is larger, leaving the
// shrinker something to reduce later (spec.md §4.3 step 6's called-out
// tie-break).
func updateBestScoring(ts *TestState, tc *choice.TestCase, preferLargerOnTie bool) (hadScore, wasBetter bool) {
	score, ok := tc.TargetingScore()
	if tc.TargetingOverwritten {
		ts.warn.do("targeting-double-write", func() {
			ts.Logger.Warn().Msg("target() was called twice in the same TestCase; using the last value")
		})
	}
	if !ok {
		return false, false
	}
	switch {
	case ts.BestScoring == nil, score > ts.BestScoring.Score:
		ts.BestScoring = &BestScoring{Score: score, Attempt: tc.Attempt.Clone()}
		ts.Stats.Improvements++
		return true, true
	case preferLargerOnTie && score == ts.BestScoring.Score && ts.BestScoring.Attempt.Less(tc.Attempt):
		ts.BestScoring = &BestScoring{Score: score, Attempt: tc.Attempt.Clone()}
		ts.Stats.Improvements++
		return true, true
	default:
		return true, false
	}
}
