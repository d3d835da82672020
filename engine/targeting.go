package engine

import "github.com/lucaskalb/choicex/choice"

// RunTargeting hill-climbs the choice sequence of the current best
// attempt (target_err if an error is tracked, otherwise best_scoring)
// to maximize its score, per spec.md §4.5. It runs until
// ShouldKeepGenerating returns false.
func RunTargeting(ts *TestState) {
	for ts.ShouldKeepGenerating() {
		base, ok := currentTargetAttempt(ts)
		if !ok || len(base.Choices) == 0 {
			return
		}
		i := ts.masterRand.Intn(len(base.Choices))
		hillClimbAt(ts, i)
	}
}

func currentTargetAttempt(ts *TestState) (choice.Attempt, bool) {
	if ts.TargetErr != nil {
		return ts.TargetErr.Attempt, true
	}
	if ts.BestScoring != nil {
		return ts.BestScoring.Attempt, true
	}
	return choice.Attempt{}, false
}

// probeAt evaluates the current best attempt with position i perturbed
// by delta, and reports whether that probe was an improvement. Each
// probe re-reads the current best attempt, since a successful probe
// moves it and the next probe should climb from the new position.
func probeAt(ts *TestState, i int, delta int64) bool {
	base, ok := currentTargetAttempt(ts)
	if !ok || i >= len(base.Choices) {
		return false
	}
	newVal := int64(base.Choices[i]) + delta
	if newVal < 0 {
		return false
	}
	prefix := append([]uint64(nil), base.Choices...)
	prefix[i] = uint64(newVal)
	tc := choice.New(prefix, ts.nextRNGState(), ts.bufferCap())
	more, better := TestFunction(ts, tc)
	return more || better
}

// hillClimbAt runs one exponential-probe-then-refine climb in each
// direction at position i, per spec.md §4.5.
func hillClimbAt(ts *TestState, i int) {
	climb(ts, i, 1)
	climb(ts, i, -1)
}

func climb(ts *TestState, i int, sign int64) {
	delta := int64(1)
	if !probeAt(ts, i, sign*delta) {
		return
	}
	for {
		next := delta * 2
		if !probeAt(ts, i, sign*next) {
			break
		}
		delta = next
	}
	for delta > 1 {
		half := delta / 2
		if probeAt(ts, i, sign*half) {
			delta = half
		} else {
			break
		}
	}
}
