package engine

import "github.com/lucaskalb/choicex/choice"

// Generate implements spec.md §4.4: replay a persisted Attempt first if
// one exists, then draw fresh TestCases until should_keep_generating
// becomes false or a targeting score appears and the switch-over point
// is reached.
func Generate(ts *TestState) {
	if prev, ok, err := ts.Config.DB.Get(ts.Key); err == nil && ok {
		tc := choice.New(prev.Choices, ts.nextRNGState(), ts.bufferCap())
		TestFunction(ts, tc)
	}

	generation := 0
	for ts.ShouldKeepGenerating() {
		if ts.ShouldSwitchToTargeting() {
			return
		}
		generation++
		tc := choice.New(nil, ts.nextRNGState(), ts.bufferCap())
		tc.Attempt.Generation = generation
		TestFunction(ts, tc)
	}
}
