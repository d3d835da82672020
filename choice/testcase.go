package choice

import "math/rand"

// TestCase is one in-progress draw. It is mutable and short-lived: it is
// owned by the draw that creates it, and ends with that draw. Anything
// that must survive past the draw (TestState.Result, an Example DB
// entry) is a Clone of TestCase.Attempt, never the TestCase itself.
type TestCase struct {
	Prefix   []uint64
	RNGSeed  RNGState
	MaxSize  int
	Attempt  Attempt

	targetingScore *float64
	// TargetingOverwritten is set the second time SetTargetingScore is
	// called on this TestCase. The caller (the Evaluator) is
	// responsible for warning exactly once when it sees this set.
	TargetingOverwritten bool

	rnd *rand.Rand
}

// New constructs a TestCase ready to be drawn into. prefix may be nil;
// when non-nil, draws replay it before falling back to the task-local
// PRNG seeded from seed.
func New(prefix []uint64, seed RNGState, maxSize int) *TestCase {
	return &TestCase{
		Prefix:  prefix,
		RNGSeed: seed,
		MaxSize: maxSize,
		Attempt: Attempt{MaxGeneration: -1},
		rnd:     seed.New(),
	}
}

// Rand returns the task-local PRNG reseeded from this TestCase's
// RNGSeed. User code that itself calls a PRNG (rather than going
// through Possibilities) should use this to stay reproducible, per
// spec.md §5.
func (tc *TestCase) Rand() *rand.Rand { return tc.rnd }

// Forced appends n to the choice sequence unconditionally. It is the
// one primitive that does not consult the prefix or the PRNG; every
// other primitive is built on it.
func Forced(tc *TestCase, n uint64) (uint64, error) {
	if len(tc.Attempt.Choices) >= tc.MaxSize {
		return 0, ErrOverrun
	}
	tc.Attempt.Choices = append(tc.Attempt.Choices, n)
	return n, nil
}

// Choice draws a value uniformly from [0, hi]. While the draw is still
// inside tc.Prefix, the next prefix element is replayed instead of
// drawing randomness; if that element exceeds hi, the draw fails with
// ErrInvalid (the prefix no longer matches what this generator would
// produce). Once past the prefix, the value comes from the task-local
// PRNG.
func Choice(tc *TestCase, hi uint64) (uint64, error) {
	idx := len(tc.Attempt.Choices)
	if idx < len(tc.Prefix) {
		v := tc.Prefix[idx]
		if v > hi {
			return 0, ErrInvalid
		}
		return Forced(tc, v)
	}
	v := uniform(tc.rnd, hi)
	return Forced(tc, v)
}

// Weighted draws a boolean that is true with probability p. Prefix
// values are accepted only if they are 0 or 1; anything else is
// ErrInvalid, matching Choice's replay-mismatch behavior.
func Weighted(tc *TestCase, p float64) (bool, error) {
	idx := len(tc.Attempt.Choices)
	if idx < len(tc.Prefix) {
		v := tc.Prefix[idx]
		if v > 1 {
			return false, ErrInvalid
		}
		if _, err := Forced(tc, v); err != nil {
			return false, err
		}
		return v == 1, nil
	}
	b := tc.rnd.Float64() < p
	var v uint64
	if b {
		v = 1
	}
	if _, err := Forced(tc, v); err != nil {
		return false, err
	}
	return b, nil
}

// uniform draws a uniformly distributed value in [0, hi] from r. hi may
// exceed the range a single call to r.Int63n can address directly (it
// requires a strictly positive bound), so hi==0 is special-cased.
func uniform(r *rand.Rand, hi uint64) uint64 {
	if hi == 0 {
		return 0
	}
	if hi < (1 << 63) {
		return uint64(r.Int63n(int64(hi) + 1))
	}
	// hi spans more than int64 can address directly: split into a high
	// and low half and combine, as spec.md §4.2 prescribes for
	// wider-than-primitive integer ranges.
	hiPart := uint64(r.Int63n(int64(hi>>32) + 1))
	loPart := uint64(r.Int63n(1 << 32))
	v := hiPart<<32 | loPart
	if v > hi {
		v %= hi + 1
	}
	return v
}

// RecordEvent appends a (label, value) pair to this draw's event log
// (spec.md §6.2's event(label, value) primitive).
func RecordEvent(tc *TestCase, label string, value any) {
	tc.Attempt.Events = append(tc.Attempt.Events, Event{Label: label, Value: value})
}

// SetTargetingScore records score as this draw's targeting score. Per
// spec.md §3, the field is writable at most once from the engine's
// point of view: a second write overwrites the score but sets
// TargetingOverwritten so the caller can warn exactly once.
func (tc *TestCase) SetTargetingScore(score float64) {
	if tc.targetingScore != nil {
		tc.TargetingOverwritten = true
	}
	tc.targetingScore = &score
}

// TargetingScore returns the recorded score and whether one was ever
// set.
func (tc *TestCase) TargetingScore() (float64, bool) {
	if tc.targetingScore == nil {
		return 0, false
	}
	return *tc.targetingScore, true
}
