// Package choice implements the deterministic choice-sequence substrate
// that every generator in this module is built on. A draw never touches
// randomness directly: it asks a TestCase for the next unsigned integer,
// and the TestCase decides whether that integer comes from a replayed
// prefix or from the task-local PRNG. Shrinking then reduces to
// transformations on the recorded sequence of integers, not on whatever
// typed value a generator eventually produced from them.
package choice

import "errors"

// ErrOverrun is returned when a draw would exceed the TestCase's choice
// budget (MaxSize). The caller must discard the draw; it does not
// indicate a failing property.
var ErrOverrun = errors.New("choice: overrun")

// ErrInvalid is returned when a draw is rejected, either because the
// caller explicitly rejected it (assume/reject) or because a prefix
// value disagrees with the bound requested during replay.
var ErrInvalid = errors.New("choice: invalid")
