package engine

import (
	"math"
	"sort"

	"github.com/lucaskalb/choicex/choice"
)

// Shrink reduces the Attempt stored in ts.Result (or ts.TargetErr if
// only an error was seen) to a local minimum, per spec.md §4.6: the
// seven sub-passes below run in order, looping outward until a full
// cycle yields no improvement anywhere. A configured deadline that has
// passed stops shrinking at the next sub-pass boundary.
func Shrink(ts *TestState) {
	if ts.Result == nil && ts.TargetErr == nil {
		return
	}

	passes := []func(*TestState) bool{
		removeKPass,
		floatNormalizationPass,
		zeroKPass,
		reducePass,
		sortKPass,
		swapKPass,
		redistributeKPass,
	}

	iterations := 0
	for {
		anyImproved := false
		for _, pass := range passes {
			if ts.Result == nil && ts.TargetErr == nil {
				return
			}
			if ts.DeadlineReached() {
				return
			}
			if pass(ts) {
				anyImproved = true
			}
			iterations++
			if ts.Config.MaxShrinks > 0 && iterations >= ts.Config.MaxShrinks {
				return
			}
		}
		if !anyImproved {
			return
		}
	}
}

// currentChoices returns the choice sequence currently being shrunk.
func currentChoices(ts *TestState) []uint64 {
	if ts.Result != nil {
		return ts.Result.Choices
	}
	if ts.TargetErr != nil {
		return ts.TargetErr.Attempt.Choices
	}
	return nil
}

// consider re-evaluates candidate through the Evaluator and reports
// whether the Evaluator adopted it as more interesting than the current
// result (still interesting and strictly smaller), per spec.md §4.6's
// consider(ts, attempt). A candidate identical to
// the current sequence is accepted without re-evaluation.
func consider(ts *TestState, candidate []uint64) bool {
	if equalUint64(candidate, currentChoices(ts)) {
		return true
	}
	tc := choice.New(candidate, ts.nextRNGState(), ts.bufferCap())
	more, _ := TestFunction(ts, tc)
	if more {
		ts.Stats.Shrinks++
	}
	return more
}

func equalUint64(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// removeKPass implements sub-pass 1: slide a window of k and delete it;
// if the element before the window is non-zero, also try decrementing
// it together with the deletion, to untie length/value encodings.
func removeKPass(ts *TestState) bool {
	improved := false
	n := len(currentChoices(ts))
	largeBlock := max(16, n/8)
	for _, k := range []int{largeBlock, 8, 4, 2, 1} {
		if k <= 0 {
			continue
		}
		start := 0
		for {
			choices := currentChoices(ts)
			if start+k > len(choices) {
				break
			}
			candidate := make([]uint64, 0, len(choices)-k)
			candidate = append(candidate, choices[:start]...)
			candidate = append(candidate, choices[start+k:]...)
			if consider(ts, candidate) {
				improved = true
				continue // sequence shrank in place; retry same start
			}
			if start > 0 && choices[start-1] != 0 {
				withDecrement := append([]uint64(nil), choices[:start]...)
				withDecrement[len(withDecrement)-1]--
				withDecrement = append(withDecrement, choices[start+k:]...)
				if consider(ts, withDecrement) {
					improved = true
					continue
				}
			}
			start++
		}
	}
	return improved
}

// floatNormalizationPass implements sub-pass 2: any choice whose bit
// pattern denotes a NaN float64 is replaced by the same-signed infinity
// (spec.md §9 Open Questions resolves the NaN-normalization target as
// signed infinity, matching the source).
func floatNormalizationPass(ts *TestState) bool {
	improved := false
	for i := range currentChoices(ts) {
		choices := currentChoices(ts)
		if i >= len(choices) {
			continue
		}
		bits := choices[i]
		if !math.IsNaN(math.Float64frombits(bits)) {
			continue
		}
		sign := bits >> 63
		infBits := math.Float64bits(math.Inf(1))
		if sign == 1 {
			infBits = math.Float64bits(math.Inf(-1))
		}
		candidate := append([]uint64(nil), choices...)
		candidate[i] = infBits
		if consider(ts, candidate) {
			improved = true
		}
	}
	return improved
}

// zeroKPass implements sub-pass 3: replace non-all-zero k-length
// windows with zeros.
func zeroKPass(ts *TestState) bool {
	improved := false
	for _, k := range []int{8, 4, 2} {
		start := 0
		for {
			choices := currentChoices(ts)
			if start+k > len(choices) {
				break
			}
			allZero := true
			for _, v := range choices[start : start+k] {
				if v != 0 {
					allZero = false
					break
				}
			}
			if !allZero {
				candidate := append([]uint64(nil), choices...)
				for j := start; j < start+k; j++ {
					candidate[j] = 0
				}
				if consider(ts, candidate) {
					improved = true
				}
			}
			start++
		}
	}
	return improved
}

// reducePass implements sub-pass 4: from right to left, binary-search
// downward to the smallest value still interesting at that position.
func reducePass(ts *TestState) bool {
	improved := false
	for pos := len(currentChoices(ts)) - 1; pos >= 0; pos-- {
		if reduceAt(ts, pos) {
			improved = true
		}
	}
	return improved
}

// reduceAt binary-searches position pos down to the smallest value
// still interesting, reused by reducePass and by swapKPass's post-swap
// refinement.
func reduceAt(ts *TestState, pos int) bool {
	choices := currentChoices(ts)
	if pos < 0 || pos >= len(choices) {
		return false
	}
	hi := choices[pos]
	if hi == 0 {
		return false
	}

	zeroCandidate := append([]uint64(nil), choices...)
	zeroCandidate[pos] = 0
	if consider(ts, zeroCandidate) {
		return true
	}

	improved := false
	low, high := uint64(1), hi-1
	for low <= high {
		mid := low + (high-low)/2
		cur := currentChoices(ts)
		if pos >= len(cur) {
			break
		}
		candidate := append([]uint64(nil), cur...)
		candidate[pos] = mid
		if consider(ts, candidate) {
			improved = true
			if mid == 0 {
				break
			}
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	return improved
}

// sortKPass implements sub-pass 5: sort each not-already-sorted
// k-length window ascending.
func sortKPass(ts *TestState) bool {
	improved := false
	for _, k := range []int{8, 4, 2} {
		start := 0
		for {
			choices := currentChoices(ts)
			if start+k > len(choices) {
				break
			}
			window := append([]uint64(nil), choices[start:start+k]...)
			sorted := append([]uint64(nil), window...)
			sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
			if !equalUint64(window, sorted) {
				candidate := append([]uint64(nil), choices...)
				copy(candidate[start:start+k], sorted)
				if consider(ts, candidate) {
					improved = true
				}
			}
			start++
		}
	}
	return improved
}

// swapKPass implements sub-pass 6: for each pair of non-equal positions
// k apart, swap them and binary-search the left value down.
func swapKPass(ts *TestState) bool {
	improved := false
	for _, k := range []int{2, 1} {
		i := 0
		for {
			choices := currentChoices(ts)
			j := i + k
			if j >= len(choices) {
				break
			}
			if choices[i] != choices[j] {
				candidate := append([]uint64(nil), choices...)
				candidate[i], candidate[j] = candidate[j], candidate[i]
				if consider(ts, candidate) {
					improved = true
					reduceAt(ts, i)
				}
			}
			i++
		}
	}
	return improved
}

// redistributeKPass implements sub-pass 7: for each pair k apart,
// preserve their sum while binary-searching the left side down.
func redistributeKPass(ts *TestState) bool {
	improved := false
	for _, k := range []int{2, 1} {
		i := 0
		for {
			choices := currentChoices(ts)
			j := i + k
			if j >= len(choices) {
				break
			}
			sum := choices[i] + choices[j]
			if redistributeAt(ts, i, j, sum) {
				improved = true
			}
			i++
		}
	}
	return improved
}

func redistributeAt(ts *TestState, i, j int, sum uint64) bool {
	improved := false
	low, high := uint64(0), sum
	for low <= high {
		mid := low + (high-low)/2
		cur := currentChoices(ts)
		if i >= len(cur) || j >= len(cur) {
			break
		}
		candidate := append([]uint64(nil), cur...)
		candidate[i] = mid
		candidate[j] = sum - mid
		if consider(ts, candidate) {
			improved = true
			if mid == 0 {
				break
			}
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	return improved
}
