//go:build demo
// +build demo

package demo

import (
	"testing"

	"github.com/lucaskalb/choicex/quick"
)

// TestEqual_WithDifferentTypes demonstrates quick.Equal's failure
// output for mismatched values. Skipped in normal runs since it is
// expected to fail.
func TestEqual_WithDifferentTypes(t *testing.T) {
	t.Skip("expected to fail; kept for demonstration purposes")

	t.Run("different integers", func(t *testing.T) {
		quick.Equal(t, 42, 43)
	})

	t.Run("different strings", func(t *testing.T) {
		quick.Equal(t, "hello", "world")
	})

	t.Run("different slices", func(t *testing.T) {
		quick.Equal(t, []int{1, 2, 3}, []int{1, 2, 4})
	})
}

// TestEqual_PointerComparison demonstrates that quick.Equal compares
// pointers by pointee value, not by address: two distinct pointers to
// 42 compare equal.
func TestEqual_PointerComparison(t *testing.T) {
	t.Skip("kept for demonstration purposes")

	x := 42
	y := 42
	quick.Equal(t, &x, &y)
}
