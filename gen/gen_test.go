package gen

import (
	"testing"

	"github.com/lucaskalb/choicex/choice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegers_WithinBounds(t *testing.T) {
	p := Integers(5, 15)
	tc := choice.New(nil, choice.NewRNGState(1), 1000)
	for i := 0; i < 200; i++ {
		v, err := p.Produce(tc)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, int64(5))
		assert.LessOrEqual(t, v, int64(15))
	}
}

func TestIntegers_DeterministicGivenSameSeed(t *testing.T) {
	p := Integers(0, 1_000_000)
	tc1 := choice.New(nil, choice.NewRNGState(99), 1000)
	tc2 := choice.New(nil, choice.NewRNGState(99), 1000)

	v1, err := p.Produce(tc1)
	require.NoError(t, err)
	v2, err := p.Produce(tc2)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, tc1.Attempt.Choices, tc2.Attempt.Choices)
}

func TestIntegers_PrefixReplayDeterminesValue(t *testing.T) {
	p := Integers(0, 100)
	tc := choice.New([]uint64{42}, choice.NewRNGState(1), 10)
	v, err := p.Produce(tc)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestBooleans_OnlyTrueOrFalse(t *testing.T) {
	p := Booleans()
	tc := choice.New(nil, choice.NewRNGState(3), 100)
	seen := map[bool]bool{}
	for i := 0; i < 50; i++ {
		v, err := p.Produce(tc)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.True(t, seen[true] || seen[false])
}

func TestVectors_LengthWithinBounds(t *testing.T) {
	elem := Integers(0, 10)
	p := Vectors(elem, 2, 5)
	tc := choice.New(nil, choice.NewRNGState(11), 10_000)
	for i := 0; i < 100; i++ {
		v, err := p.Produce(tc)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(v), 2)
		assert.LessOrEqual(t, len(v), 5)
	}
}

func TestVectors_OverrunWhenBudgetTooSmall(t *testing.T) {
	elem := Integers(0, 10)
	p := Vectors(elem, 5, 5)
	tc := choice.New(nil, choice.NewRNGState(1), 2)
	_, err := p.Produce(tc)
	assert.ErrorIs(t, err, choice.ErrOverrun)
}

func TestMap_TransformsValue(t *testing.T) {
	p := Map(Integers(0, 10), func(n int64) int64 { return n * 2 })
	tc := choice.New([]uint64{3}, choice.NewRNGState(1), 10)
	v, err := p.Produce(tc)
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)
}

func TestFilter_RejectsAfterMaxTries(t *testing.T) {
	never := Filter(Integers(0, 10), func(int64) bool { return false }, 3)
	tc := choice.New(nil, choice.NewRNGState(1), 100)
	_, err := never.Produce(tc)
	assert.ErrorIs(t, err, choice.ErrInvalid)
}

func TestFilter_KeepsMatchingValue(t *testing.T) {
	evens := Filter(Integers(0, 100), func(n int64) bool { return n%2 == 0 }, 10)
	tc := choice.New(nil, choice.NewRNGState(5), 1000)
	for i := 0; i < 50; i++ {
		v, err := evens.Produce(tc)
		if err != nil {
			continue
		}
		assert.Equal(t, int64(0), v%2)
	}
}

func TestBind_ThreadsGeneratedValue(t *testing.T) {
	p := Bind(Integers(1, 3), func(n int64) Possibility[[]int64] {
		return Vectors(Just(n), int(n), int(n))
	})
	tc := choice.New(nil, choice.NewRNGState(1), 1000)
	v, err := p.Produce(tc)
	require.NoError(t, err)
	for _, x := range v {
		assert.Equal(t, v[0], x)
	}
	assert.Equal(t, len(v), int(v[0]))
}

func TestOneOf_PicksOneOfTheBranches(t *testing.T) {
	p := OneOf(Just(1), Just(2), Just(3))
	tc := choice.New(nil, choice.NewRNGState(1), 100)
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		v, err := p.Produce(tc)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.True(t, len(seen) >= 1)
	for v := range seen {
		assert.Contains(t, []int{1, 2, 3}, v)
	}
}

func TestSampledFrom_ReturnsElementOfSlice(t *testing.T) {
	seq := []string{"a", "b", "c"}
	p := SampledFrom(seq)
	tc := choice.New(nil, choice.NewRNGState(1), 100)
	v, err := p.Produce(tc)
	require.NoError(t, err)
	assert.Contains(t, seq, v)
}

func TestDicts_SizeWithinBounds(t *testing.T) {
	keys := Integers(0, 1000)
	vals := Just("x")
	p := Dicts(keys, vals, 2, 5)
	tc := choice.New(nil, choice.NewRNGState(1), 10_000)
	v, err := p.Produce(tc)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(v), 2)
	assert.LessOrEqual(t, len(v), 5)
}

func TestRecursive_RespectsMaxLayers(t *testing.T) {
	base := Just(0)
	wrap := func(p Possibility[int]) Possibility[int] {
		return Map(p, func(n int) int { return n + 1 })
	}
	p := Recursive(base, wrap, 3)
	tc := choice.New(nil, choice.NewRNGState(1), 100)
	for i := 0; i < 20; i++ {
		v, err := p.Produce(tc)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 3)
	}
}

func TestText_LengthAndAlphabet(t *testing.T) {
	p := Text(AlphabetDigits, 3, 6)
	tc := choice.New(nil, choice.NewRNGState(1), 10_000)
	for i := 0; i < 30; i++ {
		s, err := p.Produce(tc)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(s), 3)
		assert.LessOrEqual(t, len(s), 6)
		for _, r := range s {
			assert.Contains(t, AlphabetDigits, string(r))
		}
	}
}

func TestFloats64_ClampValidatesBounds(t *testing.T) {
	assert.Panics(t, func() {
		Floats64(FloatOptions{Clamped: true, Minimum: 10, Maximum: 1})
	})
}

func TestFloats64_SuppressesNaNAndInf(t *testing.T) {
	p := Floats64(FloatOptions{SuppressNaN: true, SuppressInf: true})
	tc := choice.New(nil, choice.NewRNGState(1), 1000)
	ok := 0
	for i := 0; i < 500 && ok < 10; i++ {
		v, err := p.Produce(tc)
		if err != nil {
			continue
		}
		ok++
		assert.False(t, v != v) // not NaN
	}
}
