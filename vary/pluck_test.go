package vary_test

import (
	"testing"

	"github.com/katalvlaran/varygen/randx"
	"github.com/katalvlaran/varygen/vary"
	"github.com/stretchr/testify/require"
)

// TestPluck_Membership: the pick is always a member of the candidates.
func TestPluck_Membership(t *testing.T) {
	src := randx.NewSource(10)
	candidates := []string{"red", "green", "blue"}

	for i := 0; i < 300; i++ {
		got, err := vary.Pluck(candidates, vary.WithSource(src))
		require.NoError(t, err)
		require.Contains(t, candidates, got)
	}
}

// TestPluck_SingleCandidate: one candidate is always the answer.
func TestPluck_SingleCandidate(t *testing.T) {
	got, err := vary.Pluck([]int{7})
	require.NoError(t, err)
	require.Equal(t, 7, got)
}

// TestPluck_Empty: "give me one" of nothing is a programmer error.
func TestPluck_Empty(t *testing.T) {
	_, err := vary.Pluck([]int{})
	require.ErrorIs(t, err, vary.ErrNoCandidates)

	_, err = vary.Pluck[string](nil)
	require.ErrorIs(t, err, vary.ErrNoCandidates)
}

// TestPluckMany_FullSpan: sizes range over [0, n] and every element of
// the result is drawn from the input without inventing duplicates.
func TestPluckMany_FullSpan(t *testing.T) {
	src := randx.NewSource(11)
	candidates := []int{10, 20, 30, 40}

	sizes := make(map[int]int)
	for i := 0; i < 500; i++ {
		got, err := vary.PluckMany(candidates, vary.WithSource(src))
		require.NoError(t, err)
		require.LessOrEqual(t, len(got), len(candidates))
		requireMultisubset(t, candidates, got)
		sizes[len(got)]++
	}
	require.Greater(t, len(sizes), 1)
}

// TestPluckMany_Empty: "give me some" of nothing is an empty result,
// never a failure.
func TestPluckMany_Empty(t *testing.T) {
	got, err := vary.PluckMany([]int{})
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = vary.PluckManyRange(randx.IntRange{Low: 2, High: 5}, []int(nil))
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestPluckManyRange_ZeroCount: a [0,0] count is always empty,
// regardless of candidate-set size.
func TestPluckManyRange_ZeroCount(t *testing.T) {
	src := randx.NewSource(12)
	candidates := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < 200; i++ {
		got, err := vary.PluckManyRange(randx.IntRange{Low: 0, High: 0}, candidates, vary.WithSource(src))
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

// TestPluckManyRange_Bounds: selection size is bounded below by
// count.Low and above by both count.High and the set size.
func TestPluckManyRange_Bounds(t *testing.T) {
	src := randx.NewSource(13)
	candidates := []int{10, 20, 30, 40}

	for i := 0; i < 500; i++ {
		got, err := vary.PluckManyRange(randx.IntRange{Low: 1, High: 2}, candidates, vary.WithSource(src))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 1)
		require.LessOrEqual(t, len(got), 2)
		requireMultisubset(t, candidates, got)
	}
}

// TestPluckManyRange_ExactCount: a [k,k] count selects exactly k.
func TestPluckManyRange_ExactCount(t *testing.T) {
	src := randx.NewSource(14)
	candidates := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 200; i++ {
		got, err := vary.PluckManyRange(randx.IntRange{Low: 2, High: 2}, candidates, vary.WithSource(src))
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotEqual(t, got[0], got[1]) // distinct positions ⇒ distinct values here
	}
}

// TestPluckManyRange_LowExceedsSize: the documented clamp — asking for
// at least 9 of 3 selects all 3 rather than failing.
func TestPluckManyRange_LowExceedsSize(t *testing.T) {
	src := randx.NewSource(15)
	candidates := []int{1, 2, 3}

	for i := 0; i < 100; i++ {
		got, err := vary.PluckManyRange(randx.IntRange{Low: 9, High: 9}, candidates, vary.WithSource(src))
		require.NoError(t, err)
		require.ElementsMatch(t, candidates, got)
	}
}

// TestPluckManyRange_InvalidCount fails fast on malformed count ranges.
func TestPluckManyRange_InvalidCount(t *testing.T) {
	candidates := []int{1, 2, 3}

	_, err := vary.PluckManyRange(randx.IntRange{Low: 3, High: 1}, candidates)
	require.ErrorIs(t, err, randx.ErrInvalidRange)

	_, err = vary.PluckManyRange(randx.IntRange{Low: -1, High: 2}, candidates)
	require.ErrorIs(t, err, randx.ErrInvalidRange)
}

// TestPluckManyRange_InputUntouched: selection works on a copy; the
// caller's slice keeps its order.
func TestPluckManyRange_InputUntouched(t *testing.T) {
	src := randx.NewSource(16)
	candidates := []int{1, 2, 3, 4, 5}

	for i := 0; i < 50; i++ {
		_, err := vary.PluckMany(candidates, vary.WithSource(src))
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, candidates)
}

// requireMultisubset asserts got is a sub-multiset of pool: no element
// occurs more often than the pool supplies it.
func requireMultisubset(t *testing.T, pool, got []int) {
	t.Helper()

	supply := make(map[int]int, len(pool))
	for _, v := range pool {
		supply[v]++
	}
	for _, v := range got {
		supply[v]--
		require.GreaterOrEqual(t, supply[v], 0, "element %d over-selected", v)
	}
}
