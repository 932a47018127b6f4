package lazysort

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireCoverage checks that the pending ranges cover every index of the
// buffer exactly once.
func requireCoverage[T any](t *testing.T, it *Iterator[T]) {
	t.Helper()

	seen := make([]int, len(it.data))
	for _, w := range it.work {
		require.GreaterOrEqual(t, w.lower, w.upper)
		for i := w.upper; i <= w.lower; i++ {
			seen[i]++
		}
	}
	for i, n := range seen {
		require.Equal(t, 1, n, "index %d covered %d times", i, n)
	}
}

func TestWorkStack_CoversBuffer(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 17))
	data := make([]int, 64)
	for i := range data {
		data[i] = r.IntN(16)
	}

	it := newIterator(slices.Values(data), cmp.Compare[int], len(data))
	require.Equal(t, []workItem{{lower: 63, upper: 0}}, it.work)

	for it.Len() > 0 {
		requireCoverage(t, it)
		_, ok := it.Next()
		require.True(t, ok)
	}
	require.Empty(t, it.work)
}

func TestNewIterator_EmptyHasNoWork(t *testing.T) {
	it := newIterator(slices.Values([]int{}), cmp.Compare[int], 0)

	require.Empty(t, it.work)
	require.Empty(t, it.data)
}

func TestPartition_SplitsAroundPivot(t *testing.T) {
	it := &Iterator[int]{
		data: []int{5, 9, 1, 7, 3, 8, 2},
		cmp:  cmp.Compare[int],
	}

	p := it.partition(6, 0, pivot(6, 0))

	pv := it.data[p]
	require.Equal(t, 7, pv)
	for _, v := range it.data[:p] {
		require.Greater(t, v, pv)
	}
	for _, v := range it.data[p+1:] {
		require.LessOrEqual(t, v, pv)
	}
}

func TestPartition_SubRange(t *testing.T) {
	it := &Iterator[int]{
		data: []int{100, 4, 6, 5, -100},
		cmp:  cmp.Compare[int],
	}

	p := it.partition(3, 1, 2)

	require.Equal(t, 1, p)
	require.Equal(t, []int{100, 6, 5, 4, -100}, it.data)
}

func TestPartition_SingleIndex(t *testing.T) {
	it := &Iterator[int]{data: []int{1, 2}, cmp: cmp.Compare[int]}

	require.Equal(t, 1, it.partition(1, 1, 1))
	require.Equal(t, []int{1, 2}, it.data)
}

func TestPartition_InvalidRangePanics(t *testing.T) {
	it := &Iterator[int]{data: []int{1, 2, 3}, cmp: cmp.Compare[int]}

	require.Panics(t, func() {
		it.partition(0, 2, 1)
	})
	require.Panics(t, func() {
		it.partition(2, 1, 0)
	})
}

func TestResolve_NonTailPanics(t *testing.T) {
	it := &Iterator[int]{data: []int{1, 2, 3}, cmp: cmp.Compare[int]}

	require.Panics(t, func() {
		it.resolve(0, 0)
	})
}

func TestResolve_ClearsEmittedSlot(t *testing.T) {
	a, b := new(int), new(int)
	*a, *b = 2, 1
	it := newIterator(slices.Values([]*int{a, b}), func(x, y *int) int {
		return cmp.Compare(*x, *y)
	}, 2)

	v, ok := it.Next()
	require.True(t, ok)
	require.Same(t, b, v)
	require.Nil(t, it.data[:cap(it.data)][1])
}

func TestPivot_Midpoint(t *testing.T) {
	require.Equal(t, 0, pivot(0, 0))
	require.Equal(t, 0, pivot(1, 0))
	require.Equal(t, 1, pivot(2, 0))
	require.Equal(t, 5, pivot(7, 3))
}

func TestPlaceUnordered_Antisymmetric(t *testing.T) {
	nan := math.NaN()
	values := []float64{nan, -1, 0, 2, nan}

	for _, first := range []bool{true, false} {
		c := placeUnordered(operatorOrder[float64], first)
		for _, a := range values {
			for _, b := range values {
				require.Equal(t, c(a, b), -c(b, a))
			}
		}
	}
}
