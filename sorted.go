package lazysort

import (
	"cmp"
	"iter"

	"github.com/KasperOmsK/lazysort/internal/iterx"
)

type (

	// CompareFunc reports how a relates to b: a negative number when a sorts
	// before b, a positive number when it sorts after, and zero when they are
	// equivalent. It follows the convention of cmp.Compare and must describe
	// a strict weak order.
	CompareFunc[T any] func(a, b T) int

	// PartialCompareFunc is a CompareFunc that may decline to order a pair.
	//
	// ok is false when a and b are unorderable, the way a NaN is unorderable
	// with every float including itself. A value that cannot be compared
	// with itself is treated as NaN-like.
	PartialCompareFunc[T any] func(a, b T) (c int, ok bool)
)

// Sorted returns an Iterator over the values of seq in ascending order,
// using cmp.Compare.
//
// seq is drained when Sorted is called; no comparison happens until the
// Iterator is pulled. Floating point NaNs sort before every other value, as
// they do with cmp.Compare.
func Sorted[T cmp.Ordered](seq iter.Seq[T]) *Iterator[T] {
	return newIterator(seq, cmp.Compare[T], 0)
}

// SortedSlice is Sorted over the elements of s. s itself is not reordered.
func SortedSlice[T cmp.Ordered](s []T) *Iterator[T] {
	return newIterator(iterx.FromSlice(s), cmp.Compare[T], len(s))
}

// SortedPartial returns an Iterator over the values of seq in ascending order
// of the < and > operators.
//
// Values that are not equal to themselves (NaNs) cannot be ordered that way.
// When first is true they are placed before every other value, when false
// after every other value.
func SortedPartial[T cmp.Ordered](seq iter.Seq[T], first bool) *Iterator[T] {
	return newIterator(seq, placeUnordered(operatorOrder[T], first), 0)
}

// SortedPartialBy is SortedPartial for a caller supplied partial order.
//
// Values for which pcmp(v, v) is not ok are placed at the front (first) or at
// the back. Two such values compare equal with each other. A pair of values
// that are each orderable but not with one another also compares equal.
//
// pcmp must be consistent between argument orders: if pcmp(a, b) is ok then
// pcmp(b, a) must be ok with the opposite sign. Otherwise the output order is
// undefined.
func SortedPartialBy[T any](seq iter.Seq[T], first bool, pcmp PartialCompareFunc[T]) *Iterator[T] {
	if pcmp == nil {
		panic("lazysort.SortedPartialBy: comparator must not be nil")
	}
	return newIterator(seq, placeUnordered(pcmp, first), 0)
}

// SortedBy returns an Iterator over the values of seq ordered by cmp.
//
// SortedBy panics if cmp is nil.
func SortedBy[T any](seq iter.Seq[T], cmp CompareFunc[T]) *Iterator[T] {
	return newIterator(seq, cmp, 0)
}

// SortedSliceBy is SortedBy over the elements of s. s itself is not
// reordered.
func SortedSliceBy[T any](s []T, cmp CompareFunc[T]) *Iterator[T] {
	return newIterator(iterx.FromSlice(s), cmp, len(s))
}

// Reverse returns a CompareFunc ordering values the opposite way to cmp.
// Combined with SortedBy it yields the largest values first.
func Reverse[T any](cmp CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

func operatorOrder[T cmp.Ordered](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}

// placeUnordered turns a partial order into a total one by sending NaN-like
// values to one end. The result is antisymmetric for every pair, which the
// partition step depends on.
func placeUnordered[T any](pcmp PartialCompareFunc[T], first bool) CompareFunc[T] {
	side := 1
	if first {
		side = -1
	}

	return func(a, b T) int {
		if c, ok := pcmp(a, b); ok {
			return c
		}

		_, aOrdered := pcmp(a, a)
		_, bOrdered := pcmp(b, b)
		switch {
		case aOrdered == bOrdered:
			return 0
		case !aOrdered:
			return side
		default:
			return -side
		}
	}
}
