package lazysort

import (
	"fmt"
	"iter"

	"github.com/KasperOmsK/lazysort/internal/iterx"
)

// workItem is an inclusive index range [upper, lower] of the buffer whose
// internal order is not known yet. lower is always >= upper.
type workItem struct {
	lower int
	upper int
}

// Iterator yields the elements it was built from in ascending order of its
// comparator, one per call to Next.
//
// Nothing is compared when the Iterator is created. Each call to Next
// partitions just enough of the remaining elements to know which one comes
// next, and partition work is kept between calls. Pulling k of n elements
// costs O(n + k log n) comparisons on average; draining everything costs the
// same as a quicksort.
//
// Elements that compare equal may come out in any order. Elements equal to
// a pivot stay on the side that is resolved first, so inputs made mostly of
// one repeated value degrade toward quadratic work.
//
// An Iterator is not safe for concurrent use.
type Iterator[T any] struct {
	// data holds every element not yet emitted. Finalized elements are
	// always popped from the tail, so the buffer only ever shrinks.
	data []T
	work []workItem
	cmp  CompareFunc[T]
}

func newIterator[T any](seq iter.Seq[T], cmp CompareFunc[T], sizeHint int) *Iterator[T] {
	if cmp == nil {
		panic("lazysort: comparator must not be nil")
	}

	data := iterx.Drain(seq, sizeHint)
	it := &Iterator[T]{
		data: data,
		cmp:  cmp,
	}
	if n := len(data); n > 0 {
		it.work = []workItem{{lower: n - 1, upper: 0}}
	}
	return it
}

// Next returns the next element in sort order. The boolean is false once
// every element has been returned.
func (it *Iterator[T]) Next() (T, bool) {
	n := len(it.work)
	if n == 0 {
		var zero T
		return zero, false
	}

	w := it.work[n-1]
	it.work = it.work[:n-1]
	return it.resolve(w.lower, w.upper), true
}

// Len reports the number of elements that Next has not returned yet.
func (it *Iterator[T]) Len() int {
	return len(it.data)
}

// All returns a single-use iter.Seq over the remaining elements.
//
// Stopping the range loop early leaves the Iterator where it was: a later
// call to Next or All continues with the following element.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Take returns at most n further elements in sort order.
//
// Take panics if n is negative.
func (it *Iterator[T]) Take(n int) []T {
	if n < 0 {
		panic("lazysort.Take: n must not be negative")
	}

	out := make([]T, 0, min(n, it.Len()))
	for len(out) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Collect returns every remaining element in sort order.
func (it *Iterator[T]) Collect() []T {
	out := make([]T, 0, it.Len())
	for v := range it.All() {
		out = append(out, v)
	}
	return out
}

// resolve keeps partitioning [upper, lower] toward the tail until a single
// index is left, then pops it. Every range split off on the way is pushed on
// the work stack for later calls.
func (it *Iterator[T]) resolve(lower, upper int) T {
	for lower != upper {
		p := it.partition(lower, upper, pivot(lower, upper))

		if p == lower {
			// The pivot was the largest value and already sits at the tail.
			it.work = append(it.work, workItem{lower: p - 1, upper: upper})
			upper = p
		} else {
			// The pivot goes back into the pending range together with
			// everything greater than it.
			it.work = append(it.work, workItem{lower: p, upper: upper})
			upper = p + 1
		}
	}

	last := len(it.data) - 1
	if lower != last {
		panic(fmt.Sprintf("lazysort: resolved index %d is not the buffer tail %d", lower, last))
	}

	v := it.data[last]
	var zero T
	it.data[last] = zero
	it.data = it.data[:last]
	return v
}

// partition rearranges [upper, lower] around the element at p and returns
// the pivot's final position. Afterwards data[upper:pos] compare greater than
// the pivot and data[pos+1:lower+1] compare less than or equal to it.
func (it *Iterator[T]) partition(lower, upper, p int) int {
	if lower < upper {
		panic(fmt.Sprintf("lazysort: invalid range: lower %d < upper %d", lower, upper))
	}
	if p < upper || p > lower {
		panic(fmt.Sprintf("lazysort: pivot %d outside range [%d, %d]", p, upper, lower))
	}
	if lower == upper {
		return p
	}

	d := it.data
	d[lower], d[p] = d[p], d[lower]

	next := upper
	for i := upper; i < lower; i++ {
		if it.cmp(d[i], d[lower]) > 0 {
			if i != next {
				d[i], d[next] = d[next], d[i]
			}
			next++
		}
	}

	d[next], d[lower] = d[lower], d[next]
	return next
}

func pivot(lower, upper int) int {
	return upper + (lower-upper)/2
}
