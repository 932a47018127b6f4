package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Drain reads seq to the end and returns its values in a freshly allocated
// slice. sizeHint is only used to pre-size the result. A nil seq yields an
// empty slice.
func Drain[T any](seq iter.Seq[T], sizeHint int) []T {
	out := make([]T, 0, max(sizeHint, 0))
	if seq == nil {
		return out
	}
	for item := range seq {
		out = append(out, item)
	}
	return out
}

// Take yields at most n values of seq and stops pulling after that.
// A non-positive n yields nothing.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for item := range seq {
			if !yield(item) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	}
}
