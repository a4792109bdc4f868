package gostreamiter

import "iter"

// Cloned returns a value-producing sequence that copies each element yielded by
// it. Each step of the sequence advances the iterator once and dereferences the
// resulting view; the sequence terminates exactly when the iterator is
// exhausted.
func Cloned[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := Next(it); elem != nil; elem = Next(it) {
			if !yield(*elem) {
				return
			}
		}
	}
}

// Owned returns a value-producing sequence that converts each element yielded
// by it into an owned value using own. Use this instead of Cloned when a plain
// value copy would still share iterator-owned storage, for example when the
// elements are byte-slice views into a reused buffer.
func Owned[T any, U any](it Iterator[T], own func(elem *T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := Next(it); elem != nil; elem = Next(it) {
			if !yield(own(elem)) {
				return
			}
		}
	}
}

// Collect drains it into a slice of copied elements. The slice capacity is
// pre-sized from the iterator's size hint.
func Collect[T any](it Iterator[T]) []T {
	result := make([]T, 0, Hint(it).Lower)

	for elem := Next(it); elem != nil; elem = Next(it) {
		result = append(result, *elem)
	}

	return result
}
