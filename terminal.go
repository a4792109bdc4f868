package gostreamiter

// Count returns the number of remaining elements in it, consuming the iterator.
// Iterators implementing Counter are counted without materializing elements.
func Count[T any](it Iterator[T]) uint64 {
	if c, ok := it.(Counter); ok {
		return c.Count()
	}

	count := uint64(0)

	for Next(it) != nil {
		count++
	}

	return count
}

// AllMatch returns true if pred returns true for all remaining elements of it,
// that is, all elements match. It short-circuits on the first element that does
// not match, leaving the iterator positioned on it.
func AllMatch[T any](it Iterator[T], pred func(elem *T) bool) bool {
	for elem := Next(it); elem != nil; elem = Next(it) {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// AnyMatch returns true as soon as pred returns true for an element of it, that
// is, an element matches. It short-circuits on the first match, leaving the
// iterator positioned on it.
func AnyMatch[T any](it Iterator[T], pred func(elem *T) bool) bool {
	return !AllMatch(it, func(elem *T) bool {
		return !pred(elem)
	})
}

// Find advances it until pred returns true for the current element, and returns
// a view of it, or nil if the iterator is exhausted first. On success the
// iterator remains positioned on the matching element, so a subsequent Get
// repeats it.
func Find[T any](it Iterator[T], pred func(elem *T) bool) *T {
	for {
		it.Advance()

		elem := it.Get()
		if elem == nil {
			return nil
		}

		if pred(elem) {
			return elem
		}
	}
}

// Position returns the 0-based index of the first element of it matching pred.
// It consumes the iterator up to and including the match.
func Position[T any](it Iterator[T], pred func(elem *T) bool) (uint64, bool) {
	index := uint64(0)

	for elem := Next(it); elem != nil; elem = Next(it) {
		if pred(elem) {
			return index, true
		}

		index++
	}

	return 0, false
}

// Nth consumes the first num elements of it and returns a view of the next one,
// or nil if the iterator is exhausted at or before the requested position.
func Nth[T any](it Iterator[T], num uint64) *T {
	for i := uint64(0); i < num; i++ {
		it.Advance()

		if it.Get() == nil {
			return nil
		}
	}

	return Next(it)
}
