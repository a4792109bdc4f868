package gostreamiter

// Iterator is a forward, single-pass iterator over elements of type T that yields
// each element as a view into storage owned by the iterator.
//
// An Iterator starts just before its first element. The behavior of calling Get
// before the first Advance, or Advance after the iterator has been exhausted, is
// unspecified; Fuse normalizes both cases.
type Iterator[T any] interface {
	// Advance moves the iterator to the next element.
	Advance()

	// Get returns a pointer to the current element, or nil if the iterator is
	// exhausted. The pointer is only valid until the next call to Advance.
	// Repeated calls without an intervening Advance return equal results.
	Get() *T
}

// SizeHint bounds the number of elements remaining in an iterator.
// The bounds are advisory: consumers may use them for capacity decisions, and
// must not rely on them for correctness.
type SizeHint struct {
	// Lower is the minimum number of remaining elements.
	Lower uint64

	// Upper is the maximum number of remaining elements.
	// It is meaningful only if HasUpper is true.
	Upper uint64

	// HasUpper reports whether an upper bound is known.
	HasUpper bool
}

// Sizer is implemented by iterators that can bound their remaining length.
// Iterators without a Sizer implementation report the default hint of zero
// remaining elements at minimum and no known upper bound.
type Sizer interface {
	SizeHint() SizeHint
}

// Counter is implemented by iterators that can count their remaining elements
// without materializing them.
type Counter interface {
	Count() uint64
}

// Hint returns the bounds on the remaining length of it, or the default hint
// if it does not implement Sizer.
func Hint[T any](it Iterator[T]) SizeHint {
	if s, ok := it.(Sizer); ok {
		return s.SizeHint()
	}

	return SizeHint{}
}

// Next advances it and returns a view of the next element, or nil if the
// iterator is exhausted.
//
// The behavior of calling Next after the end of the iterator has been reached
// is unspecified unless the iterator is wrapped in Fuse.
func Next[T any](it Iterator[T]) *T {
	it.Advance()
	return it.Get()
}
