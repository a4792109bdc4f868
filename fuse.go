package gostreamiter

// fuseState tracks where a FuseIterator is in its lifecycle. The start state
// exists so that a Get before the first Advance reports no element, and the end
// state is a trap: once entered it is never left.
type fuseState uint8

const (
	fuseStart fuseState = iota
	fuseMiddle
	fuseEnd
)

// Fuse returns an iterator that is well behaved at the beginning and end of
// iteration. Calling Get before the first Advance, and calling Advance any
// number of times after exhaustion, are normally unspecified; the returned
// iterator reports nil in both cases.
func Fuse[T any](it Iterator[T]) *FuseIterator[T] {
	return &FuseIterator[T]{it: it, state: fuseStart}
}

// A FuseIterator normalizes the pre-start and post-end behavior of an inner
// iterator.
type FuseIterator[T any] struct {
	it    Iterator[T]
	state fuseState
}

// Advance implements Iterator.
func (f *FuseIterator[T]) Advance() {
	switch f.state {
	case fuseStart:
		f.it.Advance()

		if f.it.Get() != nil {
			f.state = fuseMiddle
		} else {
			f.state = fuseEnd
		}

	case fuseMiddle:
		f.it.Advance()

		if f.it.Get() == nil {
			f.state = fuseEnd
		}

	case fuseEnd:
	}
}

// Get implements Iterator.
func (f *FuseIterator[T]) Get() *T {
	if f.state != fuseMiddle {
		return nil
	}

	return f.it.Get()
}

// SizeHint implements Sizer.
func (f *FuseIterator[T]) SizeHint() SizeHint {
	if f.state == fuseEnd {
		return SizeHint{HasUpper: true}
	}

	return Hint(f.it)
}

// Count implements Counter. Once the end state has been reached, the inner
// iterator is not consulted again.
func (f *FuseIterator[T]) Count() uint64 {
	if f.state == fuseEnd {
		return 0
	}

	f.state = fuseEnd

	return Count(f.it)
}
