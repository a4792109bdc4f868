package gostreamiter

import "iter"

// FromSlice returns an iterator over the elements of the given slices, in order.
// The returned views point directly into the slices; the caller must not resize
// them during iteration.
func FromSlice[T any](slices ...[]T) *SliceIterator[T] {
	return &SliceIterator[T]{slices: slices}
}

// A SliceIterator yields the elements of one or more slices, in order.
type SliceIterator[T any] struct {
	slices  [][]T
	outer   int
	inner   int
	started bool
}

// Advance implements Iterator.
func (s *SliceIterator[T]) Advance() {
	if !s.started {
		s.started = true
	} else {
		s.inner++
	}

	for s.outer < len(s.slices) && s.inner >= len(s.slices[s.outer]) {
		s.outer++
		s.inner = 0
	}
}

// Get implements Iterator.
func (s *SliceIterator[T]) Get() *T {
	if !s.started || s.outer >= len(s.slices) {
		return nil
	}

	return &s.slices[s.outer][s.inner]
}

// SizeHint implements Sizer. The bounds are exact.
func (s *SliceIterator[T]) SizeHint() SizeHint {
	n := s.remaining()

	return SizeHint{Lower: n, Upper: n, HasUpper: true}
}

// Count implements Counter. It exhausts the iterator without visiting the
// remaining elements.
func (s *SliceIterator[T]) Count() uint64 {
	n := s.remaining()

	s.outer = len(s.slices)
	s.started = true

	return n
}

// remaining returns the number of elements after the current position.
func (s *SliceIterator[T]) remaining() uint64 {
	total := uint64(0)

	for i := s.outer + 1; i < len(s.slices); i++ {
		total += uint64(len(s.slices[i]))
	}

	if s.outer < len(s.slices) {
		rest := len(s.slices[s.outer]) - s.inner
		if s.started {
			// the current element has already been yielded
			rest--
		}

		if rest > 0 {
			total += uint64(rest)
		}
	}

	return total
}

// FromChannel returns an iterator that yields the elements received through the
// given channels, in order. Advance blocks until an element is available or the
// current channel is closed; that blocking belongs to the channels, not to the
// iteration protocol.
func FromChannel[T any](channels ...<-chan T) *ChannelIterator[T] {
	return &ChannelIterator[T]{channels: channels}
}

// A ChannelIterator yields the elements received through one or more channels,
// in order.
type ChannelIterator[T any] struct {
	channels []<-chan T
	elem     T
	ok       bool
}

// Advance implements Iterator.
func (c *ChannelIterator[T]) Advance() {
	for len(c.channels) > 0 {
		elem, ok := <-c.channels[0]
		if ok {
			c.elem = elem
			c.ok = true

			return
		}

		c.channels = c.channels[1:]
	}

	c.ok = false
}

// Get implements Iterator.
func (c *ChannelIterator[T]) Get() *T {
	if !c.ok {
		return nil
	}

	return &c.elem
}

// Convert returns an iterator that yields the values produced by seq, bridging
// a value-producing sequence into the view-yielding protocol. Each Advance
// pulls one value from seq into iterator-owned storage, invalidating the
// previously returned view. Once seq is exhausted, Get keeps returning nil.
func Convert[T any](seq iter.Seq[T]) *ConvertIterator[T] {
	next, stop := iter.Pull(seq)

	return &ConvertIterator[T]{next: next, stop: stop}
}

// A ConvertIterator yields the values of a value-producing sequence as views.
type ConvertIterator[T any] struct {
	next func() (T, bool)
	stop func()
	elem T
	ok   bool
}

// Advance implements Iterator.
func (c *ConvertIterator[T]) Advance() {
	c.elem, c.ok = c.next()

	if !c.ok {
		// release the pull coroutine; next keeps reporting exhaustion
		c.stop()
	}
}

// Get implements Iterator.
func (c *ConvertIterator[T]) Get() *T {
	if !c.ok {
		return nil
	}

	return &c.elem
}
