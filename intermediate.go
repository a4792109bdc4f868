package gostreamiter

// Map returns an iterator that yields the result of applying mapp to each
// element of it. The mapped value is stored in the returned iterator, so views
// yielded by it remain untouched.
func Map[T any, U any](it Iterator[T], mapp func(elem *T) U) *MapIterator[T, U] {
	return &MapIterator[T, U]{it: it, mapp: mapp}
}

// A MapIterator transforms the elements of an inner iterator.
type MapIterator[T any, U any] struct {
	it   Iterator[T]
	mapp func(elem *T) U
	elem U
	ok   bool
}

// Advance implements Iterator.
func (m *MapIterator[T, U]) Advance() {
	elem := Next(m.it)
	if elem == nil {
		m.ok = false
		return
	}

	m.elem = m.mapp(elem)
	m.ok = true
}

// Get implements Iterator.
func (m *MapIterator[T, U]) Get() *U {
	if !m.ok {
		return nil
	}

	return &m.elem
}

// SizeHint implements Sizer. Mapping is one-to-one, so the inner bounds pass
// through unchanged.
func (m *MapIterator[T, U]) SizeHint() SizeHint {
	return Hint(m.it)
}

// Filter returns an iterator that only yields the elements of it for which pred
// returns true. Views delegate to the inner iterator, since filtering skips
// positions without transforming elements.
func Filter[T any](it Iterator[T], pred func(elem *T) bool) *FilterIterator[T] {
	return &FilterIterator[T]{it: it, pred: pred}
}

// A FilterIterator skips the elements of an inner iterator that do not match a
// predicate.
type FilterIterator[T any] struct {
	it   Iterator[T]
	pred func(elem *T) bool
}

// Advance implements Iterator. It advances the inner iterator until the
// predicate holds or the inner iterator is exhausted.
func (f *FilterIterator[T]) Advance() {
	for elem := Next(f.it); elem != nil; elem = Next(f.it) {
		if f.pred(elem) {
			return
		}
	}
}

// Get implements Iterator.
func (f *FilterIterator[T]) Get() *T {
	return f.it.Get()
}

// SizeHint implements Sizer. How many elements survive the predicate is
// unknown, so the lower bound is zero; filtering cannot increase the count.
func (f *FilterIterator[T]) SizeHint() SizeHint {
	hint := Hint(f.it)

	return SizeHint{Upper: hint.Upper, HasUpper: hint.HasUpper}
}

// FilterMap returns an iterator that both filters and transforms the elements
// of it: mapp reports whether the element should be yielded, and if so, in what
// form.
func FilterMap[T any, U any](it Iterator[T], mapp func(elem *T) (U, bool)) *FilterMapIterator[T, U] {
	return &FilterMapIterator[T, U]{it: it, mapp: mapp}
}

// A FilterMapIterator filters and transforms the elements of an inner iterator.
type FilterMapIterator[T any, U any] struct {
	it   Iterator[T]
	mapp func(elem *T) (U, bool)
	elem U
	ok   bool
}

// Advance implements Iterator.
func (fm *FilterMapIterator[T, U]) Advance() {
	for elem := Next(fm.it); elem != nil; elem = Next(fm.it) {
		if mapped, ok := fm.mapp(elem); ok {
			fm.elem = mapped
			fm.ok = true

			return
		}
	}

	fm.ok = false
}

// Get implements Iterator.
func (fm *FilterMapIterator[T, U]) Get() *U {
	if !fm.ok {
		return nil
	}

	return &fm.elem
}

// SizeHint implements Sizer. Each inner element yields at most one output.
func (fm *FilterMapIterator[T, U]) SizeHint() SizeHint {
	hint := Hint(fm.it)

	return SizeHint{Upper: hint.Upper, HasUpper: hint.HasUpper}
}

// Skip returns an iterator that yields the same elements as it, except for the
// first num elements. Skipping more elements than it holds yields an empty
// iterator.
func Skip[T any](it Iterator[T], num uint64) *SkipIterator[T] {
	return &SkipIterator[T]{it: it, num: num}
}

// A SkipIterator drops a fixed-length prefix of an inner iterator.
type SkipIterator[T any] struct {
	it  Iterator[T]
	num uint64
}

// Advance implements Iterator. The first call consumes the whole prefix in one
// step; num then stays zero, so later calls pass straight through.
func (s *SkipIterator[T]) Advance() {
	Nth(s.it, s.num)
	s.num = 0
}

// Get implements Iterator.
func (s *SkipIterator[T]) Get() *T {
	return s.it.Get()
}

// SizeHint implements Sizer.
func (s *SkipIterator[T]) SizeHint() SizeHint {
	hint := Hint(s.it)

	return SizeHint{
		Lower:    satSub(hint.Lower, s.num),
		Upper:    satSub(hint.Upper, s.num),
		HasUpper: hint.HasUpper,
	}
}

// SkipWhile returns an iterator that drops the leading elements of it for which
// pred returns true, then yields every element from the first non-matching one
// onward. The predicate is not consulted again after it has failed once.
func SkipWhile[T any](it Iterator[T], pred func(elem *T) bool) *SkipWhileIterator[T] {
	return &SkipWhileIterator[T]{it: it, pred: pred}
}

// A SkipWhileIterator drops a predicate-matching prefix of an inner iterator.
type SkipWhileIterator[T any] struct {
	it   Iterator[T]
	pred func(elem *T) bool
	done bool
}

// Advance implements Iterator.
func (s *SkipWhileIterator[T]) Advance() {
	if s.done {
		s.it.Advance()
		return
	}

	Find(s.it, func(elem *T) bool {
		return !s.pred(elem)
	})

	s.done = true
}

// Get implements Iterator.
func (s *SkipWhileIterator[T]) Get() *T {
	return s.it.Get()
}

// SizeHint implements Sizer. The prefix length is unknown ahead of traversal,
// so the lower bound is zero.
func (s *SkipWhileIterator[T]) SizeHint() SizeHint {
	hint := Hint(s.it)

	return SizeHint{Upper: hint.Upper, HasUpper: hint.HasUpper}
}

// Take returns an iterator that yields the same elements as it, up to num
// elements. Requesting more elements than it holds yields exactly the available
// elements.
func Take[T any](it Iterator[T], num uint64) *TakeIterator[T] {
	return &TakeIterator[T]{it: it, num: num}
}

// A TakeIterator caps the number of elements yielded by an inner iterator.
type TakeIterator[T any] struct {
	it   Iterator[T]
	num  uint64
	done bool
}

// Advance implements Iterator. Once num elements have been yielded, the inner
// iterator is never advanced again: it remains positioned on the last yielded
// element rather than one past it.
func (t *TakeIterator[T]) Advance() {
	if t.num == 0 {
		t.done = true
		return
	}

	t.it.Advance()
	t.num--
}

// Get implements Iterator.
func (t *TakeIterator[T]) Get() *T {
	if t.done {
		return nil
	}

	return t.it.Get()
}

// SizeHint implements Sizer.
func (t *TakeIterator[T]) SizeHint() SizeHint {
	hint := Hint(t.it)

	return SizeHint{Lower: min(hint.Lower, t.num), Upper: t.num, HasUpper: true}
}

// satSub returns a - b, saturating at zero.
func satSub(a uint64, b uint64) uint64 {
	if b > a {
		return 0
	}

	return a - b
}
