package gostreamiter

import (
	"testing"

	"github.com/matryer/is"
)

// iterate drives it to exhaustion, asserting that it yields exactly the
// expected elements, that Get is idempotent between advances, and that an
// exhausted iterator keeps reporting nil.
func iterate[T comparable](t *testing.T, it Iterator[T], expected []T) {
	t.Helper()

	is := is.New(t)

	for _, want := range expected {
		it.Advance()

		elem := it.Get()
		is.True(elem != nil)
		is.Equal(*elem, want)

		elem = it.Get()
		is.True(elem != nil)
		is.Equal(*elem, want)
	}

	it.Advance()

	is.Equal(it.Get(), nil)
	is.Equal(it.Get(), nil)
}

func TestNext(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1, 2})

	is.Equal(*Next(ints), 1)
	is.Equal(*Next(ints), 2)
	is.Equal(Next(ints), nil)
}

// minimalIterator implements only the two core operations.
type minimalIterator struct {
	elem int
	n    int
}

func (m *minimalIterator) Advance() {
	m.elem++
	m.n--
}

func (m *minimalIterator) Get() *int {
	if m.n <= 0 {
		return nil
	}

	return &m.elem
}

func TestHint_Default(t *testing.T) {
	is := is.New(t)

	hint := Hint(&minimalIterator{n: 3})

	is.Equal(hint, SizeHint{})
}

func TestHint_Sizer(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1, 2, 3})

	is.Equal(Hint(ints), SizeHint{Lower: 3, Upper: 3, HasUpper: true})

	ints.Advance()

	is.Equal(Hint(ints), SizeHint{Lower: 2, Upper: 2, HasUpper: true})
}
