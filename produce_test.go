package gostreamiter

import (
	"slices"
	"testing"

	"github.com/matryer/is"
)

func TestFromSlice(t *testing.T) {
	iterate(t, FromSlice([]int{1, 2, 3, 4, 5}), []int{1, 2, 3, 4, 5})
}

func TestFromSlice_Multiple(t *testing.T) {
	iterate(t, FromSlice([]int{1, 2}, nil, []int{3}, []int{}, []int{4, 5}), []int{1, 2, 3, 4, 5})
}

func TestFromSlice_Empty(t *testing.T) {
	iterate(t, FromSlice[int](), nil)
	iterate(t, FromSlice([]int{}), nil)
}

func TestFromSlice_SizeHint(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1, 2}, []int{3, 4})

	is.Equal(Hint(ints), SizeHint{Lower: 4, Upper: 4, HasUpper: true})

	ints.Advance()

	is.Equal(Hint(ints), SizeHint{Lower: 3, Upper: 3, HasUpper: true})

	ints.Advance()
	ints.Advance()
	ints.Advance()

	is.Equal(Hint(ints), SizeHint{Lower: 0, Upper: 0, HasUpper: true})
}

func TestFromSlice_Count(t *testing.T) {
	is := is.New(t)

	ints := FromSlice([]int{1, 2}, []int{3, 4})

	ints.Advance()

	is.Equal(ints.Count(), uint64(3))
	is.Equal(ints.Get(), nil)
	is.Equal(ints.Count(), uint64(0))
}

func TestFromChannel(t *testing.T) {
	ch1 := make(chan int, 3)
	ch1 <- 1
	ch1 <- 2
	ch1 <- 3
	close(ch1)

	ch2 := make(chan int, 2)
	ch2 <- 4
	ch2 <- 5
	close(ch2)

	iterate(t, FromChannel(ch1, ch2), []int{1, 2, 3, 4, 5})
}

func TestFromChannel_Empty(t *testing.T) {
	ch := make(chan int)
	close(ch)

	iterate(t, FromChannel(ch), nil)
}

func TestConvert(t *testing.T) {
	iterate(t, Convert(slices.Values([]int{1, 2, 3})), []int{1, 2, 3})
}

func TestConvert_Empty(t *testing.T) {
	iterate(t, Convert(slices.Values([]int{})), nil)
}

func TestConvert_Infinite(t *testing.T) {
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	iterate(t, Take(Convert(naturals), 3), []int{0, 1, 2})
}

func TestConvert_SizeHint(t *testing.T) {
	is := is.New(t)

	// the sequence's remaining length is unknown
	is.Equal(Hint(Convert(slices.Values([]int{1, 2, 3}))), SizeHint{})
}
