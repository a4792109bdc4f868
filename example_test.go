package gostreamiter

import (
	"fmt"
	"strconv"
)

func Example() {
	// construct an iterator from a slice
	ints := FromSlice([]int{1, 2, 3, 4, 5})

	// double each element
	doubled := Map(ints, func(elem *int) int {
		return *elem * 2
	})

	// keep only the values divisible by 4
	filtered := Filter(doubled, func(elem *int) bool {
		return *elem%4 == 0
	})

	// convert the remaining values to strings
	strs := Map(filtered, func(elem *int) string {
		return strconv.Itoa(*elem)
	})

	// materialize the result
	fmt.Printf("%+v\n", Collect[string](strs))
	// Output: [4 8]
}

func ExampleNext() {
	words := FromSlice([]string{"lazy", "views", "only"})

	for elem := Next[string](words); elem != nil; elem = Next[string](words) {
		fmt.Println(*elem)
	}

	// Output:
	// lazy
	// views
	// only
}

func ExampleCloned() {
	words := FromSlice([]string{"over", "and", "out"})

	for elem := range Cloned[string](words) {
		fmt.Println(elem)
	}

	// Output:
	// over
	// and
	// out
}
