package kadane_test

import (
	"fmt"

	"github.com/npillmayer/kadane"
)

func ExampleMaxSum() {
	sum, ok := kadane.MaxSum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
	fmt.Println(sum, ok)
	// Output: 6 true
}

func ExampleMaxRange() {
	values := []float64{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	sum, r, _ := kadane.MaxRange(values)
	fmt.Println(sum, r, kadane.Slice(values, r))
	// Output: 6 [3,7) [4 -1 2 1]
}

func ExampleMaxSubarray() {
	fmt.Println(kadane.MaxSubarray([]int{-3, -1, -2}))
	fmt.Println(kadane.MaxSubarray([]int{}) == nil)
	// Output:
	// [-1]
	// true
}
