package kadane

import "golang.org/x/exp/constraints"

// Number is the constraint for element types with built-in ordering and
// addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxSum returns the largest sum of any non-empty contiguous subarray of
// values. For an empty sequence it returns the zero value and false.
//
// Complexity: O(n) time, O(1) space.
func MaxSum[T Number](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	best, current := values[0], values[0]
	for _, v := range values[1:] {
		current += v
		if v > current { // restart the run at v
			current = v
		}
		if current > best {
			best = current
		}
	}
	return best, true
}

// MaxRange returns the largest sum of any non-empty contiguous subarray of
// values, together with the range of one subarray attaining it. For an empty
// sequence it returns false.
//
// The range is the first optimum reached while scanning left to right, i.e.
// the one with the smallest End, and for that End the smallest Start.
//
// Complexity: O(n) time, O(1) space.
func MaxRange[T Number](values []T) (T, Range, bool) {
	if len(values) == 0 {
		var zero T
		return zero, Range{}, false
	}
	best, current := values[0], values[0]
	bestRange, currentRange := Range{0, 1}, Range{0, 1}
	for i := 1; i < len(values); i++ {
		v := values[i]
		current += v
		currentRange.End = i + 1
		if v > current {
			current = v
			currentRange.Start = i
		}
		if current > best {
			best = current
			bestRange = currentRange
		}
	}
	return best, bestRange, true
}

// MaxSubarray returns the sub-slice of values with the largest sum, or nil
// for an empty sequence. The result shares the backing array with values.
func MaxSubarray[T Number](values []T) []T {
	_, r, ok := MaxRange(values)
	if !ok {
		return nil
	}
	return Slice(values, r)
}
