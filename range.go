package kadane

import "fmt"

// Range is a half-open, end-exclusive interval [Start, End) of positions
// within a sequence.
type Range struct {
	Start int // position of the first element
	End   int // position after the last element
}

// Len returns the number of positions covered by r.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty is true if r does not cover any position.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains is true if position i is covered by r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Shift moves r by offset positions.
func (r Range) Shift(offset int) Range {
	return Range{Start: r.Start + offset, End: r.End + offset}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Slice returns the sub-slice of values covered by r. The result shares the
// backing array with values. Slice panics if r is out of bounds, like any
// slice expression.
func Slice[T any](values []T, r Range) []T {
	return values[r.Start:r.End]
}
