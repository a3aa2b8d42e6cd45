package kadane

import (
	"cmp"
	"math/big"
)

// Arithmetic provides ordering and addition for element types which do not
// support Go's built-in operators, e.g. arbitrary precision numbers.
//
// Add must return the sum of a and b without modifying either of them, as the
// running sums of the scan are kept independently of the input elements.
// Compare returns a negative number if a < b, zero if a == b and a positive
// number if a > b.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Compare(a, b T) int
}

// MaxSumWith is MaxSum for arbitrary element types, using arith for all
// additions and comparisons. It panics if arith is nil.
func MaxSumWith[T any](values []T, arith Arithmetic[T]) (T, bool) {
	assert(arith != nil, "kadane.MaxSumWith: arithmetic is nil")
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	best, current := values[0], values[0]
	for _, v := range values[1:] {
		current = arith.Add(current, v)
		if arith.Compare(v, current) > 0 {
			current = v
		}
		if arith.Compare(current, best) > 0 {
			best = current
		}
	}
	return best, true
}

// MaxRangeWith is MaxRange for arbitrary element types, using arith for all
// additions and comparisons. It panics if arith is nil.
func MaxRangeWith[T any](values []T, arith Arithmetic[T]) (T, Range, bool) {
	assert(arith != nil, "kadane.MaxRangeWith: arithmetic is nil")
	if len(values) == 0 {
		var zero T
		return zero, Range{}, false
	}
	best, current := values[0], values[0]
	bestRange, currentRange := Range{0, 1}, Range{0, 1}
	for i := 1; i < len(values); i++ {
		v := values[i]
		current = arith.Add(current, v)
		currentRange.End = i + 1
		if arith.Compare(v, current) > 0 {
			current = v
			currentRange.Start = i
		}
		if arith.Compare(current, best) > 0 {
			best = current
			bestRange = currentRange
		}
	}
	return best, bestRange, true
}

// --- Stock arithmetics -----------------------------------------------------

// Native is the arithmetic of Go's built-in numeric types.
type Native[T Number] struct{}

// Add returns a + b.
func (Native[T]) Add(a, b T) T { return a + b }

// Compare orders a and b. NaNs are considered less than any other value.
func (Native[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// BigInt is the arithmetic of arbitrary precision integers. Sums are
// allocated freshly, operands are never modified.
type BigInt struct{}

// Add returns a new integer a + b.
func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

// Compare orders a and b.
func (BigInt) Compare(a, b *big.Int) int { return a.Cmp(b) }

// BigRat is the arithmetic of arbitrary precision rationals.
type BigRat struct{}

// Add returns a new rational a + b.
func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Compare orders a and b.
func (BigRat) Compare(a, b *big.Rat) int { return a.Cmp(b) }

var _ Arithmetic[*big.Int] = BigInt{}
var _ Arithmetic[*big.Rat] = BigRat{}
var _ Arithmetic[float64] = Native[float64]{}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
