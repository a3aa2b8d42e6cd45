package kadane

import (
	"math/big"
	"math/rand"
	"testing"
)

func bigInts(values []int) []*big.Int {
	b := make([]*big.Int, len(values))
	for i, v := range values {
		b[i] = big.NewInt(int64(v))
	}
	return b
}

func TestMaxRangeWithBigInt(t *testing.T) {
	values := bigInts(sample)
	sum, r, ok := MaxRangeWith(values, BigInt{})
	if !ok {
		t.Fatalf("expected a result for non-empty input")
	}
	if sum.Int64() != 6 || r != (Range{3, 7}) {
		t.Errorf("expected 6 @ [3,7), have %s @ %v", sum, r)
	}
	for i, v := range values {
		if v.Int64() != int64(sample[i]) {
			t.Fatalf("input element %d modified: %s", i, v)
		}
	}
}

func TestMaxSumWithBigRat(t *testing.T) {
	values := []*big.Rat{big.NewRat(1, 3), big.NewRat(-1, 2), big.NewRat(2, 3), big.NewRat(1, 6)}
	sum, ok := MaxSumWith(values, BigRat{})
	if !ok {
		t.Fatalf("expected a result for non-empty input")
	}
	if sum.Cmp(big.NewRat(5, 6)) != 0 {
		t.Errorf("expected max sum 5/6, have %s", sum.RatString())
	}
}

func TestWithMatchesNative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for k := 0; k < 500; k++ {
		values := randomInts(r, r.Intn(16))
		wantSum, wantRange, wantOk := MaxRange(values)
		sum, rng, ok := MaxRangeWith(values, Native[int]{})
		if ok != wantOk || sum != wantSum || rng != wantRange {
			t.Fatalf("MaxRangeWith(%v) = %d @ %v, MaxRange = %d @ %v", values, sum, rng, wantSum, wantRange)
		}
		bsum, bok := MaxSumWith(bigInts(values), BigInt{})
		if bok != wantOk || (bok && bsum.Int64() != int64(wantSum)) {
			t.Fatalf("MaxSumWith(%v) = %v, MaxRange = %d", values, bsum, wantSum)
		}
	}
}

func TestWithEmptyInput(t *testing.T) {
	if _, ok := MaxSumWith(nil, BigInt{}); ok {
		t.Errorf("expected no result for empty input")
	}
	if _, _, ok := MaxRangeWith([]*big.Rat{}, BigRat{}); ok {
		t.Errorf("expected no result for empty input")
	}
}

func TestWithNilArithmeticPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected MaxSumWith to panic for nil arithmetic")
		}
	}()
	MaxSumWith[int]([]int{1}, nil)
}
