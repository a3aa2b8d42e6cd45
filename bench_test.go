package kadane

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkMaxSum(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MaxSum(sample)
	}
}

func BenchmarkMaxRange(b *testing.B) {
	sizes := []int{9, 1000, 100000}
	r := rand.New(rand.NewSource(1))
	for _, n := range sizes {
		values := randomInts(r, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				MaxRange(values)
			}
		})
	}
}

func BenchmarkMaxSumWithBigInt(b *testing.B) {
	values := bigInts(sample)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MaxSumWith(values, BigInt{})
	}
}
