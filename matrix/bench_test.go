// Package matrix_test provides benchmarks for the calculator kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
)

// benchSizes are the matrix sizes for the polynomial kernels.
var benchSizes = []int{16, 64, 128}

// detSizes stay small: cofactor expansion is O(n!).
var detSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
	sinkB bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 1337)
			B := mustDenseB(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkScale(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Scale(A, 0.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 11)
			B := mustDenseB(b, n, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTransposeMainDiagonal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.TransposeMainDiagonal.Transpose(A); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range detSizes {
		b.Run(fmt.Sprintf("cofactor/n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
		b.Run(fmt.Sprintf("lu/n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.DeterminantLU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDenseB(b, n, n, 31)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, ok, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkB = m, ok
			}
		})
	}
}
