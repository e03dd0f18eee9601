// Package matrix is the numeric core of matcalc: a dense float64 matrix with
// bounds-checked access and the operations of the calculator.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with At/Set/Swap returning sentinel errors.
//   - Kernels that never mutate their operands: Add, Scale, Mul.
//   - Square-matrix algebra by cofactor expansion: Determinant, Minor,
//     Cofactor, CofactorMatrix, and Inverse through the adjugate.
//   - TransposeStrategy, four in-place reflections (main diagonal, side
//     diagonal, vertical line, horizontal line) plus the identity no-op.
//   - Format/FormatValue for the calculator's "#0.##" style display.
//   - A gonum bridge (ToGonum, FromGonum, DeterminantLU).
//
// Cofactor expansion costs O(n!) and is meant for the small matrices typed at
// an interactive prompt.
//
// See the examples in this package for usage patterns.
package matrix
