// SPDX-License-Identifier: MIT

// Package matrix - gonum bridge.
//
// Purpose:
//   - Convert between *Dense and gonum's mat.Dense without sharing storage.
//   - Offer DeterminantLU: an O(n³) determinant through gonum's partially
//     pivoted LU factorization, as an alternative to the O(n!) cofactor path.
//
// Notes:
//   - DeterminantLU agrees with Determinant only up to floating-point rounding;
//     Inverse always uses the cofactor path.
//   - gonum panics on shape misuse; every entry point validates first so the
//     panics are unreachable from this package.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors: ErrNilMatrix; At failures from a custom Matrix.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data) // mat.NewDense adopts the slice; never hand it ours

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense with the default numeric policy.
//
// Errors: ErrNilMatrix (nil g), ErrInvalidDimensions (empty g), ErrNaNInf.
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := g.Dims()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = res.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// DeterminantLU returns det(m) computed by gonum's LU factorization (mat.Det).
// MAIN DESCRIPTION:
//   - Polynomial-time determinant for inputs too large for cofactor expansion.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: copy into mat.Dense and call mat.Det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Compare against Determinant with a relative tolerance, never with ==.
func DeterminantLU(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminantLU, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminantLU, fmt.Errorf("ToGonum: %w", err))
	}

	return mat.Det(g), nil
}
