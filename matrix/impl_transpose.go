// SPDX-License-Identifier: MIT

// Package matrix - in-place transpose strategies.
//
// Purpose:
//   - Express the four reflections of a square matrix (main diagonal, side
//     diagonal, vertical line, horizontal line) plus the identity no-op as one
//     tagged variant, TransposeStrategy.
//   - Map the calculator's numeric menu codes onto strategies (StrategyByCode).
//
// Behavior highlights:
//   - Every reflection is an involution: applying it twice restores the input.
//   - Non-identity strategies are defined on square matrices only and return
//     ErrNonSquare otherwise, even where the reflection would make sense for
//     a rectangle.
//   - Strategies hold no state; the zero value is TransposeIdentity.
//
// Complexity quicksheet:
//   - Every strategy: Time O(n²) swaps (about n²/2), Space O(1).

package matrix

import "fmt"

// TransposeStrategy selects an in-place reflection of a square matrix.
type TransposeStrategy int

// Strategy codes. The numeric values double as the calculator menu codes.
const (
	// TransposeIdentity leaves the matrix unchanged; selected for unknown codes.
	TransposeIdentity TransposeStrategy = iota
	// TransposeMainDiagonal reflects across the main diagonal (classic Aᵀ).
	TransposeMainDiagonal
	// TransposeSideDiagonal reflects across the anti-diagonal.
	TransposeSideDiagonal
	// TransposeVertical mirrors columns left↔right.
	TransposeVertical
	// TransposeHorizontal mirrors rows top↔bottom.
	TransposeHorizontal
)

// strategyNames is indexed by TransposeStrategy.
var strategyNames = [...]string{
	TransposeIdentity:     "Identity",
	TransposeMainDiagonal: "MainDiagonal",
	TransposeSideDiagonal: "SideDiagonal",
	TransposeVertical:     "Vertical",
	TransposeHorizontal:   "Horizontal",
}

// StrategyByCode maps a menu code to its strategy:
// 1=MainDiagonal, 2=SideDiagonal, 3=Vertical, 4=Horizontal, anything else=Identity.
// Complexity: O(1).
func StrategyByCode(code int) TransposeStrategy {
	s := TransposeStrategy(code)
	if s > TransposeIdentity && s.Valid() {
		return s
	}

	return TransposeIdentity
}

// Valid reports whether s is one of the declared strategies.
func (s TransposeStrategy) Valid() bool {
	return s >= TransposeIdentity && s <= TransposeHorizontal
}

// String returns the stable strategy name, or "TransposeStrategy(n)" for undeclared values.
func (s TransposeStrategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TransposeStrategy(%d)", int(s))
	}

	return strategyNames[s]
}

// swapper exchanges two cells of the matrix being reflected.
type swapper func(r1, c1, r2, c2 int) error

// Transpose reflects m in place according to s.
// MAIN DESCRIPTION:
//   - Apply the selected reflection by swapping cell pairs; nothing is allocated.
//
// Implementation:
//   - Stage 1: TransposeIdentity returns immediately (any shape, even nil is ignored).
//   - Stage 2: validate non-nil and square.
//   - Stage 3: pick a swapper (flat-slice exchange for *Dense, At/Set otherwise).
//   - Stage 4: run the strategy's fixed double loop.
//
// Behavior highlights:
//   - MainDiagonal:  row∈[1,n), col∈[0,row):      (row,col)↔(col,row).
//   - SideDiagonal:  row∈[0,n), col∈[0,n−row−1):  (row,col)↔(n−1−col,n−1−row).
//   - Vertical:      row∈[0,n), col∈[0,n/2):      (row,col)↔(row,n−1−col).
//   - Horizontal:    row∈[0,n/2), col∈[0,n):      (row,col)↔(n−1−row,col).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; At/Set failures from a custom Matrix on the generic path.
//
// Determinism:
//   - Fixed loop orders; identical results on both paths.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - Inverse relies on TransposeMainDiagonal to turn the cofactor matrix into the adjugate.
//   - Clone first if the original orientation must survive.
func (s TransposeStrategy) Transpose(m Matrix) error {
	if s == TransposeIdentity || !s.Valid() {
		return nil
	}
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	swap := interfaceSwapper(m)
	if d, ok := m.(*Dense); ok {
		swap = d.Swap
	}

	n := m.Rows()
	var row, col int
	var err error
	switch s {
	case TransposeMainDiagonal:
		for row = 1; row < n; row++ {
			for col = 0; col < row; col++ {
				if err = swap(row, col, col, row); err != nil {
					return matrixErrorf(opTranspose, err)
				}
			}
		}
	case TransposeSideDiagonal:
		for row = 0; row < n; row++ {
			for col = 0; col < n-row-1; col++ {
				if err = swap(row, col, n-1-col, n-1-row); err != nil {
					return matrixErrorf(opTranspose, err)
				}
			}
		}
	case TransposeVertical:
		for row = 0; row < n; row++ {
			for col = 0; col < n/2; col++ {
				if err = swap(row, col, row, n-1-col); err != nil {
					return matrixErrorf(opTranspose, err)
				}
			}
		}
	case TransposeHorizontal:
		for row = 0; row < n/2; row++ {
			for col = 0; col < n; col++ {
				if err = swap(row, col, n-1-row, col); err != nil {
					return matrixErrorf(opTranspose, err)
				}
			}
		}
	}

	return nil
}

// TransposeByCode applies StrategyByCode(code) to m in place.
// Complexity: O(n²).
func TransposeByCode(m Matrix, code int) error {
	return StrategyByCode(code).Transpose(m)
}

// interfaceSwapper exchanges two cells through the Matrix interface.
func interfaceSwapper(m Matrix) swapper {
	return func(r1, c1, r2, c2 int) error {
		a, err := m.At(r1, c1)
		if err != nil {
			return err
		}
		b, err := m.At(r2, c2)
		if err != nil {
			return err
		}
		if err = m.Set(r1, c1, b); err != nil {
			return err
		}

		return m.Set(r2, c2, a)
	}
}
