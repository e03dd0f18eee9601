// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor expansion, cofactor matrix and
// inverse via the adjugate.
//
// Purpose:
//   - Reference (textbook) algorithms with a fixed evaluation order so results
//     are reproducible bit for bit across runs and platforms.
//   - Determinant: Laplace expansion along row 0, recursing into minors.
//   - Inverse: adj(A)/det(A), where adj(A) is the transposed cofactor matrix.
//
// Behavior highlights:
//   - No pivoting, no memoization: Determinant is O(n!) and intended for the
//     small matrices an interactive calculator handles. DeterminantLU (gonum.go)
//     is the O(n³) alternative when rounding-exact reproduction is not required.
//   - A zero determinant is a legitimate result: Inverse reports it through ok=false.
//
// Recursion depth equals n (one frame per minor level).

package matrix

import "fmt"

// Determinant returns det(m) using cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - n==1 → m[0,0]; n==2 → m[0,0]*m[1,1] − m[0,1]*m[1,0];
//     n≥3 → Σ_j m[0,j]·C(0,j) with j ascending, accumulated from ZeroSum.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: materialize a *Dense view of the data (no copy when m is *Dense).
//   - Stage 3: recurse through determinantDense.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; At failures from a custom Matrix during copy.
//
// Determinism:
//   - Fixed expansion row and column order; no data-dependent branching.
//
// Complexity:
//   - Time O(n!) (≈ e·n! multiplications), Space O(n²) per recursion level, depth n.
//
// AI-Hints:
//   - For n beyond ~10 use DeterminantLU; the recursion becomes impractically slow.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinantDense(d), nil
}

// Minor returns the submatrix of m without row i and column j.
// MAIN DESCRIPTION:
//   - (r−1)×(c−1) independent copy; the source is not modified.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when i∉[0,r) or j∉[0,c);
//     ErrInvalidDimensions when the result would be empty (single row or column).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if i < 0 || i >= m.Rows() {
		return nil, matrixErrorf(opMinor, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opMinor, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := minorDense(d, i, j)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// Cofactor returns C(i,j) = (−1)^(i+j) · det(Minor(m, i, j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (index), ErrInvalidDimensions (1×1 input).
//
// Complexity:
//   - Time O((n−1)!), Space O(n²).
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	minor, err := Minor(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorSign(i, j) * determinantDense(minor), nil
}

// CofactorMatrix returns the n×n matrix whose entry (i,j) is Cofactor(m, i, j).
// MAIN DESCRIPTION:
//   - Building block of the adjugate: adj(m) = CofactorMatrix(m)ᵀ.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: n==1 → [[1]] (the determinant of the empty minor is 1).
//   - Stage 3: fill every cell in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²) plus recursion scratch.
func CofactorMatrix(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}

	n := d.r
	res, err := newDenseWithPolicy(n, n, d.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	if n == 1 {
		res.data[0] = 1

		return res, nil
	}

	var i, j int
	var minor *Dense
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if minor, err = minorDense(d, i, j); err != nil {
				return nil, matrixErrorf(opCofactorMatrix, err)
			}
			res.data[i*n+j] = cofactorSign(i, j) * determinantDense(minor)
		}
	}

	return res, nil
}

// Inverse computes m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Adjugate method: cofactor matrix → main-diagonal transpose → scale by 1/det.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: det := Determinant(m); det == 0 exactly → (nil, false, nil).
//   - Stage 3: adj := CofactorMatrix(m); TransposeMainDiagonal.Transpose(adj).
//   - Stage 4: Scale(adj, 1/det).
//
// Returns:
//   - *Dense: the inverse when ok is true, nil otherwise.
//   - bool  : false when m is singular (no inverse exists).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n−1)!), Space O(n²).
//
// Notes:
//   - The singularity test is exact (== 0.0). Nearly singular inputs produce
//     large, poorly conditioned entries instead of ok=false; when 1/det
//     overflows the entries are ±Inf and ok is still true.
func Inverse(m Matrix) (*Dense, bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	det, err := Determinant(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if det == 0.0 {
		return nil, false, nil
	}

	adj, err := CofactorMatrix(m)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if err = TransposeMainDiagonal.Transpose(adj); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	inv, err := Scale(adj, 1.0/det)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	return inv, true, nil
}

// determinantDense is the recursive kernel; d must be square and non-empty.
func determinantDense(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	res := ZeroSum
	for j := 0; j < d.c; j++ {
		// minorDense cannot fail here: 0 ≤ j < c and r ≥ 3.
		minor, _ := minorDense(d, 0, j)
		res += d.data[j] * (cofactorSign(0, j) * determinantDense(minor))
	}

	return res
}

// minorDense deletes row i and column j through Induced.
func minorDense(d *Dense, i, j int) (*Dense, error) {
	return d.Induced(indicesExcept(d.r, i), indicesExcept(d.c, j))
}

// indicesExcept returns 0..n-1 without skip, in ascending order.
func indicesExcept(n, skip int) []int {
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		if k != skip {
			out = append(out, k)
		}
	}

	return out
}

// cofactorSign returns (−1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// asDense returns m itself when it is a *Dense, otherwise a row-major copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
