// SPDX-License-Identifier: MIT

// Package matrix - Dense, the row-major matrix behind every calculator operation.
//
// Storage is one flat slice addressed as i*cols + j. At, Set and Swap check
// bounds and return ErrOutOfRange instead of panicking. Set additionally
// rejects NaN/±Inf unless the matrix was built with WithNoValidateNaNInf;
// kernels write their results straight into the buffer and are not subject
// to that check.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFromRows: O(r*c); At/Set/Swap: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
)

// Method tags for denseErrorf.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSwap     = "Swap"
	ctxInduce   = "Induced"
	ctxFromRows = "NewDenseFromRows"
)

// denseErrorf tags err as "Dense.<method>(row,col): err".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols matrix of float64 stored row by row.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // Set rejects NaN/±Inf when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a zero-filled rows×cols matrix with the default numeric policy.
// Errors: ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy is NewDense with an explicit Set policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// NewDenseFromRows copies row data typed by a user or written in a test.
//
// The shape is len(rows)×len(rows[0]). Every row must have the same length.
// The numeric policy chosen through opts applies to the input values and to
// later Set calls on the result.
//
// Errors:
//   - ErrInvalidDimensions: no rows, or an empty first row.
//   - ErrInconsistentRowLength: a row differs in length from the first.
//   - ErrNaNInf: a non-finite value while the policy is on.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	if err := ValidateRowLengths(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	o := gatherOptions(opts...)
	res, err := newDenseWithPolicy(len(rows), len(rows[0]), o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i, row := range rows {
		for j, v := range row {
			if res.validateNaNInf && !isFinite(v) {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// offset maps (row, col) to the buffer index or reports ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange, wrapped as "Dense.At(row,col): ...".
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf for a non-finite v while the policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Swap exchanges the cells (r1, c1) and (r2, c2). It is the only write the
// transpose strategies perform. Both addresses are checked before anything
// moves, so a failed Swap leaves m unchanged.
func (m *Dense) Swap(r1, c1, r2, c2 int) error {
	a, err := m.offset(r1, c1)
	if err != nil {
		return denseErrorf(ctxSwap, r1, c1, err)
	}
	b, err := m.offset(r2, c2)
	if err != nil {
		return denseErrorf(ctxSwap, r2, c2, err)
	}
	m.data[a], m.data[b] = m.data[b], m.data[a]

	return nil
}

// Clone returns an independent copy with the same numeric policy.
func (m *Dense) Clone() Matrix {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	copy(cp.data, m.data)

	return cp
}

// String renders m in the calculator display format (see Format).
func (m *Dense) String() string {
	return Format(m)
}

// Induced copies the cells at the crossings of rowsIdx and colsIdx into a new
// len(rowsIdx)×len(colsIdx) matrix. Minor builds on it by listing every index
// except the deleted one.
//
// Errors: ErrInvalidDimensions for an empty index list; ErrOutOfRange for an
// index outside m.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	res, err := newDenseWithPolicy(len(rowsIdx), len(colsIdx), m.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, err)
	}

	for i, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j, cj := range colsIdx {
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*res.c+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
