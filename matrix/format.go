// SPDX-License-Identifier: MIT

// Package matrix - display formatting.
//
// Format renders values with at most Precision fraction digits and drops
// trailing zeros: 3 → "3", 3.14159 → "3.14", 2.50 → "2.5". Rounding is
// half-to-even on the exact binary value (strconv semantics). Values of a row
// are joined by the column separator; each row ends with '\n'.
//
// Precision is an explicit option on every call; the package keeps no
// formatting state.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

const (
	_fmtRowEnd   = '\n'
	_fmtDecPoint = "."
	_fmtZeroPad  = "0"
	_fmtNaN      = "NaN"
	_fmtPosInf   = "Infinity"
	_fmtNegInf   = "-Infinity"
)

// FormatValue renders v with at most precision fraction digits, trailing zeros removed.
// Negative precision is treated as 0. Non-finite values print as "Infinity",
// "-Infinity" and "NaN".
// Complexity: O(len(result)).
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return _fmtNaN
	case math.IsInf(v, 1):
		return _fmtPosInf
	case math.IsInf(v, -1):
		return _fmtNegInf
	}
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if precision == 0 || !strings.Contains(s, _fmtDecPoint) {
		return s
	}
	s = strings.TrimRight(s, _fmtZeroPad)

	return strings.TrimSuffix(s, _fmtDecPoint)
}

// Format renders m for display, one line per row.
// MAIN DESCRIPTION:
//   - Calculator output format: "1 2.5\n3 4\n" for [[1,2.5],[3,4]].
//
// Implementation:
//   - Stage 1: resolve options (precision, separator).
//   - Stage 2: walk rows/cols in i→j order, FormatValue each cell.
//
// Behavior highlights:
//   - nil matrices render as the empty string.
//   - An At failure on a custom Matrix stops rendering at that cell.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the output.
func Format(m Matrix, opts ...Option) string {
	if ValidateNotNil(m) != nil {
		return ""
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return b.String()
			}
			if j > 0 {
				b.WriteString(o.columnSep)
			}
			b.WriteString(FormatValue(v, o.precision))
		}
		b.WriteByte(_fmtRowEnd)
	}

	return b.String()
}
