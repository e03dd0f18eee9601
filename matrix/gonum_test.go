// Package matrix_test contains unit tests for the gonum bridge.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToGonum_Copies(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	g.Set(0, 0, 100) // storage is not shared
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGonum_RoundTrip(t *testing.T) {
	orig := RandFilledDense(t, 3, 4, 9)

	g, err := matrix.ToGonum(hide{orig})
	require.NoError(t, err)
	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.True(t, matrix.Equal(orig, back))

	// gonum's own transpose view converts too
	tr, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, MustAt(t, orig, 2, 1), MustAt(t, tr, 1, 2))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminantLU(t *testing.T) {
	det, err := matrix.DeterminantLU(MustFromRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.InDelta(t, -2.0, det, AtolLoose)

	_, err = matrix.DeterminantLU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse_MatchesGonum compares the adjugate inverse with gonum's LU-based Inverse.
func TestInverse_MatchesGonum(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 77)

	inv, ok, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, ok)

	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	var gi mat.Dense
	require.NoError(t, gi.Inverse(g))

	want, err := matrix.FromGonum(&gi)
	require.NoError(t, err)
	CompareClose(t, inv, want, 1e-9, AtolLoose)
}
