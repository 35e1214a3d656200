// Package eqs_test contains unit tests for Matrix arithmetic: Scale,
// Plus, TimesVector and tolerance equality.
package eqs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mechkernel/eqs"
)

// TestScaleInPlace verifies that Scale mutates the receiver element-wise.
func TestScaleInPlace(t *testing.T) {
	m := mustMatrix(t, 2, 2)
	require.NoError(t, m.SetData([]float64{1, 2, 3, 4}))

	m.Scale(2.5)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.5, v) // 3 * 2.5
}

// TestScaleRoundTrip verifies that Scale(k) then Scale(1/k) restores the
// original values within tolerance.
func TestScaleRoundTrip(t *testing.T) {
	m := mustMatrix(t, 4, 3)
	fillMatrixRand(t, m, 7)
	orig := m.Clone()

	m.Scale(3.7)
	m.Scale(1 / 3.7)

	require.True(t, m.Equals(orig)) // tolerance compare absorbs the rounding
}

// TestPlusDoubles verifies that adding a matrix to itself doubles every
// element and mutates neither operand.
func TestPlusDoubles(t *testing.T) {
	m := mustMatrix(t, 2, 2)
	require.NoError(t, m.SetData([]float64{1, 2, 3, 4}))

	sum, err := m.Plus(m)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			sv, err := sum.At(i, j)
			require.NoError(t, err)
			mv, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 2*mv, sv)
		}
	}

	v, err := m.At(0, 0) // operand untouched
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestPlusSizeMismatch ensures Plus fails with ErrSizeMismatch when row
// counts or column counts differ, and with ErrNilMatrix on nil.
func TestPlusSizeMismatch(t *testing.T) {
	m := mustMatrix(t, 2, 3)

	_, err := m.Plus(mustMatrix(t, 3, 3)) // row counts differ
	require.ErrorIs(t, err, eqs.ErrSizeMismatch)

	_, err = m.Plus(mustMatrix(t, 2, 4)) // column counts differ
	require.ErrorIs(t, err, eqs.ErrSizeMismatch)

	_, err = m.Plus(nil)
	require.ErrorIs(t, err, eqs.ErrNilMatrix)
}

// TestTimesVector checks the reference product: [[1,2],[3,4]]·[5,6] = [17,39].
func TestTimesVector(t *testing.T) {
	m := mustMatrix(t, 2, 2)
	require.NoError(t, m.SetData([]float64{1, 2, 3, 4}))
	v := mustVector(t, 2)
	require.NoError(t, v.SetData([]float64{5, 6}))

	res, err := m.TimesVector(v)
	require.NoError(t, err)
	require.Equal(t, 2, res.Length()) // result length == rows

	r0, err := res.At(0)
	require.NoError(t, err)
	require.Equal(t, 17.0, r0) // 1*5 + 2*6

	r1, err := res.At(1)
	require.NoError(t, err)
	require.Equal(t, 39.0, r1) // 3*5 + 4*6

	mv, err := m.At(0, 0) // neither operand is mutated
	require.NoError(t, err)
	require.Equal(t, 1.0, mv)
	vv, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 5.0, vv)
}

// TestTimesVectorRectangular verifies the shape contract on a non-square
// matrix: a 3×2 times a length-2 vector yields a length-3 vector.
func TestTimesVectorRectangular(t *testing.T) {
	m := mustMatrix(t, 3, 2)
	require.NoError(t, m.SetData([]float64{
		1, 0,
		0, 1,
		2, 3,
	}))
	v := mustVector(t, 2)
	require.NoError(t, v.SetData([]float64{4, 5}))

	res, err := m.TimesVector(v)
	require.NoError(t, err)

	want := mustVector(t, 3)
	require.NoError(t, want.SetData([]float64{4, 5, 23}))
	require.True(t, res.Equals(want))
}

// TestTimesVectorSizeMismatch ensures the cols==length contract and the
// nil guard.
func TestTimesVectorSizeMismatch(t *testing.T) {
	m := mustMatrix(t, 2, 2)

	_, err := m.TimesVector(mustVector(t, 3)) // length 3 vs 2 cols
	require.ErrorIs(t, err, eqs.ErrSizeMismatch)

	_, err = m.TimesVector(nil)
	require.ErrorIs(t, err, eqs.ErrNilVector)
}

// TestEqualsBasics verifies reflexivity, symmetry, the nil case and the
// shape guard.
func TestEqualsBasics(t *testing.T) {
	a := mustMatrix(t, 2, 2)
	require.NoError(t, a.SetData([]float64{1, 2, 3, 4}))

	require.True(t, a.Equals(a)) // reflexive (pointer fast path)

	b := a.Clone()
	require.True(t, a.Equals(b)) // symmetric both ways
	require.True(t, b.Equals(a))

	require.False(t, a.Equals(nil)) // nil is never equal

	require.False(t, a.Equals(mustMatrix(t, 2, 3))) // shape mismatch
	require.False(t, a.Equals(mustMatrix(t, 3, 2))) // shape mismatch
}

// TestEqualsTolerance verifies that noise below epsilon compares equal and
// differences above it do not.
func TestEqualsTolerance(t *testing.T) {
	a := mustMatrix(t, 2, 2)
	require.NoError(t, a.SetData([]float64{1, 2, 3, 4}))

	b := a.Clone()
	require.NoError(t, b.AddAt(0, 0, 1e-12)) // noise well below epsilon
	require.True(t, a.Equals(b))

	c := a.Clone()
	require.NoError(t, c.AddAt(0, 0, 1e-3)) // clearly different
	require.False(t, a.Equals(c))

	// The same difference passes under a coarser injected epsilon.
	require.True(t, a.EqualsWithin(c, 1e-2))
}
