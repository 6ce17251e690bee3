// SPDX-License-Identifier: MIT

package panel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/panmat/panel"
)

// TestScaleAndSub exercises the elementwise helpers on a small matrix.
func TestScaleAndSub(t *testing.T) {
	a, err := panel.FromSlice(2, 2, 1, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	s, err := panel.Scale(a, 2)
	require.NoError(t, err)
	d, err := panel.Sub(s, a) // 2A − A = A
	require.NoError(t, err)
	require.True(t, panel.Equalish(d, a, 0))

	_, err = panel.Scale[float64](nil, 2)
	require.ErrorIs(t, err, panel.ErrNilMatrix)
}

// TestAddScaledIdentity verifies alpha*M + beta*I, the building block of the
// solver's update step.
func TestAddScaledIdentity(t *testing.T) {
	m, err := panel.FromSlice(2, 2, 2, []float64{2, 1, 1, 2})
	require.NoError(t, err)

	// -0.5*M + 1.5*I = [[0.5, -0.5], [-0.5, 0.5]]
	r, err := panel.AddScaledIdentity(m, -0.5, 1.5)
	require.NoError(t, err)

	want, err := panel.FromSlice(2, 2, 2, []float64{0.5, -0.5, -0.5, 0.5})
	require.NoError(t, err)
	require.True(t, panel.Equalish(r, want, 1e-15))

	rect, err := panel.NewDense[float64](2, 3, 1) // identity shift needs square
	require.NoError(t, err)
	_, err = panel.AddScaledIdentity(rect, 1, 1)
	require.ErrorIs(t, err, panel.ErrDimensionMismatch)
}

// TestConjTranspose checks Hermitian transposition on complex data and
// plain transposition on real data.
func TestConjTranspose(t *testing.T) {
	c, err := panel.FromSlice(2, 2, 1, []complex128{1 + 2i, 3, 4i, 5})
	require.NoError(t, err)

	h, err := panel.ConjTranspose(c)
	require.NoError(t, err)

	v, err := h.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1-2i, v) // conjugated in place of (0,0)
	v, err = h.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(-4i), v) // (1,0) moved and conjugated

	r, err := panel.FromSlice(1, 2, 1, []float64{1, 2})
	require.NoError(t, err)
	rt, err := panel.ConjTranspose(r)
	require.NoError(t, err)
	require.Equal(t, 2, rt.Rows()) // shape swapped
	require.Equal(t, 1, rt.Cols())
}

// TestFrobeniusNormAndTrace verifies the two scalar reductions.
func TestFrobeniusNormAndTrace(t *testing.T) {
	m, err := panel.FromSlice(2, 2, 2, []float64{3, 0, 4, 0})
	require.NoError(t, err)

	nrm, err := panel.FrobeniusNorm(m)
	require.NoError(t, err)
	require.InDelta(t, 5.0, nrm, 1e-15) // 3-4-5 triangle

	tr, err := panel.Trace(m)
	require.NoError(t, err)
	require.InDelta(t, 3.0, tr, 1e-15)

	c, err := panel.FromSlice(1, 1, 1, []complex128{2 + 7i})
	require.NoError(t, err)
	tr, err = panel.Trace(c)
	require.NoError(t, err)
	require.InDelta(t, 2.0, tr, 1e-15) // trace reports the real part
}

// TestValidateBinaryOperands walks the composite validator through its
// error taxonomy: nil, dtype mismatch, panel-size mismatch.
func TestValidateBinaryOperands(t *testing.T) {
	f64, err := panel.NewDense[float64](2, 2, 1)
	require.NoError(t, err)
	f32, err := panel.NewDense[float32](2, 2, 1)
	require.NoError(t, err)
	otherPsz, err := panel.NewDense[float64](2, 2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, panel.ValidateBinaryOperands(nil, f64), panel.ErrNilMatrix)
	require.ErrorIs(t, panel.ValidateBinaryOperands(f64, f32), panel.ErrDtypeMismatch)
	require.ErrorIs(t, panel.ValidateBinaryOperands(f64, otherPsz), panel.ErrPanelSizeMismatch)
	require.NoError(t, panel.ValidateBinaryOperands(f64, f64))
}
