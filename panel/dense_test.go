// SPDX-License-Identifier: MIT

// Package panel_test contains unit tests for the Dense container, panel
// views and ownership layouts of the panel package.
package panel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/panmat/panel"
)

// TestNewDenseInvalidShape ensures that NewDense rejects non-positive
// dimensions and panel sizes.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := panel.NewDense[float64](0, 4, 2)         // zero rows
	require.ErrorIs(t, err, panel.ErrBadShape)         // expect ErrBadShape
	_, err = panel.NewDense[float64](4, -1, 2)         // negative columns
	require.ErrorIs(t, err, panel.ErrBadShape)         // expect ErrBadShape
	_, err = panel.NewDense[float64](4, 4, 0)          // zero panel size
	require.ErrorIs(t, err, panel.ErrBadShape)         // expect ErrBadShape
}

// TestAtSetBounds ensures At() and Set() reject out-of-range indices.
func TestAtSetBounds(t *testing.T) {
	m, err := panel.NewDense[float32](2, 3, 2) // 2x3 with panel size 2
	require.NoError(t, err)

	_, err = m.At(-1, 0)                         // negative row
	require.ErrorIs(t, err, panel.ErrOutOfRange) // expect ErrOutOfRange
	_, err = m.At(0, 3)                          // column past the edge
	require.ErrorIs(t, err, panel.ErrOutOfRange) // expect ErrOutOfRange
	err = m.Set(2, 0, 1)                         // row past the edge
	require.ErrorIs(t, err, panel.ErrOutOfRange) // expect ErrOutOfRange

	require.NoError(t, m.Set(1, 2, 7.5)) // valid write
	v, err := m.At(1, 2)                 // read it back
	require.NoError(t, err)
	require.Equal(t, float32(7.5), v)
}

// TestFromSliceRejectsNonFinite verifies the eager NaN/Inf screen on
// ingestion.
func TestFromSliceRejectsNonFinite(t *testing.T) {
	_, err := panel.FromSlice(2, 2, 1, []float64{1, math.NaN(), 3, 4})
	require.ErrorIs(t, err, panel.ErrNaNInf)

	_, err = panel.FromSlice(2, 2, 1, []float64{1, 2, math.Inf(-1), 4})
	require.ErrorIs(t, err, panel.ErrNaNInf)

	_, err = panel.FromSlice(2, 2, 1, []float64{1, 2, 3}) // wrong length
	require.ErrorIs(t, err, panel.ErrDimensionMismatch)
}

// TestIdentityAndClone verifies Identity contents and that Clone yields an
// independent copy.
func TestIdentityAndClone(t *testing.T) {
	m, err := panel.Identity[float64](3, 2)
	require.NoError(t, err)

	c := m.Clone()            // deep copy
	require.NoError(t, c.Set(0, 1, 9)) // mutate the copy

	v, err := m.At(0, 1) // original must be untouched
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	for i := 0; i < 3; i++ {
		d, derr := m.At(i, i)
		require.NoError(t, derr)
		require.Equal(t, 1.0, d) // unit diagonal
	}
}

// TestPanelViewRemainder checks that edge panels clip to the matrix
// boundary when the dimension is not a multiple of the panel size.
func TestPanelViewRemainder(t *testing.T) {
	m, err := panel.Generate(5, 5, 2, func(i, j int) float64 {
		return float64(10*i + j)
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.PanelRows()) // ceil(5/2)
	require.Equal(t, 3, m.PanelCols())

	v, err := m.Panel(2, 2) // bottom-right remainder tile
	require.NoError(t, err)
	require.Equal(t, 1, v.RowsN) // clipped to a single row
	require.Equal(t, 1, v.ColsN) // clipped to a single column
	require.Equal(t, 44.0, v.At(0, 0))

	_, err = m.Panel(3, 0)                            // past the last panel row
	require.ErrorIs(t, err, panel.ErrPanelOutOfRange) // expect ErrPanelOutOfRange

	full, err := m.Panel(0, 1) // interior panel, full 2x2 extent
	require.NoError(t, err)
	buf := make([]float64, full.RowsN*full.ColsN)
	full.CopyInto(buf) // broadcast materialization path
	require.Equal(t, []float64{2, 3, 12, 13}, buf)
}

// TestLayoutOwnership verifies the round-robin panel-row ownership of
// RowBlockLayout and the degenerate single-owner SerialLayout.
func TestLayoutOwnership(t *testing.T) {
	serial := panel.SerialLayout(4)
	require.Equal(t, 1, serial.Workers())
	for pi := 0; pi < 4; pi++ {
		require.Equal(t, 0, serial.Owner(pi)) // everything on worker 0
	}

	l := panel.RowBlockLayout(5, 3)
	require.Equal(t, 3, l.Workers())
	require.Equal(t, 5, l.PanelRows())
	require.Equal(t, 0, l.Owner(0))
	require.Equal(t, 1, l.Owner(1))
	require.Equal(t, 2, l.Owner(2))
	require.Equal(t, 0, l.Owner(3)) // wraps around
	require.Equal(t, 1, l.Owner(4))

	clamped := panel.RowBlockLayout(2, 8) // more workers than panel rows
	require.Equal(t, 2, clamped.Workers())
}

// TestDtypeHelpers exercises the Dtype enum and its epsilon values.
func TestDtypeHelpers(t *testing.T) {
	require.Equal(t, panel.Float32, panel.DtypeOf[float32]())
	require.Equal(t, panel.Complex128, panel.DtypeOf[complex128]())

	require.False(t, panel.Float64.IsComplex())
	require.True(t, panel.Complex64.IsComplex())

	require.Equal(t, math.Pow(2, -23), panel.Float32.Eps())
	require.Equal(t, math.Pow(2, -52), panel.Complex128.Eps())
	require.Equal(t, "float64", panel.Float64.String())
}
