// SPDX-License-Identifier: MIT

package invsqrt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/panmat/invsqrt"
	"github.com/katalvlaran/panmat/panel"
	"github.com/katalvlaran/panmat/spectrum"
	"github.com/katalvlaran/panmat/summa"
)

// seedPtr is a literal helper for the optional seed field.
func seedPtr(s int64) *int64 { return &s }

// TestRunEndToEnd drives the dtype-erased facade for every element type and
// checks the erased results still carry the right concrete representation.
func TestRunEndToEnd(t *testing.T) {
	for _, dt := range []panel.Dtype{
		panel.Float32, panel.Float64, panel.Complex64, panel.Complex128,
	} {
		cfg := invsqrt.RunConfig{
			Dim:          6,
			Dtype:        dt,
			PanelSize:    2,
			Mode:         summa.Serial,
			Seed:         seedPtr(42),
			SMin:         0.2,
			SMax:         1.0,
			Distribution: spectrum.Geometric,
		}

		res, err := invsqrt.Run(cfg)
		require.NoError(t, err, "dtype %s", dt)
		require.True(t, res.Converged, "dtype %s", dt)
		require.Less(t, res.Residual, invsqrt.DefaultEps(dt), "dtype %s", dt)
		require.Equal(t, dt, res.Input.Dtype())
		require.Equal(t, dt, res.InvSqrt.Dtype())
		require.Equal(t, 6, res.InvSqrt.Rows())
		require.Equal(t, 6, res.InvSqrt.Cols())
		require.Equal(t, 2, res.InvSqrt.PanelSize())
	}
}

// TestRunTrueSMinSkipsWarmup wires UseTrueSMin through to the tracker: with
// eigenvalues {0.25..1.0} the true minimum clears the threshold at once.
func TestRunTrueSMinSkipsWarmup(t *testing.T) {
	cfg := invsqrt.RunConfig{
		Dim:          4,
		Dtype:        panel.Float64,
		PanelSize:    2,
		Seed:         seedPtr(7),
		UseTrueSMin:  true,
		SMin:         0.25,
		SMax:         1.0,
		Distribution: spectrum.Linear,
	}

	res, err := invsqrt.Run(cfg)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Zero(t, res.RogueIterations)
}

// TestRunDistributedMatchesSerial re-checks the bitwise guarantee through
// the facade with a shared seed.
func TestRunDistributedMatchesSerial(t *testing.T) {
	base := invsqrt.RunConfig{
		Dim:          8,
		Dtype:        panel.Float64,
		PanelSize:    3,
		Seed:         seedPtr(17),
		SMin:         0.1,
		SMax:         1.0,
		Distribution: spectrum.Linear,
	}

	serialCfg := base
	serialCfg.Mode = summa.Serial
	distCfg := base
	distCfg.Mode = summa.Distributed
	distCfg.Workers = 4

	s, err := invsqrt.Run(serialCfg)
	require.NoError(t, err)
	d, err := invsqrt.Run(distCfg)
	require.NoError(t, err)

	require.Equal(t, s.Residual, d.Residual)
	require.Equal(t, s.TotalIterations, d.TotalIterations)

	sInv, ok := s.InvSqrt.(*panel.Dense[float64])
	require.True(t, ok)
	dInv, ok := d.InvSqrt.(*panel.Dense[float64])
	require.True(t, ok)
	sData, _ := sInv.Raw()
	dData, _ := dInv.Raw()
	require.Equal(t, sData, dData)
}

// TestRunRejectsBadConfig covers the facade's error taxonomy: invalid
// spectrum bounds and an unknown dtype tag.
func TestRunRejectsBadConfig(t *testing.T) {
	cfg := invsqrt.RunConfig{
		Dim:          4,
		Dtype:        panel.Float64,
		PanelSize:    2,
		SMin:         -1, // invalid lower bound
		SMax:         1.0,
		Distribution: spectrum.Linear,
	}
	_, err := invsqrt.Run(cfg)
	require.ErrorIs(t, err, spectrum.ErrInvalidSpectrum)

	cfg.SMin = 0.5
	cfg.Dtype = panel.Dtype(99)
	_, err = invsqrt.Run(cfg)
	require.ErrorIs(t, err, panel.ErrDtypeMismatch)
}
