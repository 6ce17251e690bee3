// SPDX-License-Identifier: MIT

// Package spectrum_test validates the eigenvalue distributions and the SPD
// generator, using gonum's symmetric eigendecomposition as the oracle.
package spectrum_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/panmat/panel"
	"github.com/katalvlaran/panmat/spectrum"
)

// TestEigenvaluesLinear checks endpoints and spacing of the linear
// distribution.
func TestEigenvaluesLinear(t *testing.T) {
	evs, err := spectrum.Eigenvalues(spectrum.Spec{SMin: 0.25, SMax: 1.0, Kind: spectrum.Linear, Dim: 4})
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.5, 0.75, 1.0}, evs)
}

// TestEigenvaluesGeometric checks endpoints and the constant ratio of the
// geometric distribution.
func TestEigenvaluesGeometric(t *testing.T) {
	evs, err := spectrum.Eigenvalues(spectrum.Spec{SMin: 0.01, SMax: 1.0, Kind: spectrum.Geometric, Dim: 3})
	require.NoError(t, err)
	require.Len(t, evs, 3)
	require.InDelta(t, 0.01, evs[0], 1e-12)
	require.InDelta(t, 0.1, evs[1], 1e-12)
	require.InDelta(t, 1.0, evs[2], 1e-12)
}

// TestEigenvaluesSingleton confirms Dim == 1 collapses to the lower bound.
func TestEigenvaluesSingleton(t *testing.T) {
	evs, err := spectrum.Eigenvalues(spectrum.Spec{SMin: 0.5, SMax: 2.0, Kind: spectrum.Linear, Dim: 1})
	require.NoError(t, err)
	require.Equal(t, []float64{0.5}, evs)
}

// TestSpecValidation walks the rejection cases: non-positive bounds
// (including the sentinel-looking -1), inverted bounds, degenerate
// dimension.
func TestSpecValidation(t *testing.T) {
	bad := []spectrum.Spec{
		{SMin: 0, SMax: 1, Kind: spectrum.Linear, Dim: 4},
		{SMin: -1, SMax: 1, Kind: spectrum.Linear, Dim: 4},
		{SMin: 2, SMax: 1, Kind: spectrum.Linear, Dim: 4},
		{SMin: 0.5, SMax: 1, Kind: spectrum.Linear, Dim: 0},
	}
	for _, spec := range bad {
		_, err := spectrum.Eigenvalues(spec)
		require.ErrorIs(t, err, spectrum.ErrInvalidSpectrum, "spec %+v", spec)
		_, err = spectrum.Generate[float64](spec, 2)
		require.ErrorIs(t, err, spectrum.ErrInvalidSpectrum, "spec %+v", spec)
	}
}

// TestGenerateSpectrumOracle feeds the generated matrix to gonum's EigenSym
// and requires the prescribed spectrum back.
func TestGenerateSpectrumOracle(t *testing.T) {
	spec := spectrum.Spec{SMin: 0.1, SMax: 1.0, Kind: spectrum.Geometric, Dim: 6}
	a, err := spectrum.Generate[float64](spec, 2, spectrum.WithSeed(42))
	require.NoError(t, err)

	sym := mat.NewSymDense(spec.Dim, nil)
	for i := 0; i < spec.Dim; i++ {
		for j := i; j < spec.Dim; j++ {
			v, aerr := a.At(i, j)
			require.NoError(t, aerr)
			sym.SetSym(i, j, v)
		}
	}

	var eig mat.EigenSym
	require.True(t, eig.Factorize(sym, false))

	want, err := spectrum.Eigenvalues(spec)
	require.NoError(t, err)

	got := eig.Values(nil) // ascending, matching the distribution order
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-10, "eigenvalue %d", i)
	}
}

// TestGenerateSymmetric requires exact symmetry of the real output.
func TestGenerateSymmetric(t *testing.T) {
	spec := spectrum.Spec{SMin: 0.25, SMax: 1.0, Kind: spectrum.Linear, Dim: 5}
	a, err := spectrum.Generate[float64](spec, 2, spectrum.WithSeed(3))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			vij, aerr := a.At(i, j)
			require.NoError(t, aerr)
			vji, aerr := a.At(j, i)
			require.NoError(t, aerr)
			require.Equal(t, vij, vji) // symmetrized exactly, not approximately
		}
	}
}

// TestGenerateHermitian requires exact Hermitian structure and a real
// diagonal of the complex output.
func TestGenerateHermitian(t *testing.T) {
	spec := spectrum.Spec{SMin: 0.5, SMax: 2.0, Kind: spectrum.Linear, Dim: 4}
	a, err := spectrum.Generate[complex128](spec, 2, spectrum.WithSeed(9))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		d, aerr := a.At(i, i)
		require.NoError(t, aerr)
		require.Zero(t, imag(d))
		for j := 0; j < 4; j++ {
			vij, aerr := a.At(i, j)
			require.NoError(t, aerr)
			vji, aerr := a.At(j, i)
			require.NoError(t, aerr)
			require.Equal(t, vij, cmplx.Conj(vji))
		}
	}
}

// TestGenerateSeedReproducible pins the determinism contract: equal seeds
// give bitwise-equal matrices, different seeds give different ones.
func TestGenerateSeedReproducible(t *testing.T) {
	spec := spectrum.Spec{SMin: 0.1, SMax: 1.0, Kind: spectrum.Linear, Dim: 4}

	a, err := spectrum.Generate[float64](spec, 2, spectrum.WithSeed(123))
	require.NoError(t, err)
	b, err := spectrum.Generate[float64](spec, 2, spectrum.WithSeed(123))
	require.NoError(t, err)
	c, err := spectrum.Generate[float64](spec, 2, spectrum.WithSeed(124))
	require.NoError(t, err)

	aData, _ := a.Raw()
	bData, _ := b.Raw()
	cData, _ := c.Raw()
	require.Equal(t, aData, bData)
	require.NotEqual(t, aData, cData)
}

// TestGenerateFlatSpectrum checks the SMin == SMax degenerate case: the
// similarity transform of s·I is s·I again, whatever Q came out.
func TestGenerateFlatSpectrum(t *testing.T) {
	spec := spectrum.Spec{SMin: 0.5, SMax: 0.5, Kind: spectrum.Linear, Dim: 4}
	a, err := spectrum.Generate[float64](spec, 2, spectrum.WithSeed(1))
	require.NoError(t, err)

	halfI, err := panel.Generate(4, 4, 2, func(i, j int) float64 {
		if i == j {
			return 0.5
		}

		return 0
	})
	require.NoError(t, err)
	require.True(t, panel.Equalish(a, halfI, 1e-12))
}
