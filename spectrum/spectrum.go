// SPDX-License-Identifier: MIT

// Package spectrum: the generator facade. Eigenvalues materializes the
// requested distribution; Generate wraps it in a random orthogonal (or
// unitary) similarity transform.

package spectrum

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/panmat/panel"
	"github.com/katalvlaran/panmat/summa"
)

// Operation name constants for unified error wrapping.
const (
	opEigenvalues = "Eigenvalues"
	opGenerate    = "Generate"
)

// spectrumErrorf wraps err with an operation tag, preserving the original
// error via %w.
func spectrumErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Eigenvalues returns the Dim exact eigenvalues of the requested
// distribution, ascending. Linear spacing delegates to floats.Span,
// geometric spacing to floats.LogSpan; both include the bounds.
// Implementation:
//   - Stage 1: validate the Spec fields.
//   - Stage 2: fill the slice with the requested spacing; Dim == 1
//     collapses to the single value SMin.
//
// Errors:
//   - ErrInvalidSpectrum.
//
// Complexity:
//   - Time O(Dim), Space O(Dim).
func Eigenvalues(spec Spec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, spectrumErrorf(opEigenvalues, err)
	}

	evs := make([]float64, spec.Dim)
	if spec.Dim == 1 {
		// A single eigenvalue carries no spacing; the lower bound is it.
		evs[0] = spec.SMin

		return evs, nil
	}

	if spec.Kind == Geometric {
		floats.LogSpan(evs, spec.SMin, spec.SMax)
	} else {
		floats.Span(evs, spec.SMin, spec.SMax)
	}

	return evs, nil
}

// Generate produces a Dim×Dim symmetric (Hermitian for complex T)
// positive-definite panel matrix whose eigenvalues are exactly the values
// of Eigenvalues(spec), with eigenvectors randomized by a seeded orthogonal
// similarity transform.
// Implementation:
//   - Stage 1: validate the spec, resolve the seed (time-derived when
//     unseeded), materialize the eigenvalue slice.
//   - Stage 2: draw a Gaussian matrix G, orthonormalize it into Q via
//     Householder reflections, form A = (Q·diag(λ))·Qᴴ with one panel
//     multiply, then symmetrize once to scrub round-off asymmetry.
//
// Behavior highlights:
//   - With WithSeed the output is bit-for-bit reproducible; without it a
//     time-derived seed makes generation explicitly non-reproducible.
//   - The multiply runs serially — generation is test scaffolding, not the
//     benchmarked path.
//
// Inputs:
//   - spec: eigenvalue distribution and dimension.
//   - psz:  panel size of the produced matrix.
//   - opts: WithSeed.
//
// Returns:
//   - *panel.Dense[T]: the SPD/HPD matrix.
//
// Errors:
//   - ErrInvalidSpectrum (spec violation).
//   - panel.ErrBadShape  (non-positive psz).
//
// Complexity:
//   - Time O(Dim³), Space O(Dim²).
func Generate[T panel.Number](spec Spec, psz int, opts ...Option) (*panel.Dense[T], error) {
	if err := spec.Validate(); err != nil {
		return nil, spectrumErrorf(opGenerate, err)
	}

	o := gatherOptions(opts...)
	seed := o.seed
	if !o.seeded {
		seed = time.Now().UnixNano() // documented non-determinism
	}
	rng := rand.New(rand.NewSource(seed))

	evs, err := Eigenvalues(spec)
	if err != nil {
		return nil, spectrumErrorf(opGenerate, err)
	}

	// Draw the Gaussian seed matrix G; complex dtypes get independent
	// normal real and imaginary components.
	n := spec.Dim
	complexDtype := panel.DtypeOf[T]().IsComplex()
	g, err := panel.Generate(n, n, psz, func(_, _ int) T {
		if complexDtype {
			return gaussianComplex[T](rng)
		}

		return panel.FromFloat[T](rng.NormFloat64())
	})
	if err != nil {
		return nil, spectrumErrorf(opGenerate, err)
	}

	// Orthonormalize G into Q (Householder), scale columns by λ, and
	// close the similarity transform with one conjugate-transposed multiply.
	q := orthonormalize(g)
	qd := q.Clone()
	qdData, stride := qd.Raw()
	var i, j int
	for i = 0; i < n; i++ {
		base := i * stride
		for j = 0; j < n; j++ {
			qdData[base+j] *= panel.FromFloat[T](evs[j])
		}
	}

	a, err := summa.Multiply(qd, q, summa.WithTransposeB())
	if err != nil {
		return nil, spectrumErrorf(opGenerate, err)
	}

	symmetrize(a)

	return a, nil
}

// gaussianComplex draws one standard complex normal value from rng.
func gaussianComplex[T panel.Number](rng *rand.Rand) T {
	re := rng.NormFloat64()
	im := rng.NormFloat64()

	var zero T
	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(re), float32(im))).(T)
	default:
		return any(complex(re, im)).(T)
	}
}

// symmetrize replaces A with (A + Aᴴ)/2 in place and forces the diagonal
// real, scrubbing the round-off asymmetry a floating-point similarity
// transform leaves behind. Exact-arithmetic A is already Hermitian, so the
// adjustment is on the order of the accumulation error.
// Complexity: O(n²).
func symmetrize[T panel.Number](a *panel.Dense[T]) {
	data, stride := a.Raw()
	n := a.Rows()
	half := panel.FromFloat[T](0.5)

	var i, j int
	var avg T
	for i = 0; i < n; i++ {
		// Hermitian diagonals are real; drop the imaginary residue.
		data[i*stride+i] = panel.FromFloat[T](panel.RealPart(data[i*stride+i]))
		for j = i + 1; j < n; j++ {
			avg = (data[i*stride+j] + panel.Conj(data[j*stride+i])) * half
			data[i*stride+j] = avg
			data[j*stride+i] = panel.Conj(avg)
		}
	}
}
