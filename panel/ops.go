// SPDX-License-Identifier: MIT
// Package panel: whole-matrix kernels shared by the solver and generator —
// scaling, affine diagonal shifts, conjugate transpose, norms and traces.
// All kernels perform strict fail-fast validation, never mutate operands,
// and allocate exactly one fresh result.

package panel

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opScale       = "Scale"
	opAddScaledID = "AddScaledIdentity"
	opSub         = "Sub"
	opTranspose   = "ConjTranspose"
	opNorm        = "FrobeniusNorm"
	opTrace       = "Trace"
)

// panelErrorf wraps err with an operation tag, preserving the original error
// via %w so call sites keep matching sentinels through errors.Is.
func panelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Implementation:
//   - Stage 1: validate m non-nil.
//   - Stage 2: single flat pass over the backing slice.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if m == nil {
		return nil, panelErrorf(opScale, ErrNilMatrix)
	}

	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// AddScaledIdentity returns alpha*M + beta*I for a square matrix M. This is
// the elementwise half of a Newton–Schulz step, T = (3I − γP)/2, expressed
// as AddScaledIdentity(P, −γ/2, 3/2).
// Implementation:
//   - Stage 1: validate m non-nil and square.
//   - Stage 2: flat scale pass, then one diagonal pass for the beta shift.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square input).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func AddScaledIdentity[T Number](m *Dense[T], alpha, beta T) (*Dense[T], error) {
	if m == nil {
		return nil, panelErrorf(opAddScaledID, ErrNilMatrix)
	}
	if m.rows != m.cols {
		return nil, panelErrorf(opAddScaledID, ErrDimensionMismatch)
	}

	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}
	n := res.rows
	for i := 0; i < n; i++ {
		res.data[i*n+i] += beta
	}

	return res, nil
}

// Sub computes the element-wise difference C = A − B with a fresh result.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrPanelSizeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, panelErrorf(opSub, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, panelErrorf(opSub, err)
	}
	if a.psz != b.psz {
		return nil, panelErrorf(opSub, ErrPanelSizeMismatch)
	}

	res := a.Clone()
	for idx := range res.data {
		res.data[idx] -= b.data[idx]
	}

	return res, nil
}

// ConjTranspose returns Mᴴ — the conjugate transpose for complex dtypes,
// the plain transpose for real ones (Conj is the identity there). Symmetric
// updates of the form AᴴB are materialized through this kernel before the
// multiply runs.
// Implementation:
//   - Stage 1: validate m non-nil.
//   - Stage 2: fixed i→j copy with flat indexing, conjugating on the way.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ConjTranspose[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, panelErrorf(opTranspose, ErrNilMatrix)
	}

	res, err := NewDense[T](m.cols, m.rows, m.psz)
	if err != nil {
		return nil, panelErrorf(opTranspose, err)
	}

	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = Conj(m.data[base+j])
		}
	}

	return res, nil
}

// FrobeniusNorm returns ‖M‖_F = sqrt(Σ|m[i,j]|²) as a float64. The
// accumulation happens in float64 regardless of dtype — the norm is a
// diagnostic scalar, not matrix data, so the no-upcast rule does not apply.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm[T Number](m *Dense[T]) (float64, error) {
	if m == nil {
		return 0, panelErrorf(opNorm, ErrNilMatrix)
	}

	var sum float64
	for idx := range m.data {
		sum += AbsSq(m.data[idx])
	}

	return math.Sqrt(sum), nil
}

// Trace returns Σ m[i,i] reduced to its real part as a float64. Defined for
// square matrices; Hermitian inputs have real diagonals up to round-off.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func Trace[T Number](m *Dense[T]) (float64, error) {
	if m == nil {
		return 0, panelErrorf(opTrace, ErrNilMatrix)
	}
	if m.rows != m.cols {
		return 0, panelErrorf(opTrace, ErrDimensionMismatch)
	}

	var sum float64
	n := m.rows
	for i := 0; i < n; i++ {
		sum += RealPart(m.data[i*n+i])
	}

	return sum, nil
}

// Equalish reports whether a and b share a shape and differ by at most tol
// in every element (component-wise magnitude). Intended for convergence
// comparisons and tests; returns false on any shape difference.
// Complexity: Time O(r*c), Space O(1).
func Equalish[T Number](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil || a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for idx := range a.data {
		if math.Sqrt(AbsSq(a.data[idx]-b.data[idx])) > tol {
			return false
		}
	}

	return true
}
