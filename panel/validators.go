// SPDX-License-Identifier: MIT
// Package panel: canonical validators shared by every facade in the library.
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/dtype/panel checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element-level scans (ValidateFinite) run one flat O(r·c) pass.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Validators on the Matrix interface cover dtype-erased call sites; the
//    generic forms cover concrete *Dense[T] operands.

package panel

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes non-nil.
// Returns ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape checks that both operands have identical global
// dimensions. Assumes non-nil operands. Returns ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameDtype ensures both operands carry the same element type.
// Assumes non-nil operands. Returns ErrDtypeMismatch. Complexity: O(1).
func ValidateSameDtype(a, b Matrix) error {
	if a.Dtype() != b.Dtype() {
		return validatorErrorf("ValidateSameDtype", ErrDtypeMismatch)
	}

	return nil
}

// ValidateSamePanelSize ensures both operands share one panel size so a
// single panel decomposition covers them. Assumes non-nil operands.
// Returns ErrPanelSizeMismatch. Complexity: O(1).
func ValidateSamePanelSize(a, b Matrix) error {
	if a.PanelSize() != b.PanelSize() {
		return validatorErrorf("ValidateSamePanelSize", ErrPanelSizeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures inner dimensions agree (a.Cols == b.Rows).
// Assumes non-nil operands. Returns ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinaryOperands — composite: NotNil(a) → NotNil(b) → SameDtype →
// SamePanelSize. The multiply facade runs this before any dimension logic so
// type errors surface with a stable priority.
// Errors: ErrNilMatrix, ErrDtypeMismatch, ErrPanelSizeMismatch.
// Complexity: O(1).
func ValidateBinaryOperands(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryOperands", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryOperands", err)
	}
	if err := ValidateSameDtype(a, b); err != nil {
		return validatorErrorf("ValidateBinaryOperands", err)
	}
	if err := ValidateSamePanelSize(a, b); err != nil {
		return validatorErrorf("ValidateBinaryOperands", err)
	}

	return nil
}

// ValidateFinite scans every element of m and fails on the first NaN or
// ±Inf. Solvers run this once on their input before iterating — non-finite
// inputs abort eagerly rather than corrupting distributed state.
// Errors: ErrNilMatrix, ErrNaNInf. Complexity: O(r*c).
func ValidateFinite[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	for idx := range m.data {
		if !IsFinite(m.data[idx]) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
