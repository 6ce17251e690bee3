// SPDX-License-Identifier: MIT
// Package panel: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the panel
// package and its consumers (summa, spectrum, invsqrt). All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation should panic on user-triggered error conditions; panics are
// reserved for programmer errors in option constructors.

package panel

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "panel: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> panel bounds -> dtype mismatch -> panel-size
// mismatch -> dimension mismatch.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("panel: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or panel size <= 0).
	ErrBadShape = errors.New("panel: invalid shape")

	// ErrOutOfRange indicates that an element index (row or column) is
	// outside valid bounds. Public indexers (At/Set) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("panel: index out of range")

	// ErrPanelOutOfRange indicates that requested panel coordinates exceed
	// the panel-count bounds of the matrix.
	ErrPanelOutOfRange = errors.New("panel: panel index out of range")

	// ErrDtypeMismatch indicates that two matrices of different element
	// types were combined in an operation that requires matching types.
	ErrDtypeMismatch = errors.New("panel: dtype mismatch")

	// ErrPanelSizeMismatch indicates that two operands carry different
	// panel sizes and therefore cannot share one panel decomposition.
	ErrPanelSizeMismatch = errors.New("panel: panel size mismatch")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. a multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("panel: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (ingestion of explicit dense data).
	ErrNaNInf = errors.New("panel: NaN or Inf encountered")
)
