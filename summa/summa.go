// SPDX-License-Identifier: MIT

// Package summa: public multiply facades. The generic Multiply validates
// operands and dispatches to the serial or distributed engine; the
// dtype-erased MultiplyMatrix additionally enforces dtype equality before
// narrowing to the concrete element type.

package summa

import (
	"fmt"

	"github.com/katalvlaran/panmat/panel"
)

// Operation name constants for unified error wrapping.
const (
	opMultiply       = "Multiply"
	opMultiplyMatrix = "MultiplyMatrix"
)

// summaErrorf wraps err with an operation tag, preserving the original
// error via %w so callers keep matching sentinels through errors.Is.
func summaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply computes C = op(A)·op(B) over a shared panel decomposition.
// Implementation:
//   - Stage 1: validate operands (non-nil, equal panel sizes), materialize
//     requested conjugate transposes, validate inner dimensions.
//   - Stage 2: allocate C and run the engine selected by WithMode —
//     the serial triple panel loop or the broadcast-per-step worker pool.
//
// Behavior highlights:
//   - Both engines accumulate in the identical fixed order, so serial and
//     distributed products are bitwise equal for equal inputs.
//   - Accumulation stays in T precision; no implicit upcast.
//
// Inputs:
//   - a, b: operands sharing one panel size psz.
//   - opts: WithMode, WithWorkers, WithTransposeA, WithTransposeB.
//
// Returns:
//   - *panel.Dense[T]: freshly allocated product, panel size psz.
//
// Errors:
//   - panel.ErrNilMatrix          (nil operand).
//   - panel.ErrPanelSizeMismatch  (operand panel sizes differ).
//   - panel.ErrDimensionMismatch  (inner dimensions disagree after op()).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c) + one psz×c broadcast strip per worker
//     pool in distributed mode.
func Multiply[T panel.Number](a, b *panel.Dense[T], opts ...Option) (*panel.Dense[T], error) {
	o := gatherOptions(opts...)

	// Validate presence and panel compatibility before any allocation.
	if a == nil || b == nil {
		return nil, summaErrorf(opMultiply, panel.ErrNilMatrix)
	}
	if a.PanelSize() != b.PanelSize() {
		return nil, summaErrorf(opMultiply, panel.ErrPanelSizeMismatch)
	}

	// Materialize requested transposes; Conj is a no-op for real dtypes.
	var err error
	opA, opB := a, b
	if o.transA {
		if opA, err = panel.ConjTranspose(a); err != nil {
			return nil, summaErrorf(opMultiply, err)
		}
	}
	if o.transB {
		if opB, err = panel.ConjTranspose(b); err != nil {
			return nil, summaErrorf(opMultiply, err)
		}
	}

	// Inner dimensions must agree after the transposes are applied.
	if opA.Cols() != opB.Rows() {
		return nil, summaErrorf(opMultiply, panel.ErrDimensionMismatch)
	}

	c, err := panel.NewDense[T](opA.Rows(), opB.Cols(), a.PanelSize())
	if err != nil {
		return nil, summaErrorf(opMultiply, err)
	}

	if o.mode == Distributed {
		if err = multiplyDistributed(opA, opB, c, o.workers); err != nil {
			return nil, summaErrorf(opMultiply, err)
		}

		return c, nil
	}

	multiplySerial(opA, opB, c)

	return c, nil
}

// MultiplyMatrix is the dtype-erased form of Multiply for heterogeneous
// call sites. It enforces dtype equality eagerly (ErrDtypeMismatch), then
// narrows both operands to the concrete element type and delegates.
//
// Errors:
//   - panel.ErrNilMatrix, panel.ErrDtypeMismatch, panel.ErrPanelSizeMismatch,
//     panel.ErrDimensionMismatch.
//
// Complexity:
//   - Same as Multiply; the dispatch itself is O(1).
func MultiplyMatrix(a, b panel.Matrix, opts ...Option) (panel.Matrix, error) {
	if err := panel.ValidateBinaryOperands(a, b); err != nil {
		return nil, summaErrorf(opMultiplyMatrix, err)
	}

	switch a.Dtype() {
	case panel.Float32:
		return multiplyTyped[float32](a, b, opts)
	case panel.Float64:
		return multiplyTyped[float64](a, b, opts)
	case panel.Complex64:
		return multiplyTyped[complex64](a, b, opts)
	default:
		return multiplyTyped[complex128](a, b, opts)
	}
}

// multiplyTyped narrows both dtype-erased operands to *panel.Dense[T] and
// runs the generic facade. A non-Dense implementation cannot share a panel
// decomposition with ours, so it is reported as a dtype mismatch.
func multiplyTyped[T panel.Number](a, b panel.Matrix, opts []Option) (panel.Matrix, error) {
	da, okA := a.(*panel.Dense[T])
	db, okB := b.(*panel.Dense[T])
	if !okA || !okB {
		return nil, summaErrorf(opMultiplyMatrix, panel.ErrDtypeMismatch)
	}

	return Multiply(da, db, opts...)
}
