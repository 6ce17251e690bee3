// SPDX-License-Identifier: MIT
// Package panel: Dense is the concrete, row-major panel matrix. It stores
// the full global element grid in one flat slice for cache friendliness and
// carries the panel size that every consumer (summa, invsqrt) uses to tile
// loops and to assign ownership.

package panel

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values logically tiled into psz×psz
// panels. rows/cols are the global dimensions; data holds rows*cols
// elements in row-major order. The final panel row/column is a remainder
// tile whenever psz does not divide the corresponding dimension evenly.
//
// Dense values are treated as immutable across iteration boundaries: every
// kernel in the library allocates a fresh result instead of mutating its
// operands, so two iterates of a solver are always two independent values.
type Dense[T Number] struct {
	rows, cols int // global dimensions
	psz        int // panel size (edge length of a full panel)
	data       []T // flat backing storage, length == rows*cols
}

// NewDense creates a rows×cols Dense matrix of zeros tiled by psz panels.
// Implementation:
//   - Stage 1: validate rows, cols, psz > 0.
//   - Stage 2: allocate the flat backing slice and return the value.
//
// Inputs:
//   - rows, cols: global dimensions (> 0).
//   - psz: panel size (> 0); values larger than the dimensions are legal
//     and collapse the tiling to a single panel.
//
// Returns:
//   - *Dense[T]: zero-initialized matrix.
//
// Errors:
//   - ErrBadShape when any of rows, cols, psz is non-positive.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func NewDense[T Number](rows, cols, psz int) (*Dense[T], error) {
	// Validate shape before allocation.
	if rows <= 0 || cols <= 0 || psz <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d,%d): %w", rows, cols, psz, ErrBadShape)
	}

	return &Dense[T]{rows: rows, cols: cols, psz: psz, data: make([]T, rows*cols)}, nil
}

// FromSlice wraps explicit row-major dense data into a Dense matrix.
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols; reject NaN/Inf.
//   - Stage 2: copy data into fresh backing storage (the caller keeps
//     ownership of its slice).
//
// Errors:
//   - ErrBadShape          (non-positive rows/cols/psz).
//   - ErrDimensionMismatch (len(data) != rows*cols).
//   - ErrNaNInf            (non-finite element in data).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func FromSlice[T Number](rows, cols, psz int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 || psz <= 0 {
		return nil, fmt.Errorf("FromSlice(%d,%d,%d): %w", rows, cols, psz, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice: len(data)=%d want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	// Reject non-finite ingestion eagerly — never silently corrected.
	for idx := range data {
		if !IsFinite(data[idx]) {
			return nil, fmt.Errorf("FromSlice: element %d: %w", idx, ErrNaNInf)
		}
	}

	// Copy so the matrix owns its storage exclusively.
	owned := make([]T, len(data))
	copy(owned, data)

	return &Dense[T]{rows: rows, cols: cols, psz: psz, data: owned}, nil
}

// Generate builds a Dense matrix by evaluating f at every (i, j) in fixed
// row-major order. This is the constructor used by the spectrum generator
// and by tests; f is trusted to return finite values.
//
// Errors:
//   - ErrBadShape (non-positive rows/cols/psz).
//
// Complexity:
//   - Time O(rows*cols) evaluations of f, Space O(rows*cols).
func Generate[T Number](rows, cols, psz int, f func(i, j int) T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols, psz)
	if err != nil {
		return nil, err
	}

	var i, j int // deterministic row-major fill order
	for i = 0; i < rows; i++ {
		base := i * cols
		for j = 0; j < cols; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return m, nil
}

// Identity creates the n×n identity matrix tiled by psz panels.
//
// Errors:
//   - ErrBadShape (non-positive n or psz).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity[T Number](n, psz int) (*Dense[T], error) {
	m, err := NewDense[T](n, n, psz)
	if err != nil {
		return nil, err
	}

	one := FromFloat[T](1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the global row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the global column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// PanelSize returns the configured panel size. Complexity: O(1).
func (m *Dense[T]) PanelSize() int { return m.psz }

// PanelRows returns the number of panel rows, ceil(rows/psz).
// Complexity: O(1).
func (m *Dense[T]) PanelRows() int { return (m.rows + m.psz - 1) / m.psz }

// PanelCols returns the number of panel columns, ceil(cols/psz).
// Complexity: O(1).
func (m *Dense[T]) PanelCols() int { return (m.cols + m.psz - 1) / m.psz }

// Dtype returns the runtime element-type descriptor of T.
// Complexity: O(1).
func (m *Dense[T]) Dtype() Dtype { return DtypeOf[T]() }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix (same shape, same panel size,
// independent storage).
// Complexity: O(rows*cols).
func (m *Dense[T]) Clone() *Dense[T] {
	owned := make([]T, len(m.data))
	copy(owned, m.data)

	return &Dense[T]{rows: m.rows, cols: m.cols, psz: m.psz, data: owned}
}

// Raw exposes the flat row-major backing slice together with its stride
// (== Cols). Kernels in sibling packages use it for panel-local loops; the
// slice aliases the matrix storage and MUST be treated as read-only by
// anyone other than the kernel currently producing this value.
// Complexity: O(1).
func (m *Dense[T]) Raw() (data []T, stride int) {
	return m.data, m.cols
}

// String implements fmt.Stringer for debugging small matrices.
// Complexity: O(rows*cols).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
