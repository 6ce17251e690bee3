// SPDX-License-Identifier: MIT
// Package panel: View is a no-copy window over one panel of a Dense matrix.
// SUMMA kernels walk panels through views; the broadcast step of the
// distributed engine copies exactly one view's worth of elements, which is
// what bounds per-worker memory to O(psz × global dimension).

package panel

import "fmt"

// View is a read window over a single panel: a rectangle of extent
// Rows×Cols whose top-left element sits at (Row0, Col0) of the parent
// matrix. It aliases the parent's backing slice — no element is copied.
// Full panels have extent psz×psz; remainder tiles are smaller.
type View[T Number] struct {
	Row0, Col0 int // global offset of the panel's top-left element
	RowsN      int // panel row extent (<= psz)
	ColsN      int // panel column extent (<= psz)

	stride int // parent row stride
	data   []T // parent backing slice (aliased)
}

// Panel returns a no-copy view of panel (pi, pj).
// Implementation:
//   - Stage 1: validate 0 <= pi < PanelRows and 0 <= pj < PanelCols.
//   - Stage 2: compute the global offsets and clip the extent of the
//     trailing remainder tile.
//
// Errors:
//   - ErrPanelOutOfRange when (pi, pj) exceeds the panel-count bounds.
//
// Complexity:
//   - Time O(1), Space O(1) — the view aliases existing storage.
func (m *Dense[T]) Panel(pi, pj int) (View[T], error) {
	if pi < 0 || pi >= m.PanelRows() || pj < 0 || pj >= m.PanelCols() {
		return View[T]{}, fmt.Errorf("Dense.Panel(%d,%d): %w", pi, pj, ErrPanelOutOfRange)
	}

	r0 := pi * m.psz
	c0 := pj * m.psz

	// Clip the remainder tile at the trailing edge.
	rn := m.psz
	if r0+rn > m.rows {
		rn = m.rows - r0
	}
	cn := m.psz
	if c0+cn > m.cols {
		cn = m.cols - c0
	}

	return View[T]{Row0: r0, Col0: c0, RowsN: rn, ColsN: cn, stride: m.cols, data: m.data}, nil
}

// At reads element (i, j) relative to the panel's top-left corner. Bounds
// are the caller's responsibility — views live on kernel hot paths.
// Complexity: O(1).
func (v View[T]) At(i, j int) T {
	return v.data[(v.Row0+i)*v.stride+v.Col0+j]
}

// Row returns the i-th panel row as a subslice of the parent storage
// (length ColsN). Kernels iterate panel rows through this to keep the
// inner loops flat.
// Complexity: O(1).
func (v View[T]) Row(i int) []T {
	base := (v.Row0+i)*v.stride + v.Col0

	return v.data[base : base+v.ColsN]
}

// CopyInto writes the panel's elements row-major into dst, which must hold
// at least RowsN*ColsN elements. This is the materialization step of a
// broadcast: the owner copies one panel out of its storage, and only that
// copy travels.
// Complexity: O(RowsN*ColsN).
func (v View[T]) CopyInto(dst []T) {
	var i int
	for i = 0; i < v.RowsN; i++ {
		copy(dst[i*v.ColsN:(i+1)*v.ColsN], v.Row(i))
	}
}
