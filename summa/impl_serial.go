// SPDX-License-Identifier: MIT

// Package summa: serial engine. One owner holds every panel, so the
// broadcast step degenerates to direct panel-local multiplication — the
// panel loop structure is identical to the distributed engine, only the
// communication is gone.

package summa

import "github.com/katalvlaran/panmat/panel"

// multiplySerial accumulates C += A·B with the fixed panel order
// pi → k → pj and the fixed in-panel order i → kk → j. The distributed
// engine reproduces the same per-element accumulation order, which is what
// makes the two modes bitwise-identical.
// Operands are pre-validated by the facade; panel lookups cannot fail here.
// Complexity: Time O(r·n·c), Space O(1) beyond the pre-allocated C.
func multiplySerial[T panel.Number](a, b, c *panel.Dense[T]) {
	var pi, k, pj int
	pRows, pCols, pk := c.PanelRows(), c.PanelCols(), a.PanelCols()

	cData, cStride := c.Raw()
	for pi = 0; pi < pRows; pi++ {
		for k = 0; k < pk; k++ {
			av, _ := a.Panel(pi, k)
			for pj = 0; pj < pCols; pj++ {
				bv, _ := b.Panel(k, pj)
				accPanel(av, bv, cData, cStride)
			}
		}
	}
}

// accPanel accumulates one local panel product into C: for every row i of
// the A-panel, C[i, bv-columns] += Σ_kk A[i,kk]·B[kk,j]. Zero A elements are
// skipped; the skip adds exactly nothing, so determinism is unaffected.
// Complexity: O(RowsN·ColsN(A)·ColsN(B)).
func accPanel[T panel.Number](av, bv panel.View[T], cData []T, cStride int) {
	var (
		i, kk, j int
		aik      T
		zero     T
	)
	for i = 0; i < av.RowsN; i++ {
		aRow := av.Row(i)
		cBase := (av.Row0+i)*cStride + bv.Col0
		cRow := cData[cBase : cBase+bv.ColsN]
		for kk = 0; kk < av.ColsN; kk++ {
			aik = aRow[kk]
			if aik == zero {
				continue // skip zero for performance
			}
			bRow := bv.Row(kk)
			for j = 0; j < bv.ColsN; j++ {
				cRow[j] += aik * bRow[j]
			}
		}
	}
}
