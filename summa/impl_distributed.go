// SPDX-License-Identifier: MIT

// Package summa: distributed engine. Workers own row blocks of C (and the
// matching row blocks of A); the panels of B they do not own arrive through
// a broadcast-per-step collective. The collective is synchronous: a cyclic
// barrier holds every worker at the step boundary, so no strip is
// overwritten while another worker still reads it. No step is cancelled
// mid-iteration — callers wanting timeouts wrap the whole multiply.

package summa

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/panmat/panel"
)

// barrier is a reusable cyclic barrier for a fixed party count. await
// blocks until all n workers arrive, then releases the generation together.
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	n     int // party count
	count int // arrivals in the current generation
	gen   int // generation counter
}

// newBarrier creates a barrier for n parties.
func newBarrier(n int) *barrier {
	b := &barrier{n: n}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// await blocks the caller until every party of the current generation has
// arrived. The last arrival flips the generation and wakes the rest.
func (b *barrier) await() {
	b.mu.Lock()
	gen := b.gen
	b.count++
	if b.count == b.n {
		// Last party in: open the next generation for everyone.
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()

		return
	}
	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// multiplyDistributed accumulates C += A·B across a worker pool.
// Implementation:
//   - Stage 1: build row-block layouts for C's panel rows (compute
//     ownership) and B's panel rows (broadcast ownership); allocate one
//     shared psz×cols broadcast strip.
//   - Stage 2: every worker walks the shared-dimension panel index k in
//     lockstep. The owner of B's panel row k publishes that strip into the
//     buffer; a barrier releases all workers to accumulate their owned C
//     panel rows; a second barrier guarantees the strip is fully consumed
//     before the next owner overwrites it.
//
// The per-element accumulation order (k ascending, kk ascending) matches
// multiplySerial exactly, so both modes produce bitwise-equal results.
// Per-worker extra memory is the strip: O(psz × cols).
// Complexity: Time O(r·n·c / workers) plus one strip copy per k step.
func multiplyDistributed[T panel.Number](a, b, c *panel.Dense[T], workers int) error {
	layout := panel.RowBlockLayout(c.PanelRows(), workers)
	w := layout.Workers()
	if w == 1 {
		// A one-worker pool is serial execution with extra ceremony.
		multiplySerial(a, b, c)

		return nil
	}

	var (
		psz      = c.PanelSize()
		pk       = a.PanelCols()                     // shared-dimension panel count
		bLayout  = panel.RowBlockLayout(b.PanelRows(), w) // broadcast ownership
		bCols    = b.Cols()
		bRows    = b.Rows()
		cPR      = c.PanelRows()
		strip    = make([]T, psz*bCols) // shared broadcast buffer
		bar      = newBarrier(w)
		zero     T
	)
	aData, aStride := a.Raw()
	bData, bStride := b.Raw()
	cData, cStride := c.Raw()

	var g errgroup.Group
	for wid := 0; wid < w; wid++ {
		wid := wid
		g.Go(func() error {
			var k, pi, i, kk, j, r0, rn int
			var aik T
			for k = 0; k < pk; k++ {
				r0 = k * psz
				rn = min(psz, bRows-r0) // remainder tile on the last step

				// Broadcast: the strip owner publishes B's panel row k.
				if bLayout.Owner(k) == wid {
					for i = 0; i < rn; i++ {
						src := (r0 + i) * bStride
						copy(strip[i*bCols:(i+1)*bCols], bData[src:src+bCols])
					}
				}
				bar.await() // collective: strip published to everyone

				// Local accumulation over owned C panel rows.
				for pi = 0; pi < cPR; pi++ {
					if layout.Owner(pi) != wid {
						continue
					}
					rowEnd := min((pi+1)*psz, c.Rows())
					for i = pi * psz; i < rowEnd; i++ {
						aRow := aData[i*aStride+r0 : i*aStride+r0+rn]
						cRow := cData[i*cStride : i*cStride+bCols]
						for kk = 0; kk < rn; kk++ {
							aik = aRow[kk]
							if aik == zero {
								continue // skip zero for performance
							}
							bRow := strip[kk*bCols : (kk+1)*bCols]
							for j = 0; j < bCols; j++ {
								cRow[j] += aik * bRow[j]
							}
						}
					}
				}
				bar.await() // collective: strip consumed, safe to overwrite
			}

			return nil
		})
	}

	return g.Wait()
}
