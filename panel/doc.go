// SPDX-License-Identifier: MIT

// Package panel provides the panel-distributed dense matrix that underpins
// the panmat library: a flat row-major array of numeric elements logically
// tiled into square panels of a configured panel size.
//
// 🚀 What is a panel matrix?
//
//	A Dense[T] stores its full r×c element grid contiguously, but every
//	operation in the library addresses it through panels — rectangular
//	sub-blocks of at most psz×psz elements. Panels are the unit of
//	ownership (which worker holds which block) and of communication
//	(what gets broadcast during a distributed multiply). The last panel
//	row/column may be a remainder tile when psz does not divide the
//	global dimension evenly.
//
// ✨ Key features:
//   - generic element types: float32, float64, complex64, complex128
//     (the Number constraint), with a runtime Dtype descriptor for
//     dtype-erased call sites
//   - no-copy panel views: Panel(pi, pj) returns a window into the
//     backing slice, never a copy
//   - ownership layouts: SerialLayout (one owner) and RowBlockLayout
//     (round-robin panel rows across workers), fixed at construction
//   - value semantics across iterations: every operation allocates a
//     fresh result; inputs are never mutated
//   - fail-fast sentinel errors via central validators
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/panmat/panel"
//
//	a, err := panel.Generate[float64](256, 256, 64, func(i, j int) float64 {
//	    if i == j {
//	        return 2.0
//	    }
//	    return 0
//	})
//	v, err := a.Panel(3, 3) // remainder-aware view of the last tile
//
// Complexity:
//
//	Construction and whole-matrix kernels are O(r·c); panel views and
//	element access are O(1).
//
// See example_test.go for runnable examples.
package panel
