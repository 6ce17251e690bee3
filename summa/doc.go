// SPDX-License-Identifier: MIT

// Package summa implements panel-distributed dense matrix multiplication
// in the style of the Scalable Universal Matrix Multiplication Algorithm:
// the product C = op(A)·op(B) is assembled panel by panel, accumulating
// over the shared dimension's panel index, with the panels of op(B) that a
// worker does not own delivered by a broadcast step before each local
// multiply.
//
// 🚀 Execution modes
//
//	Serial      — one owner holds every panel; the broadcast degenerates
//	              to direct panel-local multiplication with no
//	              communication step.
//	Distributed — in-process workers each own a row block of panels; at
//	              every shared-dimension step k, the owner of panel row k
//	              of op(B) broadcasts that strip to all workers, then every
//	              worker accumulates its owned rows of C. The broadcast is
//	              a synchronous collective: all workers reach the step
//	              before any proceeds. Per-worker working memory stays
//	              O(psz × global dimension) instead of the full matrix.
//
// Panel size is the single knob trading communication granularity against
// local compute: smaller panels mean more broadcast rounds, larger panels
// mean a bigger broadcast buffer per round.
//
// ✨ Semantics:
//   - accumulation runs in the operand dtype throughout — no implicit upcast
//   - transpose options apply the conjugate transpose for complex dtypes,
//     so AᴴB-style symmetric updates stay Hermitian-correct
//   - both modes execute the identical accumulation order, so serial and
//     distributed products agree bit for bit
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/panmat/summa"
//
//	c, err := summa.Multiply(a, b,
//	    summa.WithMode(summa.Distributed),
//	    summa.WithWorkers(8),
//	)
//
// Errors: ErrPanelSizeMismatch when operand panel sizes differ,
// ErrDimensionMismatch when inner dimensions disagree, ErrDtypeMismatch on
// the dtype-erased facade when element types differ.
//
// Complexity: Time O(r·n·c), Space O(r·c) for the result plus one
// psz-strip broadcast buffer per multiply in distributed mode.
package summa
