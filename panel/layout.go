// SPDX-License-Identifier: MIT
// Package panel: ownership layouts. A Layout is the explicit panel-row →
// owner mapping that travels alongside matrix data into the distributed
// multiply. It is fixed at construction and never mutated while a solve is
// running — matrices are immutable values between iterations, so the layout
// is the only shared table and it is read-only by contract.

package panel

// Layout maps each panel row to the worker that owns it. Serial execution
// is simply the layout in which a single worker owns everything, which lets
// one code path serve both execution modes.
type Layout struct {
	owners  []int // owners[pi] == worker id holding panel row pi
	workers int   // total number of workers (>= 1)
}

// SerialLayout builds the single-owner layout: every one of panelRows panel
// rows is owned by worker 0.
// Complexity: O(panelRows).
func SerialLayout(panelRows int) Layout {
	owners := make([]int, panelRows)

	return Layout{owners: owners, workers: 1}
}

// RowBlockLayout distributes panelRows panel rows round-robin across
// workers (panel row pi is owned by pi mod workers). A workers value below
// 1, or exceeding the panel-row count, is clamped so every worker owns at
// least one panel row.
// Complexity: O(panelRows).
func RowBlockLayout(panelRows, workers int) Layout {
	if workers < 1 {
		workers = 1
	}
	if workers > panelRows {
		workers = panelRows
	}

	owners := make([]int, panelRows)
	for pi := 0; pi < panelRows; pi++ {
		owners[pi] = pi % workers
	}

	return Layout{owners: owners, workers: workers}
}

// Owner returns the worker id holding panel row pi. Out-of-range panel rows
// report owner 0; bounds are enforced where panels are actually accessed.
// Complexity: O(1).
func (l Layout) Owner(pi int) int {
	if pi < 0 || pi >= len(l.owners) {
		return 0
	}

	return l.owners[pi]
}

// Workers returns the total worker count of the layout.
// Complexity: O(1).
func (l Layout) Workers() int { return l.workers }

// PanelRows returns the number of panel rows the layout covers.
// Complexity: O(1).
func (l Layout) PanelRows() int { return len(l.owners) }
