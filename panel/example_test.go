// SPDX-License-Identifier: MIT

package panel_test

import (
	"fmt"

	"github.com/katalvlaran/panmat/panel"
)

// ExampleGenerate builds a small matrix from a generator function and walks
// its panel decomposition, including the clipped remainder tile.
func ExampleGenerate() {
	m, _ := panel.Generate(5, 5, 3, func(i, j int) float64 {
		return float64(10*i + j)
	})

	fmt.Println(m.PanelRows(), "x", m.PanelCols(), "panels")

	full, _ := m.Panel(0, 0)
	rem, _ := m.Panel(1, 1)
	fmt.Println("full tile:", full.RowsN, "x", full.ColsN)
	fmt.Println("remainder tile:", rem.RowsN, "x", rem.ColsN)
	fmt.Println("corner element:", rem.At(rem.RowsN-1, rem.ColsN-1))
	// Output:
	// 2 x 2 panels
	// full tile: 3 x 3
	// remainder tile: 2 x 2
	// corner element: 44
}
