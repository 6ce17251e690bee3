// SPDX-License-Identifier: MIT

// Householder QR kernel backing Generate. Only the orthonormal factor Q is
// needed, so R is discarded as the reflections are applied.

package spectrum

import (
	"math"

	"github.com/katalvlaran/panmat/panel"
)

// orthonormalize computes the orthonormal (unitary for complex T) factor Q
// of the QR decomposition of g via Householder reflections. g is consumed
// as workspace; the caller must not reuse it.
//
// For each column k a reflector H = I − βvvᴴ annihilates the subdiagonal:
// v = x + phase·‖x‖·e_k with phase = x_k/|x_k| (sign-stable for complex
// pivots), β = 2/‖v‖². Q accumulates right-to-left products, Q ← Q·H.
//
// Complexity: O(n³) time, O(n) extra space.
func orthonormalize[T panel.Number](g *panel.Dense[T]) *panel.Dense[T] {
	n := g.Rows()
	psz := g.PanelSize()
	data, stride := g.Raw()

	q := mustIdentity[T](n, psz)
	qData, qStride := q.Raw()

	v := make([]T, n)

	var i, k, l int
	for k = 0; k < n; k++ {
		// Build the reflector for column k from rows k..n-1.
		var normSq float64
		for i = k; i < n; i++ {
			v[i] = data[i*stride+k]
			normSq += panel.AbsSq(v[i])
		}
		norm := math.Sqrt(normSq)
		if norm == 0 {
			continue // zero column: nothing to reflect
		}

		// phase·‖x‖ keeps the pivot addition away from cancellation and
		// extends the usual sign trick to complex pivots.
		pivotAbs := math.Sqrt(panel.AbsSq(v[k]))
		shift := panel.FromFloat[T](norm)
		if pivotAbs > 0 {
			shift = v[k] * panel.FromFloat[T](norm/pivotAbs)
		}
		v[k] += shift

		var vNormSq float64
		for i = k; i < n; i++ {
			vNormSq += panel.AbsSq(v[i])
		}
		if vNormSq == 0 {
			continue
		}
		beta := panel.FromFloat[T](2 / vNormSq)

		// Apply H from the left to the trailing columns of g:
		// a_j ← a_j − β·(vᴴa_j)·v.
		var j int
		var dot T
		for j = k; j < n; j++ {
			dot = 0
			for l = k; l < n; l++ {
				dot += panel.Conj(v[l]) * data[l*stride+j]
			}
			dot *= beta
			for l = k; l < n; l++ {
				data[l*stride+j] -= dot * v[l]
			}
		}

		// Accumulate Q ← Q·H: q_i ← q_i − β·(q_i·v)·vᴴ per row i.
		for i = 0; i < n; i++ {
			dot = 0
			base := i * qStride
			for l = k; l < n; l++ {
				dot += qData[base+l] * v[l]
			}
			dot *= beta
			for l = k; l < n; l++ {
				qData[base+l] -= dot * panel.Conj(v[l])
			}
		}
	}

	return q
}

// mustIdentity builds an identity matrix for internal use where the shape
// is already validated upstream.
func mustIdentity[T panel.Number](n, psz int) *panel.Dense[T] {
	m, err := panel.Identity[T](n, psz)
	if err != nil {
		panic(err) // unreachable: n and psz validated by the facade
	}

	return m
}
