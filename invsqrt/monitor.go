// SPDX-License-Identifier: MIT

package invsqrt

import (
	"math"

	"github.com/katalvlaran/panmat/panel"
)

// Precision-matched convergence tolerances. Single precision bottoms out
// around 1e-7 per entry; asking a float32 iteration for 1e-10 would spin on
// round-off forever.
const (
	epsSinglePrecision = 1e-4
	epsDoublePrecision = 1e-10
)

// DefaultEps returns the convergence tolerance used when WithEps is unset:
// 1e-4 for float32/complex64 inputs, 1e-10 for float64/complex128.
func DefaultEps(dt panel.Dtype) float64 {
	if dt == panel.Float32 || dt == panel.Complex64 {
		return epsSinglePrecision
	}

	return epsDoublePrecision
}

// Monitor tracks the convergence of the coupled iteration. It owns the
// stopping decision: converged when the residual drops below eps, diverged
// (fatally) when the residual stops being a number.
type Monitor struct {
	eps       float64
	sqrtN     float64
	residual  float64
	converged bool
}

// NewMonitor builds a monitor for an n×n iteration with tolerance eps.
func NewMonitor(n int, eps float64) *Monitor {
	return &Monitor{eps: eps, sqrtN: math.Sqrt(float64(n)), residual: math.Inf(1)}
}

// Observe records the residual of the product matrix P = Z·Y and reports
// whether the iteration is finished. The residual is the dimension-scaled
// distance to the identity, ‖P − I‖_F / √n.
//
// Returns:
//   - done = true once residual < eps; the caller stops iterating.
//   - ErrDivergence when the residual is NaN or Inf.
func (m *Monitor) Observe(residual float64) (done bool, err error) {
	if math.IsNaN(residual) || math.IsInf(residual, 0) {
		return false, ErrDivergence
	}

	m.residual = residual
	m.converged = residual < m.eps

	return m.converged, nil
}

// Residual returns the most recently observed residual.
func (m *Monitor) Residual() float64 { return m.residual }

// Converged reports whether the last observed residual met the tolerance.
func (m *Monitor) Converged() bool { return m.converged }

// DistanceToIdentity computes ‖P − I‖_F / √n for a square matrix P. NaN and
// Inf entries propagate into the result rather than erroring here; the
// Monitor turns a non-finite value into ErrDivergence.
func DistanceToIdentity[T panel.Number](p *panel.Dense[T]) float64 {
	data, stride := p.Raw()
	n := p.Rows()

	var sum float64
	var i, j int
	var d T
	for i = 0; i < n; i++ {
		base := i * stride
		for j = 0; j < n; j++ {
			d = data[base+j]
			if i == j {
				d -= panel.FromFloat[T](1)
			}
			sum += panel.AbsSq(d)
		}
	}

	return math.Sqrt(sum) / math.Sqrt(float64(n))
}
