// SPDX-License-Identifier: MIT

package invsqrt

import (
	"math"

	"github.com/katalvlaran/panmat/summa"
)

// Phase labels which update rule produced an iteration.
type Phase int

const (
	// PhaseRogue is the accelerated warm-up with γ = 2/(1+s).
	PhaseRogue Phase = iota
	// PhaseNewtonSchulz is the plain quadratic iteration with γ = 1.
	PhaseNewtonSchulz
)

// String implements fmt.Stringer for Phase.
func (p Phase) String() string {
	if p == PhaseRogue {
		return "Rogue"
	}

	return "NewtonSchulz"
}

// Tunable defaults. DefaultEps is dtype-dependent and lives in monitor.go.
const (
	// DefaultMaxIter bounds the iteration count; well-conditioned inputs
	// converge in well under 50 steps.
	DefaultMaxIter = 200

	// DefaultSwitchThreshold is the normalized-eigenvalue level at which the
	// rogue warm-up hands over to plain Newton–Schulz.
	DefaultSwitchThreshold = 0.1
)

// Panic messages for misuse of option constructors (programmer errors, not
// runtime conditions).
const (
	panicEpsInvalid     = "invsqrt: WithEps requires a positive finite tolerance"
	panicMaxIterInvalid = "invsqrt: WithMaxIter requires at least one iteration"
	panicSMinInvalid    = "invsqrt: WithSMinEstimate requires a positive finite estimate"
	panicThreshInvalid  = "invsqrt: WithSwitchThreshold requires a value in (0,1)"
)

// Observer receives per-iteration progress: the iteration index (0-based),
// the phase whose rule is about to be applied, and the residual measured
// before the update. Useful for logging and for studying the warm-up
// handover; ignored when nil.
type Observer func(iteration int, phase Phase, residual float64)

// Options collects the resolved solver configuration.
type Options struct {
	eps      float64 // 0 ⇒ dtype default, resolved at solve time
	maxIter  int
	sMinEst  float64 // estimate of the smallest eigenvalue of A (unnormalized)
	sMinSet  bool    // false ⇒ seed the tracker with machine epsilon
	sThresh  float64
	mode     summa.Mode
	workers  int
	observer Observer
}

// Option mutates Options; the usual functional-options pattern.
type Option func(*Options)

// WithEps overrides the convergence tolerance. Unset, the tolerance is
// DefaultEps of the input dtype. Panics on a non-positive or non-finite
// value.
func WithEps(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIter overrides the iteration cap. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithSMinEstimate seeds the rogue-phase eigenvalue tracker with an estimate
// of the smallest eigenvalue of A (before normalization). A good estimate
// shortens — or with a large enough value skips — the warm-up. The solve
// stays correct for any positive value; a too-large estimate only costs
// extra plain iterations. Panics on a non-positive or non-finite value.
func WithSMinEstimate(est float64) Option {
	if !(est > 0) || math.IsInf(est, 0) {
		panic(panicSMinInvalid)
	}

	return func(o *Options) {
		o.sMinEst = est
		o.sMinSet = true
	}
}

// WithSwitchThreshold overrides the normalized-eigenvalue level at which the
// warm-up stops. Panics unless 0 < t < 1.
func WithSwitchThreshold(t float64) Option {
	if !(t > 0) || t >= 1 {
		panic(panicThreshInvalid)
	}

	return func(o *Options) { o.sThresh = t }
}

// WithMode selects the summa execution engine for every product of the
// solve.
func WithMode(m summa.Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithWorkers sets the worker count forwarded to distributed products.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithObserver registers a per-iteration progress callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.observer = fn }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIter: DefaultMaxIter,
		sThresh: DefaultSwitchThreshold,
		mode:    summa.DefaultMode,
		workers: summa.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
