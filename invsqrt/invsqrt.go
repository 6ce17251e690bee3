// SPDX-License-Identifier: MIT

package invsqrt

import (
	"fmt"
	"math"

	"github.com/katalvlaran/panmat/panel"
	"github.com/katalvlaran/panmat/summa"
)

// Operation name constants for unified error wrapping.
const opSolve = "Solve"

// invsqrtErrorf wraps err with an operation tag, preserving the original
// error via %w.
func invsqrtErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result carries the outcome of a Solve.
type Result[T panel.Number] struct {
	// InvSqrt approximates A⁻¹ᐟ². Populated even when Converged is false —
	// the best iterate available when iterations ran out.
	InvSqrt *panel.Dense[T]

	// RogueIterations counts warm-up steps (γ = 2/(1+s)); TotalIterations
	// counts all steps including the warm-up. TotalIterations never exceeds
	// the configured maximum.
	RogueIterations int
	TotalIterations int

	// Residual is the final observed ‖Z·Y − I‖_F/√n; Converged reports
	// whether it met the tolerance within the iteration budget.
	Residual  float64
	Converged bool
}

// Solve computes the inverse principal square root of a symmetric
// (Hermitian) positive-definite panel matrix.
// Implementation:
//   - Stage 1: validate (non-nil, square, finite entries), resolve options,
//     normalize Ã = A/‖A‖_F so every eigenvalue sits in (0, 1].
//   - Stage 2: run the coupled iteration Z₀ = I, Y₀ = Ã with the rogue
//     warm-up (γ = 2/(1+s)) until the tracked smallest eigenvalue clears
//     the switch threshold, then plain Newton–Schulz (γ = 1); stop on
//     residual < eps or after maxiter steps. Undo the normalization:
//     X = Z/√‖A‖_F.
//
// Behavior highlights:
//   - Exhausting maxiter is not an error: Solve returns the last iterate
//     with Converged = false so the caller can inspect the residual.
//   - A non-finite residual aborts with ErrDivergence; a non-SPD input is
//     the usual way to get here.
//   - All three products per step go through summa.Multiply with the
//     configured mode, so serial and distributed solves agree bitwise.
//
// Inputs:
//   - a:    the SPD/HPD matrix; not modified.
//   - opts: WithEps, WithMaxIter, WithSMinEstimate, WithSwitchThreshold,
//     WithMode, WithWorkers, WithObserver.
//
// Returns:
//   - *Result[T]: the approximation plus iteration metadata.
//
// Errors:
//   - panel.ErrNilMatrix, panel.ErrDimensionMismatch (non-square input).
//   - panel.ErrNaNInf (non-finite entries in a).
//   - ErrDivergence (iteration left its basin).
//
// Determinism:
//   - Fully deterministic for a given input and configuration, in both
//     execution modes.
//
// Complexity:
//   - Time O(iters·n³), Space O(n²); three n×n products per iteration.
func Solve[T panel.Number](a *panel.Dense[T], opts ...Option) (*Result[T], error) {
	if a == nil {
		return nil, invsqrtErrorf(opSolve, panel.ErrNilMatrix)
	}
	if err := panel.ValidateSquare(a); err != nil {
		return nil, invsqrtErrorf(opSolve, err)
	}
	if err := panel.ValidateFinite(a); err != nil {
		return nil, invsqrtErrorf(opSolve, err)
	}

	o := gatherOptions(opts...)
	dt := panel.DtypeOf[T]()
	eps := o.eps
	if eps == 0 {
		eps = DefaultEps(dt)
	}

	prodOpts := []summa.Option{summa.WithMode(o.mode)}
	if o.workers > 0 {
		prodOpts = append(prodOpts, summa.WithWorkers(o.workers))
	}

	// Normalize: Ã = A/c with c = ‖A‖_F ≥ λ_max pushes the spectrum of Ã
	// into (0, 1], the basin of the iteration.
	c, err := panel.FrobeniusNorm(a)
	if err != nil {
		return nil, invsqrtErrorf(opSolve, err)
	}
	if c == 0 {
		// The zero matrix has no inverse square root; report it as a
		// divergence rather than manufacturing NaNs.
		return nil, invsqrtErrorf(opSolve, ErrDivergence)
	}

	y, err := panel.Scale(a, panel.FromFloat[T](1/c))
	if err != nil {
		return nil, invsqrtErrorf(opSolve, err)
	}
	z, err := panel.Identity[T](a.Rows(), a.PanelSize())
	if err != nil {
		return nil, invsqrtErrorf(opSolve, err)
	}

	// Seed the smallest-eigenvalue tracker in the normalized spectrum.
	// Without an estimate, machine epsilon is the conservative floor: the
	// warm-up then runs its maximal useful length.
	s := dt.Eps()
	if o.sMinSet {
		s = o.sMinEst / c
	}

	mon := NewMonitor(a.Rows(), eps)
	rogue, total := 0, 0

	for {
		p, perr := summa.Multiply(z, y, prodOpts...)
		if perr != nil {
			return nil, invsqrtErrorf(opSolve, perr)
		}

		done, merr := mon.Observe(DistanceToIdentity(p))
		if merr != nil {
			return nil, invsqrtErrorf(opSolve, merr)
		}
		if done || total == o.maxIter {
			break
		}

		// Phase selection: rogue while the tracked eigenvalue is still
		// below the threshold, plain Newton–Schulz after.
		gamma := 1.0
		phase := PhaseNewtonSchulz
		if s < o.sThresh {
			gamma = 2 / (1 + s)
			phase = PhaseRogue
			rogue++
		}
		if o.observer != nil {
			o.observer(total, phase, mon.Residual())
		}

		// T = (3I − γP)/2, then Z ← √γ·T·Z and Y ← √γ·Y·T. The coupling
		// keeps Y = Ã·Z exactly, so P = Ã·Z² → I iff Z → Ã⁻¹ᐟ².
		t, terr := panel.AddScaledIdentity(p, panel.FromFloat[T](-gamma/2), panel.FromFloat[T](1.5))
		if terr != nil {
			return nil, invsqrtErrorf(opSolve, terr)
		}

		zn, zerr := summa.Multiply(t, z, prodOpts...)
		if zerr != nil {
			return nil, invsqrtErrorf(opSolve, zerr)
		}
		yn, yerr := summa.Multiply(y, t, prodOpts...)
		if yerr != nil {
			return nil, invsqrtErrorf(opSolve, yerr)
		}

		if gamma != 1 {
			// The √γ rescale tracks the eigenvalue map of the warm-up.
			sq := panel.FromFloat[T](math.Sqrt(gamma))
			if zn, zerr = panel.Scale(zn, sq); zerr != nil {
				return nil, invsqrtErrorf(opSolve, zerr)
			}
			if yn, yerr = panel.Scale(yn, sq); yerr != nil {
				return nil, invsqrtErrorf(opSolve, yerr)
			}
			// Tracker update mirrors the eigenvalue map u ↦ γu·((3−γu)/2)².
			gs := gamma * s
			h := (3 - gs) / 2
			s = gs * h * h
		}
		z, y = zn, yn
		total++
	}

	x, err := panel.Scale(z, panel.FromFloat[T](1/math.Sqrt(c)))
	if err != nil {
		return nil, invsqrtErrorf(opSolve, err)
	}

	return &Result[T]{
		InvSqrt:         x,
		RogueIterations: rogue,
		TotalIterations: total,
		Residual:        mon.Residual(),
		Converged:       mon.Converged(),
	}, nil
}
