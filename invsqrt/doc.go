// SPDX-License-Identifier: MIT

// Package invsqrt computes the inverse principal square root A⁻¹ᐟ² of a
// symmetric (Hermitian) positive-definite panel matrix with a two-phase,
// multiplication-only iteration built entirely on summa panel products.
//
// ✅ What it does
//
//	invsqrt.Solve(A)            →  X ≈ A⁻¹ᐟ², iteration counters, residual
//	invsqrt.Run(cfg)            →  end-to-end: generate a test matrix with a
//	                               prescribed spectrum, solve it, report
//	invsqrt.DefaultEps(dtype)   →  the precision-matched stop tolerance
//
// 🧮 The iteration
//
// The input is first normalized, Ã = A/‖A‖_F, which places every eigenvalue
// of Ã in (0, 1]. Two coupled iterates then evolve under panel products:
//
//	Z₀ = I, Y₀ = Ã
//	Pₖ = Zₖ·Yₖ
//	Tₖ = (3I − γₖPₖ)/2
//	Zₖ₊₁ = √γₖ·Tₖ·Zₖ,  Yₖ₊₁ = √γₖ·Yₖ·Tₖ
//
// The coupling maintains Yₖ = Ã·Zₖ, so Pₖ = Ã·Zₖ² → I exactly when
// Zₖ → Ã⁻¹ᐟ²; the answer is recovered as X = Z/√‖A‖_F.
//
// ⚡ Two phases
//
// Plain Newton–Schulz (γ = 1) converges quadratically but stalls for many
// iterations when the smallest normalized eigenvalue s is tiny. The rogue
// warm-up phase accelerates that regime with γ = 2/(1+s), tracking the
// smallest eigenvalue analytically via s ← γs·((3−γs)/2)² and handing over
// to the plain iteration once s crosses the switch threshold. A caller who
// knows (or can bound) the smallest eigenvalue of A seeds the tracker with
// WithSMinEstimate and skips most of the warm-up.
//
// 🛰️ Serial and distributed
//
// Every matrix product goes through summa.Multiply, so WithMode and
// WithWorkers select the execution engine per solve. Both engines accumulate
// in the same order, making serial and distributed solves bitwise identical.
//
// 🚦 Termination
//
// The solver stops when the residual ‖P − I‖_F/√n drops below eps, or after
// maxiter iterations. Running out of iterations is a report (Converged =
// false), not an error; a non-finite residual is ErrDivergence.
package invsqrt
