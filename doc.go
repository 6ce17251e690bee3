// Package panmat computes inverse square roots of large symmetric (or
// Hermitian) positive-definite matrices with a panel-distributed,
// two-phase Newton–Schulz iteration.
//
// 🚀 What is panmat?
//
//	A numeric library that brings together:
//		• Panel matrices: dense storage logically tiled into panels, the
//		  unit of ownership and communication
//		• SUMMA multiply: panel-broadcast matrix multiplication, serial or
//		  distributed across in-process workers
//		• Spectrum generator: synthetic SPD/HPD matrices with a prescribed
//		  (linear or geometric) eigenvalue distribution
//		• Inverse square root: coupled Newton–Schulz iteration with a
//		  scaled "rogue" warm-up phase and residual-driven convergence
//
// ✨ Why choose panmat?
//
//   - One math, two modes – serial and distributed execution share a
//     single panel-structured code path
//   - Deterministic – seeded generation, fixed loop orders, reproducible
//     iteration counts
//   - Dtype-aware – float32/float64/complex64/complex128 with
//     precision-matched accumulation and tolerances
//   - Fail-fast – sentinel errors on shape/dtype/panel misuse, never
//     silent correction
//
// Under the hood, everything is organized under four subpackages:
//
//	panel/    — Dense[T] panel matrices, layouts, dtypes, validators
//	summa/    — panel-distributed matrix multiplication
//	spectrum/ — spectrum-controlled SPD/HPD matrix generation
//	invsqrt/  — the two-phase inverse-square-root solver
//
// Quick sketch:
//
//	    A ──▶ invsqrt.Solve ──▶ X ≈ A^(−1/2)
//	          │   ▲
//	          ▼   │ residual ‖A·X² − I‖
//	      summa.Multiply (panels)
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/panmat
package panmat
