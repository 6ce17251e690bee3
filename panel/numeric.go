// SPDX-License-Identifier: MIT
// Package panel: generic scalar helpers bridging the Number constraint and
// float64 arithmetic. Kernels that must reason about magnitudes (norms,
// tolerances, convergence residuals) reduce elements to float64 here in one
// canonical place; everything else stays in the element precision.

package panel

import "math"

// FromFloat converts a real float64 scalar into the element type T.
// Complex dtypes receive v as the real component with zero imaginary part.
// Complexity: O(1).
func FromFloat[T Number](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), 0)).(T)
	default:
		return any(complex(v, 0)).(T)
	}
}

// Conj returns the complex conjugate of v. Real dtypes are returned
// unchanged, so transpose kernels can apply Conj unconditionally.
// Complexity: O(1).
func Conj[T Number](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}

// AbsSq returns |v|² as a float64. For real dtypes this is v², for complex
// dtypes re²+im². Norm kernels accumulate AbsSq to avoid a per-element sqrt.
// Complexity: O(1).
func AbsSq[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		f := float64(x)
		return f * f
	case float64:
		return x * x
	case complex64:
		re, im := float64(real(x)), float64(imag(x))
		return re*re + im*im
	default:
		c := any(v).(complex128)
		re, im := real(c), imag(c)
		return re*re + im*im
	}
}

// RealPart returns the real component of v as a float64. Trace-like
// reductions of Hermitian matrices use this (their diagonals are real up
// to round-off).
// Complexity: O(1).
func RealPart[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	default:
		return real(any(v).(complex128))
	}
}

// IsFinite reports whether every component of v is finite (no NaN, no ±Inf).
// Complexity: O(1).
func IsFinite[T Number](v T) bool {
	switch x := any(v).(type) {
	case float32:
		f := float64(x)
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case complex64:
		re, im := float64(real(x)), float64(imag(x))
		return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
	default:
		c := any(v).(complex128)
		re, im := real(c), imag(c)
		return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
	}
}
