// SPDX-License-Identifier: MIT
// Package panel: element-type machinery shared by every numeric kernel in
// the library. This file defines:
//   - Number (the generic element constraint),
//   - Dtype (the runtime element-type descriptor for dtype-erased APIs),
//   - Matrix (the dtype-erased read surface implemented by *Dense[T]).

package panel

// Number constrains matrix elements to the four supported dtypes: real or
// complex, single or double precision. Every kernel in panmat accumulates
// in the operand precision — there is no implicit upcast anywhere.
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Dtype identifies a concrete element type at runtime. It lets dtype-erased
// call sites (the Matrix interface, the solver's Run facade) validate
// operand compatibility before dispatching into generic kernels.
type Dtype uint8

const (
	// Float32 is single-precision real.
	Float32 Dtype = iota

	// Float64 is double-precision real.
	Float64

	// Complex64 is single-precision complex (two float32 components).
	Complex64

	// Complex128 is double-precision complex (two float64 components).
	Complex128
)

// dtype display names, indexed by Dtype value.
var dtypeNames = [...]string{"float32", "float64", "complex64", "complex128"}

// String returns the Go name of the element type.
// Complexity: O(1).
func (d Dtype) String() string {
	if int(d) >= len(dtypeNames) {
		return "unknown"
	}

	return dtypeNames[d]
}

// IsComplex reports whether the dtype carries complex elements. Operations
// that transpose-and-multiply use this to decide between plain and
// conjugate transposition.
// Complexity: O(1).
func (d Dtype) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// Machine epsilons of the underlying real scalar (IEEE-754 binary32/64).
const (
	epsSingle = 1.1920928955078125e-07 // 2^-23
	epsDouble = 2.220446049250313e-16  // 2^-52
)

// Eps returns the machine epsilon of the dtype's underlying real scalar.
// Single-precision dtypes (Float32, Complex64) share 2^-23; double-precision
// dtypes (Float64, Complex128) share 2^-52.
// Complexity: O(1).
func (d Dtype) Eps() float64 {
	if d == Float32 || d == Complex64 {
		return epsSingle
	}

	return epsDouble
}

// DtypeOf reports the Dtype descriptor of the element type T.
// Complexity: O(1).
func DtypeOf[T Number]() Dtype {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	default:
		return Complex128
	}
}

// Matrix is the dtype-erased read surface over a panel matrix. It exposes
// exactly the metadata heterogeneous call sites need to validate operand
// compatibility (shape, panel decomposition, element type) before they
// dispatch to a generic kernel on the concrete *Dense[T].
//
// Implemented by *Dense[T] for every T satisfying Number.
type Matrix interface {
	// Rows returns the global row count.
	Rows() int

	// Cols returns the global column count.
	Cols() int

	// PanelSize returns the configured panel size psz.
	PanelSize() int

	// PanelRows returns the number of panel rows, ceil(Rows/psz).
	PanelRows() int

	// PanelCols returns the number of panel columns, ceil(Cols/psz).
	PanelCols() int

	// Dtype returns the runtime element-type descriptor.
	Dtype() Dtype
}
