// SPDX-License-Identifier: MIT

// Package nums defines the numeric tolerance policy shared by the eqs
// value types.
//
// Floating-point values produced by accumulation (dot products, repeated
// AddAt calls, scaling round trips) drift below any exact comparison, so
// equality across the eqs package is tolerance-based and funneled through
// this single package: one default epsilon, one predicate. The predicate
// delegates to gonum's scalar comparisons, which combine an absolute
// tolerance (for values near zero) with a relative one (for large
// magnitudes).
package nums

import "gonum.org/v1/gonum/floats/scalar"

// DefaultEpsilon is the non-negative tolerance used by CloseEnough and by
// the Equals methods of the eqs value types. Single source of truth for
// the package's zero-value numeric policy.
const DefaultEpsilon = 1e-9

// CloseEnough reports whether a and b are equal within DefaultEpsilon.
func CloseEnough(a, b float64) bool {
	return CloseEnoughEps(a, b, DefaultEpsilon)
}

// CloseEnoughEps reports whether a and b are equal within the given
// epsilon, applied as both the absolute and the relative tolerance.
// NaN never compares equal to anything, itself included.
func CloseEnoughEps(a, b, eps float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, eps, eps)
}

// IsCloseToZero reports whether v is within DefaultEpsilon of zero.
// Comparison is absolute only: a relative tolerance is meaningless
// against an exact zero.
func IsCloseToZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, DefaultEpsilon)
}

// IsCloseToOne reports whether v is within DefaultEpsilon of one.
func IsCloseToOne(v float64) bool {
	return CloseEnough(v, 1)
}
