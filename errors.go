// SPDX-License-Identifier: MIT

// Package eqs: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the eqs
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package eqs

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "eqs: ..." for consistency and to allow
// easy grepping across logs. Methods wrap these sentinels with call-site
// context via fmt.Errorf("ctx: %w", ErrX); callers still match with
// errors.Is.

var (
	// ErrInvalidDimensions indicates that a requested shape or length is
	// negative. Zero-sized values are legal degenerate shapes; every indexed
	// access on them is out of range by definition.
	ErrInvalidDimensions = errors.New("eqs: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row, column or element index is outside
	// the valid range. Indexed accessors and mutators MUST return this, not
	// panic.
	ErrOutOfRange = errors.New("eqs: index out of range")

	// ErrSizeMismatch indicates incompatible sizes between operands: a bulk
	// fill whose length differs from rows*cols, a matrix-vector product where
	// cols != length, or element-wise operations over differing shapes.
	ErrSizeMismatch = errors.New("eqs: size mismatch")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed to a
	// binary operation.
	ErrNilMatrix = errors.New("eqs: nil matrix")

	// ErrNilVector indicates that a nil *Vector operand was passed to an
	// operation that consumes one.
	ErrNilVector = errors.New("eqs: nil vector")
)
