// SPDX-License-Identifier: MIT

// Package eqs - Vector companion type.
//
// Vector mirrors the Matrix contract collapsed to one dimension: flat
// float64 storage, bounds-checked accessors returning sentinel errors,
// in-place mutators, allocation-free reads, and tolerance equality.

package eqs

import (
	"fmt"
	"math"
	"strings"

	"github.com/mechkernel/eqs/nums"
)

// Method and operation tags for Vector error wrapping.
const (
	vecCtxAt    = "At"
	vecCtxSet   = "Set"
	vecCtxAddAt = "AddAt"
	vecOpPlus   = "Plus"
	vecOpMinus  = "Minus"
	vecOpDot    = "Dot"
)

// vectorErrorf wraps a sentinel with Vector method context and the
// call-site index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a fixed-length dense sequence of float64 values, created
// zero-filled. It is the operand and result type of Matrix.TimesVector.
// Same value semantics as Matrix: in-place mutators require exclusive
// access; derived-value operations never touch their operands.
type Vector struct {
	data []float64 // flat storage; length fixed at construction
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector creates a zero-filled Vector of the given length. A zero
// length is a legal degenerate value; negative lengths fail with
// ErrInvalidDimensions.
//
// Complexity: O(length).
func NewVector(length int) (*Vector, error) {
	if length < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", length, ErrInvalidDimensions)
	}

	return &Vector{data: make([]float64, length)}, nil
}

// Length returns the number of elements. Complexity: O(1).
func (v *Vector) Length() int { return len(v.data) }

// At returns the value at index i or ErrOutOfRange. Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(vecCtxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set overwrites the value at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(i int, val float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(vecCtxSet, i, ErrOutOfRange)
	}
	v.data[i] = val

	return nil
}

// AddAt adds delta to the existing value at index i or returns
// ErrOutOfRange. Complexity: O(1).
func (v *Vector) AddAt(i int, delta float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(vecCtxAddAt, i, ErrOutOfRange)
	}
	v.data[i] += delta

	return nil
}

// SetData bulk-replaces every element from the given sequence. The
// sequence length must equal Length() exactly; otherwise ErrSizeMismatch
// is returned and the vector is left untouched.
//
// Complexity: O(length).
func (v *Vector) SetData(values []float64) error {
	if len(values) != len(v.data) {
		return fmt.Errorf("Vector.SetData: got %d values, want %d: %w",
			len(values), len(v.data), ErrSizeMismatch)
	}
	copy(v.data, values)

	return nil
}

// addSub computes out = v + sign*other for sign ∈ {+1, -1}; shared
// validation and loop for Plus/Minus.
func (v *Vector) addSub(other *Vector, sign float64, opTag string) (*Vector, error) {
	if other == nil {
		return nil, fmt.Errorf("Vector.%s: %w", opTag, ErrNilVector)
	}
	if len(v.data) != len(other.data) {
		return nil, fmt.Errorf("Vector.%s: length %d vs %d: %w",
			opTag, len(v.data), len(other.data), ErrSizeMismatch)
	}

	res := &Vector{data: make([]float64, len(v.data))}
	var i int
	for i = 0; i < len(v.data); i++ { // deterministic 0..n-1
		res.data[i] = v.data[i] + sign*other.data[i]
	}

	return res, nil
}

// Plus returns a new Vector holding the element-wise sum v + other.
// Errors: ErrNilVector, ErrSizeMismatch. Complexity: O(length).
func (v *Vector) Plus(other *Vector) (*Vector, error) { return v.addSub(other, +1, vecOpPlus) }

// Minus returns a new Vector holding the element-wise difference
// v - other. Errors: ErrNilVector, ErrSizeMismatch. Complexity: O(length).
func (v *Vector) Minus(other *Vector) (*Vector, error) { return v.addSub(other, -1, vecOpMinus) }

// Dot returns the inner product of v and other. The lengths must match.
// Errors: ErrNilVector, ErrSizeMismatch. Complexity: O(length).
func (v *Vector) Dot(other *Vector) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("Vector.%s: %w", vecOpDot, ErrNilVector)
	}
	if len(v.data) != len(other.data) {
		return 0, fmt.Errorf("Vector.%s: length %d vs %d: %w",
			vecOpDot, len(v.data), len(other.data), ErrSizeMismatch)
	}

	var i int
	var acc float64
	for i = 0; i < len(v.data); i++ { // fixed accumulation order
		acc += v.data[i] * other.data[i]
	}

	return acc, nil
}

// Norm returns the Euclidean norm √(v·v). Complexity: O(length).
func (v *Vector) Norm() float64 {
	var i int
	var acc float64
	for i = 0; i < len(v.data); i++ {
		acc += v.data[i] * v.data[i]
	}

	return math.Sqrt(acc)
}

// Scale multiplies every element in place by factor; allocates nothing.
// Complexity: O(length).
func (v *Vector) Scale(factor float64) {
	var i int
	for i = 0; i < len(v.data); i++ {
		v.data[i] *= factor
	}
}

// Clone returns a deep copy with independent storage.
// Complexity: O(length).
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// Equals reports whether v and other have the same length and every
// corresponding element pair is close enough under the default numeric
// policy. A nil other is never equal.
//
// Complexity: O(length) worst case.
func (v *Vector) Equals(other *Vector) bool {
	return v.EqualsWithin(other, nums.DefaultEpsilon)
}

// EqualsWithin is Equals with a caller-supplied epsilon.
func (v *Vector) EqualsWithin(other *Vector, eps float64) bool {
	if v == other {
		return true // same instance
	}
	if other == nil {
		return false
	}
	if len(v.data) != len(other.data) {
		return false
	}

	var i int
	for i = 0; i < len(v.data); i++ {
		if !nums.CloseEnoughEps(v.data[i], other.data[i], eps) {
			return false
		}
	}

	return true
}

// String renders the vector as a single bracketed row for diagnostics.
// Complexity: O(length).
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(fmtRowOpen)
	var i int
	for i = 0; i < len(v.data); i++ {
		fmt.Fprintf(&b, "%g", v.data[i])
		if i+1 < len(v.data) {
			b.WriteString(fmtSep)
		}
	}
	b.WriteString(fmtRowClose)

	return b.String()
}
