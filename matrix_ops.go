// SPDX-License-Identifier: MIT

// Package eqs - Matrix arithmetic and tolerance equality.
//
// All derived-value operations (Plus, TimesVector) perform strict
// fail-fast validation, allocate exactly one result, and never mutate
// their operands. Scale is the one in-place kernel.

package eqs

import (
	"fmt"

	"github.com/mechkernel/eqs/nums"
)

// Operation name constants for unified error wrapping.
const (
	opPlus        = "Plus"
	opTimesVector = "TimesVector"
)

// opErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// Scale multiplies every element in place by factor. It mutates the
// receiver and allocates nothing; use Clone().Scale(k) when the original
// must survive.
//
// Complexity: O(rows*cols), single flat pass.
func (m *Matrix) Scale(factor float64) {
	var idx int
	n := len(m.data)
	for idx = 0; idx < n; idx++ { // deterministic 0..n-1
		m.data[idx] *= factor
	}
}

// Plus returns a new Matrix holding the element-wise sum m + other.
//
// Implementation:
//   - Stage 1 (Validate): other non-nil; row counts equal, then column
//     counts equal (checked independently, in that order).
//   - Stage 2 (Execute): clone m and accumulate other over the flat buffer.
//
// Neither operand is mutated.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(rows*cols) time and memory.
func (m *Matrix) Plus(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, opErrorf(opPlus, ErrNilMatrix)
	}
	if m.r != other.r {
		return nil, opErrorf(opPlus, fmt.Errorf("rows %d vs %d: %w", m.r, other.r, ErrSizeMismatch))
	}
	if m.c != other.c {
		return nil, opErrorf(opPlus, fmt.Errorf("cols %d vs %d: %w", m.c, other.c, ErrSizeMismatch))
	}

	res := m.Clone()
	var idx int
	n := len(res.data)
	for idx = 0; idx < n; idx++ { // flat element-wise accumulation
		res.data[idx] += other.data[idx]
	}

	return res, nil
}

// TimesVector returns the matrix-vector product m·v as a freshly
// allocated Vector of length Rows(): element i is the dot product of row
// i with v. The vector length must equal Cols(). Neither operand is
// mutated.
//
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(rows*cols) time, O(rows) memory.
func (m *Matrix) TimesVector(v *Vector) (*Vector, error) {
	if v == nil {
		return nil, opErrorf(opTimesVector, ErrNilVector)
	}
	if m.c != v.Length() {
		return nil, opErrorf(opTimesVector,
			fmt.Errorf("cols %d vs length %d: %w", m.c, v.Length(), ErrSizeMismatch))
	}

	res := &Vector{data: make([]float64, m.r)} // result length == rows
	var i, j, base int
	var acc, vj float64
	for i = 0; i < m.r; i++ { // one flat pass per row
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			vj = v.data[j]
			if vj != 0 { // skip zero multiplications
				acc += m.data[base+j] * vj
			}
		}
		res.data[i] = acc
	}

	return res, nil
}

// Equals reports whether m and other have identical shapes and every
// corresponding element pair is close enough under the default numeric
// policy (nums.DefaultEpsilon). Tolerance comparison, not bit equality:
// these values arise from floating-point accumulation.
//
// A nil other is never equal. Comparing a matrix to itself is a pointer
// fast path.
//
// Complexity: O(rows*cols) worst case.
func (m *Matrix) Equals(other *Matrix) bool {
	return m.EqualsWithin(other, nums.DefaultEpsilon)
}

// EqualsWithin is Equals with a caller-supplied epsilon, so the tolerance
// policy can be tuned or tested independently of the matrix itself.
func (m *Matrix) EqualsWithin(other *Matrix, eps float64) bool {
	if m == other {
		return true // same instance
	}
	if other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}

	var idx int
	n := len(m.data)
	for idx = 0; idx < n; idx++ { // flat deterministic comparison
		if !nums.CloseEnoughEps(m.data[idx], other.data[idx], eps) {
			return false
		}
	}

	return true
}
