// SPDX-License-Identifier: MIT

// Package eqs - dense Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula row*cols + col.
//   - Guarantee safety at the public surface: accessors return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package eqs

import (
	"fmt"
	"strings"
)

// Method tags used in error wrappers; kept as constants for grep-ability.
const (
	ctxAt           = "At"
	ctxTransposedAt = "TransposedAt"
	ctxSet          = "Set"
	ctxAddAt        = "AddAt"
	ctxIdentityRow  = "SetIdentityRow"
	ctxIdentityCol  = "SetIdentityCol"
)

// Formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]"
	fmtSep      = ", "
)

// matrixErrorf wraps a sentinel with Matrix method context and the
// call-site indices, preserving errors.Is matching via %w.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense rows×cols grid of float64 values with a fixed shape.
//   - r, c hold the dimensions (rows, cols), immutable after construction.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = row*c + col).
//
// A Matrix is a plain value type: no locking, no background activity.
// In-place mutators require exclusive access; Clone/Plus/TimesVector never
// mutate their operands.
type Matrix struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage, len == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols Matrix initialized to zeros.
//
// Implementation:
//   - Stage 1 (Validate): reject negative dimensions.
//   - Stage 2 (Prepare): allocate the flat backing slice; make() zero-fills
//     it deterministically.
//   - Stage 3 (Finalize): return the new Matrix.
//
// Zero-sized shapes (0×n, n×0) are legal degenerate values: every indexed
// access on them fails with ErrOutOfRange.
//
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	buf := make([]float64, rows*cols)

	return &Matrix{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether the matrix has as many rows as columns.
// Complexity: O(1).
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// It returns the bare sentinel; public methods wrap it with method context
// and coordinates so all bound semantics stay identical across accessors.
//
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: row*c + col.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// TransposedAt returns the value at (row, col) as if the matrix were
// transposed, i.e. the value stored at (col, row). This is a read-only
// index remapping: no transposed copy is ever materialized, so hot paths
// that need mᵀ semantics (normal-equations assembly and the like) pay no
// extra allocation.
//
// Bounds are checked against the untransposed shape: col must be a valid
// row index and row a valid column index of this matrix.
//
// Complexity: O(1).
func (m *Matrix) TransposedAt(row, col int) (float64, error) {
	off, err := m.indexOf(col, row)
	if err != nil {
		return 0, matrixErrorf(ctxTransposedAt, row, col, err)
	}

	return m.data[off], nil
}

// Set overwrites the value at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AddAt adds delta to the existing value at (row, col) or returns
// ErrOutOfRange. Complexity: O(1).
func (m *Matrix) AddAt(row, col int, delta float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxAddAt, row, col, err)
	}
	m.data[off] += delta // accumulate in place

	return nil
}

// SetData bulk-replaces every element from a flat row-major sequence: the
// matrix is filled left-to-right, top-to-bottom. The sequence length must
// equal rows*cols exactly; otherwise ErrSizeMismatch is returned and the
// matrix is left untouched.
//
// Complexity: O(rows*cols).
func (m *Matrix) SetData(values []float64) error {
	// Validate length before any write so failure leaves no partial fill.
	if len(values) != m.r*m.c {
		return fmt.Errorf("Matrix.SetData: got %d values, want %d: %w",
			len(values), m.r*m.c, ErrSizeMismatch)
	}
	copy(m.data, values) // storage is already row-major

	return nil
}

// SetIdentityRow rewrites row so that it holds the identity pattern:
// value(row, col) is 1 where col == row and 0 elsewhere. Useful when
// assembling constraint or elimination matrices row by row.
//
// Complexity: O(cols).
func (m *Matrix) SetIdentityRow(row int) error {
	if row < 0 || row >= m.r {
		return matrixErrorf(ctxIdentityRow, row, 0, ErrOutOfRange)
	}

	var col, base int
	base = row * m.c
	for col = 0; col < m.c; col++ { // fixed left-to-right order
		if col == row {
			m.data[base+col] = 1
		} else {
			m.data[base+col] = 0
		}
	}

	return nil
}

// SetIdentityCol is the column dual of SetIdentityRow: value(row, col) is
// 1 where row == col and 0 elsewhere, for every row.
//
// Complexity: O(rows).
func (m *Matrix) SetIdentityCol(col int) error {
	if col < 0 || col >= m.c {
		return matrixErrorf(ctxIdentityCol, 0, col, ErrOutOfRange)
	}

	var row int
	for row = 0; row < m.r; row++ { // fixed top-to-bottom order
		if row == col {
			m.data[row*m.c+col] = 1
		} else {
			m.data[row*m.c+col] = 0
		}
	}

	return nil
}

// Do visits each element in row-major order and calls f(row, col, v),
// stopping early when f returns false. Read-only with respect to the
// callback; no allocations; deterministic order.
//
// Complexity: O(rows*cols).
func (m *Matrix) Do(f func(row, col int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Clone returns a deep copy with identical shape and values. The copy owns
// independent storage: mutations on either side never alias the other.
//
// Complexity: O(rows*cols) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data) // deep copy of the flat buffer

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// String renders a readable row-wise dump for diagnostics; not intended
// for hot paths.
//
// Complexity: O(rows*cols).
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
		b.WriteString("\n")
	}

	return b.String()
}
