// Package eqs_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for Matrix/Vector tests and
//     benchmarks.
//   - Keep all data finite and well-formed.

package eqs_test

import (
	"math/rand"
	"testing"

	"github.com/mechkernel/eqs"
)

// mustMatrix allocates a rows×cols *Matrix or fails the test.
func mustMatrix(tb testing.TB, rows, cols int) *eqs.Matrix {
	tb.Helper()
	m, err := eqs.New(rows, cols)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", rows, cols, err)
	}

	return m
}

// mustVector allocates a *Vector of the given length or fails the test.
func mustVector(tb testing.TB, length int) *eqs.Vector {
	tb.Helper()
	v, err := eqs.NewVector(length)
	if err != nil {
		tb.Fatalf("NewVector(%d): %v", length, err)
	}

	return v
}

// fillMatrixRand fills m with deterministic pseudo-random values in [-1, 1).
func fillMatrixRand(tb testing.TB, m *eqs.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, m.Rows()*m.Cols())
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	if err := m.SetData(data); err != nil {
		tb.Fatalf("SetData: %v", err)
	}
}

// fillVectorRand fills v with deterministic pseudo-random values in [-1, 1).
func fillVectorRand(tb testing.TB, v *eqs.Vector, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, v.Length())
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	if err := v.SetData(data); err != nil {
		tb.Fatalf("SetData: %v", err)
	}
}
