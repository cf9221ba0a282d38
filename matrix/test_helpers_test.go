// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep random data reproducible (fixed seeds, integer-valued floats).

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mxlib/matrix"
)

// mustRows builds a matrix from a literal or fails the test.
func mustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// mustFilled ALLOCATES an r×c matrix filled with v or fails the test.
func mustFilled[T matrix.Number](tb testing.TB, r, c int, v T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFilled(r, c, v)
	if err != nil {
		tb.Fatalf("NewFilled(%d,%d,%v): %v", r, c, v, err)
	}

	return m
}

// randomInts returns an r×c int64 matrix with entries in [-9, 9] drawn from seed.
func randomInts(tb testing.TB, r, c int, seed int64) *matrix.Dense[int64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, r*c)
	for i := range data {
		data[i] = rng.Int63n(19) - 9
	}
	m, err := matrix.FromSlice(r, c, data)
	if err != nil {
		tb.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// randomFloats returns an r×c float64 matrix with entries in [-1, 1) drawn from seed.
func randomFloats(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.FromSlice(r, c, data)
	if err != nil {
		tb.Fatalf("FromSlice(%d,%d): %v", r, c, err)
	}

	return m
}
