// SPDX-License-Identifier: MIT
// Package matrix — small convenience constructors and comparisons.
//
// Purpose:
//   - Provide thin, intention-revealing entry points built on the core constructors.
//   - Avoid logic duplication: each helper delegates to the canonical implementation.

package matrix

import "math"

const opAllClose = "AllClose"

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n<=0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int) (*Dense[T], error) {
	I, err := New[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// An empty m yields an empty result.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf("ZerosLike", ErrNilMatrix)
	}
	if m.IsEmpty() {
		return NewEmpty[T](), nil
	}

	return New[T](m.r, m.c)
}

// Equal reports whether a and b have the same shape and identical elements.
// Comparison uses ==, so NaN never equals NaN. Two nil matrices are equal.
// Complexity: O(r*c), Space O(1).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b agree element-wise within |a-b| <= atol + rtol*|b|.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrNilMatrix, ErrDimensionMismatch).
//   - negative tolerances are normalized to their absolute value;
//     NaN or Inf tolerances fail with ErrInvalidArgument.
//   - elements are compared as float64, so integer matrices work too.
//
// Complexity: O(r*c), Space O(1); stops at the first violation.
func AllClose[T Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidArgument)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := validateNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i := range a.data {
		av, bv := float64(a.data[i]), float64(b.data[i])
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
