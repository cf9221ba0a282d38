// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape, nil and literal checks.
//  - Keep kernels minimal by delegating guard logic here.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - validateRows is O(len(rows)); everything else is O(1).

package matrix

import "math"

// checkedSize validates a requested shape and returns rows*cols.
//
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0;
// ErrAllocation when rows*cols does not fit in an int.
// Complexity: O(1).
func checkedSize(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return 0, ErrAllocation
	}

	return rows * cols, nil
}

// validateNotNil ensures every operand is non-nil.
func validateNotNil[T Number](ms ...*Dense[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func validateSameShape[T Number](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateInner ensures a×b is defined (a.Cols == b.Rows).
// Assumes a and b are not nil.
func validateInner[T Number](a, b *Dense[T]) error {
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateRows checks a nested row literal and returns its shape.
//
// Sequence: outer non-empty → first row non-empty → all rows equal length.
// Errors: ErrEmptyLiteral, ErrEmptyRow, ErrRaggedRows.
// Complexity: O(len(rows)).
func validateRows[T Number](rows [][]T) (r, c int, err error) {
	if len(rows) == 0 {
		return 0, 0, ErrEmptyLiteral
	}
	c = len(rows[0])
	if c == 0 {
		return 0, 0, ErrEmptyRow
	}
	for _, row := range rows[1:] {
		if len(row) != c {
			return 0, 0, ErrRaggedRows
		}
	}

	return len(rows), c, nil
}
