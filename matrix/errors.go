// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations return
// these sentinels (possibly wrapped with an operation tag) and tests check them
// via errors.Is. No exported function panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// The three semantic kinds are ErrInvalidArgument, ErrOutOfRange and
// ErrDimensionMismatch. The refinements of ErrInvalidArgument below wrap it,
// so errors.Is(err, ErrInvalidArgument) holds for each of them.

var (
	// ErrInvalidArgument is returned by constructors on rejected input.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrOutOfRange indicates that an index (linear, row or column) is outside valid bounds.
	// Public indexers (At/Set/AtIndex/SetIndex) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAllocation signals that the requested storage cannot be addressed
	// (rows*cols overflows int). It is not one of the semantic kinds above.
	ErrAllocation = errors.New("matrix: allocation failure")
)

// Refinements of ErrInvalidArgument.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrEmptyLiteral is returned by FromRows when no rows are given.
	ErrEmptyLiteral = fmt.Errorf("%w: empty row literal", ErrInvalidArgument)

	// ErrEmptyRow is returned by FromRows when the first row has no elements.
	ErrEmptyRow = fmt.Errorf("%w: empty first row", ErrInvalidArgument)

	// ErrRaggedRows is returned by FromRows when row lengths differ.
	ErrRaggedRows = fmt.Errorf("%w: inconsistent row lengths", ErrInvalidArgument)
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// indexErrorf is the linear-index counterpart of denseErrorf.
func indexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, idx, err)
}
