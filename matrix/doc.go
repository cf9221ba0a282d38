// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a generic row-major matrix value type.
//
// The matrix package provides:
//
//   - Constructors: New / NewFilled (fill), NewEmpty (0×0), FromRows (nested
//     literal), FromSlice (flat row-major), Convert (cross element type).
//   - Bounds-checked access: At/Set (2-D) and AtIndex/SetIndex (linear), both
//     over the same backing slice.
//   - Arithmetic: AddInPlace, SubInPlace, MulInPlace mutate the receiver and
//     return it; Add, Sub, Mul return a new matrix and never touch operands.
//   - Transpose (in place) and Transposed (copy).
//   - Fixed-width text rendering via String and WriteTo.
//
// Errors are package sentinels (ErrInvalidArgument, ErrOutOfRange,
// ErrDimensionMismatch, ...) wrapped with the operation name; match them with
// errors.Is. A failed precondition never mutates any operand.
//
// A Dense holds no locks. Distinct instances may be used from different
// goroutines freely; a single instance must not be mutated concurrently.
//
// See the examples in this package for usage patterns.
package matrix
