// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between matrix.Dense and
// gonum.org/v1/gonum/mat:
//   - ToGonum exports any Dense[T] as a *mat.Dense (float64 storage);
//   - FromGonum imports any mat.Matrix as a Dense[T] using Go numeric
//     conversion per element (same truncation rules as matrix.Convert).
//
// Use converters to hand matrices to gonum routines (decompositions,
// norms, BLAS-backed products) that the matrix package deliberately omits.
package converters
