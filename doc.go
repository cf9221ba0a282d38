// SPDX-License-Identifier: MIT

// Package mxlib is a small, generic dense-matrix toolkit for Go: one value
// type, honest errors, predictable numerics.
//
// 🚀 What is mxlib?
//
//	A zero-magic library built around matrix.Dense[T]:
//		• Construction: fill, empty, nested literal, flat slice, cross-type Convert
//		• Access: bounds-checked 2-D and linear indexing over one backing slice
//		• Arithmetic: in-place and pure Add / Sub / Mul
//		• Transpose: in place or as a copy
//		• Rendering: fixed-width text via String / WriteTo
//
// ✨ Why choose mxlib?
//
//   - Generic – int, uint, float32, float64 and friends share one implementation
//   - No surprises – errors instead of panics, no partial mutation on failure
//   - Deterministic – products accumulate in a fixed order, bit-for-bit repeatable
//   - Lock-free – distinct matrices are safe across goroutines
//
// Layout:
//
//	matrix/            — Dense[T], constructors, arithmetic, transpose, rendering
//	converters/        — interop with gonum.org/v1/gonum/mat
//	cmd/mxdemo/        — CLI that runs concurrent job batches and reports timings
//	internal/driver/   — bounded worker pool and run reports used by mxdemo
//	internal/config/   — viper-backed mxdemo configuration
//	internal/logging/  — slog logger construction
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b)
//	fmt.Print(p)
//	//  19  22
//	//  43  50
//
//	go get github.com/katalvlaran/mxlib/matrix
package mxlib
