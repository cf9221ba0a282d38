// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mxlib/matrix"
)

// Operation tags for error wrapping.
const (
	opToGonum   = "converters.ToGonum"
	opFromGonum = "converters.FromGonum"
)

// Compile-time check: the gonum fast path relies on *mat.Dense exposing raw storage.
var _ mat.RawMatrixer = (*mat.Dense)(nil)

// ToGonum copies m into a new *mat.Dense.
// MAIN DESCRIPTION:
//   - Element-wise float64(v) copy in row-major order.
//
// Behavior highlights:
//   - An empty m yields an empty *mat.Dense (IsEmpty() == true), which gonum
//     accepts as a receiver for Mul/Add and friends.
//   - Integers beyond 2^53 in magnitude lose precision in float64.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum[T matrix.Number](m *matrix.Dense[T]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, matrix.ErrNilMatrix)
	}
	if m.IsEmpty() {
		return &mat.Dense{}, nil
	}

	data := make([]float64, m.Size())
	for i, v := range m.All() {
		data[i] = float64(v)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromGonum copies any gonum matrix into a new Dense[T].
// Raw-storage matrices are read row by row honoring their stride; other
// implementations (views, transposes) are read through At.
// A 0×0 source yields the empty matrix.
//
// Errors:
//   - matrix.ErrNilMatrix when src is nil.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum[T matrix.Number](src mat.Matrix) (*matrix.Dense[T], error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, matrix.ErrNilMatrix)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return matrix.NewEmpty[T](), nil
	}

	data := make([]T, r*c)
	if raw, ok := src.(mat.RawMatrixer); ok {
		g := raw.RawMatrix()
		for i := 0; i < r; i++ {
			row := g.Data[i*g.Stride : i*g.Stride+c]
			for j, v := range row {
				data[i*c+j] = T(v)
			}
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data[i*c+j] = T(src.At(i, j))
			}
		}
	}

	out, err := matrix.FromSlice(r, c, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return out, nil
}
