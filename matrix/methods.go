// SPDX-License-Identifier: MIT

// Package matrix: arithmetic and transpose on Dense.
// Compound forms (AddInPlace, SubInPlace, MulInPlace, Transpose) mutate the
// receiver and return it for chaining. Pure forms (Add, Sub, Mul, Transposed)
// are copy-then-mutate wrappers and never touch their operands.
// Every precondition is checked before the first write, so a failing call
// leaves all operands exactly as they were.
package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opTransposed = "Transposed"
)

// AddInPlace performs m += o element-wise and returns m.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Execute): single flat loop over the backing slices.
// Errors: ErrNilMatrix, ErrDimensionMismatch. m is unchanged on error.
// Complexity: O(r·c) time, O(1) extra memory.
func (m *Dense[T]) AddInPlace(o *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m, o); err != nil {
		return nil, matrixErrorf(opAddInPlace, err)
	}
	if err := validateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opAddInPlace, err)
	}

	for idx := range m.data {
		m.data[idx] += o.data[idx]
	}

	return m, nil
}

// SubInPlace performs m -= o element-wise and returns m.
// Errors: ErrNilMatrix, ErrDimensionMismatch. m is unchanged on error.
// Complexity: O(r·c).
func (m *Dense[T]) SubInPlace(o *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m, o); err != nil {
		return nil, matrixErrorf(opSubInPlace, err)
	}
	if err := validateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opSubInPlace, err)
	}

	for idx := range m.data {
		m.data[idx] -= o.data[idx]
	}

	return m, nil
}

// MulInPlace replaces m with the matrix product m × o and returns m.
// MAIN DESCRIPTION:
//   - Standard product; result shape is m.Rows() × o.Cols().
//
// Implementation:
//   - Stage 1: validate non-nil and m.Cols() == o.Rows().
//   - Stage 2: allocate a fresh zeroed r×oc buffer.
//   - Stage 3: i-k-j triple loop; res[i,j] += m[i,k] * o[k,j].
//   - Stage 4: swap buffer and column count into m together.
//
// Behavior highlights:
//   - For every output cell the terms are added with k ascending, starting
//     from zero, which is the same order as the textbook i-j-k loop; the i-k-j
//     nest only changes memory access order, so floating-point results match
//     the naive loop bit for bit. Zero terms are NOT skipped (0*Inf is NaN).
//   - m.MulInPlace(m) is legal for square m; o is read from its own buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. m is unchanged on error.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c) for the new buffer.
func (m *Dense[T]) MulInPlace(o *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m, o); err != nil {
		return nil, matrixErrorf(opMulInPlace, err)
	}
	if err := validateInner(m, o); err != nil {
		return nil, matrixErrorf(opMulInPlace, err)
	}

	rows, inner, cols := m.r, m.c, o.c
	res := make([]T, rows*cols) // bounded by existing operand sizes

	var (
		i, k, j                int
		rowOffA, rowOffB, rowR int
		av                     T
	)
	for i = 0; i < rows; i++ {
		rowOffA = i * inner
		rowR = i * cols
		for k = 0; k < inner; k++ {
			av = m.data[rowOffA+k]
			rowOffB = k * cols
			for j = 0; j < cols; j++ {
				res[rowR+j] += av * o.data[rowOffB+j]
			}
		}
	}

	m.data = res
	m.c = cols
	if rows == 0 || cols == 0 {
		// 0×k times k×0 style products collapse to the empty matrix.
		m.r, m.c, m.data = 0, 0, nil
	}

	return m, nil
}

// Transpose transposes m in place and returns it.
// Square matrices swap across the diagonal without allocating; rectangular
// ones are rebuilt into a new cols×rows buffer (out[j*r+i] = in[i*c+j]) and
// the buffer and dimensions are replaced together.
// A nil receiver is a no-op returning nil.
// Complexity: Time O(r·c); Space O(1) square, O(r·c) rectangular.
func (m *Dense[T]) Transpose() *Dense[T] {
	if m == nil || m.IsEmpty() {
		return m
	}

	var i, j int
	if m.r == m.c {
		n := m.r
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
			}
		}
		return m
	}

	rows, cols := m.r, m.c
	res := make([]T, len(m.data))
	var baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res[j*rows+i] = m.data[baseSrc+j]
		}
	}
	m.data, m.r, m.c = res, cols, rows

	return m
}

// Add returns a new matrix a + b. a and b are not modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out, err := a.Clone().AddInPlace(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns a new matrix a − b. a and b are not modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out, err := a.Clone().SubInPlace(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return out, nil
}

// Mul returns a new matrix a × b. a and b are not modified.
// Accumulation order is documented on MulInPlace.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·n·c) time, O(r·c) memory.
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// Reject before cloning so a mismatch costs nothing.
	if err := validateInner(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := a.Clone().MulInPlace(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// Transposed returns a transposed copy of m; m is not modified.
// Errors: ErrNilMatrix.
func Transposed[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTransposed, ErrNilMatrix)
	}

	return m.Clone().Transpose(), nil
}
