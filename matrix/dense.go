// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), constructors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep every instance the exclusive owner of its buffer (copies are deep).
//
// Complexity quicksheet:
//   - New/NewFilled/FromRows/FromSlice/Convert/Clone: O(r*c); At/Set/AtIndex/SetIndex: O(1).

package matrix

import "iter"

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAtIndex  = "AtIndex"
	ctxSetIndex = "SetIndex"
)

// Constructor tags used by matrixErrorf.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opFromSlice = "FromSlice"
	opConvert   = "Convert"
)

// Dense is a concrete row-major matrix over element type T.
//   - r,c hold dimensions (rows, cols); both zero for the empty matrix.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty 0×0 matrix and is ready to use.
type Dense[T Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an r×c matrix filled with the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrAllocation when rows*cols overflows int.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Dense[T], error) {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, n)}, nil
}

// NewFilled creates an r×c matrix with every element set to fill.
// MAIN DESCRIPTION:
//   - Fill constructor; New is the special case fill == zero.
//
// Implementation:
//   - Stage 1: validate shape via checkedSize.
//   - Stage 2: allocate, then write fill into every slot (skipped for zero fill).
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation (see New).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T Number](rows, cols int, fill T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if fill != 0 {
		for i := range m.data {
			m.data[i] = fill
		}
	}

	return m, nil
}

// NewEmpty returns the canonical empty matrix (0×0, no storage). It never fails.
// It is equivalent to new(Dense[T]).
func NewEmpty[T Number]() *Dense[T] {
	return &Dense[T]{}
}

// FromRows builds a matrix from a nested row literal, flattening it row by row.
// MAIN DESCRIPTION:
//   - Nested-literal constructor: rows[i][j] becomes element (i, j).
//
// Implementation:
//   - Stage 1: validateRows (non-empty, first row non-empty, no ragged rows).
//   - Stage 2: allocate r*c and copy each row into its slot.
//
// Behavior highlights:
//   - The input is copied; later changes to rows do not affect the matrix.
//
// Errors:
//   - ErrEmptyLiteral, ErrEmptyRow, ErrRaggedRows (all ErrInvalidArgument).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	r, c, err := validateRows(rows)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	n, err := checkedSize(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	data := make([]T, n)
	for i, row := range rows {
		copy(data[i*c:(i+1)*c], row) // row i occupies [i*c, (i+1)*c)
	}

	return &Dense[T]{r: r, c: c, data: data}, nil
}

// FromSlice builds an r×c matrix from a flat row-major slice (copied).
//
// Errors:
//   - ErrInvalidDimensions / ErrAllocation on a bad shape.
//   - ErrInvalidArgument when len(data) != rows*cols.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromSlice[T Number](rows, cols int, data []T) (*Dense[T], error) {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromSlice, err)
	}
	if len(data) != n {
		return nil, matrixErrorf(opFromSlice, ErrInvalidArgument)
	}

	buf := make([]T, n)
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Convert returns a matrix of element type T with src's shape, where each
// element is converted independently with T(v).
//
// The conversion is unchecked, exactly like a Go numeric conversion:
// float→integer truncates toward zero, integer narrowing wraps around,
// float64→float32 rounds to nearest. Values that do not fit the target
// produce implementation-specific results rather than an error.
//
// An empty src yields an empty result. A nil src yields ErrNilMatrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func Convert[T, U Number](src *Dense[U]) (*Dense[T], error) {
	if src == nil {
		return nil, matrixErrorf(opConvert, ErrNilMatrix)
	}
	if src.IsEmpty() {
		return NewEmpty[T](), nil
	}

	data := make([]T, len(src.data))
	for i, v := range src.data {
		data[i] = T(v) // plain numeric conversion; see doc for truncation rules
	}

	return &Dense[T]{r: src.r, c: src.c, data: data}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Size returns the number of stored elements (rows*cols).
func (m *Dense[T]) Size() int { return len(m.data) }

// IsEmpty reports whether the matrix holds no data (0×0).
func (m *Dense[T]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when row∉[0,Rows) or col∉[0,Cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AtIndex returns the idx-th element in row-major order or ErrOutOfRange.
// Element (i, j) is AtIndex(i*Cols()+j).
func (m *Dense[T]) AtIndex(idx int) (T, error) {
	if idx < 0 || idx >= len(m.data) {
		var zero T
		return zero, indexErrorf(ctxAtIndex, idx, ErrOutOfRange)
	}

	return m.data[idx], nil
}

// SetIndex stores v at row-major position idx or returns ErrOutOfRange.
func (m *Dense[T]) SetIndex(idx int, v T) error {
	if idx < 0 || idx >= len(m.data) {
		return indexErrorf(ctxSetIndex, idx, ErrOutOfRange)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; mutations of either side are invisible to the other.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m.data == nil {
		return &Dense[T]{r: m.r, c: m.c}
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// RawData returns a copy of the row-major buffer.
func (m *Dense[T]) RawData() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// All yields (linear index, value) pairs in row-major order.
// The iterator reads live storage; do not mutate the matrix shape while ranging.
func (m *Dense[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range m.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields (linear index, value) pairs in reverse row-major order.
func (m *Dense[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(m.data) - 1; i >= 0; i-- {
			if !yield(i, m.data[i]) {
				return
			}
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Complexity: Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform a Clone and keep it on success.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
