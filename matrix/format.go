// SPDX-License-Identifier: MIT

// Package matrix - fixed-width text rendering.
//
// Layout:
//   - one line per row, terminated by '\n';
//   - fields separated by a single space;
//   - every field right-aligned to the widest %v rendering of any element,
//     never narrower than minFieldWidth.
//
// The empty matrix renders as "".

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// minFieldWidth is the floor applied to the computed column width.
const minFieldWidth = 3

// Formatting literals.
const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtPadding = ' '
)

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Dense[float64])(nil)
	_ io.WriterTo  = (*Dense[int])(nil)
)

// cells renders every element once and returns the strings with the field width.
func (m *Dense[T]) cells() ([]string, int) {
	out := make([]string, len(m.data))
	width := minFieldWidth
	for i, v := range m.data {
		out[i] = fmt.Sprint(v)
		if len(out[i]) > width {
			width = len(out[i])
		}
	}

	return out, width
}

// WriteTo renders m to w and returns the number of bytes written.
// Stage 1: format all cells and compute the shared width.
// Stage 2: emit one padded line per row.
// Complexity: Time O(r*c), Space O(r*c) for the formatted cells.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	if m.IsEmpty() {
		return 0, nil
	}
	cells, width := m.cells()

	var (
		total int64
		line  strings.Builder
	)
	for i := 0; i < m.r; i++ {
		line.Reset()
		line.Grow(m.c * (width + 1))
		for j := 0; j < m.c; j++ {
			if j > 0 {
				line.WriteString(_fmtSep)
			}
			cell := cells[i*m.c+j]
			for pad := width - len(cell); pad > 0; pad-- {
				line.WriteByte(_fmtPadding)
			}
			line.WriteString(cell)
		}
		line.WriteString(_fmtRowEnd)

		n, err := io.WriteString(w, line.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// String implements fmt.Stringer using the WriteTo layout.
func (m *Dense[T]) String() string {
	var b strings.Builder
	_, _ = m.WriteTo(&b) // strings.Builder never fails

	return b.String()
}
