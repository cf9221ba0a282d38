// SPDX-License-Identifier: MIT

// Package matrix provides converters from Dense to plain Go slice
// representations.
package matrix

// ToRows returns the matrix as a freshly allocated nested slice, the inverse
// of FromRows. Each row slice is independent of the matrix storage.
// The empty matrix yields nil.
//
// Time Complexity: O(r*c)
func (m *Dense[T]) ToRows() [][]T {
	if m.IsEmpty() {
		return nil
	}
	out := make([][]T, m.r)
	for i := range out {
		row := make([]T, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}
