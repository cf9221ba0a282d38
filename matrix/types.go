// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints.
// This file contains ONLY the type sets that Dense is generic over.
package matrix

// Integer is the set of Go integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint of Dense.
// Every member supports +, -, * and has a zero value, and any two members are
// mutually convertible with T(u), which Convert relies on.
// Complex kinds are excluded: they do not convert to or from real kinds.
type Number interface {
	Integer | Float
}
