// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"

	"github.com/katalvlaran/mxlib/matrix"
)

// outcome is what a single job produces.
type outcome struct {
	rows, cols int
	checksum   float64
}

// execute dispatches job onto the generic runner for elem.
func execute(elem Element, job Job) (outcome, error) {
	switch elem {
	case Float64:
		return runJob[float64](job)
	case Float32:
		return runJob[float32](job)
	case Int64:
		return runJob[int64](job)
	case Int32:
		return runJob[int32](job)
	case Int:
		return runJob[int](job)
	default:
		return outcome{}, fmt.Errorf("%w: %q", ErrUnknownElement, string(elem))
	}
}

// runJob allocates fresh operands, applies the pure operator and sums the result.
func runJob[T matrix.Number](job Job) (outcome, error) {
	lr, lc, rr, rc, err := job.operandShapes()
	if err != nil {
		return outcome{}, err
	}
	lhs, err := matrix.NewFilled(lr, lc, T(job.LHS))
	if err != nil {
		return outcome{}, fmt.Errorf("lhs: %w", err)
	}
	rhs, err := matrix.NewFilled(rr, rc, T(job.RHS))
	if err != nil {
		return outcome{}, fmt.Errorf("rhs: %w", err)
	}

	var out *matrix.Dense[T]
	switch job.Op {
	case OpAdd:
		out, err = matrix.Add(lhs, rhs)
	case OpSub:
		out, err = matrix.Sub(lhs, rhs)
	case OpMul:
		out, err = matrix.Mul(lhs, rhs)
	}
	if err != nil {
		return outcome{}, err
	}

	var sum float64
	for _, v := range out.All() {
		sum += float64(v)
	}

	return outcome{rows: out.Rows(), cols: out.Cols(), checksum: sum}, nil
}

// sample renders a 3×3 matrix filled with 3 in element type T.
func sample[T matrix.Number]() (string, error) {
	m, err := matrix.NewFilled(3, 3, T(3))
	if err != nil {
		return "", err
	}

	return m.String(), nil
}

// Sample returns the rendering of the 3×3 demo matrix for elem.
func Sample(elem Element) (string, error) {
	switch elem {
	case Float64:
		return sample[float64]()
	case Float32:
		return sample[float32]()
	case Int64:
		return sample[int64]()
	case Int32:
		return sample[int32]()
	case Int:
		return sample[int]()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, string(elem))
	}
}
