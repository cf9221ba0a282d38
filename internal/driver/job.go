// SPDX-License-Identifier: MIT

// Package driver runs batches of matrix jobs concurrently and reports on them.
//
// Each job allocates its own operands, so workers never share a matrix
// instance; the worker pool is bounded by Runner.Workers.
package driver

import (
	"errors"
	"fmt"
	"strings"
)

// Op names a binary matrix operation.
type Op string

// Supported operations.
const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
)

// Element names the element type jobs run with.
type Element string

// Supported element types.
const (
	Float64 Element = "float64"
	Float32 Element = "float32"
	Int64   Element = "int64"
	Int32   Element = "int32"
	Int     Element = "int"
)

var (
	// ErrUnknownOp is returned for operation names outside add/sub/mul.
	ErrUnknownOp = errors.New("driver: unknown operation")

	// ErrUnknownElement is returned for unsupported element type names.
	ErrUnknownElement = errors.New("driver: unknown element type")

	// ErrNoJobs is returned by Run when given an empty batch.
	ErrNoJobs = errors.New("driver: no jobs")
)

// ParseOp maps a case-insensitive name onto an Op.
func ParseOp(s string) (Op, error) {
	switch op := Op(strings.ToLower(strings.TrimSpace(s))); op {
	case OpAdd, OpSub, OpMul:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}
}

// ParseElement maps a case-insensitive name onto an Element.
// The empty string selects Float64.
func ParseElement(s string) (Element, error) {
	switch e := Element(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return Float64, nil
	case Float64, Float32, Int64, Int32, Int:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, s)
	}
}

// Job describes one binary operation on two filled operands.
//
// For add and sub both operands are Rows×Cols and Inner is ignored.
// For mul the operands are Rows×Inner and Inner×Cols.
// LHS and RHS are the fill values, converted to the run's element type.
type Job struct {
	Name  string
	Op    Op
	Rows  int
	Inner int
	Cols  int
	LHS   float64
	RHS   float64
}

// operandShapes returns the shapes of the left and right operands.
func (j Job) operandShapes() (lr, lc, rr, rc int, err error) {
	switch j.Op {
	case OpAdd, OpSub:
		return j.Rows, j.Cols, j.Rows, j.Cols, nil
	case OpMul:
		return j.Rows, j.Inner, j.Inner, j.Cols, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrUnknownOp, string(j.Op))
	}
}

// String renders the job the way it appears in logs and reports.
func (j Job) String() string {
	return fmt.Sprintf("%s(%s %d×%d×%d)", j.Name, j.Op, j.Rows, j.Inner, j.Cols)
}
