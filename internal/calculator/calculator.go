// Package calculator implements four-function integer arithmetic on int32 operands.
//
// Addition, subtraction and multiplication wrap on overflow (two's complement),
// which is Go's native int32 behavior. Division truncates toward zero and
// math.MinInt32 / -1 wraps to math.MinInt32.
package calculator

import (
	"strconv"
	"strings"

	"github.com/idelchi/basics/internal/failure"
)

// Add returns a + b.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int32) int32 {
	return a * b
}

// Divide returns the truncated quotient a / b.
// It fails with a DivisionByZero failure when b is zero.
func Divide(a, b int32) (int32, error) {
	if b == 0 {
		return 0, failure.NewDivisionByZero()
	}

	return a / b, nil
}

// ParseInput parses a base-10 signed integer, ignoring surrounding whitespace.
func ParseInput(input string) (int32, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, failure.NewInvalidInput(strings.TrimSpace(input))
	}

	return int32(value), nil
}

// Apply dispatches op on the operands.
func Apply(op Operation, a, b int32) (int32, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, ErrUnknownOperation
	}
}
