package calculator

import "errors"

// ErrUnknownOperation is returned by Apply for an operation outside the four known ones.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation selects one of the four arithmetic functions.
type Operation byte

const (
	// OpAdd is addition.
	OpAdd Operation = iota + 1
	// OpSubtract is subtraction.
	OpSubtract
	// OpMultiply is multiplication.
	OpMultiply
	// OpDivide is truncating division.
	OpDivide
)

// Operations lists the operations in menu order.
//
//nolint:gochecknoglobals
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// aliases maps every accepted selector token to its operation.
// Matching is exact: no case folding, no abbreviations.
//
//nolint:gochecknoglobals
var aliases = map[string]Operation{
	"1":              OpAdd,
	"Addition":       OpAdd,
	"+":              OpAdd,
	"2":              OpSubtract,
	"Subtraction":    OpSubtract,
	"-":              OpSubtract,
	"3":              OpMultiply,
	"Multiplication": OpMultiply,
	"*":              OpMultiply,
	"4":              OpDivide,
	"Division":       OpDivide,
	"/":              OpDivide,
}

// ParseOperation resolves a selector token to an operation.
// It returns false for any token that is not one of the literal aliases.
func ParseOperation(token string) (Operation, bool) {
	op, ok := aliases[token]

	return op, ok
}

// String returns the English name of the operation, as shown in the menu.
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "Addition"
	case OpSubtract:
		return "Subtraction"
	case OpMultiply:
		return "Multiplication"
	case OpDivide:
		return "Division"
	default:
		return "Unknown"
	}
}

// Symbol returns the operator symbol.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}
