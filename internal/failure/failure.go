// Package failure defines the error kinds shared by the calculator and the file cryptor.
//
// Every failure surfaced to a terminal is an *Error carrying exactly one Kind.
// Callers branch on the kind with errors.Is against the package sentinels:
//
//	if errors.Is(err, failure.ErrDivisionByZero) { ... }
package failure

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure.
type Kind int

const (
	// InvalidInput is returned for operands that do not parse as integers.
	InvalidInput Kind = iota + 1
	// DivisionByZero is returned when dividing by zero.
	DivisionByZero
	// IO is returned for file or stream failures.
	IO
	// KeyLength is returned for keys that are not exactly 16 bytes.
	KeyLength
	// CryptoTransform is returned when the cipher rejects the buffer.
	CryptoTransform
)

// String returns the human-readable prefix used when rendering the kind.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "Invalid input"
	case DivisionByZero:
		return "Division by zero"
	case IO:
		return "IO error"
	case KeyLength:
		return "Key length error"
	case CryptoTransform:
		return "Crypto transform error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

//nolint:gochecknoglobals
var (
	// ErrInvalidInput matches any InvalidInput failure.
	ErrInvalidInput = &Error{Kind: InvalidInput}
	// ErrDivisionByZero matches any DivisionByZero failure.
	ErrDivisionByZero = &Error{Kind: DivisionByZero}
	// ErrIO matches any IO failure.
	ErrIO = &Error{Kind: IO}
	// ErrKeyLength matches any KeyLength failure.
	ErrKeyLength = &Error{Kind: KeyLength}
	// ErrCryptoTransform matches any CryptoTransform failure.
	ErrCryptoTransform = &Error{Kind: CryptoTransform}
)

// Error is a failure of a single Kind with optional context and cause.
type Error struct {
	// Kind of the failure
	Kind Kind

	// Message describes what went wrong
	Message string

	// Path is the file involved, if any
	Path string

	// Err is the underlying cause, if any
	Err error
}

// Error renders the failure as "<kind>: <message> <path>: <cause>",
// omitting the parts that are empty.
func (e *Error) Error() string {
	msg := e.Kind.String()

	switch {
	case e.Message != "" && e.Path != "":
		msg += fmt.Sprintf(": %s %q", e.Message, e.Path)
	case e.Message != "":
		msg += ": " + e.Message
	case e.Path != "":
		msg += fmt.Sprintf(": %q", e.Path)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// NewInvalidInput reports an operand that could not be parsed.
func NewInvalidInput(input string) *Error {
	return &Error{
		Kind:    InvalidInput,
		Message: fmt.Sprintf("Could not parse '%s' as a number", input),
	}
}

// NewDivisionByZero reports a division with a zero divisor.
func NewDivisionByZero() *Error {
	return &Error{Kind: DivisionByZero}
}

// NewIO wraps an I/O failure with the action and path involved.
func NewIO(action, path string, err error) *Error {
	return &Error{Kind: IO, Message: action, Path: path, Err: err}
}

// NewKeyLength reports a key of the wrong size.
func NewKeyLength(want, got int) *Error {
	return &Error{
		Kind:    KeyLength,
		Message: fmt.Sprintf("key must be exactly %d bytes long, got %d", want, got),
	}
}

// NewCryptoTransform wraps a rejection by the cipher transform.
func NewCryptoTransform(action string, err error) *Error {
	return &Error{Kind: CryptoTransform, Message: action, Err: err}
}
