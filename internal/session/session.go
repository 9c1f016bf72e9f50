// Package session runs the interactive calculator over a line-oriented reader and writer.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/basics/internal/calculator"
	"github.com/idelchi/basics/internal/failure"
	"github.com/idelchi/basics/internal/logging"
)

// Menu is printed before the operation selector is read.
const Menu = "\t\tCALCULATOR\n\n\tAVAILABLE ACTIONS\n1.Addition\n2.Subtraction\n3.Multiplication\n4.Division\n"

// InvalidOperation is printed for an unrecognized selector.
const InvalidOperation = "Invalid operation selected!"

const (
	promptOperation = "\n\t:: "
	promptFirst     = "Number 1: "
	promptSecond    = "Number 2: "
)

// Options controls the presentation of a session.
type Options struct {
	// Quiet suppresses the menu and the prompts
	Quiet bool

	// Logger receives diagnostics, nil discards them
	Logger *logrus.Logger
}

// Outcome is the result of a single evaluation.
type Outcome struct {
	// Operation that was applied, zero when the selector was not recognized
	Operation calculator.Operation

	// Value is the computed result
	Value int32

	// Known reports whether the selector resolved to an operation
	Known bool
}

// Evaluate parses both operands, resolves the selector and applies the operation.
// Operands are parsed before the selector is checked, so an unparseable operand
// fails even when the selector is unknown. An unknown selector is not an error:
// the returned Outcome has Known set to false.
func Evaluate(selector, first, second string, logger *logrus.Logger) (Outcome, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	a, err := calculator.ParseInput(first)
	if err != nil {
		return Outcome{}, err
	}

	b, err := calculator.ParseInput(second)
	if err != nil {
		return Outcome{}, err
	}

	op, ok := calculator.ParseOperation(strings.TrimSpace(selector))
	if !ok {
		logger.WithField("selector", selector).Debug("unrecognized operation")

		return Outcome{}, nil
	}

	logger.WithFields(logrus.Fields{
		"operation": op.String(),
		"a":         a,
		"b":         b,
	}).Debug("evaluating")

	value, err := calculator.Apply(op, a, b)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Operation: op, Value: value, Known: true}, nil
}

// Report prints the outcome: the result for a known operation,
// the invalid-operation notice otherwise.
func Report(out io.Writer, outcome Outcome, prefix string) error {
	var err error

	if outcome.Known {
		_, err = fmt.Fprintf(out, "%sResult: %d\n", prefix, outcome.Value)
	} else {
		_, err = fmt.Fprintln(out, InvalidOperation)
	}

	if err != nil {
		return failure.NewIO("writing result", "", err)
	}

	return nil
}

// Run prints the menu, reads the selector and two operands from in,
// and reports the result to out.
func Run(in io.Reader, out io.Writer, opts Options) error {
	s := &session{
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
	}

	if err := s.print(Menu); err != nil {
		return err
	}

	selector, err := s.ask(promptOperation)
	if err != nil {
		return err
	}

	first, err := s.ask(promptFirst)
	if err != nil {
		return err
	}

	second, err := s.ask(promptSecond)
	if err != nil {
		return err
	}

	outcome, err := Evaluate(selector, first, second, opts.Logger)
	if err != nil {
		return err
	}

	prefix := "\n\n\t"
	if opts.Quiet {
		prefix = ""
	}

	return Report(out, outcome, prefix)
}

type session struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

// print writes text unless the session is quiet.
func (s *session) print(text string) error {
	if s.opts.Quiet {
		return nil
	}

	if _, err := io.WriteString(s.out, text); err != nil {
		return failure.NewIO("writing prompt", "", err)
	}

	return nil
}

// ask prints the prompt and reads one line, without the line terminator.
// At end of input the line is whatever was read, possibly empty, so a
// missing operand is reported by the parser.
func (s *session) ask(prompt string) (string, error) {
	if err := s.print(prompt); err != nil {
		return "", err
	}

	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", failure.NewIO("reading input", "", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
