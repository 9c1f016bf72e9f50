// Package commands provides the command-line interfaces of the calc and cryptor tools.
//
// The cryptor implements commands for:
//   - encryption
//   - decryption
//   - key generation
//
// The calculator runs an interactive session or a single evaluation.
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
// Flags can also be set through environment variables prefixed
// with the tool name, e.g. CRYPTOR_SCHEME or CALC_QUIET.
package commands

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/idelchi/basics/internal/config"
)

// IOStreams are the standard streams a command reads from and writes to.
type IOStreams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() IOStreams {
	return IOStreams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// keyPrompter returns a prompt reading the key without echo when in is a terminal,
// and nil otherwise.
func keyPrompter(streams IOStreams) config.Prompter {
	file, ok := streams.In.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) { //nolint:gosec // fd fits in int
		return nil
	}

	return func() (string, error) {
		fmt.Fprint(streams.Err, "Key (16 bytes): ")

		key, err := term.ReadPassword(int(file.Fd())) //nolint:gosec // fd fits in int

		fmt.Fprintln(streams.Err)

		if err != nil {
			return "", fmt.Errorf("reading key from terminal: %w", err)
		}

		return string(key), nil
	}
}
