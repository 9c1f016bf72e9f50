package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the cryptor root command with its subcommands.
// Flags can also be set through CRYPTOR_* environment variables.
func NewRootCommand(version string, streams IOStreams) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "cryptor [flags] command [flags]"
	root.Short = "File encryption utility"
	root.Long = `Encrypts and decrypts whole files with AES-128 and a 16-byte key.

The default scheme is CBC with a random IV stored alongside the ciphertext.
Use --iv zero to read or write files produced with the fixed all-zero IV,
and --scheme siv for authenticated encryption that detects tampering.`

	// Persistent flags are only merged once a subcommand parses its flags.
	root.TraverseChildren = false

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		NewEncryptCommand(streams),
		NewDecryptCommand(streams),
		NewGenerateCommand(streams),
	)

	return root
}
