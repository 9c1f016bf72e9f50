package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/key"
)

// NewGenerateCommand creates a command printing a random 16-character key.
func NewGenerateCommand(streams IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new 16-byte key",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			generated, err := GenerateKey()
			if err != nil {
				return err
			}

			fmt.Fprintln(streams.Out, generated)

			return nil
		},
	}
}

// GenerateKey returns 8 random bytes hex-encoded, a 16-byte printable key.
func GenerateKey() (string, error) {
	const randomBytes = 8

	k, err := key.New(randomBytes)
	if err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}

	return k.AsHex(), nil
}
