package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/basics/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
// It must be given the same key, --iv and --scheme that were used to encrypt.
func NewDecryptCommand(streams IOStreams) *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "decrypt --input <path> --output <path> --key <16-byte-string>",
		Aliases: []string{"dec"},
		Short:   "Decrypt a file",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, true),
		RunE:    run(cfg, streams),
	}

	addTransformFlags(cmd)

	return cmd
}
