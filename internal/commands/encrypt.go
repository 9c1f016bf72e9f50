package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/basics/internal/config"
	"github.com/idelchi/basics/internal/logging"
	"github.com/idelchi/basics/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(streams IOStreams) *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:     "encrypt --input <path> --output <path> --key <16-byte-string>",
		Aliases: []string{"enc"},
		Short:   "Encrypt a file",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, false),
		RunE:    run(cfg, streams),
	}

	addTransformFlags(cmd)

	return cmd
}

// addTransformFlags registers the flags shared by encrypt and decrypt.
func addTransformFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input file path")
	cmd.Flags().StringP("output", "o", "", "Output file path")
	cmd.Flags().StringP("key", "k", "", "Key (exactly 16 bytes)")
	cmd.Flags().StringP("key-file", "f", "", "Path to a file holding the key on its first line")
	cmd.Flags().String("iv", "random", `IV: "random" (stored in the output), "zero", or 32 hex characters`)
	cmd.Flags().String("scheme", "cbc", `Scheme: "cbc" or "siv" (authenticated)`)
	cmd.Flags().Bool("delete", false, "Delete the input file after success")
	cmd.Flags().Bool("stats", false, "Print statistics to stderr")
	cmd.Flags().Bool("dry", false, "Show what would be done without writing")
	cmd.Flags().Bool("preserve-timestamps", false, "Copy the input modification time to the output")
	cmd.Flags().BoolP("show", "s", false, "Show the configuration and exit")
}

// preRun returns a PreRunE handler that loads flags and environment into cfg
// and validates the configuration.
func preRun(cfg *config.Config, decrypt bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("unmarshalling config: %w", err)
		}

		cfg.Decrypt = decrypt

		// CRYPTOR_KEY ranks below --key-file, so only the flag may set Key.
		if !cmd.Flags().Changed("key") {
			cfg.EnvKey, cfg.Key = cfg.Key, ""
		}

		if cfg.Show {
			return nil
		}

		return cfg.Validate()
	}
}

// run returns the RunE handler shared by encrypt and decrypt.
func run(cfg *config.Config, streams IOStreams) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if cfg.Show {
			out, err := cfg.Display()
			if err != nil {
				return err
			}

			fmt.Fprint(streams.Out, out)

			return nil
		}

		if err := cfg.ResolveKey(keyPrompter(streams)); err != nil {
			return err
		}

		logger := logging.New(streams.Err, cfg.Verbose)

		if _, err := logic.Run(cfg, logic.Streams{Out: streams.Out, Err: streams.Err}, logger); err != nil {
			return fmt.Errorf("%s: %w", cfg.Action(), err)
		}

		return nil
	}
}
