package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/basics/internal/logging"
	"github.com/idelchi/basics/internal/session"
)

// calcOptions are the flags shared by the calculator commands.
type calcOptions struct {
	Quiet   bool
	Verbose bool
}

// NewCalcCommand creates the calc root command.
// Without arguments it runs the interactive menu on the given streams.
// Flags can also be set through CALC_* environment variables.
func NewCalcCommand(version string, streams IOStreams) *cobra.Command {
	opts := &calcOptions{}

	root := cobraext.NewDefaultRootCommand(version, func(_ *cobra.Command, _ []string) error {
		if err := viper.Unmarshal(opts); err != nil {
			return fmt.Errorf("unmarshalling options: %w", err)
		}

		return nil
	})

	root.Use = "calc [flags]"
	root.Short = "Four-function integer calculator"
	root.Long = `Reads an operation and two integers and prints the result.

Operations are selected by number, name or symbol:
  1, Addition, +        2, Subtraction, -
  3, Multiplication, *  4, Division, /

Operands are 32-bit signed integers; results wrap on overflow
and division truncates toward zero.`
	root.Args = cobra.NoArgs
	root.TraverseChildren = false
	root.RunE = func(_ *cobra.Command, _ []string) error {
		return session.Run(streams.In, streams.Out, session.Options{
			Quiet:  opts.Quiet,
			Logger: logging.New(streams.Err, opts.Verbose),
		})
	}

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress the menu and prompts")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(newEvalCommand(opts, streams))

	return root
}

// newEvalCommand evaluates a single operation given on the command line.
func newEvalCommand(opts *calcOptions, streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <operation> <a> <b>",
		Short: "Evaluate one operation without prompting",
		Example: `  calc eval + 2 3
  calc eval Division -7 2`,
		Args: cobra.ExactArgs(3), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			outcome, err := session.Evaluate(args[0], args[1], args[2], logging.New(streams.Err, opts.Verbose))
			if err != nil {
				return err
			}

			return session.Report(streams.Out, outcome, "")
		},
	}

	// Operands like -7 must not be read as flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
