// Package logic implements the encrypt/decrypt pipeline of the cryptor:
// read the whole input, transform it, write the whole output.
package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/basics/internal/config"
	"github.com/idelchi/basics/internal/encryption"
	"github.com/idelchi/basics/internal/failure"
	"github.com/idelchi/basics/internal/fileutil"
	"github.com/idelchi/basics/internal/logging"
)

// Streams are the destinations for user-facing output.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Run encrypts or decrypts cfg.Input into cfg.Output.
func Run(cfg *config.Config, streams Streams, logger *logrus.Logger) (Result, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	start := time.Now()
	log := logger.WithFields(logrus.Fields{
		"action": cfg.Action(),
		"input":  cfg.Input,
		"output": cfg.Output,
	})

	input, err := os.ReadFile(cfg.Input)
	if err != nil {
		return Result{}, failure.NewIO("reading input file", cfg.Input, err)
	}

	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return Result{}, err
	}

	if fileutil.SameFile(cfg.Input, cfg.Output) {
		return Result{}, failure.NewIO("refusing to overwrite input file", cfg.Input, fileutil.ErrSameFile)
	}

	warn(log, proc)

	result := Result{
		Action:    cfg.Action(),
		Input:     cfg.Input,
		Output:    cfg.Output,
		InputSize: int64(len(input)),
	}

	if cfg.Dry {
		log.Debug("dry run, nothing written")

		if !cfg.Quiet {
			fmt.Fprintf(streams.Out, "Would %s %q -> %q\n", cfg.Action(), cfg.Input, cfg.Output)
		}

		return result.finish(start, cfg, streams), nil
	}

	output, err := proc.Transform(input, cfg.Decrypt)
	if err != nil {
		return Result{}, err
	}

	log.WithField("bytes", len(output)).Debug("transformed")

	result.OutputSize, err = fileutil.WriteAtomic(cfg.Input, cfg.Output, output, cfg.PreserveTimestamps)
	if err != nil {
		return Result{}, err
	}

	if cfg.Delete {
		if fileutil.SameFile(cfg.Input, cfg.Output) {
			return Result{}, failure.NewIO("refusing to delete output file", cfg.Input, fileutil.ErrSameFile)
		}

		if err := os.Remove(cfg.Input); err != nil {
			return Result{}, failure.NewIO("deleting input file", cfg.Input, err)
		}

		log.Debug("deleted input")
	}

	if !cfg.Quiet {
		fmt.Fprintln(streams.Out, result.message())
	}

	return result.finish(start, cfg, streams), nil
}

// warn logs the weaknesses of the selected scheme.
func warn(log *logrus.Entry, proc *encryption.Processor) {
	if proc.Scheme() != encryption.SchemeCBC {
		return
	}

	if proc.IVMode() == encryption.IVZero {
		log.Warn("zero IV in use: files encrypted with the same key reveal shared leading blocks")
	}

	log.Debug("cbc provides confidentiality only, tampering is not detected")
}

func printStats(w io.Writer, result Result) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Action:    %s\n", result.Action)
	//nolint:gosec // sizes are never negative
	fmt.Fprintf(w, "  Input:     %s\n", humanize.IBytes(uint64(max(0, result.InputSize))))
	//nolint:gosec // sizes are never negative
	fmt.Fprintf(w, "  Output:    %s\n", humanize.IBytes(uint64(max(0, result.OutputSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", result.Duration.Round(time.Millisecond))
}
