package logic

import (
	"time"

	"github.com/idelchi/basics/internal/config"
)

// Result represents the outcome of a single run.
type Result struct {
	// Action is "encrypt" or "decrypt"
	Action string

	// Input file path
	Input string

	// Output file path
	Output string

	// Input size in bytes
	InputSize int64

	// Output file size in bytes, zero on a dry run
	OutputSize int64

	// Duration of the run
	Duration time.Duration
}

// message is the success line printed after a run.
func (r Result) message() string {
	if r.Action == "decrypt" {
		return "File decrypted successfully!"
	}

	return "File encrypted successfully!"
}

// finish records the duration and prints stats when requested.
func (r Result) finish(start time.Time, cfg *config.Config, streams Streams) Result {
	r.Duration = time.Since(start)

	if cfg.Stats {
		printStats(streams.Err, r)
	}

	return r
}
