// Command calc is a four-function integer calculator.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/basics/internal/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	streams := commands.StdStreams()

	if err := commands.NewCalcCommand(version, streams).Execute(); err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		os.Exit(1)
	}
}
