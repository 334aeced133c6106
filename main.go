// Command foldertree writes an indented report of the current folder structure.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/foldertree/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by ldflags
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
