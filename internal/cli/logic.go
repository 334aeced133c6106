package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/foldertree/internal/foldertree"
	"github.com/idelchi/foldertree/internal/report"
)

// ErrReported marks errors whose diagnostic has already been printed.
var ErrReported = errors.New("reported")

func logic(options Options, stdout, stderr io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	return run(options, cwd, time.Now(), stdout, stderr)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// run scans dir, writes the log into dir, and prints the requested output.
func run(options Options, dir string, now time.Time, stdout, stderr io.Writer) error {
	// Operator messages must not mix with structured output.
	console := stdout
	if options.Output != "text" {
		console = stderr
	}

	enableProgress := options.Output == "text" &&
		!options.Debug &&
		isTerminal(stderr)

	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	fmt.Fprintf(console, "Analyzing folder structure: %s\n", dir)

	fs := foldertree.NewOSFS(dir)
	start := time.Now()

	scanner := foldertree.NewScanner(fs, foldertree.Options{
		Output:   console,
		Debug:    options.Debug,
		Progress: progressHook,
	})
	tree := scanner.Scan(foldertree.Root)
	elapsed := time.Since(start)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	name, err := report.Write(fs, tree, dir, now)
	if err != nil {
		fmt.Fprintf(console, "Error creating log file: %v\n", err)

		return fmt.Errorf("%w: creating log file: %w", ErrReported, err)
	}

	fmt.Fprintf(console, "\nLog file created: %s\n", name)

	switch options.Output {
	case "json":
		if err := PrintJSON(tree, stdout); err != nil {
			return err
		}
	case "yaml":
		if err := PrintYAML(tree, stdout); err != nil {
			return err
		}
	}

	if options.Summary {
		return PrintSummary(tree.Stats(), len(scanner.Errors()), elapsed, console)
	}

	return nil
}
