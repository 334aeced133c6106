package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/foldertree/internal/foldertree"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options configures a run.
type Options struct {
	// Output represents the extra output format (text, json or yaml).
	Output string
	// Summary prints totals by extension after the log is written.
	Summary bool
	// Debug indicates whether debug output is enabled.
	Debug bool
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"text", "json", "yaml"}

func help() string {
	dirs, files := foldertree.IgnoredNames()
	slices.Sort(dirs)
	slices.Sort(files)

	return heredoc.Docf(`
		foldertree analyzes the folder structure of the current directory.

		Every file and directory below the working directory is listed with its
		extension and size, and the result is written to
		folder_structure_<YYYYMMDD_HHMMSS>.log in the working directory.

		Usage:

			foldertree [flags]

		Ignored directories: %s
		Ignored files:       %s

		Unreadable directories are reported and left empty in the log.
		The exit code is non-zero only when the log file cannot be written.
	`, strings.Join(dirs, ", "), strings.Join(files, ", "))
}

func bindFlags(flags *pflag.FlagSet, options *Options) {
	flags.StringVarP(&options.Output, "output", "o", "text",
		"Output format: text writes only the log, json and yaml also print the tree to stdout")
	flags.BoolVar(&options.Summary, "summary", false, "Print totals by extension after writing the log")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	flags.SortFlags = false
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute(args []string) error {
	var options Options

	cmd := &cobra.Command{
		Use:           "foldertree",
		Short:         "Write an indented report of the current folder structure",
		Long:          help(),
		Args:          cobra.NoArgs,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			options.Output = strings.ToLower(options.Output)
			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			return logic(options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	bindFlags(cmd.Flags(), &options)
	cmd.SetArgs(args)

	return cmd.Execute()
}
