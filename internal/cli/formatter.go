package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/idelchi/foldertree/internal/foldertree"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// TopExtensions is the number of extensions listed in the summary.
	TopExtensions = 10
)

// PrintJSON outputs the tree in JSON format.
func PrintJSON(tree foldertree.Tree, writer io.Writer) error {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs the tree in YAML format.
func PrintYAML(tree foldertree.Tree, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(tree); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}

// PrintSummary outputs tree totals in human-readable table format.
func PrintSummary(stats foldertree.Stats, errorCount int, elapsed time.Duration, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nTop extensions:\t\t")

	extList := make([]string, 0, len(stats.ByExtension))
	for ext := range stats.ByExtension {
		extList = append(extList, ext)
	}

	sort.Slice(extList, func(i, j int) bool {
		a, b := stats.ByExtension[extList[i]], stats.ByExtension[extList[j]]
		if a.Size != b.Size {
			return a.Size > b.Size
		}

		return extList[i] < extList[j]
	})

	if len(extList) > TopExtensions {
		extList = extList[:TopExtensions]
	}

	for i, ext := range extList {
		extStat := stats.ByExtension[ext]

		pct := 0.0
		if stats.Bytes > 0 {
			pct = 100.0 * float64(extStat.Size) / float64(stats.Bytes)
		}

		if ext == "" {
			ext = "\"\""
		}

		fmt.Fprintf(w, "  %d) %s:\t%d files, %s (%.1f%%)\n",
			i+1, ext, extStat.Count, humanize.IBytes(uint64(extStat.Size)), pct) //nolint:gosec // Sizes are never negative
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%s\n", humanize.Comma(stats.Files))
	fmt.Fprintf(w, "Total directories:\t%s\n", humanize.Comma(stats.Directories))
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(stats.Bytes)), stats.Bytes) //nolint:gosec // Sizes are never negative
	fmt.Fprintf(w, "Errors:\t%d\n", errorCount)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", elapsed)

	return w.Flush()
}
