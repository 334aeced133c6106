// Package report renders a scanned folder tree as an indented text log.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/idelchi/foldertree/internal/foldertree"
)

const (
	// Indent is the indentation added per depth level.
	Indent = "    "
	// SeparatorWidth is the number of '=' characters in the header separator.
	SeparatorWidth = 50
)

// Header contains the template for the report header.
//
//go:embed header.tmpl
var Header string

//nolint:gochecknoglobals // Parsed once from an embedded constant
var header = template.Must(template.New("header").Parse(Header))

// WriteError records a report that could not be rendered or written.
type WriteError struct {
	// Path is the name of the log file.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileName returns the log file name for t, at second granularity.
func FileName(t time.Time) string {
	return "folder_structure_" + t.Format("20060102_150405") + ".log"
}

// Format renders tree depth-first, one line per entry, in the tree's order.
func Format(tree foldertree.Tree) []string {
	return format(tree, 0, nil)
}

func format(tree foldertree.Tree, depth int, lines []string) []string {
	prefix := strings.Repeat(Indent, depth)

	for _, e := range tree {
		if e.IsDir() {
			lines = append(lines, fmt.Sprintf("%s📁 %s/", prefix, e.Name))
			lines = format(e.Children, depth+1, lines)

			continue
		}

		lines = append(lines, fmt.Sprintf("%s📄 %s (%s, %s KB)", prefix, e.Name, e.Extension, e.SizeKB()))
	}

	return lines
}

// Render returns the full report: header followed by the formatted tree.
func Render(tree foldertree.Tree, projectPath string, t time.Time) ([]byte, error) {
	var buf bytes.Buffer

	if err := header.Execute(&buf, map[string]any{
		"Path":      projectPath,
		"Date":      t.Format(time.DateTime),
		"Separator": strings.Repeat("=", SeparatorWidth),
	}); err != nil {
		return nil, fmt.Errorf("rendering header: %w", err)
	}

	buf.WriteString(strings.Join(Format(tree), "\n"))

	return buf.Bytes(), nil
}

// Write renders the report in memory and stores it in fs under FileName(t)
// with a single write. It returns the file name.
func Write(fs billy.Filesystem, tree foldertree.Tree, projectPath string, t time.Time) (string, error) {
	name := FileName(t)

	data, err := Render(tree, projectPath, t)
	if err != nil {
		return name, &WriteError{Path: name, Err: err}
	}

	if err := util.WriteFile(fs, name, data, 0o644); err != nil {
		return name, &WriteError{Path: name, Err: err}
	}

	return name, nil
}
