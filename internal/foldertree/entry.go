package foldertree

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies an entry as a directory or a file.
type Kind int

const (
	// Directory is an entry that holds children.
	Directory Kind = iota
	// File is a leaf entry with a size and an extension.
	File
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one scanned file-system item.
type Entry struct {
	// Name is the base name of the item.
	Name string
	// Kind tells whether the item is a directory or a file.
	Kind Kind
	// Extension is the suffix from the last dot, files only.
	Extension string
	// Size is the size in bytes, files only.
	Size int64
	// Children holds the directory contents, directories only.
	Children Tree
}

// SizeKB returns the size in kilobytes with two fraction digits.
func (e *Entry) SizeKB() string {
	return fmt.Sprintf("%.2f", float64(e.Size)/1024)
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Kind == Directory
}

// document is the serialized form of an entry.
type document struct {
	Name      string      `json:"name"                yaml:"name"`
	Type      Kind        `json:"type"                yaml:"type"`
	Extension *string     `json:"extension,omitempty" yaml:"extension,omitempty"`
	Size      string      `json:"size,omitempty"      yaml:"size,omitempty"`
	Bytes     *int64      `json:"bytes,omitempty"     yaml:"bytes,omitempty"`
	Content   *[]document `json:"content,omitempty"   yaml:"content,omitempty"`
}

func (e *Entry) toDocument() document {
	doc := document{Name: e.Name, Type: e.Kind}

	if e.IsDir() {
		content := make([]document, 0, len(e.Children))
		for _, child := range e.Children {
			content = append(content, child.toDocument())
		}

		doc.Content = &content

		return doc
	}

	ext, size := e.Extension, e.Size
	doc.Extension = &ext
	doc.Bytes = &size
	doc.Size = e.SizeKB() + " KB"

	return doc
}

// MarshalJSON encodes the entry with its children nested under "content".
func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.toDocument())
}

// MarshalYAML encodes the entry the same way as MarshalJSON.
func (e *Entry) MarshalYAML() (any, error) {
	return e.toDocument(), nil
}

// Tree is the ordered content of one directory.
type Tree []*Entry

// Lookup returns the child called name, or nil.
func (t Tree) Lookup(name string) *Entry {
	for _, e := range t {
		if e.Name == name {
			return e
		}
	}

	return nil
}

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// Stats holds totals over a whole tree.
type Stats struct {
	// Files is the number of file entries.
	Files int64 `json:"files"`
	// Directories is the number of directory entries.
	Directories int64 `json:"directories"`
	// Bytes is the cumulative size of all files.
	Bytes int64 `json:"bytes"`
	// ByExtension maps file extensions to their statistics.
	ByExtension map[string]ExtStat `json:"by_extension"`
}

// Stats walks the tree and aggregates its totals.
func (t Tree) Stats() Stats {
	stats := Stats{ByExtension: make(map[string]ExtStat)}
	t.accumulate(&stats)

	return stats
}

func (t Tree) accumulate(stats *Stats) {
	for _, e := range t {
		if e.IsDir() {
			stats.Directories++
			e.Children.accumulate(stats)

			continue
		}

		stats.Files++
		stats.Bytes += e.Size

		ext := stats.ByExtension[e.Extension]
		ext.Count++
		ext.Size += e.Size
		stats.ByExtension[e.Extension] = ext
	}
}

// Extension returns the substring of name from its last dot, or "" if there is none.
func Extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}

	return ""
}
