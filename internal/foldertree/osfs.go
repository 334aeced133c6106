package foldertree

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/karrick/godirwalk"
)

// direntFS is an osfs whose ReadDir keeps the raw on-disk order.
// osfs sorts directory listings by name; godirwalk does not.
type direntFS struct {
	billy.Filesystem
}

// NewOSFS returns a filesystem rooted at root on the host disk.
func NewOSFS(root string) billy.Filesystem {
	return &direntFS{Filesystem: osfs.New(root)}
}

// ReadDir lists path in the order the operating system returns entries.
//
// The returned infos carry only the name and the type bits from the
// directory entry; size and times are not populated. Callers Lstat each
// child themselves, so one unreadable child does not fail the listing.
func (d *direntFS) ReadDir(path string) ([]os.FileInfo, error) {
	osPath := filepath.Join(d.Root(), path)

	dirents, err := godirwalk.ReadDirents(osPath, nil)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", osPath, err)
	}

	infos := make([]os.FileInfo, 0, len(dirents))
	for _, de := range dirents {
		infos = append(infos, direntInfo{de})
	}

	return infos, nil
}

// direntInfo exposes a godirwalk.Dirent as an os.FileInfo.
type direntInfo struct {
	dirent *godirwalk.Dirent
}

func (i direntInfo) Name() string       { return i.dirent.Name() }
func (i direntInfo) Size() int64        { return 0 }
func (i direntInfo) Mode() os.FileMode  { return i.dirent.ModeType() }
func (i direntInfo) ModTime() time.Time { return time.Time{} }
func (i direntInfo) IsDir() bool        { return i.dirent.IsDir() }
func (i direntInfo) Sys() any           { return i.dirent }
