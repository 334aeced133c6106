package foldertree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Root is the path of the scanned directory inside its filesystem.
const Root = "/"

// Options configures a Scanner.
type Options struct {
	// Output receives operator diagnostics and debug lines. Defaults to io.Discard.
	Output io.Writer
	// Debug enables debug lines for skipped names and symlinks.
	Debug bool
	// Progress, when set, is called with running file and byte counts.
	Progress func(files, bytes int64)
	// ProgressInterval is the minimum time between two Progress calls.
	ProgressInterval time.Duration
}

// ScanError records a path that could not be listed or stat-ed.
type ScanError struct {
	// Path is the operator-facing path of the failing item.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("analyzing %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// logger provides operator diagnostics and conditional debug output.
type logger struct {
	out     io.Writer
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.out, format, args...)
	}
}

// errorf always prints.
func (l logger) errorf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

// Scanner builds a Tree from a filesystem. It is not safe for concurrent use.
type Scanner struct {
	fs       billy.Filesystem
	log      logger
	progress func(int64, int64)
	interval time.Duration
	last     time.Time
	files    int64
	bytes    int64
	errors   []*ScanError
	// ancestors holds the directories on the current recursion path.
	ancestors []os.FileInfo
}

// NewScanner creates a Scanner reading from fs.
func NewScanner(fs billy.Filesystem, opts Options) *Scanner {
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}

	return &Scanner{
		fs:       fs,
		log:      logger{out: opts.Output, enabled: opts.Debug},
		progress: opts.Progress,
		interval: opts.ProgressInterval,
	}
}

// Scan lists path recursively and returns its content.
//
// Ignored names are skipped at every level. If path cannot be listed, a
// diagnostic is printed, a ScanError is recorded and an empty Tree is
// returned; siblings and parents are unaffected. A child whose metadata
// cannot be read is dropped the same way. Entries keep the order in which
// the filesystem lists them.
//
// Symlinks are followed. A symlinked directory that leads back to one of its
// own ancestors, or whose identity cannot be established, is recorded as an
// empty Directory and not descended.
func (s *Scanner) Scan(path string) Tree {
	s.ancestors = s.ancestors[:0]

	if info, err := s.fs.Stat(path); err == nil {
		s.ancestors = append(s.ancestors, info)
	}

	return s.scan(path)
}

func (s *Scanner) scan(path string) Tree {
	listed, err := s.fs.ReadDir(path)
	if err != nil {
		s.fail(path, err)

		return Tree{}
	}

	tree := make(Tree, 0, len(listed))

	for _, item := range listed {
		name := item.Name()
		childPath := s.fs.Join(path, name)

		if IsIgnored(name) {
			s.log.printf("[debug]: skipping ignored name: %s\n", s.display(childPath))

			continue
		}

		info, err := s.fs.Lstat(childPath)
		if err != nil {
			s.fail(childPath, err)

			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := s.fs.Stat(childPath)
			if err != nil {
				s.fail(childPath, err)

				continue
			}

			if target.IsDir() && !s.canDescend(target) {
				s.log.printf("[debug]: not following symlinked directory: %s\n", s.display(childPath))
				tree = append(tree, &Entry{Name: name, Kind: Directory, Children: Tree{}})

				continue
			}

			info = target
		}

		if info.IsDir() {
			s.ancestors = append(s.ancestors, info)
			children := s.scan(childPath)
			s.ancestors = s.ancestors[:len(s.ancestors)-1]

			tree = append(tree, &Entry{Name: name, Kind: Directory, Children: children})

			continue
		}

		tree = append(tree, &Entry{
			Name:      name,
			Kind:      File,
			Extension: Extension(name),
			Size:      max(info.Size(), 0),
		})
		s.track(info.Size())
	}

	return tree
}

// canDescend reports whether the directory dir is safe to enter: its
// identity is known and it is not already on the recursion path.
func (s *Scanner) canDescend(dir os.FileInfo) bool {
	// os.SameFile only recognizes infos produced by the os package.
	if !os.SameFile(dir, dir) {
		return false
	}

	for _, ancestor := range s.ancestors {
		if os.SameFile(ancestor, dir) {
			return false
		}
	}

	return true
}

// Errors returns every failure recorded so far.
func (s *Scanner) Errors() []*ScanError {
	return s.errors
}

func (s *Scanner) fail(path string, err error) {
	scanErr := &ScanError{Path: s.display(path), Err: err}
	s.errors = append(s.errors, scanErr)
	s.log.errorf("Error analyzing %s: %v\n", scanErr.Path, err)
}

func (s *Scanner) track(size int64) {
	s.files++
	s.bytes += size

	if s.progress == nil {
		return
	}

	if now := time.Now(); now.Sub(s.last) >= s.interval {
		s.last = now
		s.progress(s.files, s.bytes)
	}
}

// display maps a filesystem path to the path shown to the operator.
func (s *Scanner) display(path string) string {
	return filepath.Join(s.fs.Root(), path)
}
