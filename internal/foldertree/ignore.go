package foldertree

// ignoredDirs are directory names that are never listed nor descended into.
//
//nolint:gochecknoglobals // Read-only lookup set
var ignoredDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	".next":        {},
	"out":          {},
	"build":        {},
	".vscode":      {},
	"__pycache__":  {},
}

// ignoredFiles are file names that are never listed.
//
//nolint:gochecknoglobals // Read-only lookup set
var ignoredFiles = map[string]struct{}{
	".DS_Store":  {},
	".env":       {},
	".env.local": {},
}

// IsIgnored reports whether name is excluded from scanning.
// The check applies to the bare name regardless of the entry's kind.
func IsIgnored(name string) bool {
	if _, ok := ignoredDirs[name]; ok {
		return true
	}

	_, ok := ignoredFiles[name]

	return ok
}

// IgnoredNames returns a copy of every ignored name, directories first.
func IgnoredNames() (dirs, files []string) {
	dirs = make([]string, 0, len(ignoredDirs))
	for name := range ignoredDirs {
		dirs = append(dirs, name)
	}

	files = make([]string, 0, len(ignoredFiles))
	for name := range ignoredFiles {
		files = append(files, name)
	}

	return dirs, files
}
