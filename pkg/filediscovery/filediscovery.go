package filediscovery

import (
	"os"
	"path/filepath"
	"strings"
)

// dependencyDirs are package-manager and build-output directories that a
// codebase scan never descends into.
var dependencyDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
}

// ExcludeFunc decides whether a directory entry is skipped. It receives the
// entry's base name and whether it is a directory; returning true for a
// directory prunes the whole subtree.
type ExcludeFunc func(name string, isDir bool) bool

// AcceptFunc decides whether a discovered file path is kept.
type AcceptFunc func(path string) bool

// DefaultExclude skips hidden entries and well-known dependency
// directories.
func DefaultExclude(name string, isDir bool) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	return isDir && dependencyDirs[name]
}

// Walk traverses the tree under root and returns every file path accepted
// by accept, pruning entries the exclude predicate rejects. The traversal
// itself carries no policy: both predicates are supplied by the caller,
// which keeps this testable against any temp directory.
func Walk(root string, exclude ExcludeFunc, accept AcceptFunc) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && exclude != nil && exclude(name, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if exclude != nil && exclude(name, false) {
			return nil
		}
		if accept == nil || accept(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
