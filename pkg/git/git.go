package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// IsRepository reports whether the working directory is inside a git
// work tree.
func IsRepository() bool {
	out, err := exec.Command("git", "rev-parse", "--is-inside-work-tree").CombinedOutput()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}

// RootDir returns the absolute path of the repository root.
func RootDir() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("could not find git root: %v", strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// ChangedFiles returns the paths reported by git status --porcelain:
// modified, added, and untracked files, staged or not. Deleted files are
// skipped since there is nothing left to annotate.
func ChangedFiles() ([]string, error) {
	out, err := exec.Command("git", "status", "--porcelain", "-u").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to get git status: %v", strings.TrimSpace(string(out)))
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if len(line) < 4 {
			continue
		}
		// XY PATH: X is the index status, Y the work tree status.
		if line[0] == 'D' || line[1] == 'D' {
			continue
		}
		path := strings.TrimSpace(line[3:])
		// Renames are reported as "old -> new"; the new path is the one
		// that exists.
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}
		if path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}
