package insert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alantheprice/scribe/pkg/types"
)

// Insert formats a comment body for the file's language and splices it in
// as a new line immediately before the 1-based lineNumber, rewriting the
// file. The insert is positional: nothing verifies that the target line
// still holds the code the comment was written for.
func Insert(path string, lineNumber int, body string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	formatted := FormatFor(body, filepath.Ext(path))
	lines := strings.Split(string(data), "\n")

	idx := lineNumber - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(lines) {
		idx = len(lines)
	}

	spliced := make([]string, 0, len(lines)+1)
	spliced = append(spliced, lines[:idx]...)
	spliced = append(spliced, formatted)
	spliced = append(spliced, lines[idx:]...)

	if err := os.WriteFile(path, []byte(strings.Join(spliced, "\n")), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// ApplyError records one suggestion that could not be written.
type ApplyError struct {
	File string
	Line int
	Err  error
}

func (e ApplyError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

// ApplyBatch writes a batch of suggestions into their files. Suggestions
// targeting the same file are applied in descending line order so earlier
// splices cannot shift the targets of the ones still pending. A failed file
// is reported and skipped; it never aborts the batch.
func ApplyBatch(suggestions []types.Suggestion) (applied []types.Suggestion, failed []ApplyError) {
	ordered := make([]types.Suggestion, len(suggestions))
	copy(ordered, suggestions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].File == ordered[j].File {
			return ordered[i].Line > ordered[j].Line
		}
		return ordered[i].File < ordered[j].File
	})

	for _, s := range ordered {
		if err := Insert(s.File, s.Line, s.SuggestedComment); err != nil {
			failed = append(failed, ApplyError{File: s.File, Line: s.Line, Err: err})
			continue
		}
		applied = append(applied, s)
	}
	return applied, failed
}
