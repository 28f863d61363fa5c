package preview

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alantheprice/scribe/pkg/insert"
	"github.com/alantheprice/scribe/pkg/types"
)

const contextLines = 3

// RenderSuggestion shows what applying a suggestion would do to the
// file: the formatted comment as an insertion, with a few lines of
// surrounding context, colored like a unified diff.
func RenderSuggestion(content string, s types.Suggestion, ext string) string {
	lines := strings.Split(content, "\n")
	formatted := insert.FormatFor(s.SuggestedComment, ext)

	idx := s.Line - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(lines) {
		idx = len(lines)
	}

	start := idx - contextLines
	if start < 0 {
		start = 0
	}
	end := idx + contextLines
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d\n", s.File, s.Line)
	for i := start; i < idx; i++ {
		fmt.Fprintf(&b, "  %s\n", lines[i])
	}
	for _, commentLine := range strings.Split(formatted, "\n") {
		b.WriteString(color.GreenString("+ %s", commentLine))
		b.WriteString("\n")
	}
	for i := idx; i < end; i++ {
		fmt.Fprintf(&b, "  %s\n", lines[i])
	}
	return b.String()
}

// RenderDiff produces a colored character diff between two versions of
// a file, used to summarize what a comment removal changed.
func RenderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString(color.GreenString(d.Text))
		case diffmatchpatch.DiffDelete:
			b.WriteString(color.RedString(d.Text))
		default:
			b.WriteString(abbreviate(d.Text))
		}
	}
	return b.String()
}

// abbreviate keeps only a little context around unchanged runs so large
// files do not flood the terminal.
func abbreviate(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= contextLines*2+1 {
		return text
	}
	head := strings.Join(lines[:contextLines], "\n")
	tail := strings.Join(lines[len(lines)-contextLines:], "\n")
	return head + "\n...\n" + tail
}
