package strip

import (
	"regexp"
	"strings"

	"github.com/alantheprice/scribe/pkg/styles"
)

var (
	// jsBlock matches /* */ spans for the bracket-style scripting dialects,
	// which mix line and block comments regardless of their declared style.
	jsBlockFullLine = regexp.MustCompile(`(?m)^[ \t]*/\*[\s\S]*?\*/[ \t]*\n?`)
	jsBlockInline   = regexp.MustCompile(`/\*[\s\S]*?\*/`)

	blankRun = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// Strip removes every comment matching the style from content and reports
// how many spans were removed. A comment occupying a whole line is removed
// together with its newline so stripping a freshly inserted comment restores
// the original line count; a trailing comment is clipped to end of line.
// Runs of blank lines left behind are collapsed to a single blank line.
//
// Pure function: the caller owns the file read and write, and should only
// write back when the removed count is positive.
func Strip(content, ext string, style styles.CommentStyle) (string, int) {
	removed := 0

	if style.IsBlock() {
		content, removed = removeSpans(content, style.LinePrefix, style.BlockSuffix, removed)
	} else {
		prefix := regexp.QuoteMeta(style.LinePrefix)
		fullLine := regexp.MustCompile(`(?m)^[ \t]*` + prefix + `.*$\n?`)
		trailing := regexp.MustCompile(`(?m)` + prefix + `.*$`)

		content, removed = removeAll(fullLine, content, removed)
		content, removed = removeAll(trailing, content, removed)
	}

	// The scripting dialects declare a line style but also carry /* */
	// blocks; sweep those in a second pass.
	if styles.IsDocExtension(ext) && !style.IsBlock() {
		content, removed = removeAll(jsBlockFullLine, content, removed)
		content, removed = removeAll(jsBlockInline, content, removed)
	}

	return collapseBlankRuns(content), removed
}

func removeSpans(content, prefix, suffix string, removed int) (string, int) {
	qp := regexp.QuoteMeta(prefix)
	qs := regexp.QuoteMeta(suffix)
	fullLine := regexp.MustCompile(`(?m)^[ \t]*` + qp + `[\s\S]*?` + qs + `[ \t]*\n?`)
	inline := regexp.MustCompile(qp + `[\s\S]*?` + qs)

	content, removed = removeAll(fullLine, content, removed)
	return removeAll(inline, content, removed)
}

func removeAll(re *regexp.Regexp, content string, removed int) (string, int) {
	matches := re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, removed
	}
	return re.ReplaceAllString(content, ""), removed + len(matches)
}

// collapseBlankRuns squeezes any run of three or more newline-separated
// blank lines down to exactly one blank line.
func collapseBlankRuns(content string) string {
	for {
		next := blankRun.ReplaceAllString(content, "\n\n")
		if next == content {
			return next
		}
		content = next
	}
}

// StripFileContent is a convenience wrapper that resolves the style from
// the extension before stripping.
func StripFileContent(content, ext string) (string, int) {
	return Strip(content, strings.ToLower(ext), styles.StyleFor(ext))
}
