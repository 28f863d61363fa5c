package insert

import (
	"strings"

	"github.com/alantheprice/scribe/pkg/styles"
)

// docMarkers are the structured-doc tags that mark a body as JSDoc-shaped.
var docMarkers = []string{
	"@param", "@return", "@returns", "@description",
	"@example", "@typedef", "@type", "@function", "@class",
}

// HasDocMarkers reports whether the body carries structured-doc tags.
func HasDocMarkers(body string) bool {
	for _, marker := range docMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

// Format renders a comment body in the given style. structuredDoc selects
// the JSDoc block shape and must only be true for the bracket-style
// scripting dialects when the body already carries doc markers.
//
// Rules, in priority order:
//  1. structuredDoc: pass through when already /* */-wrapped, otherwise
//     re-wrap every line under a leading asterisk;
//  2. block style: one prefix...suffix block, newlines collapsed to spaces;
//  3. multi-line body on a line style: every line prefixed independently;
//  4. single line, single prefix.
func Format(body string, style styles.CommentStyle, structuredDoc bool) string {
	if structuredDoc {
		trimmed := strings.TrimSpace(body)
		if strings.HasPrefix(trimmed, "/*") && strings.HasSuffix(trimmed, "*/") {
			return body
		}
		var b strings.Builder
		b.WriteString("/**\n")
		for _, line := range strings.Split(body, "\n") {
			b.WriteString(" * ")
			b.WriteString(stripCommentLeader(line))
			b.WriteString("\n")
		}
		b.WriteString(" */")
		return b.String()
	}

	if style.IsBlock() {
		flat := strings.ReplaceAll(body, "\n", " ")
		return style.LinePrefix + " " + flat + " " + style.BlockSuffix
	}

	if strings.Contains(body, "\n") {
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = style.LinePrefix + " " + line
		}
		return strings.Join(lines, "\n")
	}

	return style.LinePrefix + " " + body
}

// FormatFor renders a comment body for the language of the given extension.
func FormatFor(body, ext string) string {
	style := styles.StyleFor(ext)
	structured := styles.IsDocExtension(ext) && HasDocMarkers(body)
	return Format(body, style, structured)
}

// stripCommentLeader removes a pre-existing line or block comment leader so
// re-wrapped lines don't end up double-prefixed.
func stripCommentLeader(line string) string {
	s := strings.TrimSpace(line)
	for _, leader := range []string{"/**", "/*", "*/", "//", "*", "#"} {
		if strings.HasPrefix(s, leader) {
			s = strings.TrimSpace(strings.TrimPrefix(s, leader))
			break
		}
	}
	return s
}
