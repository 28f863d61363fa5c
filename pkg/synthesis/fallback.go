package synthesis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alantheprice/scribe/pkg/snippets"
)

var (
	namedDecl  = regexp.MustCompile(`(?:function|class|const|let|var)\s+([A-Za-z_$][\w$]*)`)
	callShape  = regexp.MustCompile(`([A-Za-z_$][\w$]*)\s*\(`)
	classDecl  = regexp.MustCompile(`(?:^|\s)class\s+[A-Za-z_$]`)
	paramGroup = regexp.MustCompile(`\(([^)]*)\)`)
	asyncWord  = regexp.MustCompile(`\basync\b`)
)

// FallbackComment builds a deterministic templated comment from the unit's
// first line, used when the backend reply is unusable. Classes get a
// one-liner; functions get a structured doc body with one @param line per
// non-variadic parameter and an @returns line when the unit looks
// asynchronous.
func FallbackComment(unit snippets.CodeUnit) string {
	firstLine := unit.Text
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}

	name := nameToken(firstLine)

	if classDecl.MatchString(firstLine) {
		return fmt.Sprintf("%s - a class that groups related state and behavior.", name)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s - performs the %s operation.", name, name))
	for _, param := range paramNames(firstLine) {
		b.WriteString(fmt.Sprintf("\n@param %s - input parameter", param))
	}
	if isAsync(unit.Text) {
		b.WriteString("\n@returns {Promise} resolves when the operation completes")
	}
	return b.String()
}

// nameToken extracts the first capturable identifier from a declaration
// line: after a declaration keyword if present, otherwise the first
// identifier that is immediately called.
func nameToken(line string) string {
	if m := namedDecl.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := callShape.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return "this code"
}

// paramNames pulls parameter names out of the first parenthesized group.
// Variadic parameters are dropped; defaults and type annotations are
// trimmed down to the bare name.
func paramNames(line string) []string {
	m := paramGroup.FindStringSubmatch(line)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return nil
	}

	var names []string
	for _, raw := range strings.Split(m[1], ",") {
		p := strings.TrimSpace(raw)
		if p == "" || strings.HasPrefix(p, "...") || strings.HasPrefix(p, "*") {
			continue
		}
		if idx := strings.IndexByte(p, '='); idx >= 0 {
			p = strings.TrimSpace(p[:idx])
		}
		if idx := strings.IndexByte(p, ':'); idx >= 0 {
			p = strings.TrimSpace(p[:idx])
		}
		// C-style "int count": the name is the last word.
		if fields := strings.Fields(p); len(fields) > 1 {
			p = fields[len(fields)-1]
		}
		p = strings.TrimLeft(p, "*&")
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// isAsync detects asynchronous units via the async keyword or an explicit
// returned Promise.
func isAsync(text string) bool {
	return asyncWord.MatchString(text) || strings.Contains(text, "return new Promise")
}
