package snippets

import (
	"regexp"
	"strings"
)

// CodeUnit is one heuristically bounded span of source text believed to be a
// function, class, or method. StartLine is the 1-based line number of the
// unit's first line in the original file; Text spans from that line through
// the detected closing line, inclusive.
type CodeUnit struct {
	Text      string
	StartLine int
}

// Trigger patterns are deliberately loose. This is a line-level heuristic,
// not a parser: braces or keywords inside string and comment literals are
// not discounted and can open or close a unit early.
var (
	jsTrigger = regexp.MustCompile(`^\s*(export\s+)?(async\s+)?function\s+[\w$]+|^\s*(export\s+)?(abstract\s+)?class\s+[\w$]+|^\s*(const|let|var)\s+[\w$]+\s*=\s*(async\s*)?(function\b|\()`)
	pyTrigger = regexp.MustCompile(`^\s*(async\s+)?(def|class)\s+\w+`)
	rbTrigger = regexp.MustCompile(`^\s*(def|class|module)\s+\w+`)
	goTrigger = regexp.MustCompile(`^func\s+(\(\s*[^)]*\)\s*)?\w+|^type\s+\w+\s+(struct|interface)\b`)
	cTrigger  = regexp.MustCompile(`^\s*(public|private|protected|static|virtual|inline|internal|final|abstract|override|\s)*[\w<>\[\],\s\*&:]+\s+[\w~]+\s*\([^;]*$|^\s*(public|private|protected|static|final|abstract|\s)*(class|struct|interface|enum)\s+\w+`)
	phpTrigger = regexp.MustCompile(`^\s*(public\s+|private\s+|protected\s+|static\s+)*function\s+\w+|^\s*(abstract\s+|final\s+)?class\s+\w+`)
	swiftTrigger = regexp.MustCompile(`^\s*(public\s+|private\s+|internal\s+|open\s+|static\s+)*(func|class|struct|enum|extension)\s+\w+`)
	rsTrigger = regexp.MustCompile(`^\s*(pub\s+(\(\s*\w+\s*\)\s*)?)?(async\s+)?(fn|struct|enum|trait|impl)\b`)
)

var triggersByExt = map[string]*regexp.Regexp{
	".js":    jsTrigger,
	".jsx":   jsTrigger,
	".ts":    jsTrigger,
	".tsx":   jsTrigger,
	".py":    pyTrigger,
	".rb":    rbTrigger,
	".go":    goTrigger,
	".java":  cTrigger,
	".c":     cTrigger,
	".cpp":   cTrigger,
	".cs":    cTrigger,
	".php":   phpTrigger,
	".swift": swiftTrigger,
	".rs":    rsTrigger,
}

// indentDelimited languages close a unit by dedenting back to column 0
// instead of by brace balance.
var indentDelimited = map[string]bool{
	".py": true,
	".rb": true,
}

// triggerFor selects the unit-opening pattern for an extension. Unsupported
// extensions fall back to the JavaScript/TypeScript pattern.
func triggerFor(ext string) *regexp.Regexp {
	if re, ok := triggersByExt[strings.ToLower(ext)]; ok {
		return re
	}
	return jsTrigger
}

// Extract scans file content and returns every detected code unit in file
// order. It is a pure function of its input and computes all units before
// returning.
//
// Known approximations, kept on purpose:
//   - nested units of the same kind are absorbed into the outer unit's brace
//     balance, yielding one flat unit instead of two;
//   - a unit still open at end of file is silently dropped;
//   - for indentation-delimited languages a blank line reads as a dedent and
//     closes the current unit.
func Extract(content, ext string) []CodeUnit {
	if content == "" {
		return nil
	}

	trigger := triggerFor(ext)
	byIndent := indentDelimited[strings.ToLower(ext)]
	lines := strings.Split(content, "\n")

	var units []CodeUnit
	var body []string
	start := 0
	depth := 0
	inside := false

	push := func() {
		units = append(units, CodeUnit{Text: strings.Join(body, "\n"), StartLine: start})
		body = nil
		inside = false
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if inside {
			if byIndent {
				if dedented(line) {
					// Close before this line; it is not part of the unit.
					// The line may itself open the next unit, so fall
					// through to the trigger check below.
					push()
				} else {
					body = append(body, line)
					continue
				}
			} else {
				body = append(body, line)
				depth += strings.Count(line, "{") - strings.Count(line, "}")
				if depth <= 0 {
					push()
				}
				continue
			}
		}

		if !inside && trigger.MatchString(line) {
			inside = true
			start = i + 1
			body = []string{line}
			if !byIndent {
				depth = strings.Count(line, "{") - strings.Count(line, "}")
				if depth <= 0 {
					// Same-line open+close (or no brace at all): the
					// trigger line alone is the unit.
					push()
				}
			}
		}
	}

	// A unit that never closed by end of file is dropped.
	return units
}

// dedented reports whether a line sits at column 0. An empty line has no
// leading whitespace and therefore counts as dedented.
func dedented(line string) bool {
	return len(line) == 0 || (line[0] != ' ' && line[0] != '\t')
}
