package styles

import "strings"

// CommentStyle describes how a language writes comments. A style with an
// empty BlockSuffix is a line style: every line is prefixed independently.
// A non-empty BlockSuffix means a single Prefix...Suffix block wraps the body.
type CommentStyle struct {
	LinePrefix  string
	BlockSuffix string
}

// IsBlock reports whether the style wraps the body as one block comment.
func (s CommentStyle) IsBlock() bool {
	return s.BlockSuffix != ""
}

var defaultStyle = CommentStyle{LinePrefix: "//"}

// styleTable maps a lowercased file extension to its comment syntax.
var styleTable = map[string]CommentStyle{
	".js":    {LinePrefix: "//"},
	".jsx":   {LinePrefix: "//"},
	".ts":    {LinePrefix: "//"},
	".tsx":   {LinePrefix: "//"},
	".py":    {LinePrefix: "#"},
	".rb":    {LinePrefix: "#"},
	".java":  {LinePrefix: "//"},
	".c":     {LinePrefix: "//"},
	".cpp":   {LinePrefix: "//"},
	".cs":    {LinePrefix: "//"},
	".go":    {LinePrefix: "//"},
	".php":   {LinePrefix: "//"},
	".swift": {LinePrefix: "//"},
	".rs":    {LinePrefix: "//"},
	".html":  {LinePrefix: "<!--", BlockSuffix: "-->"},
	".css":   {LinePrefix: "/*", BlockSuffix: "*/"},
	".scss":  {LinePrefix: "/*", BlockSuffix: "*/"},
}

// docExtensions are the bracket-style scripting dialects that mix // line
// comments with /** */ doc blocks. They get JSDoc-shaped formatting and an
// extra block-removal pass when stripping.
var docExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

var languageNames = map[string]string{
	".js":    "JavaScript",
	".jsx":   "JavaScript (JSX)",
	".ts":    "TypeScript",
	".tsx":   "TypeScript (TSX)",
	".py":    "Python",
	".rb":    "Ruby",
	".java":  "Java",
	".c":     "C",
	".cpp":   "C++",
	".cs":    "C#",
	".go":    "Go",
	".php":   "PHP",
	".swift": "Swift",
	".rs":    "Rust",
	".html":  "HTML",
	".css":   "CSS",
	".scss":  "SCSS",
}

// LanguageName returns a display name for the extension's language,
// suitable for embedding in a synthesis request.
func LanguageName(ext string) string {
	if name, ok := languageNames[strings.ToLower(ext)]; ok {
		return name
	}
	return "JavaScript"
}

// StyleFor returns the comment style for a file extension. The lookup is
// case-insensitive and total: unknown extensions get the // line default.
func StyleFor(ext string) CommentStyle {
	if s, ok := styleTable[strings.ToLower(ext)]; ok {
		return s
	}
	return defaultStyle
}

// IsDocExtension reports whether the extension belongs to a dialect that
// uses structured /** */ doc comments.
func IsDocExtension(ext string) bool {
	return docExtensions[strings.ToLower(ext)]
}

// Supported reports whether the extension is one of the known source
// languages. Callers use this to filter discovered files.
func Supported(ext string) bool {
	_, ok := styleTable[strings.ToLower(ext)]
	return ok
}

// SupportedExtensions returns the known extensions in no particular order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(styleTable))
	for ext := range styleTable {
		exts = append(exts, ext)
	}
	return exts
}
