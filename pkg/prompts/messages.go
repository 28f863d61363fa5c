package prompts

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// CommentRequest builds the synthesis request for one code unit. The reply
// is expected to be the comment body only, without comment delimiters.
func CommentRequest(language, snippet string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Write a concise documentation comment for the following %s code.\n", language))
	b.WriteString("Describe its purpose and why it exists. ")
	b.WriteString("If it is a function, add one @param line per parameter. ")
	b.WriteString("If it is asynchronous, add an @returns line noting the Promise it resolves. ")
	b.WriteString("Reply with the comment body only, no comment delimiters and no code.\n\n")
	b.WriteString(snippet)
	return b.String()
}

// --- Console messages ---

func Warn(format string, v ...interface{}) string {
	return color.YellowString("Warning: "+format, v...)
}

func Fail(format string, v ...interface{}) string {
	return color.RedString(format, v...)
}

func OK(format string, v ...interface{}) string {
	return color.GreenString(format, v...)
}

func NotAGitRepo() string {
	return "This directory is not a git repository. Nothing to annotate."
}

func NoChangedFiles() string {
	return "No changed source files found. Nothing to annotate."
}

func ScanningFile(path string) string {
	return fmt.Sprintf("Scanning %s ...", path)
}

func FileDone(path string, units int) string {
	return fmt.Sprintf("%s: %d unit(s) found", path, units)
}

func SynthesisFailed(path string, line int, err error) string {
	return Warn("synthesis failed for %s:%d: %v (skipping unit)", path, line, err)
}

func ApplyFailed(path string, err error) string {
	return Fail("could not apply suggestion to %s: %v", path, err)
}

func SuggestionApplied(path string, line int) string {
	return OK("Inserted comment at %s:%d", path, line)
}

func GenerationSaved(id string, count int) string {
	return OK("Saved generation %s with %d suggestion(s).", id, count)
}

func RemovalSummary(files, comments int) string {
	return OK("Removed %d comment(s) across %d file(s).", comments, files)
}

func RemovalSkipped() string {
	return "Comment removal cancelled."
}

func ConfirmRemoval(files int) string {
	return fmt.Sprintf("Remove comments from %d file(s)? This cannot be undone.", files)
}

func HistoryCorrupt(path string) string {
	return Warn("history file %s is corrupt or has an unexpected shape; starting fresh", path)
}

func NoHistory() string {
	return "No suggestion history recorded yet."
}

func CredentialSetupFailed(provider string) string {
	return Fail("No API key available for %s; cannot continue.", provider)
}

func ReviewPrompt() string {
	return "[a]pply / [s]kip / [e]dit / e[x]it: "
}
