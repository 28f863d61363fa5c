package types

// Suggestion pairs a generated comment with the file position it targets.
// Line is 1-based and positional: it is only guaranteed to be valid against
// the file content that existed when the suggestion was produced.
type Suggestion struct {
	File             string `json:"file"`
	Line             int    `json:"line"`
	CodeSnippet      string `json:"codeSnippetPreview"`
	SuggestedComment string `json:"suggestedComment"`
}

// CodebaseInfo summarizes the scan that produced a suggestion batch.
type CodebaseInfo struct {
	FilesScanned int      `json:"filesScanned"`
	Files        []string `json:"files,omitempty"`
}
