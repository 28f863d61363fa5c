package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alantheprice/scribe/pkg/types"
)

func tempHistory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	doc, corrupt := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.False(t, corrupt)
	require.Empty(t, doc)
}

func TestLoadCorruptDocument(t *testing.T) {
	for _, content := range []string{"not json", `{"a": 1}`, `"just a string"`} {
		doc, corrupt := Load(tempHistory(t, content))
		require.True(t, corrupt, "content %q should read as corrupt", content)
		require.Empty(t, doc)
	}
}

func TestLoadLegacyFlatList(t *testing.T) {
	legacy := `[
		{"file": "a.js", "line": 1, "codeSnippetPreview": "function a() {}", "suggestedComment": "a"},
		{"file": "b.js", "line": 2, "codeSnippetPreview": "function b() {}", "suggestedComment": "b"},
		{"file": "c.js", "line": 3, "codeSnippetPreview": "function c() {}", "suggestedComment": "c"}
	]`
	doc, corrupt := Load(tempHistory(t, legacy))
	require.False(t, corrupt)
	require.Len(t, doc, 1)
	require.Equal(t, LegacyID, doc[0].ID)
	require.Len(t, doc[0].Suggestions, 3)
}

func TestLegacyUpgradeThenAppend(t *testing.T) {
	legacy := `[
		{"file": "a.js", "line": 1, "suggestedComment": "a"},
		{"file": "b.js", "line": 2, "suggestedComment": "b"},
		{"file": "c.js", "line": 3, "suggestedComment": "c"}
	]`
	doc, corrupt := Load(tempHistory(t, legacy))
	require.False(t, corrupt)

	doc = AppendGeneration(doc, []types.Suggestion{{File: "d.js", Line: 4, SuggestedComment: "d"}}, nil)

	require.Len(t, doc, 2)
	require.Equal(t, LegacyID, doc[0].ID)
	require.Len(t, doc[0].Suggestions, 3)
	require.True(t, strings.HasPrefix(doc[1].ID, "gen-"))
	require.Len(t, doc[1].Suggestions, 1)
}

func TestAppendRemovalOntoLastGeneration(t *testing.T) {
	doc := AppendGeneration(nil, []types.Suggestion{{File: "a.js", Line: 1}}, nil)
	doc = AppendGeneration(doc, []types.Suggestion{{File: "b.js", Line: 1}}, nil)

	removal := RemovalRecord{
		FilesProcessed:  []string{"a.js"},
		CommentsRemoved: 2,
		Details:         []RemovalDetail{{File: "a.js", CommentsRemoved: 2}},
	}
	doc = AppendRemoval(doc, removal)

	require.Len(t, doc, 2, "removal must attach in place, not create a generation")
	require.Nil(t, doc[0].CommentRemoval)
	require.NotNil(t, doc[1].CommentRemoval)
	require.Equal(t, 2, doc[1].CommentRemoval.CommentsRemoved)
}

func TestAppendRemovalOnEmptyDocument(t *testing.T) {
	doc := AppendRemoval(nil, RemovalRecord{CommentsRemoved: 1})
	require.Len(t, doc, 1)
	require.NotNil(t, doc[0].CommentRemoval)
	require.Empty(t, doc[0].Suggestions)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	doc := AppendGeneration(nil, []types.Suggestion{
		{File: "a.py", Line: 3, CodeSnippet: "def f():", SuggestedComment: "does f"},
	}, &types.CodebaseInfo{FilesScanned: 1, Files: []string{"a.py"}})
	require.NoError(t, Save(path, doc))

	// Indented JSON on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")

	reloaded, corrupt := Load(path)
	require.False(t, corrupt)
	require.Len(t, reloaded, 1)
	require.Equal(t, doc[0].ID, reloaded[0].ID)
	require.Equal(t, doc[0].Suggestions, reloaded[0].Suggestions)
	require.Equal(t, 1, reloaded[0].CodebaseInfo.FilesScanned)
}

func TestLatest(t *testing.T) {
	require.Nil(t, Latest(nil))

	doc := AppendGeneration(nil, nil, nil)
	doc = AppendGeneration(doc, []types.Suggestion{{File: "x.js", Line: 1}}, nil)
	latest := Latest(doc)
	require.NotNil(t, latest)
	require.Len(t, latest.Suggestions, 1)
}

func TestGenerationTimestampIsISO8601(t *testing.T) {
	doc := AppendGeneration(nil, nil, nil)
	data, err := json.Marshal(doc[0])
	require.NoError(t, err)
	require.Regexp(t, `"timestamp":"\d{4}-\d{2}-\d{2}T`, string(data))
}
