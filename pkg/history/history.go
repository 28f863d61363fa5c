package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alantheprice/scribe/pkg/types"
)

// DefaultPath is the persisted history document, project-relative.
const DefaultPath = ".scribe/history.json"

// LegacyID marks the synthetic generation that wraps a pre-generation flat
// suggestion list found on disk.
const LegacyID = "legacy"

// Generation is one persisted batch of suggestions and/or a removal record.
// Generations are appended, never mutated or deleted; the document is an
// ordered sequence whose last element is the latest.
type Generation struct {
	ID             string             `json:"id"`
	Timestamp      time.Time          `json:"timestamp"`
	Suggestions    []types.Suggestion `json:"suggestions"`
	CodebaseInfo   *types.CodebaseInfo `json:"codebaseInfo,omitempty"`
	CommentRemoval *RemovalRecord     `json:"commentRemoval,omitempty"`
}

// RemovalRecord captures one comment-removal run.
type RemovalRecord struct {
	Timestamp       time.Time       `json:"timestamp"`
	FilesProcessed  []string        `json:"filesProcessed"`
	CommentsRemoved int             `json:"commentsRemoved"`
	Details         []RemovalDetail `json:"details"`
}

// RemovalDetail is the per-file slice of a removal run.
type RemovalDetail struct {
	File            string `json:"file"`
	CommentsRemoved int    `json:"commentsRemoved"`
}

// Load reads the history document. A missing file yields an empty document.
// A document that fails to parse or is not an array is treated as corrupt:
// Load returns an empty document and corrupt=true so the caller can warn;
// corruption is never fatal. A legacy flat suggestion array is upgraded in
// memory to a single generation with the "legacy" id.
func Load(path string) (doc []Generation, corrupt bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, true
	}
	if len(raw) == 0 {
		return nil, false
	}

	// Shape-sniff the first element once, at the boundary: an element
	// without a suggestions field means the whole array is a legacy flat
	// suggestion list.
	var probe struct {
		Suggestions *json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal(raw[0], &probe); err != nil {
		return nil, true
	}
	if probe.Suggestions == nil {
		var legacy []types.Suggestion
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, true
		}
		return []Generation{{
			ID:          LegacyID,
			Timestamp:   time.Now().UTC(),
			Suggestions: legacy,
		}}, false
	}

	var generations []Generation
	if err := json.Unmarshal(data, &generations); err != nil {
		return nil, true
	}
	return generations, false
}

// AppendGeneration appends a new generation holding the given suggestions
// and returns the extended document.
func AppendGeneration(doc []Generation, suggestions []types.Suggestion, info *types.CodebaseInfo) []Generation {
	if suggestions == nil {
		// Keep the field present on disk; a null here would be
		// indistinguishable from the legacy shape on the next load.
		suggestions = []types.Suggestion{}
	}
	return append(doc, Generation{
		ID:           newID(),
		Timestamp:    time.Now().UTC(),
		Suggestions:  suggestions,
		CodebaseInfo: info,
	})
}

// AppendRemoval records a removal run. When the document already holds
// generations the record is attached to the last one in place; an empty
// document gets a new generation holding only the removal record.
func AppendRemoval(doc []Generation, removal RemovalRecord) []Generation {
	if len(doc) > 0 {
		doc[len(doc)-1].CommentRemoval = &removal
		return doc
	}
	return []Generation{{
		ID:             newID(),
		Timestamp:      time.Now().UTC(),
		Suggestions:    []types.Suggestion{},
		CommentRemoval: &removal,
	}}
}

// Latest returns the most recent generation, or nil for an empty document.
func Latest(doc []Generation) *Generation {
	if len(doc) == 0 {
		return nil
	}
	return &doc[len(doc)-1]
}

// Save serializes the document as indented JSON and fully overwrites the
// file, creating the parent directory when needed.
func Save(path string, doc []Generation) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create history directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write history file: %w", err)
	}
	return nil
}

func newID() string {
	return fmt.Sprintf("gen-%d", time.Now().UnixMilli())
}
