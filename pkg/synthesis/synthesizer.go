package synthesis

import (
	"context"
	"strings"

	"github.com/alantheprice/scribe/pkg/llm"
	"github.com/alantheprice/scribe/pkg/prompts"
	"github.com/alantheprice/scribe/pkg/snippets"
)

// Replies shorter than this are treated as unusable and replaced by the
// deterministic template.
const minUsableReply = 5

// defaultMaxTokens is the output-length ceiling used when the caller does
// not set one.
const defaultMaxTokens = 256

// Synthesize turns one code unit into a comment body. The backend is asked
// first; an empty or too-short reply falls back to a deterministic template
// built from the unit's first line. Only transport errors propagate; the
// calling loop catches them per unit and moves on, so one failed unit never
// aborts a batch.
func Synthesize(ctx context.Context, unit snippets.CodeUnit, language string, backend llm.TextGenerator, creativity float64, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	req := llm.Request{
		Prompt:     prompts.CommentRequest(language, unit.Text),
		Creativity: creativity,
		MaxTokens:  maxTokens,
	}

	reply, err := backend.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	reply = strings.TrimSpace(reply)
	if len(reply) < minUsableReply {
		return FallbackComment(unit), nil
	}
	return reply, nil
}
