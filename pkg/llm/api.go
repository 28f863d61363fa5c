package llm

import (
	"context"
	"fmt"
)

// Request is one synthesis call to a text-generation backend. Creativity is
// the sampling temperature in [0,1]; MaxTokens is the output-length ceiling.
type Request struct {
	Prompt     string
	Creativity float64
	MaxTokens  int
}

// TextGenerator is the boundary to the external text-generation service.
// Implementations return the raw reply text; content quality is the
// caller's problem, only transport failures surface as errors.
type TextGenerator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Options carries everything a backend needs at construction time. The API
// key is resolved once by the caller and threaded in here; clients never
// read credentials from the environment on their own.
type Options struct {
	Provider  string
	Model     string
	APIKey    string
	ServerURL string
}

// NewGenerator builds the backend client for the configured provider.
func NewGenerator(ctx context.Context, opts Options) (TextGenerator, error) {
	switch opts.Provider {
	case "ollama":
		return newOllamaGenerator(opts.Model, opts.ServerURL)
	case "gemini":
		return newGeminiGenerator(ctx, opts.APIKey, opts.Model)
	case "openai":
		return newOpenAIGenerator(opts.APIKey, opts.Model, opts.ServerURL)
	default:
		return nil, fmt.Errorf("unknown provider %q (expected ollama, gemini, or openai)", opts.Provider)
	}
}
