package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

type ollamaGenerator struct {
	client *ollama.Client
	model  string
}

// newOllamaGenerator connects to serverURL when set, otherwise to the
// host from OLLAMA_HOST or the local default.
func newOllamaGenerator(model, serverURL string) (*ollamaGenerator, error) {
	var client *ollama.Client
	if serverURL != "" {
		base, err := url.Parse(serverURL)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama server URL %q: %w", serverURL, err)
		}
		client = ollama.NewClient(base, http.DefaultClient)
	} else {
		var err error
		client, err = ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("could not create ollama client: %w", err)
		}
	}
	// The model name for ollama is without the "ollama:" prefix.
	return &ollamaGenerator{client: client, model: strings.TrimPrefix(model, "ollama:")}, nil
}

func (g *ollamaGenerator) Generate(ctx context.Context, req Request) (string, error) {
	stream := false
	chatReq := &ollama.ChatRequest{
		Model: g.model,
		Messages: []ollama.Message{
			{Role: "user", Content: req.Prompt},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": req.Creativity,
			"num_predict": req.MaxTokens,
		},
	}

	var out strings.Builder
	respFunc := func(res ollama.ChatResponse) error {
		out.WriteString(res.Message.Content)
		return nil
	}
	if err := g.client.Chat(ctx, chatReq, respFunc); err != nil {
		return "", fmt.Errorf("ollama chat failed: %w", err)
	}
	return out.String(), nil
}
