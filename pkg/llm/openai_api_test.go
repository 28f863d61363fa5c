package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, err := NewGenerator(context.Background(), Options{Provider: "mystery"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "mystery")
}

func TestOpenAIGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-model", body["model"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "a comment"}},
			},
		})
	}))
	defer server.Close()

	gen, err := newOpenAIGenerator("test-key", "test-model", server.URL)
	require.NoError(t, err)

	reply, err := gen.Generate(context.Background(), Request{Prompt: "hi", Creativity: 0.2, MaxTokens: 64})
	require.NoError(t, err)
	require.Equal(t, "a comment", reply)
}

func TestOpenAIGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gen, err := newOpenAIGenerator("test-key", "test-model", server.URL)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestOpenAIRequiresKey(t *testing.T) {
	_, err := newOpenAIGenerator("", "m", "")
	require.Error(t, err)
}
