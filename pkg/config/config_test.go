package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeFromFileMissing(t *testing.T) {
	cfg := defaults()
	loaded, err := mergeFromFile(cfg, filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.False(t, loaded)
	require.Equal(t, DefaultProvider, cfg.Provider)
}

func TestMergeFromFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"provider":"openai","creativity":0.7}`), 0644))

	cfg := defaults()
	loaded, err := mergeFromFile(cfg, path)
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, "openai", cfg.Provider)
	require.Equal(t, 0.7, cfg.Creativity)
	// Untouched fields keep their defaults.
	require.Equal(t, DefaultModel, cfg.Model)
	require.Equal(t, DefaultMaxTokens, cfg.MaxOutputTokens)
}

func TestMergeFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	cfg := defaults()
	_, err := mergeFromFile(cfg, path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := defaults()
	cfg.Provider = "gemini"
	cfg.Model = "gemini-2.0-flash"
	require.NoError(t, save(cfg, path))

	reloaded := defaults()
	loaded, err := mergeFromFile(reloaded, path)
	require.NoError(t, err)
	require.True(t, loaded)
	require.Equal(t, "gemini", reloaded.Provider)
	require.Equal(t, "gemini-2.0-flash", reloaded.Model)
}
