package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alantheprice/scribe/pkg/ui"
)

const (
	configDir      = ".scribe"
	configFileName = "config.json"

	DefaultProvider   = "ollama"
	DefaultModel      = "qwen2.5-coder:3b"
	DefaultCreativity = 0.2
	DefaultMaxTokens  = 256
)

// Config holds the persisted settings plus the per-invocation flags
// that never get written to disk.
type Config struct {
	Provider        string   `json:"provider"`
	Model           string   `json:"model"`
	Creativity      float64  `json:"creativity"`
	MaxOutputTokens int      `json:"max_output_tokens"`
	OllamaServerURL string   `json:"ollama_server_url,omitempty"`
	ExcludeDirs     []string `json:"exclude_dirs,omitempty"`

	SkipPrompt bool `json:"-"`
	DryRun     bool `json:"-"`
}

func defaults() *Config {
	return &Config{
		Provider:        DefaultProvider,
		Model:           DefaultModel,
		Creativity:      DefaultCreativity,
		MaxOutputTokens: DefaultMaxTokens,
	}
}

// LoadOrInit loads configuration, creating it on first run. A project
// config at .scribe/config.json overrides the home config field by
// field. Environment variables from a local .env file are loaded first
// so API keys placed there are visible to the rest of the run.
func LoadOrInit(skipPrompt bool) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	homePath, err := homeConfigPath()
	if err != nil {
		return nil, err
	}
	homeLoaded, err := mergeFromFile(cfg, homePath)
	if err != nil {
		return nil, err
	}
	if !homeLoaded {
		if !skipPrompt {
			initInteractive(cfg)
		}
		if err := save(cfg, homePath); err != nil {
			return nil, err
		}
	}

	if _, err := mergeFromFile(cfg, filepath.Join(configDir, configFileName)); err != nil {
		return nil, err
	}

	cfg.SkipPrompt = skipPrompt
	return cfg, nil
}

func homeConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir, configFileName), nil
}

// mergeFromFile overlays settings from path onto cfg. A missing file is
// not an error; it reports whether the file existed.
func mergeFromFile(cfg *Config, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("could not read config %s: %w", path, err)
	}
	var overlay Config
	if err := json.Unmarshal(data, &overlay); err != nil {
		return false, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if overlay.Provider != "" {
		cfg.Provider = overlay.Provider
	}
	if overlay.Model != "" {
		cfg.Model = overlay.Model
	}
	if overlay.Creativity > 0 {
		cfg.Creativity = overlay.Creativity
	}
	if overlay.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = overlay.MaxOutputTokens
	}
	if overlay.OllamaServerURL != "" {
		cfg.OllamaServerURL = overlay.OllamaServerURL
	}
	if len(overlay.ExcludeDirs) > 0 {
		cfg.ExcludeDirs = overlay.ExcludeDirs
	}
	return true, nil
}

func save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write config %s: %w", path, err)
	}
	return nil
}

func initInteractive(cfg *Config) {
	if !ui.IsInteractive() {
		return
	}
	fmt.Println("First run: setting up scribe configuration.")
	provider := ui.ReadLine(fmt.Sprintf("LLM provider (ollama/openai/gemini) [%s]: ", cfg.Provider))
	if provider != "" {
		cfg.Provider = strings.ToLower(provider)
	}
	model := ui.ReadLine(fmt.Sprintf("Model [%s]: ", cfg.Model))
	if model != "" {
		cfg.Model = model
	}
}
