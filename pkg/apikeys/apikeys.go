package apikeys

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const apiKeysFile = ".scribe/api_keys.json"

var (
	apiKeys     map[string]string
	apiKeysOnce sync.Once
	apiKeysMu   sync.Mutex
)

// GetAPIKey resolves the API key for a provider: in-memory cache first,
// then the key file under the home directory, then the
// <PROVIDER>_API_KEY environment variable, and finally an interactive
// prompt when enabled. A key found in the environment or entered by the
// user is persisted for next time. Providers that need no key (ollama)
// should not call this.
func GetAPIKey(provider string, interactive bool) (string, error) {
	apiKeysOnce.Do(func() {
		apiKeys = make(map[string]string)
		if loaded, err := loadAPIKeys(); err == nil {
			apiKeysMu.Lock()
			for k, v := range loaded {
				apiKeys[k] = v
			}
			apiKeysMu.Unlock()
		}
	})

	apiKeysMu.Lock()
	key, ok := apiKeys[provider]
	apiKeysMu.Unlock()
	if ok && key != "" {
		return key, nil
	}

	envVar := strings.ToUpper(provider) + "_API_KEY"
	if key = os.Getenv(envVar); key != "" {
		remember(provider, key)
		return key, nil
	}

	if interactive {
		if key = promptForAPIKey(provider); key != "" {
			remember(provider, key)
			return key, nil
		}
	}

	return "", fmt.Errorf("API key for %s not found (set %s or run interactively)", provider, envVar)
}

func remember(provider, key string) {
	apiKeysMu.Lock()
	apiKeys[provider] = key
	snapshot := make(map[string]string, len(apiKeys))
	for k, v := range apiKeys {
		snapshot[k] = v
	}
	apiKeysMu.Unlock()
	_ = saveAPIKeys(snapshot)
}

func loadAPIKeys() (map[string]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}
	data, err := os.ReadFile(filepath.Join(homeDir, apiKeysFile))
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("could not read API keys file: %w", err)
	}
	var keys map[string]string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("could not unmarshal API keys: %w", err)
	}
	return keys, nil
}

func saveAPIKeys(keys map[string]string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("could not get user home directory: %w", err)
	}
	dirPath := filepath.Join(homeDir, ".scribe")
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("could not create .scribe directory: %w", err)
	}
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal API keys: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirPath, "api_keys.json"), data, 0600); err != nil {
		return fmt.Errorf("could not write API keys file: %w", err)
	}
	return nil
}

func promptForAPIKey(provider string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Enter your %s API key (or set %s_API_KEY): ", provider, strings.ToUpper(provider))
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
