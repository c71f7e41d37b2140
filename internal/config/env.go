package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envPaths is the search list for .env files, first match wins
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// APIKeys holds the credentials and endpoint of the remote speech recognizer
type APIKeys struct {
	OpenAI        string
	OpenAIBaseURL string
}

// LoadEnv loads environment variables from the first .env file found.
// Returns the path that was loaded, or "" when none exists (variables may be set system-wide).
func LoadEnv() (string, error) {
	return loadEnvFrom(envPaths)
}

func loadEnvFrom(paths []string) (string, error) {
	for _, envPath := range paths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// GetAPIKeys retrieves and validates API keys from environment variables
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI:        strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// RequireAPIKeys fails when the transcription key is missing
func RequireAPIKeys(apiKeys *APIKeys) error {
	if apiKeys == nil || apiKeys.OpenAI == "" {
		return fmt.Errorf("transcription requires OPENAI_API_KEY - set it in the environment or a .env file")
	}
	return nil
}

// InitializeConfig loads environment and validates configuration.
// This is the main entry point for configuration loading.
func InitializeConfig() (*APIKeys, string, error) {
	loaded, err := LoadEnv()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, loaded, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, loaded, nil
}
