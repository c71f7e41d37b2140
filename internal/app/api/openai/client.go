package openai

import (
	"github.com/sashabaranov/go-openai"

	"api-playground/internal/config"
)

// NewClient builds an OpenAI client from the loaded keys.
// An empty key is allowed; the remote call then fails with 401.
func NewClient(keys *config.APIKeys) *openai.Client {
	var token, baseURL string
	if keys != nil {
		token = keys.OpenAI
		baseURL = keys.OpenAIBaseURL
	}

	clientConfig := openai.DefaultConfig(token)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}
