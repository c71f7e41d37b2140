package main

import (
	"fmt"
	"os"

	"api-playground/cmd/playground/cmd"
	"api-playground/internal/config"
)

func main() {
	// Missing keys only produce a warning; the transcription job reports the failure itself
	apiKeys, loaded, err := config.InitializeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Copy .env.example to .env and add OPENAI_API_KEY to enable transcription\n")
	}

	cmd.Execute(apiKeys, loaded)
}
