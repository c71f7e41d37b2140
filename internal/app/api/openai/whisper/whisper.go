package whisper

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Options tunes the remote transcription request
type Options struct {
	Model    string
	Language string
	Prompt   string
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client  *openai.Client
	options Options
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, options Options) *RemoteTranscriber {
	if options.Model == "" {
		options.Model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, options: options}
}

// Transcript uploads the audio bytes and waits for the recognized text.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, audio []byte, filename string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.options.Model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
		Prompt:   rt.options.Prompt,
		Language: rt.options.Language,
		Format:   openai.AudioResponseFormatJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
