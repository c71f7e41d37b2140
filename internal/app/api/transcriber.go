package api

import "context"

// Transcriber converts in-memory audio to text with a single blocking call.
// filename carries the original name so the service can infer the format.
type Transcriber interface {
	Transcript(ctx context.Context, audio []byte, filename string) (string, error)
}
