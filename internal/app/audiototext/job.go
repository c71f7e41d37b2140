package audiototext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"api-playground/internal/app/api"
)

// Default file locations
const (
	DefaultAudioPath      = "fHb_WalkThrough_audio.wav"
	DefaultTranscriptPath = "./fHb_WalkThrough_text.txt"
)

// ErrNoSpeech is returned when the recognizer produced no text
var ErrNoSpeech = errors.New("recognizer could not understand the audio")

// Options locates the input and output files
type Options struct {
	AudioPath      string
	TranscriptPath string
}

// Result is the outcome of a run. On failure Transcript holds the error text.
type Result struct {
	Success        bool   `json:"success"`
	Transcript     string `json:"transcript"`
	TranscriptPath string `json:"transcript_path"`
}

// Job transcribes one audio file into one text file
type Job struct {
	transcriber api.Transcriber
	options     Options
	logger      *zap.Logger
}

// NewJob creates a job, filling in the default paths
func NewJob(transcriber api.Transcriber, options Options, logger *zap.Logger) *Job {
	if options.AudioPath == "" {
		options.AudioPath = DefaultAudioPath
	}
	if options.TranscriptPath == "" {
		options.TranscriptPath = DefaultTranscriptPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Job{transcriber: transcriber, options: options, logger: logger}
}

// Options returns the effective file locations
func (j *Job) Options() Options {
	return j.options
}

// Run reads the whole audio file, makes a single recognition call and writes
// the transcript. Every error is captured in the Result; none is retried and
// the destination is left untouched on failure.
func (j *Job) Run(ctx context.Context) Result {
	result := Result{TranscriptPath: j.options.TranscriptPath}

	transcript, err := j.transcribe(ctx)
	if err == nil {
		err = writeAtomic(j.options.TranscriptPath, []byte(transcript))
	}
	if err != nil {
		j.logger.Warn("transcription failed",
			zap.String("audio", j.options.AudioPath),
			zap.Error(err),
		)
		result.Transcript = err.Error()
		return result
	}

	j.logger.Info("transcript written",
		zap.String("audio", j.options.AudioPath),
		zap.String("transcript", j.options.TranscriptPath),
		zap.Int("chars", len(transcript)),
	)
	result.Success = true
	result.Transcript = transcript
	return result
}

func (j *Job) transcribe(ctx context.Context) (string, error) {
	audio, err := os.ReadFile(j.options.AudioPath)
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}

	j.logger.Debug("submitting audio",
		zap.String("audio", j.options.AudioPath),
		zap.Int("bytes", len(audio)),
	)

	transcript, err := j.transcriber.Transcript(ctx, audio, filepath.Base(j.options.AudioPath))
	if err != nil {
		return "", err
	}
	if transcript == "" {
		return "", ErrNoSpeech
	}
	return transcript, nil
}

// writeAtomic replaces path with data via a temp file in the same directory
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".transcript-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}
