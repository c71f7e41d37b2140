package audiototext

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"api-playground/internal/app/api/openai/whisper"
	"api-playground/internal/app/testutil"
)

func TestNewJob_Defaults(t *testing.T) {
	job := NewJob(testutil.NewMockTranscriber(t), Options{}, nil)
	assert.Equal(t, DefaultAudioPath, job.Options().AudioPath)
	assert.Equal(t, DefaultTranscriptPath, job.Options().TranscriptPath)
}

func TestJob_Run(t *testing.T) {
	audioPath := testutil.CreateTestAudioFile(t, "walkthrough.wav")
	audio, err := os.ReadFile(audioPath)
	require.NoError(t, err)

	tests := []struct {
		name           string
		transcript     string
		transcribeErr  error
		existing       string
		expectSuccess  bool
		expectedText   string
		expectedOnDisk string
	}{
		{
			name:           "success writes the transcript",
			transcript:     "hello from the walkthrough",
			expectSuccess:  true,
			expectedText:   "hello from the walkthrough",
			expectedOnDisk: "hello from the walkthrough",
		},
		{
			name:           "success overwrites an existing file",
			transcript:     "new text",
			existing:       "old text that is longer than the new one",
			expectSuccess:  true,
			expectedText:   "new text",
			expectedOnDisk: "new text",
		},
		{
			name:          "service error is captured",
			transcribeErr: errors.New("createTranscription failed: status code: 401"),
			expectedText:  "createTranscription failed: status code: 401",
		},
		{
			name:           "failure leaves existing file untouched",
			transcribeErr:  errors.New("connection refused"),
			existing:       "previous transcript",
			expectedText:   "connection refused",
			expectedOnDisk: "previous transcript",
		},
		{
			name:         "empty recognition is a failure",
			transcript:   "",
			expectedText: ErrNoSpeech.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "out.txt")
			if tt.existing != "" {
				require.NoError(t, os.WriteFile(outPath, []byte(tt.existing), 0644))
			}

			transcriber := testutil.NewMockTranscriber(t)
			transcriber.On("Transcript", mock.Anything, audio, "walkthrough.wav").
				Return(tt.transcript, tt.transcribeErr).Once()

			job := NewJob(transcriber, Options{AudioPath: audioPath, TranscriptPath: outPath}, nil)
			result := job.Run(context.Background())

			assert.Equal(t, tt.expectSuccess, result.Success)
			assert.Equal(t, tt.expectedText, result.Transcript)
			assert.Equal(t, outPath, result.TranscriptPath)

			data, err := os.ReadFile(outPath)
			if tt.expectedOnDisk == "" {
				assert.True(t, os.IsNotExist(err), "transcript file should not exist")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedOnDisk, string(data))
			}

			entries, err := os.ReadDir(filepath.Dir(outPath))
			require.NoError(t, err)
			for _, e := range entries {
				assert.NotContains(t, e.Name(), ".transcript-", "temp file left behind")
			}
		})
	}
}

func TestJob_Run_MissingAudio(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.txt")
	transcriber := testutil.NewMockTranscriber(t)

	job := NewJob(transcriber, Options{AudioPath: filepath.Join(t.TempDir(), "nope.wav"), TranscriptPath: outPath}, nil)
	result := job.Run(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Transcript, "failed to read audio")
	_, err := os.Stat(outPath)
	assert.True(t, os.IsNotExist(err))
	transcriber.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything, mock.Anything)
}

func TestJob_Run_UnwritableDestination(t *testing.T) {
	audioPath := testutil.CreateTestAudioFile(t, "a.wav")
	transcriber := testutil.NewMockTranscriber(t)
	transcriber.On("Transcript", mock.Anything, mock.Anything, "a.wav").Return("text", nil).Once()

	outPath := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	result := NewJob(transcriber, Options{AudioPath: audioPath, TranscriptPath: outPath}, nil).Run(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Transcript, "failed to create temp file")
}

// End to end over the OpenAI client against a local stand-in for the API.
func TestJob_Run_RemoteTranscriber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "clear speech"}`))
	}))
	defer server.Close()

	newTranscriber := func(url string) *whisper.RemoteTranscriber {
		cfg := openai.DefaultConfig("sk-test")
		cfg.BaseURL = url + "/v1"
		return whisper.NewRemoteTranscriber(openai.NewClientWithConfig(cfg), whisper.Options{})
	}

	audioPath := testutil.CreateTestAudioFile(t, "clip.wav")

	outPath := filepath.Join(t.TempDir(), "clip.txt")
	result := NewJob(newTranscriber(server.URL), Options{AudioPath: audioPath, TranscriptPath: outPath}, nil).
		Run(context.Background())
	require.True(t, result.Success, result.Transcript)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "clear speech", string(data))

	// unreachable endpoint
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	failPath := filepath.Join(t.TempDir(), "fail.txt")
	result = NewJob(newTranscriber(deadURL), Options{AudioPath: audioPath, TranscriptPath: failPath}, nil).
		Run(context.Background())
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Transcript)
	_, err = os.Stat(failPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSpinner_Disabled(t *testing.T) {
	stop := NewSpinner(ProgressConfig{Enabled: false}).Start("waiting")
	assert.NotPanics(t, stop)
	assert.False(t, IsTTY(nil))
	assert.False(t, ShouldShowProgress(true))
}

func TestJob_RunWithSpinner(t *testing.T) {
	audioPath := testutil.CreateTestAudioFile(t, "b.wav")
	transcriber := testutil.NewMockTranscriber(t)
	transcriber.On("Transcript", mock.Anything, mock.Anything, "b.wav").Return("spun", nil).Once()

	var sink discard
	spinner := NewSpinner(ProgressConfig{Enabled: true, Writer: &sink})
	outPath := filepath.Join(t.TempDir(), "b.txt")

	result := NewJob(transcriber, Options{AudioPath: audioPath, TranscriptPath: outPath}, nil).
		RunWithSpinner(context.Background(), spinner)
	assert.True(t, result.Success)
	assert.Equal(t, "spun", result.Transcript)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
