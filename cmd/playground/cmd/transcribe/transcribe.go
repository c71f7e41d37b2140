package transcribe

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"api-playground/internal/app"
	"api-playground/internal/app/api/openai/whisper"
	"api-playground/internal/app/audiototext"
	"api-playground/internal/config"
	"api-playground/internal/logging"
)

var (
	apiKeys        *config.APIKeys
	audioPath      string
	transcriptPath string
	language       string
	noProgress     bool
)

// SetAPIKeys hands over the keys loaded at startup
func SetAPIKeys(keys *config.APIKeys) {
	apiKeys = keys
}

func init() {
	Cmd.Flags().StringVarP(&audioPath, "audio", "a", audiototext.DefaultAudioPath, "audio file to transcribe")
	Cmd.Flags().StringVarP(&transcriptPath, "output", "o", audiototext.DefaultTranscriptPath, "where the transcript is written")
	Cmd.Flags().StringVarP(&language, "language", "l", "", "ISO-639-1 language hint, e.g. en")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the waiting spinner")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe one audio file to a text file",
	Long: `Transcribe one audio file to a text file

- The whole file is sent in a single request to the OpenAI speech API
- On success the text is written to the output file
- On failure the output file is not touched and the error is printed as the transcript`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		if err := config.RequireAPIKeys(apiKeys); err != nil {
			logger.Warn("continuing without credentials", zap.Error(err))
		}

		job := app.InitializeAudioToText(
			apiKeys,
			whisper.Options{Language: language},
			audiototext.Options{AudioPath: audioPath, TranscriptPath: transcriptPath},
			logger,
		)

		spinner := audiototext.NewSpinner(audiototext.ProgressConfig{
			Enabled: audiototext.ShouldShowProgress(noProgress),
		})
		result := job.RunWithSpinner(context.Background(), spinner)

		fmt.Fprintf(cmd.OutOrStdout(), "(%t, %q)\n", result.Success, result.TranscriptPath)
		if !result.Success {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Transcript)
		}
		return nil
	},
}
