package audiototext

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressConfig controls the waiting spinner
type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Spinner shows elapsed time while the recognition call is in flight
type Spinner struct {
	container *mpb.Progress
	enabled   bool
}

// NewSpinner creates a spinner; a disabled one does nothing
func NewSpinner(config ProgressConfig) *Spinner {
	if !config.Enabled {
		return &Spinner{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &Spinner{
		container: mpb.New(
			mpb.WithOutput(writer),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		enabled: true,
	}
}

// Start shows message and returns the function that stops the spinner
func (s *Spinner) Start(message string) (stop func()) {
	if !s.enabled || s.container == nil {
		return func() {}
	}

	bar := s.container.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(
			decor.Name(message+" ", decor.WC{C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
		),
		mpb.BarRemoveOnComplete(),
	)

	return func() {
		bar.SetTotal(-1, true)
		s.container.Wait()
	}
}

// IsTTY reports whether writer is a terminal
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress decides whether the spinner is shown on stderr
func ShouldShowProgress(disabled bool) bool {
	if disabled {
		return false
	}
	return IsTTY(os.Stderr)
}

// RunWithSpinner wraps Run with a spinner
func (j *Job) RunWithSpinner(ctx context.Context, spinner *Spinner) Result {
	stop := spinner.Start("Transcribing " + filepath.Base(j.options.AudioPath))
	defer stop()
	return j.Run(ctx)
}
