package engine

import (
	"context"
	"fmt"
	"strings"

	"notegend/internal/common/fsutil"
)

// Transcribe converts a media file into plain text. One attempt per call;
// retry policy belongs to the caller. The path is validated before any
// guard interaction so a missing file never triggers engine loading.
func (e *Engine) Transcribe(ctx context.Context, path string) (string, error) {
	if !fsutil.PathExists(path) {
		return "", notFoundError{path: path}
	}

	release, err := e.beginTranscription(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	h, err := e.Acquire(ctx)
	if err != nil {
		return "", err
	}

	e.log.Info().Str("path", path).Msg("transcribing")
	transcriptionsTotal.WithLabelValues("started").Inc()

	// Half-precision acceleration off and quiet output keep runs
	// deterministic across hosts.
	args := []string{
		"-m", h.ModelPath,
		"-f", path,
		"-l", e.language,
		"-nt",      // no timestamps
		"-np",      // no progress prints
		"--no-gpu", // full-precision CPU decode
	}
	out, err := e.runner.Run(ctx, h.WhisperBin, args...)
	if err != nil {
		transcriptionsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("transcribe %s: %w", path, err)
	}
	transcriptionsTotal.WithLabelValues("ok").Inc()
	return strings.TrimSpace(out), nil
}
