package engine

import (
	"fmt"
	"os/exec"

	"notegend/internal/common/fsutil"
	"notegend/pkg/types"
)

// resolveBinaries locates ffmpeg and the whisper CLI on PATH. A missing
// ffmpeg is a fatal initialization error, not a silent no-op.
func (e *Engine) resolveBinaries() (ffmpeg, whisper string, err error) {
	ffmpeg, err = exec.LookPath(e.ffmpegBin)
	if err != nil {
		return "", "", fmt.Errorf("ffmpeg is not installed or not found in PATH; install it and restart the server")
	}
	whisper, err = exec.LookPath(e.whisperBin)
	if err != nil {
		return "", "", fmt.Errorf("whisper binary %q not found in PATH", e.whisperBin)
	}
	return ffmpeg, whisper, nil
}

func (e *Engine) checkModelFile() error {
	if e.modelPath == "" {
		return fmt.Errorf("no speech model configured")
	}
	if !fsutil.PathExists(e.modelPath) {
		return fmt.Errorf("speech model not found: %s", e.modelPath)
	}
	return nil
}

// SanityCheck validates that required external binaries are available.
// It does not mutate state and is safe to call at any time.
func (e *Engine) SanityCheck() types.SanityReport {
	var r types.SanityReport
	if p, err := exec.LookPath(e.ffmpegBin); err == nil {
		r.FFmpegFound = true
		r.FFmpegPath = p
	}
	if p, err := exec.LookPath(e.whisperBin); err == nil {
		r.WhisperFound = true
		r.WhisperPath = p
	}
	if !r.FFmpegFound {
		r.Error = "ffmpeg not found"
	} else if !r.WhisperFound {
		r.Error = "whisper binary not found"
	}
	return r
}
