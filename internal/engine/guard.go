package engine

import (
	"context"
	"time"
)

// Acquire returns the shared engine handle, initializing it on first use.
// It is safe to call from any number of goroutines: exactly one caller runs
// the loader; everyone else blocks on the lock until the winner publishes a
// terminal state. A Failed state is permanent until Reset.
func (e *Engine) Acquire(ctx context.Context) (*Handle, error) {
	// Fast path: terminal states need only a read lock.
	e.mu.RLock()
	switch e.state {
	case StateReady:
		h := e.handle
		e.mu.RUnlock()
		return h, nil
	case StateFailed:
		msg := e.errMsg
		e.mu.RUnlock()
		return nil, initializationError{cause: msg}
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	// Re-check: another caller may have finished while we waited for the lock.
	switch e.state {
	case StateReady:
		return e.handle, nil
	case StateFailed:
		return nil, initializationError{cause: e.errMsg}
	}

	e.state = StateLoading
	e.log.Info().Str("model", e.modelPath).Msg("loading speech engine (first use)")
	h, err := e.loader(ctx)
	if err != nil {
		e.state = StateFailed
		e.errMsg = err.Error()
		e.log.Error().Err(err).Msg("speech engine failed to load")
		return nil, initializationError{cause: e.errMsg}
	}
	// The handle is written before the state flag advances, so a reader that
	// observes Ready also observes the fully-initialized handle.
	e.handle = h
	e.state = StateReady
	e.errMsg = ""
	e.log.Info().Str("model", h.ModelPath).Msg("speech engine loaded")
	return h, nil
}

// Reset clears a Failed (or Ready) engine so the next Acquire reloads.
// Exposed as an administrative hook; nothing resets the state automatically.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateUnloaded
	e.handle = nil
	e.errMsg = ""
	e.log.Info().Msg("speech engine reset")
}

// loadHandle is the default loader: it verifies external binaries and the
// model file, then assembles the handle.
func (e *Engine) loadHandle(ctx context.Context) (*Handle, error) {
	ffmpeg, whisper, err := e.resolveBinaries()
	if err != nil {
		return nil, err
	}
	if err := e.checkModelFile(); err != nil {
		return nil, err
	}
	return &Handle{
		WhisperBin: whisper,
		ModelPath:  e.modelPath,
		FFmpegBin:  ffmpeg,
		LoadedAt:   time.Now(),
	}, nil
}
