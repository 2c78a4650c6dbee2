package engine

import "time"

// State represents the lifecycle state of the shared engine handle.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateFailed   State = "failed"
)

// Handle is the fully-initialized transcription resource shared across
// requests. Callers must never observe a partially-written Handle; the
// guard only publishes it after all fields are set.
type Handle struct {
	WhisperBin string
	ModelPath  string
	FFmpegBin  string
	LoadedAt   time.Time
}

// Snapshot is a read-only projection of the engine state.
type Snapshot struct {
	State  State
	Err    string
	Handle *Handle
}
