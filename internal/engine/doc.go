// Package engine owns the speech-to-text engine shared by all requests.
// It is structured into small files by concern:
//
//   - engine.go: core Engine type, Config, constructor, status reporting.
//   - types.go: lifecycle states and the loaded Handle.
//   - errors.go: error types and helpers (IsNotFound, IsInitialization, IsTooBusy).
//   - guard.go: lazy, once-per-process initialization and the admin reset hook.
//   - admission.go: FIFO queueing with a single in-flight transcription.
//   - transcribe.go: Transcribe entry point invoking the whisper CLI.
//   - sanity.go: external binary checks (ffmpeg, whisper).
//
// The engine handle is initialized at most once per process. A failed
// initialization is permanent: every later call fails with the same cause
// until Reset is invoked or the process restarts.
package engine
