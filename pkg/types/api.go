package types

// OutputKind selects the shape of generated study material.
type OutputKind string

const (
	KindNotes      OutputKind = "notes"
	KindQuiz       OutputKind = "quiz"
	KindFlashcards OutputKind = "flashcards"
	KindBullets    OutputKind = "bullets"
)

// Normalize maps an arbitrary string to a known kind. Unknown values fall
// back to notes, matching the generation pipeline's default template.
func (k OutputKind) Normalize() OutputKind {
	switch k {
	case KindNotes, KindQuiz, KindFlashcards, KindBullets:
		return k
	default:
		return KindNotes
	}
}

// GenerateRequest is the payload for POST /generate.
type GenerateRequest struct {
	// Required source text to turn into study material.
	// example: The mitochondria is the powerhouse of the cell.
	Text string `json:"text" example:"The mitochondria is the powerhouse of the cell."`
	// Output kind: notes, quiz, flashcards or bullets. Unknown values default to notes.
	// example: quiz
	OutputType string `json:"output_type,omitempty" example:"quiz"`
}

// GenerateResponse is returned by POST /generate.
type GenerateResponse struct {
	// Generated study material. Never empty for non-empty input.
	Output string `json:"output"`
	// Effective output kind after normalization.
	// example: quiz
	OutputType string `json:"output_type" example:"quiz"`
	// True when the remote model was unavailable and the deterministic
	// local generator produced the output instead.
	// example: false
	Fallback bool `json:"fallback" example:"false"`
}

// TranscribeRequest is the payload for POST /transcribe.
type TranscribeRequest struct {
	// Path to a media file readable by the server.
	// example: /var/lib/notegend/uploads/lecture01.mp3
	Path string `json:"path" example:"/var/lib/notegend/uploads/lecture01.mp3"`
}

// TranscribeResponse is returned by POST /transcribe.
type TranscribeResponse struct {
	// Trimmed transcript text.
	Text string `json:"text"`
}

// ProcessRequest is the payload for POST /process: transcribe a media file
// and run the transcript through the generation pipeline in one call.
type ProcessRequest struct {
	// Path to a media file readable by the server.
	Path string `json:"path"`
	// Output kind, same semantics as GenerateRequest.OutputType.
	OutputType string `json:"output_type,omitempty"`
}

// ProcessResponse is returned by POST /process.
type ProcessResponse struct {
	// Transcript extracted from the media file.
	Text string `json:"text"`
	// Generated study material.
	Output string `json:"output"`
	// Effective output kind after normalization.
	OutputType string `json:"output_type"`
	// True when output came from the local fallback generator.
	Fallback bool `json:"fallback"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// EngineStatus summarizes the transcription engine for GET /status.
type EngineStatus struct {
	// Lifecycle state: unloaded, loading, ready or failed.
	// example: ready
	State string `json:"state" example:"ready"`
	// Cause of a permanent initialization failure, if any.
	Error string `json:"error,omitempty"`
	// Configured speech model name.
	// example: ggml-tiny.bin
	Model string `json:"model,omitempty" example:"ggml-tiny.bin"`
	// When the engine handle was initialized (unix seconds); 0 if not loaded.
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix,omitempty" example:"1700000000"`
	// Current transcription queue length.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Number of transcriptions currently being processed.
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// Maximum queued transcriptions before backpressure triggers.
	// example: 16
	MaxQueueDepth int `json:"max_queue_depth" example:"16"`
}

// SanityReport describes runtime checks for external binaries.
type SanityReport struct {
	FFmpegFound  bool   `json:"ffmpeg_found"`
	FFmpegPath   string `json:"ffmpeg_path,omitempty"`
	WhisperFound bool   `json:"whisper_found"`
	WhisperPath  string `json:"whisper_path,omitempty"`
	Error        string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Transcription engine state.
	Engine EngineStatus `json:"engine"`
	// External binary availability.
	Sanity SanityReport `json:"sanity"`
	// Remote model identifier used by the generation pipeline.
	// example: meta-llama/Meta-Llama-3-8B-Instruct
	RemoteModel string `json:"remote_model,omitempty" example:"meta-llama/Meta-Llama-3-8B-Instruct"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
