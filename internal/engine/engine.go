package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"notegend/internal/common/execx"
	"notegend/internal/common/fsutil"
	"notegend/pkg/types"
)

const (
	defaultWhisperBin    = "whisper-cli"
	defaultFFmpegBin     = "ffmpeg"
	defaultLanguage      = "en"
	defaultMaxQueueDepth = 16
	defaultMaxWait       = 30 * time.Second
)

// Config carries engine construction parameters. Zero values select
// package defaults.
type Config struct {
	WhisperBin   string
	WhisperModel string
	FFmpegBin    string
	Language     string

	MaxQueueDepth int
	MaxWait       time.Duration

	// Runner executes external commands; defaults to os/exec.
	Runner execx.Runner
	// Loader overrides the handle initialization, mainly for tests.
	Loader func(ctx context.Context) (*Handle, error)

	Logger zerolog.Logger
}

// Engine is the process-wide transcription engine. The only shared mutable
// state is the lazily-initialized handle, guarded by mu.
type Engine struct {
	mu     sync.RWMutex
	state  State
	handle *Handle
	errMsg string

	whisperBin string
	modelPath  string
	ffmpegBin  string
	language   string

	runner execx.Runner
	loader func(ctx context.Context) (*Handle, error)
	log    zerolog.Logger

	genCh   chan struct{} // size 1: single in-flight transcription
	queueCh chan struct{} // buffered: queue slots
	maxWait time.Duration
}

// New builds an Engine from cfg, applying package defaults for unset fields.
func New(cfg Config) *Engine {
	if cfg.WhisperBin == "" {
		cfg.WhisperBin = defaultWhisperBin
	}
	if cfg.FFmpegBin == "" {
		cfg.FFmpegBin = defaultFFmpegBin
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.MaxQueueDepth <= 0 {
		cfg.MaxQueueDepth = defaultMaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = defaultMaxWait
	}
	if cfg.Runner == nil {
		cfg.Runner = execx.NewRunner()
	}
	modelPath := cfg.WhisperModel
	if p, err := fsutil.ExpandHome(modelPath); err == nil {
		modelPath = p
	}
	e := &Engine{
		state:      StateUnloaded,
		whisperBin: cfg.WhisperBin,
		modelPath:  modelPath,
		ffmpegBin:  cfg.FFmpegBin,
		language:   cfg.Language,
		runner:     cfg.Runner,
		loader:     cfg.Loader,
		log:        cfg.Logger,
		genCh:      make(chan struct{}, 1),
		queueCh:    make(chan struct{}, cfg.MaxQueueDepth),
		maxWait:    cfg.MaxWait,
	}
	if e.loader == nil {
		e.loader = e.loadHandle
	}
	return e
}

// Ready reports whether the engine handle is initialized.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state == StateReady
}

// Snapshot returns a read-only view of the engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{State: e.state, Err: e.errMsg, Handle: e.handle}
}

// Status builds the engine section of GET /status.
func (e *Engine) Status() types.EngineStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	st := types.EngineStatus{
		State:         string(e.state),
		Error:         e.errMsg,
		Model:         e.modelPath,
		QueueLen:      len(e.queueCh),
		Inflight:      len(e.genCh),
		MaxQueueDepth: cap(e.queueCh),
	}
	if e.handle != nil {
		st.LoadedAtUnix = e.handle.LoadedAt.Unix()
	}
	return st
}
