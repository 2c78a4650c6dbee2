// Package app wires the transcription engine and the generation pipeline
// into the single service consumed by the HTTP layer and the CLI.
package app

import (
	"context"
	"time"

	"notegend/internal/engine"
	"notegend/internal/generate"
	"notegend/pkg/types"
)

// App composes the engine and generator behind one service surface.
type App struct {
	engine  *engine.Engine
	gen     *generate.Generator
	started time.Time
}

// New builds an App around an engine and a generator.
func New(e *engine.Engine, g *generate.Generator) *App {
	return &App{engine: e, gen: g, started: time.Now()}
}

// Generate produces study material for text. Never fails; the bool reports
// whether the local fallback produced the output.
func (a *App) Generate(ctx context.Context, text string, kind types.OutputKind) (string, bool) {
	return a.gen.Generate(ctx, text, kind)
}

// Transcribe converts a media file into plain text.
func (a *App) Transcribe(ctx context.Context, path string) (string, error) {
	return a.engine.Transcribe(ctx, path)
}

// Process transcribes a media file and feeds the transcript through the
// generation pipeline in one call.
func (a *App) Process(ctx context.Context, path string, kind types.OutputKind) (types.ProcessResponse, error) {
	text, err := a.engine.Transcribe(ctx, path)
	if err != nil {
		return types.ProcessResponse{}, err
	}
	out, fallback := a.gen.Generate(ctx, text, kind)
	return types.ProcessResponse{
		Text:       text,
		Output:     out,
		OutputType: string(kind.Normalize()),
		Fallback:   fallback,
	}, nil
}

// Status builds the response for GET /status.
func (a *App) Status() types.StatusResponse {
	return types.StatusResponse{
		Engine:         a.engine.Status(),
		Sanity:         a.engine.SanityCheck(),
		RemoteModel:    a.gen.RemoteModel(),
		UptimeSeconds:  int64(time.Since(a.started).Seconds()),
		ServerTimeUnix: time.Now().Unix(),
	}
}

// Ready reports whether the transcription engine handle is loaded. The
// generation pipeline has no readiness notion: it degrades instead.
func (a *App) Ready() bool { return a.engine.Ready() }

// ResetEngine clears a failed engine so the next request reloads it.
func (a *App) ResetEngine() { a.engine.Reset() }
