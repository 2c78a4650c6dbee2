package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"notegend/internal/app"
	"notegend/internal/engine"
	"notegend/internal/generate"
	"notegend/internal/httpapi"
)

// fakeRunner stands in for the whisper CLI. An optional delay simulates a
// long transcription so backpressure can be exercised.
type fakeRunner struct {
	output string
	delay  time.Duration
}

func (f *fakeRunner) Run(ctx context.Context, _ string, _ ...string) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.output, nil
}

// failingCompleter forces every request down the local fallback path.
type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, string) (string, error) {
	return "", io.ErrUnexpectedEOF
}

func testLoader(ctx context.Context) (*engine.Handle, error) {
	return &engine.Handle{WhisperBin: "whisper-cli", ModelPath: "ggml-tiny.bin", LoadedAt: time.Now()}, nil
}

// newServer spins up the full HTTP stack around a real engine and generator,
// with the whisper CLI and the hosted model replaced by test doubles.
func newServer(t *testing.T, engCfg engine.Config) (*httptest.Server, *app.App) {
	t.Helper()
	if engCfg.Loader == nil {
		engCfg.Loader = testLoader
	}
	if engCfg.Runner == nil {
		engCfg.Runner = &fakeRunner{output: "hello from the lecture\n"}
	}
	engCfg.Logger = zerolog.Nop()
	eng := engine.New(engCfg)
	gen := generate.New(generate.Config{Completer: failingCompleter{}, Logger: zerolog.Nop()})
	a := app.New(eng, gen)
	srv := httptest.NewServer(httpapi.NewMux(a))
	t.Cleanup(srv.Close)
	return srv, a
}

// tempAudioFile creates a file that passes the existence check.
func tempAudioFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lecture.mp3")
	if err := os.WriteFile(p, []byte("not really audio"), 0o644); err != nil {
		t.Fatalf("write temp audio: %v", err)
	}
	return p
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, []byte) {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}
