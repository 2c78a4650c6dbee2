package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"notegend/internal/engine"
	"notegend/pkg/types"
)

// Service is the interface the HTTP layer needs from the application core.
type Service interface {
	Generate(ctx context.Context, text string, kind types.OutputKind) (string, bool)
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Process(ctx context.Context, audioPath string, kind types.OutputKind) (types.ProcessResponse, error)
	Status() types.StatusResponse
	Ready() bool
	ResetEngine()
}

// NewMux builds the HTTP mux for the notegend API.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(securityHeaders)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	r.Use(MetricsMiddleware)

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) { handleReadyz(w, req, svc) })
	r.Get("/status", func(w http.ResponseWriter, req *http.Request) { handleStatus(w, req, svc) })
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/generate", func(w http.ResponseWriter, req *http.Request) { handleGenerate(w, req, svc) })
	r.Post("/transcribe", func(w http.ResponseWriter, req *http.Request) { handleTranscribe(w, req, svc) })
	r.Post("/process", func(w http.ResponseWriter, req *http.Request) { handleProcess(w, req, svc) })
	r.Post("/admin/reset", func(w http.ResponseWriter, req *http.Request) { handleReset(w, req, svc) })

	MountSwagger(r)
	return r
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

// decodeJSONBody enforces the JSON content type and body size limit shared by
// all POST endpoints. A wrong Content-Type gets 415, oversized or malformed
// bodies get 400.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, http.StatusBadRequest, "request body too large")
			return false
		}
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// handleGenerate godoc
// @Summary Generate study material from text
// @Accept json
// @Produce json
// @Param request body types.GenerateRequest true "Input text and output type"
// @Success 200 {object} types.GenerateResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /generate [post]
func handleGenerate(w http.ResponseWriter, r *http.Request, svc Service) {
	lvl := requestLogLevel(r)
	var req types.GenerateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	kind := types.OutputKind(req.OutputType).Normalize()
	out, fellBack := svc.Generate(ctx, req.Text, kind)
	if lvl >= LevelDebug && zlog != nil {
		zlog.Debug().Str("kind", string(kind)).Bool("fallback", fellBack).Int("output_len", len(out)).Msg("generate complete")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.GenerateResponse{
		Output:     out,
		OutputType: string(kind),
		Fallback:   fellBack,
	})
}

// handleTranscribe godoc
// @Summary Transcribe an audio file on the server filesystem
// @Accept json
// @Produce json
// @Param request body types.TranscribeRequest true "Audio file path"
// @Success 200 {object} types.TranscribeResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 429 {object} types.ErrorResponse
// @Failure 503 {object} types.ErrorResponse
// @Router /transcribe [post]
func handleTranscribe(w http.ResponseWriter, r *http.Request, svc Service) {
	lvl := requestLogLevel(r)
	var req types.TranscribeRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeJSONError(w, http.StatusBadRequest, "path is required")
		return
	}

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	start := time.Now()
	text, err := svc.Transcribe(ctx, req.Path)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if lvl >= LevelInfo && zlog != nil {
		zlog.Info().Str("path", req.Path).Dur("took", time.Since(start)).Msg("transcription complete")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(types.TranscribeResponse{Text: text})
}

// handleProcess godoc
// @Summary Transcribe audio then generate study material from the transcript
// @Accept json
// @Produce json
// @Param request body types.ProcessRequest true "Audio file path and output type"
// @Success 200 {object} types.ProcessResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 429 {object} types.ErrorResponse
// @Failure 503 {object} types.ErrorResponse
// @Router /process [post]
func handleProcess(w http.ResponseWriter, r *http.Request, svc Service) {
	var req types.ProcessRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeJSONError(w, http.StatusBadRequest, "path is required")
		return
	}

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()

	resp, err := svc.Process(ctx, req.Path, types.OutputKind(req.OutputType).Normalize())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleReset godoc
// @Summary Clear a failed engine so the next request retries initialization
// @Produce json
// @Success 204
// @Router /admin/reset [post]
func handleReset(w http.ResponseWriter, r *http.Request, svc Service) {
	// Drain so keep-alive connections can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxBodyBytes))
	svc.ResetEngine()
	if zlog != nil {
		zlog.Info().Msg("engine reset")
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHealthz godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleReadyz godoc
// @Summary Readiness probe; 503 until the transcription engine has loaded
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} types.ErrorResponse
// @Router /readyz [get]
func handleReadyz(w http.ResponseWriter, _ *http.Request, svc Service) {
	if !svc.Ready() {
		writeJSONError(w, http.StatusServiceUnavailable, "engine not ready")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}

// handleStatus godoc
// @Summary Engine, sanity and uptime report
// @Produce json
// @Success 200 {object} types.StatusResponse
// @Router /status [get]
func handleStatus(w http.ResponseWriter, _ *http.Request, svc Service) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(svc.Status())
}

// writeServiceError maps application errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil {
		// Client went away; nothing useful to write.
		return
	}
	switch {
	case engine.IsNotFound(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case engine.IsInitialization(err):
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
	case engine.IsTooBusy(err):
		IncrementBackpressure("transcribe_queue")
		writeJSONError(w, http.StatusTooManyRequests, err.Error())
	default:
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			writeJSONError(w, httpErr.StatusCode(), err.Error())
			return
		}
		if zlog != nil {
			zlog.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
