package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"notegend/internal/app"
	"notegend/internal/config"
	"notegend/internal/engine"
	"notegend/internal/generate"
	"notegend/internal/httpapi"
	"notegend/pkg/types"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	addr        string
	logLevel    string
	corsOrigins string
	outputType  string
}

func buildRootCmd() *cobra.Command {
	fl := &flags{}

	root := &cobra.Command{
		Use:           "notegend",
		Short:         "Transcription and study-material generation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&fl.configPath, "config", "", "Path to config file (.yaml/.json/.toml)")
	root.PersistentFlags().StringVar(&fl.addr, "addr", "", "HTTP listen address, e.g. :8080 (defaults NOTEGEND_ADDR or :8080)")
	root.PersistentFlags().StringVar(&fl.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults NOTEGEND_LOG_LEVEL or info)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(fl)
		},
	}
	serveCmd.Flags().StringVar(&fl.corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins; empty disables CORS")
	root.AddCommand(serveCmd)

	generateCmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Generate study material from text on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(fl)
			if err != nil {
				return err
			}
			out, fellBack := a.Generate(cmd.Context(), strings.Join(args, " "), types.OutputKind(fl.outputType))
			if fellBack {
				fmt.Fprintln(os.Stderr, "(remote model unavailable, local fallback output)")
			}
			fmt.Println(out)
			return nil
		},
	}
	generateCmd.Flags().StringVar(&fl.outputType, "type", "notes", "Output kind: notes|quiz|flashcards|bullets")
	root.AddCommand(generateCmd)

	transcribeCmd := &cobra.Command{
		Use:   "transcribe <file>",
		Short: "Transcribe a media file on the command line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(fl)
			if err != nil {
				return err
			}
			text, err := a.Transcribe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
	root.AddCommand(transcribeCmd)

	return root
}

// loadConfig merges the optional config file with environment and flag
// overrides. Precedence: flags > environment > file > defaults.
func loadConfig(fl *flags) (config.Config, error) {
	var cfg config.Config
	if fl.configPath != "" {
		var err error
		cfg, err = config.Load(fl.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", fl.configPath, err)
		}
	}
	if v := os.Getenv("NOTEGEND_ADDR"); v != "" && cfg.Addr == "" {
		cfg.Addr = v
	}
	if fl.addr != "" {
		cfg.Addr = fl.addr
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

func newLogger(fl *flags) zerolog.Logger {
	lvlStr := fl.logLevel
	if lvlStr == "" {
		lvlStr = os.Getenv("NOTEGEND_LOG_LEVEL")
	}
	lvl, err := zerolog.ParseLevel(lvlStr)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).With().Timestamp().Logger()
}

func buildApp(fl *flags) (*app.App, error) {
	cfg, err := loadConfig(fl)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, newLogger(fl)), nil
}

func newApp(cfg config.Config, log zerolog.Logger) *app.App {
	eng := engine.New(engine.Config{
		WhisperBin:   cfg.WhisperBin,
		WhisperModel: cfg.WhisperModel,
		FFmpegBin:    cfg.FFmpegBin,
		Language:     cfg.Language,
		Logger:       log.With().Str("component", "engine").Logger(),
	})
	gen := generate.New(generate.Config{
		Remote: generate.RemoteConfig{
			BaseURL:     cfg.APIBaseURL,
			Model:       cfg.APIModel,
			APIKey:      os.Getenv("HF_API_KEY"),
			Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		},
		Options: generate.Options{
			QuizQuestions:    cfg.QuizQuestions,
			FlashcardCount:   cfg.FlashcardCount,
			BulletCount:      cfg.BulletCount,
			MinSentenceWords: cfg.MinSentenceWords,
		},
		Logger: log.With().Str("component", "generate").Logger(),
	})
	return app.New(eng, gen)
}

func runServe(fl *flags) error {
	cfg, err := loadConfig(fl)
	if err != nil {
		return err
	}
	log := newLogger(fl)
	httpapi.SetLogger(log.With().Str("component", "http").Logger())

	a := newApp(cfg, log)

	if origins := splitCSV(fl.corsOrigins); len(origins) > 0 {
		httpapi.SetCORSOptions(true, origins,
			[]string{"GET", "POST", "OPTIONS"},
			[]string{"Accept", "Content-Type", "X-Log-Level"})
	}

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(a)}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("notegend listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty items.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
