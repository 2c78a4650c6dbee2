package generate

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"notegend/pkg/types"
)

// noInputMessage is the sentinel returned for empty/whitespace-only input.
const noInputMessage = "No input text provided."

// completer abstracts the hosted-model call so tests can inject doubles.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options tunes the cleaner and local fallback generators. Zero values
// select the historical defaults.
type Options struct {
	QuizQuestions    int
	FlashcardCount   int
	BulletCount      int
	MinSentenceWords int
	FillerWords      []string
}

func (o Options) withDefaults() Options {
	if o.QuizQuestions <= 0 {
		o.QuizQuestions = defaultQuizQuestions
	}
	if o.FlashcardCount <= 0 {
		o.FlashcardCount = defaultFlashcardCount
	}
	if o.BulletCount <= 0 {
		o.BulletCount = defaultBulletCount
	}
	if o.MinSentenceWords <= 0 {
		o.MinSentenceWords = defaultMinSentenceWords
	}
	if len(o.FillerWords) == 0 {
		o.FillerWords = defaultFillerWords
	}
	return o
}

// Config carries Generator construction parameters.
type Config struct {
	Remote  RemoteConfig
	Options Options
	Logger  zerolog.Logger

	// Completer overrides the remote client, mainly for tests.
	Completer completer
}

// Generator orchestrates prompt building, the hosted-model call, output
// cleaning, and local fallback. Safe for concurrent use; it holds no
// per-request state.
type Generator struct {
	remote      completer
	remoteModel string
	opts        Options
	log         zerolog.Logger
}

// New builds a Generator from cfg.
func New(cfg Config) *Generator {
	g := &Generator{
		remote: cfg.Completer,
		opts:   cfg.Options.withDefaults(),
		log:    cfg.Logger,
	}
	if g.remote == nil {
		rc := newRemoteClient(cfg.Remote)
		g.remote = rc
		g.remoteModel = rc.ModelName()
	}
	return g
}

// RemoteModel reports the configured hosted model identifier, if any.
func (g *Generator) RemoteModel() string { return g.remoteModel }

// Generate returns study material for text. It never returns an error and
// never returns an empty string for non-empty input: remote failures of any
// kind degrade to the deterministic local generators. The second return
// value reports whether the fallback path produced the output.
func (g *Generator) Generate(ctx context.Context, text string, kind types.OutputKind) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return noInputMessage, false
	}
	kind = kind.Normalize()

	prompt := promptFor(kind) + text
	out, err := g.remote.Complete(ctx, prompt)
	if err != nil {
		g.log.Warn().Err(err).Str("kind", string(kind)).Msg("remote generation failed, using local fallback")
		remoteFailuresTotal.Inc()
		generationsTotal.WithLabelValues(string(kind), "fallback").Inc()
		return g.fallback(text, kind), true
	}
	generationsTotal.WithLabelValues(string(kind), "remote").Inc()

	switch kind {
	case types.KindQuiz:
		return CleanQuiz(out), false
	case types.KindFlashcards:
		return cleanFlashcardsWith(out, g.opts.FillerWords), false
	default:
		return out, false
	}
}

// fallback routes to the deterministic generator for kind. Notes have no
// local generator; the input text itself is the last-resort output.
func (g *Generator) fallback(text string, kind types.OutputKind) string {
	switch kind {
	case types.KindQuiz:
		return fallbackQuiz(text, g.opts.QuizQuestions, g.opts.MinSentenceWords)
	case types.KindFlashcards:
		return fallbackFlashcards(text, g.opts.FlashcardCount, g.opts.MinSentenceWords, g.opts.FillerWords)
	case types.KindBullets:
		return fallbackBullets(text, g.opts.BulletCount)
	default:
		return text
	}
}
