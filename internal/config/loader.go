package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`

	// Transcription engine.
	WhisperBin   string `json:"whisper_bin" yaml:"whisper_bin" toml:"whisper_bin"`
	WhisperModel string `json:"whisper_model" yaml:"whisper_model" toml:"whisper_model"`
	FFmpegBin    string `json:"ffmpeg_bin" yaml:"ffmpeg_bin" toml:"ffmpeg_bin"`
	Language     string `json:"language" yaml:"language" toml:"language"`

	// Remote generation endpoint.
	APIBaseURL     string  `json:"api_base_url" yaml:"api_base_url" toml:"api_base_url"`
	APIModel       string  `json:"api_model" yaml:"api_model" toml:"api_model"`
	TimeoutSeconds int     `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
	Temperature    float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
	MaxTokens      int     `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`

	// Local fallback tuning. The thresholds are empirical; they stay
	// configurable so deployments can reproduce historical output exactly.
	QuizQuestions    int `json:"quiz_questions" yaml:"quiz_questions" toml:"quiz_questions"`
	FlashcardCount   int `json:"flashcard_count" yaml:"flashcard_count" toml:"flashcard_count"`
	BulletCount      int `json:"bullet_count" yaml:"bullet_count" toml:"bullet_count"`
	MinSentenceWords int `json:"min_sentence_words" yaml:"min_sentence_words" toml:"min_sentence_words"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
