package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://router.huggingface.co"
	defaultModelName   = "meta-llama/Meta-Llama-3-8B-Instruct"
	defaultHTTPTimeout = 60 * time.Second
	defaultTemperature = 0.4
)

// RemoteConfig carries parameters for the hosted chat-completions endpoint.
// Zero values select package defaults.
type RemoteConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatCompletionResponse struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []chatCompletionChoice `json:"choices"`
}

type chatCompletionErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// remoteClient posts prompts to a chat-completions endpoint. Every failure
// mode surfaces as a remoteError so the pipeline can fall back locally.
type remoteClient struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	apiKey      string
	temperature float64
	maxTokens   int
}

func newRemoteClient(cfg RemoteConfig) *remoteClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModelName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultHTTPTimeout
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	return &remoteClient{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Complete sends prompt and returns the first completion's trimmed content.
func (c *remoteClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "Assistant"},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", remoteError{msg: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", remoteError{msg: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", remoteError{msg: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", remoteError{msg: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(respBody))
		var apiErr chatCompletionErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && strings.TrimSpace(apiErr.Error.Message) != "" {
			message = strings.TrimSpace(apiErr.Error.Message)
		}
		return "", remoteError{msg: fmt.Sprintf("API error (%d): %s", resp.StatusCode, message)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", remoteError{msg: "malformed response body: " + err.Error()}
	}
	if len(completion.Choices) == 0 {
		return "", remoteError{msg: "malformed response: no choices"}
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", remoteError{msg: "malformed response: empty completion"}
	}
	return content, nil
}

// ModelName reports the configured remote model identifier.
func (c *remoteClient) ModelName() string { return c.model }
