// Package assistant talks to an OpenAI compatible chat completions endpoint
// (Groq by default) and holds the local fallbacks used when it is unavailable.
package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/SscSPs/news_management_app/internal/apperrors"
)

const (
	maxTokens       = 200
	jsonTemperature = 0
	textTemperature = 0.3
)

const jsonSystemPrompt = "You are a JSON API. Always respond with valid JSON only. " +
	"No explanation, no markdown, no code blocks. Just pure JSON."

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("assistant is not configured")

// Config configures a Client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client calls the chat completions API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a Client.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Complete sends prompt as a single user message and returns the first choice.
// With wantJSON the model is pinned to JSON output at temperature 0.
func (c *Client) Complete(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	body, err := c.requestBody(prompt, wantJSON)
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: completion request failed: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read completion response: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(raw, "error.message").String()
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("%w: completion api returned %d: %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, msg)
	}

	content := gjson.GetBytes(raw, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("%w: completion response has no content", apperrors.ErrUpstreamUnavailable)
	}
	return CleanText(content.String()), nil
}

func (c *Client) requestBody(prompt string, wantJSON bool) ([]byte, error) {
	body := []byte(`{"messages":[]}`)
	var err error
	set := func(path string, value any) {
		if err == nil {
			body, err = sjson.SetBytes(body, path, value)
		}
	}

	set("model", c.model)
	if wantJSON {
		set("messages.-1", map[string]string{"role": "system", "content": jsonSystemPrompt})
		set("temperature", jsonTemperature)
	} else {
		set("temperature", textTemperature)
	}
	set("messages.-1", map[string]string{"role": "user", "content": prompt})
	set("max_tokens", maxTokens)
	return body, err
}

// CleanText trims whitespace, surrounding quotes and markdown code fences.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// ExtractJSON returns the outermost {...} object in s, or "" when there is none.
func ExtractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	candidate := s[start : end+1]
	if !gjson.Valid(candidate) {
		return ""
	}
	return candidate
}
