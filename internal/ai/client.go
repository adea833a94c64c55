// Package ai requests an owner-facing summary of a daily report from a
// Groq-compatible chat-completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Atomstars/Cafe-pos/config"
	"github.com/Atomstars/Cafe-pos/internal/reporting"
)

// ErrMissingAPIKey is returned before any network call when the service is
// not configured. It must never be degraded silently.
var ErrMissingAPIKey = errors.New("missing GROQ_API_KEY in environment")

// UpstreamError reports a failed call to the summary service. One attempt
// per request, no retries.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("ai upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("ai upstream unreachable: %s", e.Message)
}

type Client struct {
	cfg        config.GroqConfig
	httpClient *http.Client
}

func New(cfg config.GroqConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// SummarizeDailyReport sends the report to the completion API and returns
// its free-text reply. The prompt pins the model to the numbers in the
// report so it cannot fabricate figures.
func (c *Client) SummarizeDailyReport(ctx context.Context, report reporting.DailyReport) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	prompt := fmt.Sprintf(`You are a cafe business assistant.
Use ONLY the numbers in the report JSON.
Give WhatsApp-friendly summary + 2 suggestions.

REPORT JSON:
%s`, reportJSON)

	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Temperature: 0.2,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{Status: resp.StatusCode, Message: string(raw)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "No summary generated", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
