// Package llm is the boundary to the chat-completion collaborator used for
// the semantic double-duty check and for refinement suggestions. Transport
// failures never propagate as audit failures; the auditor receives a
// degraded verdict instead.
package llm

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

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	httpc       *http.Client
}

// New builds a Client. baseURL is the API root (e.g.
// "https://api.openai.com/v1"); timeout bounds each request.
func New(apiKey, model, baseURL string, temperature float64, timeout time.Duration) *Client {
	return &Client{
		APIKey:      apiKey,
		Model:       model,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Temperature: temperature,
		httpc:       &http.Client{Timeout: timeout},
	}
}

// Complete sends one system+user exchange and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("API key not set")
	}

	body := map[string]any{
		"model":       c.Model,
		"max_tokens":  maxTokens,
		"temperature": c.Temperature,
		"messages": []any{
			map[string]any{"role": "system", "content": system},
			map[string]any{"role": "user", "content": user},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat completion %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return strings.TrimSpace(raw.Choices[0].Message.Content), nil
}
