// Package ai implements a streaming completion client for a local Ollama
// server. Responses are printed chunk by chunk as they arrive.
package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to an OpenAI-compatible completions endpoint.
type Client struct {
	Host  string // base URL, e.g. http://127.0.0.1:11434
	Model string

	// HTTPClient is overridable in tests; nil uses a client without a
	// timeout (completions stream for as long as the model generates).
	HTTPClient *http.Client
}

// NewClient creates a Client for the given host and model.
func NewClient(host, model string) *Client {
	return &Client{Host: host, Model: model}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{
		Transport: &http.Transport{
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}
}

// completionRequest is the /v1/completions request body.
type completionRequest struct {
	Model     string `json:"model"`
	KeepAlive int    `json:"keep_alive"`
	Prompt    string `json:"prompt"`
	Stream    bool   `json:"stream"`
}

// completionChunk is one streamed SSE payload.
type completionChunk struct {
	Choices []struct {
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Stream sends the prompt and writes completion text to w as chunks
// arrive. Returns after the model reports a stop, the stream ends, or ctx
// is canceled.
func (c *Client) Stream(ctx context.Context, prompt string, w io.Writer) error {
	body, err := json.Marshal(completionRequest{
		Model:     c.Model,
		KeepAlive: -1,
		Prompt:    prompt,
		Stream:    true,
	})
	if err != nil {
		return err
	}

	url := strings.TrimSuffix(c.Host, "/") + "/v1/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("completion request failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			break
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue // tolerate keep-alive noise between events
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if _, err := io.WriteString(w, chunk.Choices[0].Text); err != nil {
			return err
		}
		if chunk.Choices[0].FinishReason == "stop" {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading completion stream: %w", err)
	}

	_, err = io.WriteString(w, "\n")
	return err
}
