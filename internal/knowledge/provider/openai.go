// Package provider is an OpenAI-compatible embeddings and chat-completions
// client. Groq and other compatible endpoints work through the base URL.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to an OpenAI-compatible API over HTTP.
type Client struct {
	baseURL        string
	apiKey         string
	embeddingModel string
	chatModel      string
	dimension      int
	client         *http.Client
	maxRetries     int
}

// Config configures the provider client.
type Config struct {
	BaseURL        string
	APIKey         string
	EmbeddingModel string
	ChatModel      string
	Timeout        time.Duration
}

// New creates a provider client. A missing API key is a construction error so
// that startup fails fast rather than on the first query.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing LLM API key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-3-small"
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = "llama3-8b-8192"
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		embeddingModel: cfg.EmbeddingModel,
		chatModel:      cfg.ChatModel,
		client:         &http.Client{Timeout: t},
		maxRetries:     3,
	}, nil
}

// Embed returns an embedding vector for the given text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	body := map[string]any{
		"input": text,
		"model": c.embeddingModel,
	}

	payload, err := c.post(ctx, "/embeddings", body)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, errors.New("no embedding returned")
	}

	v := out.Data[0].Embedding
	if c.dimension == 0 {
		c.dimension = len(v)
	}
	return v, nil
}

// Dimension returns the dimensionality of produced vectors, known after the
// first Embed call.
func (c *Client) Dimension() int { return c.dimension }

// Generate submits a prompt to the chat model and returns its answer.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model": c.chatModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	payload, err := c.post(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no completion returned")
	}
	return out.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay(attempt)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		payload, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		// Retry on rate limiting and server errors
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("llm request failed: %s", resp.Status)
			continue
		}
		if resp.StatusCode >= 300 {
			return nil, fmt.Errorf("llm request failed: %s", resp.Status)
		}
		return payload, nil
	}
	return nil, lastErr
}

func retryDelay(attempt int) time.Duration {
	base := 200 * time.Millisecond
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
