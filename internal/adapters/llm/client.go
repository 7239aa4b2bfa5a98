package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/lora-bbs/internal/ports"
)

const (
	maxResponseBytes      = 8 << 20
	defaultRequestTimeout = 180 * time.Second
	defaultMaxTokens      = 4096
	fallbackModelID       = "modelo_por_defecto"
	missingModelID        = "sin_id"
)

// Client talks to an OpenAI-compatible server such as LM Studio.
type Client struct {
	BaseURL        string
	APIKey         string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	MaxTokens      int
}

var _ ports.LanguageModel = Client{}

type modelEntry struct {
	ID *string `json:"id"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message *chatMessage `json:"message"`
		Text    string       `json:"text"`
	} `json:"choices"`
}

func (c Client) ListModels(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/models", nil)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	return decodeModels(body)
}

// decodeModels accepts {"data": [...]} as well as a bare array.
func decodeModels(body []byte) ([]string, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode models: %w", err)
	}

	var entries []modelEntry
	trimmed := bytes.TrimSpace(raw)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decode models: %w", err)
		}
	case bytes.HasPrefix(trimmed, []byte("{")):
		var wrapped struct {
			Data *[]modelEntry `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decode models: %w", err)
		}
		if wrapped.Data == nil {
			return []string{fallbackModelID}, nil
		}
		entries = *wrapped.Data
	default:
		return []string{fallbackModelID}, nil
	}

	models := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == nil {
			models = append(models, missingModelID)
			continue
		}
		models = append(models, *entry.ID)
	}

	return models, nil
}

// Complete sends one user message and returns the first choice's text.
func (c Client) Complete(ctx context.Context, model string, prompt string) (string, error) {
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	payload, err := json.Marshal(chatRequest{
		Model:     model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/v1/chat/completions", payload)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		if choice.Message != nil && choice.Message.Content != "" {
			return choice.Message.Content, nil
		}
		if choice.Text != "" {
			return choice.Text, nil
		}
	}

	return string(body), nil
}

func (c Client) do(ctx context.Context, method string, path string, payload []byte) ([]byte, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// buildAPIURL accepts a bare host:port as well as a full URL.
func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("llm base url is required")
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse llm base url: %w", err)
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + path
	return parsed.String(), nil
}
