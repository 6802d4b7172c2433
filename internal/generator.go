package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Model identifies one of the supported generation models.
type Model string

const (
	ModelGPT4oMini Model = "gpt-4o-mini"
	ModelGPT4o     Model = "gpt-4o"
	ModelGPT41     Model = "gpt-4.1"
)

// Models lists the supported models in picker order.
var Models = []Model{ModelGPT4oMini, ModelGPT4o, ModelGPT41}

// DefaultModel is used when the caller does not choose one.
const DefaultModel = ModelGPT4oMini

// ParseModel validates a model name.
func ParseModel(s string) (Model, error) {
	for _, m := range Models {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported model: %s (supported: %s, %s, %s)",
		s, ModelGPT4oMini, ModelGPT4o, ModelGPT41)
}

// GenerateRequest carries one generation call.
type GenerateRequest struct {
	Model  Model
	System string
	Prompt string
}

// Generator is the text-generation collaborator. The response is an opaque
// string; the core does not parse or validate its content.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

const (
	openAIBaseURL     = "https://api.openai.com"
	generateMaxTokens = 600
)

// OpenAIClient calls the OpenAI chat-completions endpoint.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient returns a client using the given API key.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    openAIBaseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// NewOpenAIClientWithBaseURL returns a client against a custom endpoint.
// Used by tests and OpenAI-compatible proxies.
func NewOpenAIClientWithBaseURL(apiKey, baseURL string) *OpenAIClient {
	c := NewOpenAIClient(apiKey)
	c.baseURL = baseURL
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate issues one chat-completions call and returns the first choice's
// message content.
func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	payload := chatRequest{
		Model: string(req.Model),
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens: generateMaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &GenerationError{Model: string(req.Model), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Model: string(req.Model), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	LogDebug("generation request: model=%s system=%d bytes prompt=%d bytes",
		req.Model, len(req.System), len(req.Prompt))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GenerationError{Model: string(req.Model), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Model: string(req.Model), Err: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &GenerationError{Model: string(req.Model),
			Err: fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)}
	}
	if resp.StatusCode != http.StatusOK {
		msg := "request failed"
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &GenerationError{Model: string(req.Model),
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg)}
	}
	if len(parsed.Choices) == 0 {
		return "", &GenerationError{Model: string(req.Model),
			Err: fmt.Errorf("response contained no choices")}
	}
	return parsed.Choices[0].Message.Content, nil
}
