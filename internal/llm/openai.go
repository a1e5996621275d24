package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// openAIClient calls any OpenAI-compatible chat completion endpoint. Useful
// for self-hosted gateways when Gemini quota runs dry.
type openAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func newOpenAIClient(cfg Config) *openAIClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	return &openAIClient{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

func (c *openAIClient) Name() string {
	return "openai"
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends a system/user message pair and returns the completion text.
func (c *openAIClient) Generate(ctx context.Context, system, user string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	payload, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		perr := &ProviderError{Provider: c.Name(), Message: "send request", Err: err}
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			perr.Timeout = true
			perr.Message = "request timed out"
		}
		return "", perr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "read response", Err: err}
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Message: "decode response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(data))
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return "", &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Message: msg}
	}

	if len(out.Choices) == 0 {
		return "", &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Message: "empty completion"}
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
