package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com"
	geminiDefaultModel = "gemini-1.5-flash"
)

// geminiClient calls the Gemini generateContent REST endpoint.
type geminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func newGeminiClient(cfg Config) *geminiClient {
	model := cfg.Model
	if model == "" {
		model = geminiDefaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	return &geminiClient{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

func (c *geminiClient) Name() string {
	return "gemini"
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *geminiAPIError `json:"error"`
}

type geminiAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate sends one prompt and returns the concatenated candidate text.
func (c *geminiClient) Generate(ctx context.Context, system, user string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
	}
	if system != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "marshal request", Err: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Message: "read response", Err: err}
	}

	var out geminiResponse
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

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Message: "empty completion"}
	}
	return text, nil
}

// transportError distinguishes timeouts from other transport failures.
func (c *geminiClient) transportError(err error) error {
	perr := &ProviderError{Provider: c.Name(), Message: "send request", Err: err}
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		perr.Timeout = true
		perr.Message = "request timed out"
	}
	return perr
}
