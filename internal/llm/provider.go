// Package llm abstracts the external text-generation providers the router
// falls back to when a question cannot be answered from the dataset.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single generation round-trip.
const DefaultTimeout = 18 * time.Second

// ErrNoAPIKey signals that a provider was configured without a credential.
var ErrNoAPIKey = errors.New("llm: api key is not set")

// Provider sends one prompt to an external generator and returns raw text.
// A failed call is surfaced to the caller; providers never retry.
type Provider interface {
	Name() string
	Generate(ctx context.Context, system, user string) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider string // gemini or openai
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// New builds the configured provider.
func New(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch cfg.Provider {
	case "", "gemini":
		return newGeminiClient(cfg), nil
	case "openai":
		return newOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
