package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("no api key", func(t *testing.T) {
		_, err := New(Config{Provider: "gemini"})
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("defaults to gemini", func(t *testing.T) {
		p, err := New(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "gemini", p.Name())
	})

	t.Run("openai", func(t *testing.T) {
		p, err := New(Config{Provider: "openai", APIKey: "k", Model: "gpt-4o-mini"})
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(Config{Provider: "llama-farm", APIKey: "k"})
		require.Error(t, err)
	})
}

func TestGeminiClient_Generate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "ONIC juara "}, {"text": "musim ini."}},
				}},
			},
		})
	}))
	defer srv.Close()

	p, err := New(Config{APIKey: "secret", Model: "gemini-1.5-flash", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := p.Generate(context.Background(), "sistem", "siapa juara?")
	require.NoError(t, err)

	assert.Equal(t, "ONIC juara musim ini.", text)
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "sistem", gotBody.SystemInstruction.Parts[0].Text)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "siapa juara?", gotBody.Contents[0].Parts[0].Text)
}

func TestGeminiClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    429,
				"message": "Resource has been exhausted",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	}))
	defer srv.Close()

	p, err := New(Config{APIKey: "secret", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "", "halo")
	require.Error(t, err)

	perr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, 429, perr.StatusCode)
	assert.Equal(t, "Resource has been exhausted", perr.Message)
	assert.Equal(t, KindQuotaExceeded, Classify(err))
}

func TestGeminiClient_EmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	p, err := New(Config{APIKey: "secret", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "", "halo")
	require.Error(t, err)

	perr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, "empty completion", perr.Message)
}

func TestGeminiClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p, err := New(Config{
		APIKey:     "secret",
		BaseURL:    srv.URL,
		HTTPClient: &http.Client{Timeout: 20 * time.Millisecond},
	})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "", "halo")
	require.Error(t, err)

	perr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.True(t, perr.Timeout)
	assert.Equal(t, KindTimeout, Classify(err))
}

func TestGeminiClient_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p, err := New(Config{APIKey: "secret", BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = p.Generate(ctx, "", "halo")
	require.Error(t, err)
	assert.Equal(t, KindTimeout, Classify(err))
}

func TestOpenAIClient_Generate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  RRQ menang.  "}},
			},
		})
	}))
	defer srv.Close()

	p, err := New(Config{Provider: "openai", APIKey: "secret", Model: "gpt-4o-mini", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := p.Generate(context.Background(), "sistem", "siapa menang?")
	require.NoError(t, err)

	assert.Equal(t, "RRQ menang.", text)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
}

func TestOpenAIClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "The model does not exist"},
		})
	}))
	defer srv.Close()

	p, err := New(Config{Provider: "openai", APIKey: "secret", Model: "nope", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "", "halo")
	require.Error(t, err)

	perr, ok := AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, 404, perr.StatusCode)
	assert.Equal(t, KindModelUnavailable, Classify(err))
}
