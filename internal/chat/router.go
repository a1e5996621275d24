package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/cache"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/llm"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// ErrEmptyQuestion signals an input that normalized to the empty string.
var ErrEmptyQuestion = errors.New("chat: empty question")

// Config holds router behavior toggles.
type Config struct {
	Polish       bool
	CacheAnswers bool
	CacheTTL     time.Duration
}

// Router orchestrates the hybrid answering pipeline: normalize, guard,
// resolve, classify, answer locally, and only then fall back to generation.
type Router struct {
	store    *dataset.Store
	provider llm.Provider
	polisher *Polisher
	cache    cache.Client
	logger   *observability.Logger
	cfg      Config
}

// NewRouter creates a router over an immutable dataset store. provider and
// answerCache may be nil; the router then answers from the dataset only and
// skips caching.
func NewRouter(store *dataset.Store, provider llm.Provider, answerCache cache.Client, logger *observability.Logger, cfg Config) *Router {
	if logger == nil {
		logger = observability.Nop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &Router{
		store:    store,
		provider: provider,
		polisher: NewPolisher(provider, logger),
		cache:    answerCache,
		logger:   logger,
		cfg:      cfg,
	}
}

// Answer resolves one question. Local outcomes, including refusals and honest
// "not available" messages, return a text and a nil error; only generation
// provider failures surface as errors, always as *llm.ProviderError.
func (r *Router) Answer(ctx context.Context, message string) (string, error) {
	start := time.Now()
	logger := r.logger.WithContext(ctx)

	text := Normalize(message)
	if text == "" {
		return "", ErrEmptyQuestion
	}

	if !InDomain(text, r.store.TeamAliases(), r.store.RoleAliases()) {
		logger.Debug().Str("question", text).Msg("Question out of domain")
		return msgRefusal, nil
	}

	cacheKey := cache.Key("answer", text)
	if cached, ok := r.cachedAnswer(ctx, cacheKey); ok {
		logger.Debug().Str("question", text).Msg("Answer cache hit")
		return cached, nil
	}

	team, _ := Resolve(text, r.store.TeamAliases())
	role, _ := Resolve(text, r.store.RoleAliases())
	intent := ClassifyIntent(text)

	logger.Debug().
		Str("question", text).
		Str("intent", string(intent)).
		Str("team", team).
		Str("role", role).
		Msg("Routing question")

	if answer, ok := answerLocally(r.store, intent, team, role); ok {
		if r.cfg.Polish {
			answer = r.polisher.Polish(ctx, answer)
		}
		r.storeAnswer(ctx, cacheKey, answer)
		logger.Info().
			Str("intent", string(intent)).
			Bool("generated", false).
			Dur("latency", time.Since(start)).
			Msg("Question answered locally")
		return answer, nil
	}

	if r.provider == nil {
		// No provider configured: answer honestly instead of failing.
		return msgNoLocalAnswer, nil
	}

	system, user := buildPrompt(r.store, intent, strings.TrimSpace(message))
	answer, err := r.provider.Generate(ctx, system, user)
	if err != nil {
		logger.Error().
			Err(err).
			Str("provider", r.provider.Name()).
			Str("intent", string(intent)).
			Msg("Generation request failed")
		if _, ok := llm.AsProviderError(err); ok {
			return "", err
		}
		return "", &llm.ProviderError{Provider: r.provider.Name(), Err: err}
	}

	r.storeAnswer(ctx, cacheKey, answer)
	logger.Info().
		Str("intent", string(intent)).
		Bool("generated", true).
		Dur("latency", time.Since(start)).
		Msg("Question answered by provider")
	return answer, nil
}

func (r *Router) cachedAnswer(ctx context.Context, key string) (string, bool) {
	if !r.cfg.CacheAnswers || r.cache == nil {
		return "", false
	}
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn().Err(err).Msg("Answer cache read failed")
		}
		return "", false
	}
	return string(data), true
}

func (r *Router) storeAnswer(ctx context.Context, key, answer string) {
	if !r.cfg.CacheAnswers || r.cache == nil || answer == "" {
		return
	}
	if err := r.cache.Set(ctx, key, []byte(answer), r.cfg.CacheTTL); err != nil {
		r.logger.Warn().Err(err).Msg("Answer cache write failed")
	}
}
