package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Kind buckets provider failures for client-facing handling.
type Kind string

const (
	KindQuotaExceeded    Kind = "quota_exceeded"
	KindModelUnavailable Kind = "model_unavailable"
	KindTimeout          Kind = "timeout"
	KindUnknown          Kind = "unknown"
)

// ProviderError captures a failed generation call.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Timeout    bool
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "generation request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError attempts to unwrap an error into a ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// Classify maps a provider failure onto its Kind. Typed fields win; the
// substring scan covers errors that arrive as bare text.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	if perr, ok := AsProviderError(err); ok {
		if perr.Timeout {
			return KindTimeout
		}
		switch perr.StatusCode {
		case 429:
			return KindQuotaExceeded
		case 400, 404:
			return KindModelUnavailable
		}
	}

	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "quota") || strings.Contains(text, "429"):
		return KindQuotaExceeded
	case strings.Contains(text, "404") || strings.Contains(text, "not found"):
		return KindModelUnavailable
	case strings.Contains(text, "timeout") || strings.Contains(text, "deadline exceeded"):
		return KindTimeout
	default:
		return KindUnknown
	}
}
