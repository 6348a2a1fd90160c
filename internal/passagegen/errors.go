package passagegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/keremugurlu/readingen/internal/llm"
)

// ErrorKind classifies generation failures for user-facing messaging.
type ErrorKind string

const (
	KindCredentials ErrorKind = "credentials"
	KindQuota       ErrorKind = "quota"
	KindRateLimit   ErrorKind = "rate_limit"
	KindUnknown     ErrorKind = "unknown"
)

// GenerationError wraps a provider failure. Unlike a validation failure,
// which is retried in place, a GenerationError aborts the current run.
type GenerationError struct {
	Kind ErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	switch e.Kind {
	case KindCredentials:
		return fmt.Sprintf("invalid or missing API key: %v", e.Err)
	case KindQuota:
		return fmt.Sprintf("provider quota exceeded, check account billing: %v", e.Err)
	case KindRateLimit:
		return fmt.Sprintf("rate limit exceeded, wait a moment and try again: %v", e.Err)
	default:
		return fmt.Sprintf("passage generation failed: %v", e.Err)
	}
}

func (e *GenerationError) Unwrap() error { return e.Err }

// classify maps a provider error onto an ErrorKind.
func classify(err error) *GenerationError {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return &GenerationError{Kind: KindRateLimit, Err: err}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "401"):
		return &GenerationError{Kind: KindCredentials, Err: err}
	case strings.Contains(msg, "insufficient_quota") || strings.Contains(msg, "quota"):
		return &GenerationError{Kind: KindQuota, Err: err}
	case strings.Contains(msg, "rate_limit") || strings.Contains(msg, "rate limit"):
		return &GenerationError{Kind: KindRateLimit, Err: err}
	}
	return &GenerationError{Kind: KindUnknown, Err: err}
}
