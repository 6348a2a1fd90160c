package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Retry classification. Transport failures are retried up to
// MaxAttempts; a schema-invalid response gets exactly one more chance;
// cancellation and max-tokens truncation are terminal.
const (
	retryNo = iota
	retryYes
	retryOnce
)

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with transport-level retry using
// exponential backoff and jitter. Quality retries with corrective
// prompts are the orchestrator's job, not this layer's.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch retryClass(err) {
		case retryNo:
			return nil, err
		case retryOnce:
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		}

		if attempt == r.cfg.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryClass(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNo
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNo
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}
	return retryYes
}

// wait returns the backoff before the next attempt. A rate-limit error
// carrying a Retry-After hint wins over the computed backoff.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt-1))
	d = math.Min(d, float64(r.cfg.MaxWait))
	d *= 1 + 0.2*(2*rand.Float64()-1) // ±20% jitter
	return time.Duration(math.Max(d, 0))
}
