package passagegen

import (
	"time"

	"github.com/keremugurlu/readingen/internal/passage"
)

// Config controls the orchestrator's retry loop and the LLMGenerator.
type Config struct {
	// MaxRetries is how many extra attempts follow a failed first one.
	// A budget of 5 means at most 6 requests per passage.
	MaxRetries int

	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration

	// Policy selects the structural validation rules applied to every
	// attempt.
	Policy passage.PolicyConfig

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// BatchConfig returns the retry budget used for fresh batch generation.
func BatchConfig() Config {
	return Config{
		MaxRetries:  5,
		RetryDelay:  1500 * time.Millisecond,
		Policy:      passage.SimplePolicy(),
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}

// RegenerateConfig returns the tighter budget used when redoing a single
// passage that was previously delivered with NeedsRegeneration set.
func RegenerateConfig() Config {
	return Config{
		MaxRetries:  3,
		RetryDelay:  time.Second,
		Policy:      passage.SimplePolicy(),
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
