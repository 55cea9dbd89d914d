// Package classifier wraps the external language-understanding service
// behind a bounded-time gateway. Provider clients produce raw completions;
// the parser decodes them into the closed ClassificationResult union; the
// gateway enforces the wall-clock deadline and degrades to the deterministic
// fallback on any failure.
package classifier

import (
	"context"
	"time"
)

// Client defines the interface for classification providers.
type Client interface {
	// Complete sends the prompt and returns the provider's raw text output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the classifier gateway.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
	CacheTTL    time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}
