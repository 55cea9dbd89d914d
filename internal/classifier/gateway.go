package classifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizsakhi/sakhi/internal/common"
	"github.com/bizsakhi/sakhi/internal/fallback"
	"github.com/bizsakhi/sakhi/internal/model"
)

// DefaultTimeout bounds how long a classification may take end to end,
// including retries. Past it the caller gets the fallback response.
const DefaultTimeout = 15 * time.Second

// Gateway runs provider classifications under a hard wall-clock deadline.
// Classify never fails and never exceeds the deadline by more than
// scheduling jitter: timeouts, provider errors, and malformed payloads all
// degrade to the deterministic fallback responder.
type Gateway struct {
	client  Client
	cache   *resultCache
	limiter *rateLimiter
	timeout time.Duration
	retry   common.RetryOptions
}

// NewGateway creates a gateway for the configured provider.
func NewGateway(cfg Config) (*Gateway, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewGatewayWithClient(client, cfg), nil
}

// NewGatewayWithClient creates a gateway around an existing client.
func NewGatewayWithClient(client Client, cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = time.Second
	}

	return &Gateway{
		client:  client,
		cache:   newResultCache(cfg.CacheTTL),
		limiter: newRateLimiter(cfg.RateLimit),
		timeout: timeout,
		retry: common.RetryOptions{
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: retryDelay,
		},
	}
}

// Classify resolves the message through the provider, bounded by the
// gateway timeout. The provider call runs in its own goroutine; if the
// deadline fires first the late result is discarded and the fallback
// response is returned with FallbackUsed set.
func (g *Gateway) Classify(ctx context.Context, msg model.Message) model.ClassificationResult {
	key := cacheKey(msg)
	if cached, ok := g.cache.get(key); ok {
		slog.Debug("classification cache hit", "language", msg.Language)
		return cached
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// Buffered so a late completion never leaks the goroutine.
	resultCh := make(chan model.ClassificationResult, 1)
	errCh := make(chan error, 1)

	go func() {
		result, err := g.classifyOnce(callCtx, msg)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case result := <-resultCh:
		if !timer.Stop() {
			// The deadline fired while the result was in flight; a result
			// at or past the deadline counts as late.
			common.LogError(common.ErrClassifierTimeout, "classification completed after deadline, discarding", common.Fields{
				"timeout": g.timeout.String(),
			})
			return fallback.Respond(msg.Text, msg.Language)
		}
		g.cache.set(key, result)
		return result
	case err := <-errCh:
		common.LogError(err, "classification failed, using fallback", common.Fields{
			"language": string(msg.Language),
		})
		return fallback.Respond(msg.Text, msg.Language)
	case <-timer.C:
		common.LogError(common.ErrClassifierTimeout, "classification timed out, using fallback", common.Fields{
			"timeout": g.timeout.String(),
		})
		return fallback.Respond(msg.Text, msg.Language)
	}
}

// classifyOnce performs one rate-limited, retried provider round trip and
// decodes the completion at the boundary.
func (g *Gateway) classifyOnce(ctx context.Context, msg model.Message) (model.ClassificationResult, error) {
	if err := g.limiter.wait(ctx); err != nil {
		return model.ClassificationResult{}, err
	}

	prompt := buildPrompt(msg)

	var content string
	err := common.WithRetry(ctx, func() error {
		var callErr error
		content, callErr = g.client.Complete(ctx, prompt)
		return callErr
	}, g.retry)
	if err != nil {
		return model.ClassificationResult{}, err
	}

	return decodeResult(content)
}

// Timeout reports the configured deadline.
func (g *Gateway) Timeout() time.Duration {
	return g.timeout
}

// Close releases the cache and rate limiter goroutines.
func (g *Gateway) Close() {
	g.cache.Close()
	g.limiter.Close()
}
