package connectors

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ProviderType identifies an external provider for rate limiting purposes.
type ProviderType string

const (
	// ProviderChronicling is the Chronicling America newspaper API.
	ProviderChronicling ProviderType = "chronicling"
	// ProviderWikiTree is the WikiTree collaborative tree API.
	ProviderWikiTree ProviderType = "wikitree"
	// ProviderOpenArchives is the Open Archives records API.
	ProviderOpenArchives ProviderType = "openarchives"
)

// RateLimitConfig holds rate limiting configuration for a provider.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each provider.
// None of these APIs publishes hard quotas; WikiTree documents itself
// as rate-limited, so it gets the most conservative budget.
var DefaultRateLimits = map[ProviderType]RateLimitConfig{
	ProviderChronicling:  {RequestsPerSecond: 5.0, BurstSize: 10},
	ProviderWikiTree:     {RequestsPerSecond: 2.0, BurstSize: 5},
	ProviderOpenArchives: {RequestsPerSecond: 5.0, BurstSize: 10},
}

// RateLimiter provides rate limiting for provider API requests.
// It uses a token bucket algorithm with optional backoff for 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a new rate limiter for the specified provider.
func NewRateLimiter(provider ProviderType) *RateLimiter {
	cfg, ok := DefaultRateLimits[provider]
	if !ok {
		cfg = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}
	return NewRateLimiterWithConfig(cfg)
}

// NewRateLimiterWithConfig creates a rate limiter with custom configuration.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a 429 from the provider and sets a
// backoff period before the next attempt.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 60
	}
	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}
	return r.limiter.Allow()
}
