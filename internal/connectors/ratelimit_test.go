package connectors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow(), "third request should exceed the burst")
}

func TestRateLimiter_BackoffBlocksAllow(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 100})

	limiter.RecordRateLimitError(30)
	assert.False(t, limiter.Allow(), "backoff period should block requests")
}

func TestRateLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 100})
	limiter.RecordRateLimitError(60)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDefaultRateLimits_CoverAllProviders(t *testing.T) {
	for _, provider := range []ProviderType{ProviderChronicling, ProviderWikiTree, ProviderOpenArchives} {
		cfg, ok := DefaultRateLimits[provider]
		require.True(t, ok, "missing default for %s", provider)
		assert.Greater(t, cfg.RequestsPerSecond, 0.0)
		assert.Greater(t, cfg.BurstSize, 0)
	}
}
