package middleware

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsCacheKey_DoesNotEmbedToken(t *testing.T) {
	token := "eyJhbGciOiJSUzI1NiJ9.payload.signature"
	key := claimsCacheKey(token)

	assert.True(t, strings.HasPrefix(key, "authclaims:"))
	assert.NotContains(t, key, token, "the raw bearer token must never appear in the cache key")
	assert.NotContains(t, key, "payload")

	assert.Equal(t, key, claimsCacheKey(token), "the key must be stable for the same token")
	assert.NotEqual(t, key, claimsCacheKey(token+"x"))
}

func TestRateLimiterStore_EvictsIdleEntries(t *testing.T) {
	s := &rateLimiterStore{limiters: make(map[string]*ipLimiter)}

	s.getLimiter("203.0.113.1")
	s.getLimiter("203.0.113.2")
	require.Len(t, s.limiters, 2)

	// Age one entry past the idle TTL and reopen the sweep window.
	s.limiters["203.0.113.1"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	s.lastSweep = time.Now().Add(-2 * limiterSweepInterval)

	s.getLimiter("203.0.113.2")

	_, stillThere := s.limiters["203.0.113.1"]
	assert.False(t, stillThere, "an idle entry must be swept out")
	_, kept := s.limiters["203.0.113.2"]
	assert.True(t, kept, "an active entry must survive the sweep")
}

func TestRateLimiterStore_ReusesLimiterPerIP(t *testing.T) {
	s := &rateLimiterStore{limiters: make(map[string]*ipLimiter)}

	a := s.getLimiter("203.0.113.1")
	b := s.getLimiter("203.0.113.1")
	assert.Same(t, a, b, "repeat lookups for one IP must share a token bucket")
}
