package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucket_Exhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 1)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimiter_IndependentKeys(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	// a different client has its own bucket
	assert.True(t, rl.Allow("10.0.0.2"))
}
