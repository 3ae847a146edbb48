package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMD5(t *testing.T) {
	// Known digest for empty input.
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CalculateMD5(nil))
	assert.Equal(t, CalculateMD5([]byte("hello")), CalculateMD5([]byte("hello")))
	assert.NotEqual(t, CalculateMD5([]byte("hello")), CalculateMD5([]byte("world")))
}

func TestMatchCacheKey(t *testing.T) {
	key := MatchCacheKey("resume", "jd")
	assert.Len(t, key, 32)

	// The separator keeps ambiguous concatenations apart.
	assert.NotEqual(t, MatchCacheKey("ab", "c"), MatchCacheKey("a", "bc"))

	// Same inputs always map to the same key.
	assert.Equal(t, key, MatchCacheKey("resume", "jd"))
}
