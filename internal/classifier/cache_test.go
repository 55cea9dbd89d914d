package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bizsakhi/sakhi/internal/model"
)

func TestResultCacheSetGet(t *testing.T) {
	cache := newResultCache(time.Minute)
	defer cache.Close()

	key := cacheKey(model.Message{Text: "income 500", Language: model.LangEnglish, Mode: model.ModeBusiness})
	_, ok := cache.get(key)
	assert.False(t, ok)

	cache.set(key, model.Conversational("hello", 0.9))
	got, ok := cache.get(key)
	assert.True(t, ok)
	assert.Equal(t, "hello", got.ResponseText)
	assert.Equal(t, 1, cache.size())

	// A different language is a different key.
	other := cacheKey(model.Message{Text: "income 500", Language: model.LangHindi, Mode: model.ModeBusiness})
	assert.NotEqual(t, key, other)
	_, ok = cache.get(other)
	assert.False(t, ok)
}

func TestResultCacheExpiry(t *testing.T) {
	cache := newResultCache(10 * time.Millisecond)
	defer cache.Close()

	key := cacheKey(model.Message{Text: "expense 200", Language: model.LangEnglish, Mode: model.ModeBusiness})
	cache.set(key, model.Conversational("noted", 0.9))

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.get(key)
	assert.False(t, ok, "expired entries must not be served")
	// The lazy sweeper has not run yet; the stale entry still counts.
	assert.Equal(t, 1, cache.size())
}
