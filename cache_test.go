package kre

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheReusesCompiledPattern(t *testing.T) {
	Purge()

	p1 := MustCompile("ㄱㅏ")
	p2 := MustCompile("ㄱㅏ")
	assert.Same(t, p1, p2, "second compile should hit the cache")

	p3 := MustCompile("ㄱㅏ", WithFlags(IgnoreCase))
	assert.NotSame(t, p1, p3, "flags are part of the cache key")
}

func TestCacheDistinctKeys(t *testing.T) {
	Purge()

	plain := MustCompile("ㄱ")
	bounded := MustCompile("ㄱ", WithBoundaries())
	custom := MustCompile("ㄱ", WithBoundaries(), WithDelimiter('%'))

	assert.NotSame(t, plain, bounded)
	assert.NotSame(t, bounded, custom)
	assert.Equal(t, 3, cache.size())
}

func TestCacheEviction(t *testing.T) {
	Purge()

	for i := 0; i < cacheLimit+8; i++ {
		MustCompile(fmt.Sprintf("ㄱ%d", i))
	}
	assert.LessOrEqual(t, cache.size(), cacheLimit)
	assert.Positive(t, cache.size())

	// The cache keeps serving after a flush.
	p1 := MustCompile("ㄱ0")
	p2 := MustCompile("ㄱ0")
	assert.Same(t, p1, p2)
}

func TestCacheBypassWithEngine(t *testing.T) {
	Purge()

	p1, err := Compile("ㄴ", WithEngine(DefaultEngine))
	require.NoError(t, err)
	p2, err := Compile("ㄴ", WithEngine(DefaultEngine))
	require.NoError(t, err)

	assert.NotSame(t, p1, p2, "explicit engines compile fresh every time")
	assert.Zero(t, cache.size())
}

func TestCacheConcurrentCompile(t *testing.T) {
	Purge()

	const workers = 16
	got := make([]*Pattern, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = MustCompile("ㅎㅏㄴ")
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, got[0], got[i], "worker %d", i)
	}
	assert.Equal(t, 1, cache.size())
}
