package kre

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheLimit bounds the process-wide cache. Like the usual regex module
// caches, hitting the bound drops everything and repopulates rather than
// tracking recency.
const cacheLimit = 512

type cacheKey struct {
	pattern    string
	flags      Flags
	boundaries bool
	delimiter  rune
}

func (k cacheKey) flightKey() string {
	return fmt.Sprintf("%q/%d/%t/%q", k.pattern, k.flags, k.boundaries, k.delimiter)
}

// patternCache is the only process-wide state in the package. Patterns
// compiled through the module-level functions land here; Purge empties
// it. Concurrent compiles of one key are deduplicated, and a generation
// counter keeps a purge from resurrecting entries out of in-flight
// compiles.
type patternCache struct {
	mu     sync.Mutex
	m      map[cacheKey]*Pattern
	gen    uint64
	flight singleflight.Group
}

var cache = &patternCache{m: make(map[cacheKey]*Pattern)}

func (c *patternCache) get(pattern string, o options) (*Pattern, error) {
	key := cacheKey{pattern, o.flags, o.boundaries, o.delimiter}
	c.mu.Lock()
	if p, ok := c.m[key]; ok {
		c.mu.Unlock()
		return p, nil
	}
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.flight.Do(key.flightKey(), func() (any, error) {
		return compilePattern(pattern, o)
	})
	if err != nil {
		return nil, err
	}
	p := v.(*Pattern)

	c.mu.Lock()
	if c.gen == gen {
		if len(c.m) >= cacheLimit {
			clear(c.m)
		}
		c.m[key] = p
	}
	c.mu.Unlock()
	return p, nil
}

func (c *patternCache) purge() {
	c.mu.Lock()
	c.gen++
	clear(c.m)
	c.mu.Unlock()
}

func (c *patternCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
