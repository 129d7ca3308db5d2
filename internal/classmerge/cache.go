package classmerge

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of distinct class strings remembered.
const DefaultCacheSize = 1024

// Cached memoises a Merger. Component markup repeats the same class strings
// many times, and merging is the most expensive step of a conversion. Only
// successful merges are cached. Safe for concurrent use.
type Cached struct {
	next  Merger
	cache *lru.Cache[string, string]
}

// NewCached wraps next with an LRU cache of size entries. A size below one
// uses DefaultCacheSize.
func NewCached(next Merger, size int) (*Cached, error) {
	if next == nil {
		return nil, fmt.Errorf("cached merger: nil merger")
	}
	if size < 1 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("cached merger: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

// Merge implements Merger.
func (c *Cached) Merge(classes string) (string, error) {
	if merged, ok := c.cache.Get(classes); ok {
		return merged, nil
	}

	merged, err := c.next.Merge(classes)
	if err != nil {
		return "", err
	}
	c.cache.Add(classes, merged)
	return merged, nil
}

// Len returns the number of cached entries.
func (c *Cached) Len() int {
	return c.cache.Len()
}
