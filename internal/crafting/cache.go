package crafting

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedResult struct {
	Version string
	Result  *Result
}

// resultCache keeps the most recent craft result per actor, with expiry
type resultCache struct {
	lru *expirable.LRU[string, *cachedResult]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 {
		size = DefaultResultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultResultCacheTTL
	}
	return &resultCache{
		lru: expirable.NewLRU[string, *cachedResult](size, nil, ttl),
	}
}

// Get returns the cached result, dropping entries written by an older schema
func (c *resultCache) Get(actorID string) (*Result, bool) {
	entry, found := c.lru.Get(actorID)
	if !found {
		return nil, false
	}
	if entry.Version != ResultCacheSchemaVersion {
		c.lru.Remove(actorID)
		return nil, false
	}
	return entry.Result, true
}

func (c *resultCache) Set(actorID string, result *Result) {
	if actorID == "" || result == nil {
		return
	}
	c.lru.Add(actorID, &cachedResult{Version: ResultCacheSchemaVersion, Result: result})
}

func (c *resultCache) Len() int {
	return c.lru.Len()
}
