package policy

import (
	"sync"
	"time"
)

// DecisionCache memoizes navigation and field-view evaluations per session
// so repeated requests within a session do not re-run the rule tables.
// Entries expire after the configured TTL.
type DecisionCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewDecisionCache(ttl time.Duration) *DecisionCache {
	return &DecisionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *DecisionCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (c *DecisionCache) Set(key string, value interface{}) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops every entry whose key starts with the given prefix.
// Session keys are prefixed with the session token, so a feature refresh
// or logout clears exactly that session's decisions.
func (c *DecisionCache) Invalidate(prefix string) {
	c.mu.Lock()
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

func (c *DecisionCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
