// Package memory provides an in-process DecisionCache, used as the default
// when no redis address is configured.
package memory

import (
	"context"
	"sync"

	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

// Cache is a map-backed decision cache, safe for concurrent use. Entries are
// copied on the way in and out so callers can never alias cache internals.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]statedata.StateData
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]statedata.StateData)}
}

// Get returns the cached descriptor or domain.ErrCacheMiss.
func (c *Cache) Get(_ context.Context, key string) (*statedata.StateData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return clone(&entry), nil
}

// Set stores a copy of the descriptor under key.
func (c *Cache) Set(_ context.Context, key string, data *statedata.StateData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = *clone(data)
	return nil
}

func clone(data *statedata.StateData) *statedata.StateData {
	out := *data
	if data.PrimaryButton != nil {
		button := *data.PrimaryButton
		out.PrimaryButton = &button
	}
	if data.SecondaryButton != nil {
		button := *data.SecondaryButton
		out.SecondaryButton = &button
	}
	return &out
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
