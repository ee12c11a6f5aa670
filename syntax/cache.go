/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package syntax

import "sync"

// Cache memoizes parsed syntaxes keyed by their source text.
// Parse failures are cached too. The zero value is ready to use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	expr *Expression
	err  error
}

// Get returns the parsed tree for s, parsing it on first use.
func (c *Cache) Get(s string) (*Expression, error) {
	c.mu.RLock()
	entry, ok := c.entries[s]
	c.mu.RUnlock()
	if ok {
		return entry.expr, entry.err
	}

	expr, err := Parse(s)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]cacheEntry)
	}
	if existing, ok := c.entries[s]; ok {
		return existing.expr, existing.err
	}
	c.entries[s] = cacheEntry{expr: expr, err: err}
	return expr, err
}

// Len returns the number of cached syntaxes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
