// Copyright 2026 backtrace project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package symbolizer

import "sync"

// Cache caches demangling results in a thread-safe way.
// Demangling is a pure function, so memoized results never go stale.
type Cache struct {
	mu    sync.RWMutex
	cache map[string]string
}

func (c *Cache) Demangle(inner func(string) string, name string) string {
	c.mu.RLock()
	val, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		return val
	}
	val = inner(name)
	c.mu.Lock()
	if c.cache == nil {
		c.cache = make(map[string]string)
	}
	c.cache[name] = val
	c.mu.Unlock()
	return val
}
