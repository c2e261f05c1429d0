package filerouter

import (
	"sync"

	"github.com/dmitrymomot/filerouter/core/handler"
)

// handlerCache maps resolved route files to loaded handlers for the lifetime
// of an App. Entries are never evicted. Concurrent first loads of the same
// route may both store; the last write wins.
type handlerCache struct {
	mu       sync.RWMutex
	handlers map[string]handler.HandlerFunc
}

func newHandlerCache() *handlerCache {
	return &handlerCache{handlers: make(map[string]handler.HandlerFunc)}
}

func (c *handlerCache) get(key string) (handler.HandlerFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handlers[key]
	return h, ok
}

func (c *handlerCache) set(key string, h handler.HandlerFunc) {
	c.mu.Lock()
	c.handlers[key] = h
	c.mu.Unlock()
}

func (c *handlerCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.handlers)
}
