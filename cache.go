package trmarkup

import "sync"

type cacheKey struct {
	scope string
	text  string
}

// Cache memoizes render functions per translation text for a fixed
// transpiler list. It is safe for concurrent use.
type Cache struct {
	transpilers []Transpiler

	mu      sync.Mutex
	entries map[cacheKey]RenderFunc
}

// NewCache returns a cache transpiling with transpilers.
func NewCache(transpilers []Transpiler) *Cache {
	return &Cache{
		transpilers: transpilers,
		entries:     make(map[cacheKey]RenderFunc),
	}
}

// Transpilers returns the transpiler list of the cache.
func (c *Cache) Transpilers() []Transpiler { return c.transpilers }

// Renderer returns the render function for text within scope, creating it
// with translation on first use. The scope separates texts from different
// dictionaries, typically by locale.
func (c *Cache) Renderer(scope, text string, translation Translation) RenderFunc {
	key := cacheKey{scope: scope, text: text}
	c.mu.Lock()
	defer c.mu.Unlock()
	if fn, ok := c.entries[key]; ok {
		return fn
	}
	fn := CreateRenderer(text, c.transpilers, translation)
	c.entries[key] = fn
	return fn
}

// Len returns the number of cached render functions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every cached render function. Call it after the dictionaries
// backing the cached texts change.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
