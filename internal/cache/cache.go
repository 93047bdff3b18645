// Package cache provides a keyed memoization layer for loaded canvases.
// It carries no decision logic of its own: callers invalidate entries
// whenever they write past it.
package cache

import (
	"sync"

	"github.com/vovakirdan/tui-canvas/internal/canvas"
)

// LoadFunc loads a canvas by name on a cache miss, typically from storage.
type LoadFunc func(name string) (*canvas.Canvas, error)

// CanvasCache memoizes canvases by name in front of a slower loader.
// Safe for concurrent use.
type CanvasCache struct {
	mu     sync.RWMutex
	load   LoadFunc
	byName map[string]*canvas.Canvas
}

// New creates an empty cache backed by the given loader.
func New(load LoadFunc) *CanvasCache {
	return &CanvasCache{
		load:   load,
		byName: make(map[string]*canvas.Canvas),
	}
}

// Get returns the canvas for name, loading and caching it on a miss.
// Load errors are returned as-is and nothing is cached for the name.
func (c *CanvasCache) Get(name string) (*canvas.Canvas, error) {
	c.mu.RLock()
	cached, ok := c.byName[name]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	loaded, err := c.load(name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byName[name] = loaded
	c.mu.Unlock()

	return loaded, nil
}

// Put stores a canvas under its name, replacing any cached entry.
func (c *CanvasCache) Put(cv *canvas.Canvas) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byName[cv.Name] = cv
}

// Invalidate drops the entry for name, forcing the next Get to reload.
func (c *CanvasCache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.byName, name)
}

// Clear drops every cached entry.
func (c *CanvasCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byName = make(map[string]*canvas.Canvas)
}

// Len returns the number of cached canvases.
func (c *CanvasCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byName)
}
