package session

import (
	"errors"
	"sort"
	"sync"
)

// ErrCanvasBusy reports that another session currently holds the edit lock
// for the requested canvas. Callers surface it to the user and retry later;
// it is an expected outcome, not a failure.
var ErrCanvasBusy = errors.New("session: canvas is being edited by another session")

// Coordinator hands out exclusive edit locks on canvases, keyed by canvas
// name. Thread-safe for concurrent access.
type Coordinator struct {
	mu      sync.RWMutex
	holders map[string]SessionID // canvas name -> holding session
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		holders: make(map[string]SessionID),
	}
}

// Acquire takes the edit lock on a canvas for the given session.
// Re-acquiring a lock the session already holds succeeds. Returns
// ErrCanvasBusy when another session holds it.
func (c *Coordinator) Acquire(canvasName string, id SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if holder, held := c.holders[canvasName]; held && holder != id {
		return ErrCanvasBusy
	}

	c.holders[canvasName] = id
	return nil
}

// Release gives up the edit lock on a canvas. Only the holding session can
// release it; releasing an unheld or foreign lock is a no-op.
func (c *Coordinator) Release(canvasName string, id SessionID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.holders[canvasName] == id {
		delete(c.holders, canvasName)
	}
}

// ReleaseSession gives up every lock the session holds and returns the
// released canvas names. Called when a connection ends, so locks die with
// the session and callers can drop any state keyed on them.
func (c *Coordinator) ReleaseSession(id SessionID) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var released []string
	for name, holder := range c.holders {
		if holder == id {
			released = append(released, name)
			delete(c.holders, name)
		}
	}
	return released
}

// Holder returns the session holding the lock for a canvas, if any.
func (c *Coordinator) Holder(canvasName string) (SessionID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.holders[canvasName]
	return id, ok
}

// Active returns the names of all locked canvases, sorted.
func (c *Coordinator) Active() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.holders))
	for name := range c.holders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
