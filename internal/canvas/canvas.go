// Package canvas provides the mutable layout model: named canvases holding
// placed components. All boundary decisions are delegated to the pure
// resolver in internal/core; this layer owns identity, ordering, and state.
package canvas

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
)

// ErrCannotPlace reports that a component's minimum width exceeds the
// canvas width, so it cannot be placed at any position. Callers branch on
// it as a normal outcome, not a failure.
var ErrCannotPlace = errors.New("canvas: component cannot be placed")

// ErrItemNotFound reports that no item with the requested ID is on the
// canvas.
var ErrItemNotFound = errors.New("canvas: item not found")

// Item is a component placed on a canvas. The adjustment flags record
// whether the resolver had to correct the caller's proposal; they are
// informational and do not affect later operations.
type Item struct {
	ID               int
	Component        string
	Title            string
	Box              core.Rect
	SizeAdjusted     bool
	PositionAdjusted bool
}

// Canvas is a fixed-width, vertically unbounded surface holding placed
// components. Draw order follows insertion order: later items draw above
// earlier ones. A Canvas is not safe for concurrent use; each designer
// session owns its own.
type Canvas struct {
	Name   string
	Width  int
	nextID int
	items  []Item
}

// New creates an empty canvas. A width of 0 selects core.DefaultCanvasWidth.
func New(name string, width int) *Canvas {
	if width == 0 {
		width = core.DefaultCanvasWidth
	}
	return &Canvas{
		Name:   name,
		Width:  width,
		nextID: 1,
	}
}

// Place resolves a placement for the component and appends it to the
// canvas. Returns an error wrapping ErrCannotPlace when the component's
// minimum width exceeds the canvas width.
func (c *Canvas) Place(def catalog.Definition, x, y int) (Item, error) {
	placed, ok := core.Resolve(def.Prefs, x, y, c.Width)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q needs at least %d columns, canvas has %d",
			ErrCannotPlace, def.ID, def.Prefs.MinWidth(), c.Width)
	}

	item := Item{
		ID:               c.nextID,
		Component:        def.ID,
		Title:            def.Title,
		Box:              placed.Box(),
		SizeAdjusted:     placed.SizeAdjusted,
		PositionAdjusted: placed.PositionAdjusted,
	}
	c.nextID++
	c.items = append(c.items, item)

	return item, nil
}

// Move re-anchors an existing item at (x, y), clamping the position the
// same way Place does. The item's size is preserved. Returns the updated
// item.
func (c *Canvas) Move(id, x, y int) (Item, error) {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		box := c.items[i].Box
		placed := core.ResolvePosition(x, y, box.W, box.H, c.Width)
		c.items[i].Box = placed.Box()
		c.items[i].PositionAdjusted = placed.PositionAdjusted
		return c.items[i], nil
	}
	return Item{}, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
}

// Remove deletes an item from the canvas, preserving the order of the rest.
func (c *Canvas) Remove(id int) error {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrItemNotFound, id)
}

// Item returns the item with the given ID.
func (c *Canvas) Item(id int) (Item, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Items returns the placed items in draw order (insertion order).
func (c *Canvas) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of placed items.
func (c *Canvas) Len() int {
	return len(c.items)
}

// Height returns the bottom edge of the lowest item, the number of rows the
// canvas currently occupies. An empty canvas has height 0; there is no
// upper bound.
func (c *Canvas) Height() int {
	h := 0
	for _, item := range c.items {
		h = core.Max(h, item.Box.Bottom())
	}
	return h
}

// ItemAt returns the topmost item covering the cell (x, y).
func (c *Canvas) ItemAt(x, y int) (Item, bool) {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].Box.Contains(x, y) {
			return c.items[i], true
		}
	}
	return Item{}, false
}

// Overlapping returns the items whose boxes intersect the given rect.
func (c *Canvas) Overlapping(box core.Rect) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Box.Intersects(box) {
			out = append(out, item)
		}
	}
	return out
}

// Restore replaces the canvas contents with previously saved items. IDs are
// preserved; newly placed items continue after the highest restored ID.
func (c *Canvas) Restore(items []Item) {
	c.items = make([]Item, len(items))
	copy(c.items, items)
	c.nextID = 1
	for _, item := range items {
		if item.ID >= c.nextID {
			c.nextID = item.ID + 1
		}
	}
}
