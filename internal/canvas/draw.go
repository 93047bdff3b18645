package canvas

import (
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Draw renders the canvas onto a fresh surface. The surface is at least
// minHeight rows tall and grows to fit the lowest item. Items draw in
// insertion order, so later placements cover earlier ones.
func Draw(c *Canvas, minHeight int) *render.Surface {
	s := render.NewSurface(c.Width, core.Max(c.Height(), minHeight))
	for _, item := range c.items {
		DrawItem(s, item)
	}
	return s
}

// DrawItem draws one item's frame, title, and widget content. The footprint
// is blanked first so items underneath do not bleed through.
func DrawItem(s *render.Surface, item Item) {
	s.DrawRect(item.Box, ' ')
	s.DrawBox(item.Box)
	drawTitle(s, item)

	def, err := catalog.Get(item.Component)
	if err != nil {
		// The catalog no longer knows this component (stale saved canvas).
		// Keep the frame and mark the body.
		s.DrawText(item.Box.X+1, item.Box.Y+1, "?")
		return
	}
	def.New().Render(s, Interior(item.Box))
}

// drawTitle writes the item title into the top border, truncated to keep
// the corners intact.
func drawTitle(s *render.Surface, item Item) {
	maxLen := item.Box.W - 4
	if maxLen <= 0 {
		return
	}
	title := item.Title
	if len(title) > maxLen {
		title = title[:maxLen]
	}
	s.DrawText(item.Box.X+2, item.Box.Y, title)
}

// Interior returns the content area inside an item's frame.
func Interior(box core.Rect) core.Rect {
	return core.NewRect(box.X+1, box.Y+1, core.Max(box.W-2, 0), core.Max(box.H-2, 0))
}
