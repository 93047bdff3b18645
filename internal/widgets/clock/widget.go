// Package clock provides an exact-size clock face widget. Its minimum,
// default, and maximum sizes are all equal, so it either fits as-is or
// cannot be placed.
package clock

import (
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Widget renders a static clock face.
type Widget struct {
	face string
}

// New creates a clock with placeholder content.
func New() *Widget {
	return &Widget{face: "12:00:00"}
}

func init() {
	size := core.Size{Width: 12, Height: 3}
	catalog.Register(catalog.Definition{
		ID:    "clock",
		Title: "Clock",
		Prefs: core.SizePrefs{
			Default: size,
			Min:     &size,
			Max:     &size,
		},
		New: func() catalog.Renderer { return New() },
	})
}

// Render draws the face centered in the content area.
func (w *Widget) Render(s *render.Surface, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	text := w.face
	if len(text) > r.W {
		text = text[:r.W]
	}
	cx, cy := r.Center()
	s.DrawTextColor(cx-len(text)/2, cy, text, render.ColorCyan)
}
