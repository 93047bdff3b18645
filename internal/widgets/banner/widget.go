// Package banner provides a wide heading widget that shrinks onto narrow
// canvases.
package banner

import (
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Widget renders a centered heading between horizontal rules.
type Widget struct {
	text string
}

// New creates a banner with placeholder content.
func New() *Widget {
	return &Widget{text: "DASHBOARD"}
}

func init() {
	catalog.Register(catalog.Definition{
		ID:    "banner",
		Title: "Banner",
		Prefs: core.SizePrefs{
			Default: core.Size{Width: 60, Height: 5},
			Min:     &core.Size{Width: 24, Height: 3},
		},
		New: func() catalog.Renderer { return New() },
	})
}

// Render draws the heading centered in the content area.
func (w *Widget) Render(s *render.Surface, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	text := w.text
	if len(text) > r.W {
		text = text[:r.W]
	}
	cx, cy := r.Center()
	s.DrawTextColor(cx-len(text)/2, cy, text, render.ColorBrightWhite)

	if r.H >= 3 {
		s.DrawHLine(r.X, r.Y, r.W, '═')
		s.DrawHLine(r.X, r.Bottom()-1, r.W, '═')
	}
}
