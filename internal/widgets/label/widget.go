// Package label provides a free-form text block widget.
package label

import (
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Widget renders a few lines of placeholder text.
type Widget struct {
	lines []string
}

// New creates a label with placeholder content.
func New() *Widget {
	return &Widget{
		lines: []string{
			"Lorem ipsum dolor",
			"sit amet",
		},
	}
}

func init() {
	catalog.Register(catalog.Definition{
		ID:    "label",
		Title: "Label",
		Prefs: core.SizePrefs{
			Default: core.Size{Width: 20, Height: 3},
		},
		New: func() catalog.Renderer { return New() },
	})
}

// Render draws the text clipped to the content area.
func (w *Widget) Render(s *render.Surface, r core.Rect) {
	for i, line := range w.lines {
		if i >= r.H {
			break
		}
		if len(line) > r.W {
			line = line[:r.W]
		}
		s.DrawText(r.X, r.Y+i, line)
	}
}
