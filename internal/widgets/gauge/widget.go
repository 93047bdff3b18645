// Package gauge provides a single-row progress bar widget.
package gauge

import (
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Widget renders a horizontal progress bar.
type Widget struct {
	ratio float64 // Fill fraction in [0, 1]
}

// New creates a gauge with placeholder fill.
func New() *Widget {
	return &Widget{ratio: 0.65}
}

func init() {
	catalog.Register(catalog.Definition{
		ID:    "gauge",
		Title: "Gauge",
		Prefs: core.SizePrefs{
			Default: core.Size{Width: 20, Height: 3},
			Min:     &core.Size{Width: 8, Height: 3},
			Max:     &core.Size{Width: 60, Height: 3},
		},
		New: func() catalog.Renderer { return New() },
	})
}

// Render draws the bar on the middle row of the content area.
func (w *Widget) Render(s *render.Surface, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	ratio := core.ClampF(w.ratio, 0, 1)
	filled := int(float64(r.W) * ratio)
	y := r.Y + r.H/2

	for i := 0; i < r.W; i++ {
		if i < filled {
			s.SetCell(r.X+i, y, '█', render.ColorGreen)
		} else {
			s.SetCell(r.X+i, y, '░', render.ColorGray)
		}
	}
}
