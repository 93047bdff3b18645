// Package sparkline provides a mini bar-chart widget.
package sparkline

import (
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Widget renders a repeating triangle wave as vertical bars.
type Widget struct {
	period int
}

// New creates a sparkline with placeholder content.
func New() *Widget {
	return &Widget{period: 8}
}

func init() {
	catalog.Register(catalog.Definition{
		ID:    "sparkline",
		Title: "Sparkline",
		Prefs: core.SizePrefs{
			Default: core.Size{Width: 25, Height: 8},
			Min:     &core.Size{Width: 10, Height: 4},
		},
		New: func() catalog.Renderer { return New() },
	})
}

// Render draws one bar per column, anchored to the bottom edge.
func (w *Widget) Render(s *render.Surface, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	peak := core.Max(w.period/2, 1)
	for i := 0; i < r.W; i++ {
		v := core.Abs(i%w.period - peak) // Triangle wave in [0, peak]
		barH := core.Clamp(1+v*(r.H-1)/peak, 1, r.H)
		s.DrawVLine(r.X+i, r.Bottom()-barH, barH, '▌')
	}
}
