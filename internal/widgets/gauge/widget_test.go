package gauge

import (
	"testing"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

func TestRenderFillProportion(t *testing.T) {
	s := render.NewSurface(30, 5)
	w := New()
	w.Render(s, core.NewRect(0, 0, 20, 3))

	y := 1 // middle row of a height-3 rect
	filled := 0
	for x := 0; x < 20; x++ {
		if s.Get(x, y) == '█' {
			filled++
		}
	}
	if filled != 13 { // 65% of 20 columns
		t.Errorf("filled cells = %d, expected 13", filled)
	}
	if s.Get(19, y) != '░' {
		t.Errorf("track cell = %q, expected '░'", s.Get(19, y))
	}

	// Bar and track carry their colors
	if s.GetCell(0, y).Color != render.ColorGreen {
		t.Error("filled cells should be green")
	}
	if s.GetCell(19, y).Color != render.ColorGray {
		t.Error("track cells should be gray")
	}
}

func TestRenderDegenerateRect(t *testing.T) {
	s := render.NewSurface(10, 10)
	w := New()

	w.Render(s, core.NewRect(0, 0, 0, 0)) // must not draw anything
	if s.Get(0, 0) != ' ' {
		t.Error("zero-size rect should draw nothing")
	}
}

func TestRegistered(t *testing.T) {
	def, err := catalog.Get("gauge")
	if err != nil {
		t.Fatalf("gauge should self-register: %v", err)
	}
	if def.Prefs.Min == nil || def.Prefs.Max == nil {
		t.Error("gauge should declare both minimum and maximum sizes")
	}
}
