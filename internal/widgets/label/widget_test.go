package label

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

func TestRenderLines(t *testing.T) {
	s := render.NewSurface(30, 5)
	w := New()
	w.Render(s, core.NewRect(0, 0, 20, 3))

	if !strings.HasPrefix(s.Row(0), "Lorem ipsum dolor") {
		t.Errorf("row 0 = %q, expected the first line", s.Row(0))
	}
	if !strings.HasPrefix(s.Row(1), "sit amet") {
		t.Errorf("row 1 = %q, expected the second line", s.Row(1))
	}
	if strings.TrimRight(s.Row(2), " ") != "" {
		t.Errorf("row 2 = %q, expected it empty", s.Row(2))
	}
}

func TestRenderClipsToRect(t *testing.T) {
	s := render.NewSurface(30, 5)
	w := New()
	w.Render(s, core.NewRect(0, 0, 5, 1))

	if got := strings.TrimRight(s.Row(0), " "); got != "Lorem" {
		t.Errorf("row 0 = %q, expected the first line clipped to the rect", got)
	}
	if strings.TrimRight(s.Row(1), " ") != "" {
		t.Error("rows past the rect height should stay empty")
	}
}

func TestRenderOffsetRect(t *testing.T) {
	s := render.NewSurface(30, 8)
	w := New()
	w.Render(s, core.NewRect(3, 2, 20, 3))

	if s.Get(3, 2) != 'L' {
		t.Errorf("cell (3, 2) = %q, expected the text anchored at the rect origin", s.Get(3, 2))
	}
	if strings.TrimRight(s.Row(0), " ") != "" {
		t.Error("rows above the rect should stay empty")
	}
}
