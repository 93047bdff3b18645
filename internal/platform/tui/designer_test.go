package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-canvas/internal/canvas"
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/config"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

type nullRenderer struct{}

func (nullRenderer) Render(s *render.Surface, r core.Rect) {}

func paneDef(w, h int) catalog.Definition {
	return catalog.Definition{
		ID:    "pane",
		Title: "Pane",
		Prefs: core.SizePrefs{Default: core.Size{Width: w, Height: h}},
		New:   func() catalog.Renderer { return nullRenderer{} },
	}
}

func TestSelectedStatusCountsOverlaps(t *testing.T) {
	cv := canvas.New("grid", 50)
	if _, err := cv.Place(paneDef(20, 6), 0, 0); err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}
	top, err := cv.Place(paneDef(20, 6), 10, 3)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}

	m := NewDesignerModel(cv, nil, config.DefaultConfig(), 80, 24)
	m.mode = modeSelected
	m.selected = top.ID

	if got := m.statusView(); !strings.Contains(got, "overlaps 1") {
		t.Errorf("status = %q, expected an overlap hint", got)
	}
}

func TestSelectedStatusSkipsOverlapHintWhenClear(t *testing.T) {
	cv := canvas.New("grid", 50)
	item, err := cv.Place(paneDef(20, 6), 0, 0)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}

	m := NewDesignerModel(cv, nil, config.DefaultConfig(), 80, 24)
	m.mode = modeSelected
	m.selected = item.ID

	if got := m.statusView(); strings.Contains(got, "overlaps") {
		t.Errorf("status = %q, expected no overlap hint for a lone item", got)
	}
}
