package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

type dotRenderer struct{}

func (dotRenderer) Render(s *render.Surface, r core.Rect) {
	s.Set(r.X, r.Y, '*')
}

func testDef(id string, prefs core.SizePrefs) catalog.Definition {
	return catalog.Definition{
		ID:    id,
		Title: id,
		Prefs: prefs,
		New:   func() catalog.Renderer { return dotRenderer{} },
	}
}

func TestNewDefaultWidth(t *testing.T) {
	c := New("dash", 0)
	if c.Width != core.DefaultCanvasWidth {
		t.Errorf("New with width 0: Width = %d, expected %d", c.Width, core.DefaultCanvasWidth)
	}

	c = New("narrow", 30)
	if c.Width != 30 {
		t.Errorf("Width = %d, expected 30", c.Width)
	}
}

func TestPlace(t *testing.T) {
	c := New("dash", 50)
	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 20, Height: 10}})

	item, err := c.Place(def, 5, 3)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}
	if item.ID != 1 {
		t.Errorf("first item ID = %d, expected 1", item.ID)
	}
	if item.Box != core.NewRect(5, 3, 20, 10) {
		t.Errorf("Box = %+v, expected {5 3 20 10}", item.Box)
	}
	if item.SizeAdjusted || item.PositionAdjusted {
		t.Errorf("in-bounds placement should not be adjusted: %+v", item)
	}

	// Overflowing proposal gets pulled back and flagged
	item, err = c.Place(def, 45, -2)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}
	if item.ID != 2 {
		t.Errorf("second item ID = %d, expected 2", item.ID)
	}
	if item.Box.X != 30 || item.Box.Y != 0 {
		t.Errorf("Box = %+v, expected x=30 y=0", item.Box)
	}
	if !item.PositionAdjusted {
		t.Error("PositionAdjusted should be true for a corrected proposal")
	}
	if item.SizeAdjusted {
		t.Error("SizeAdjusted should be false when the default width fits")
	}
}

func TestPlaceCannotPlace(t *testing.T) {
	c := New("dash", 50)
	wide := testDef("wide", core.SizePrefs{
		Default: core.Size{Width: 60, Height: 10},
		Min:     &core.Size{Width: 60, Height: 10},
	})

	_, err := c.Place(wide, 10, 0)
	if !errors.Is(err, ErrCannotPlace) {
		t.Fatalf("Place() error = %v, expected ErrCannotPlace", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed Place should not add items, Len = %d", c.Len())
	}
	if !strings.Contains(err.Error(), "60") {
		t.Errorf("error should name the required width, got %q", err.Error())
	}
}

func TestMove(t *testing.T) {
	c := New("dash", 50)
	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 20, Height: 10}})

	placed, err := c.Place(def, 0, 0)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}

	moved, err := c.Move(placed.ID, 10, 5)
	if err != nil {
		t.Fatalf("Move() returned error: %v", err)
	}
	if moved.Box != core.NewRect(10, 5, 20, 10) {
		t.Errorf("Box = %+v, expected {10 5 20 10}", moved.Box)
	}
	if moved.PositionAdjusted {
		t.Error("in-bounds move should not be flagged")
	}

	// Moving past the right edge re-clamps and flags
	moved, err = c.Move(placed.ID, 40, 5)
	if err != nil {
		t.Fatalf("Move() returned error: %v", err)
	}
	if moved.Box.X != 30 {
		t.Errorf("Box.X = %d, expected 30", moved.Box.X)
	}
	if !moved.PositionAdjusted {
		t.Error("clamped move should set PositionAdjusted")
	}
	if moved.Box.W != 20 || moved.Box.H != 10 {
		t.Errorf("Move must preserve size, got %dx%d", moved.Box.W, moved.Box.H)
	}

	if _, err := c.Move(99, 0, 0); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Move(99) error = %v, expected ErrItemNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	c := New("dash", 50)
	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 10, Height: 4}})

	a, _ := c.Place(def, 0, 0)
	b, _ := c.Place(def, 10, 0)
	d, _ := c.Place(def, 20, 0)

	if err := c.Remove(b.ID); err != nil {
		t.Fatalf("Remove() returned error: %v", err)
	}

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("Len = %d, expected 2", len(items))
	}
	if items[0].ID != a.ID || items[1].ID != d.ID {
		t.Errorf("Remove should preserve order, got IDs %d, %d", items[0].ID, items[1].ID)
	}

	if err := c.Remove(b.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("removing a removed item: error = %v, expected ErrItemNotFound", err)
	}
}

func TestItemAndItemAt(t *testing.T) {
	c := New("dash", 50)
	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 20, Height: 10}})

	first, _ := c.Place(def, 0, 0)
	second, _ := c.Place(def, 10, 5) // overlaps the first

	got, ok := c.Item(first.ID)
	if !ok || got.ID != first.ID {
		t.Errorf("Item(%d) = %+v, %v", first.ID, got, ok)
	}
	if _, ok := c.Item(99); ok {
		t.Error("Item(99) should report not found")
	}

	// In the overlap region the later item is on top
	top, ok := c.ItemAt(15, 7)
	if !ok || top.ID != second.ID {
		t.Errorf("ItemAt(15, 7) = %+v, expected the later item on top", top)
	}

	// Outside the overlap the first item is hit
	top, ok = c.ItemAt(5, 2)
	if !ok || top.ID != first.ID {
		t.Errorf("ItemAt(5, 2) = %+v, expected the first item", top)
	}

	if _, ok := c.ItemAt(49, 49); ok {
		t.Error("ItemAt on empty cell should report not found")
	}
}

func TestHeightGrowsDownward(t *testing.T) {
	c := New("dash", 50)
	if c.Height() != 0 {
		t.Errorf("empty canvas Height = %d, expected 0", c.Height())
	}

	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 20, Height: 10}})
	c.Place(def, 0, 0)
	if c.Height() != 10 {
		t.Errorf("Height = %d, expected 10", c.Height())
	}

	// A deep placement grows the canvas; nothing clamps y
	c.Place(def, 0, 200)
	if c.Height() != 210 {
		t.Errorf("Height = %d, expected 210", c.Height())
	}
}

func TestOverlapping(t *testing.T) {
	c := New("dash", 50)
	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 10, Height: 4}})

	a, _ := c.Place(def, 0, 0)
	c.Place(def, 20, 20)

	hits := c.Overlapping(core.NewRect(5, 2, 10, 4))
	if len(hits) != 1 || hits[0].ID != a.ID {
		t.Errorf("Overlapping = %+v, expected only the first item", hits)
	}

	if hits := c.Overlapping(core.NewRect(40, 40, 5, 5)); len(hits) != 0 {
		t.Errorf("Overlapping on empty region = %+v, expected none", hits)
	}
}

func TestRestore(t *testing.T) {
	c := New("dash", 50)
	c.Restore([]Item{
		{ID: 3, Component: "panel", Title: "panel", Box: core.NewRect(0, 0, 10, 4)},
		{ID: 7, Component: "panel", Title: "panel", Box: core.NewRect(10, 0, 10, 4)},
	})

	if c.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", c.Len())
	}
	if _, ok := c.Item(7); !ok {
		t.Error("restored item 7 should be present")
	}

	def := testDef("panel", core.SizePrefs{Default: core.Size{Width: 10, Height: 4}})
	item, err := c.Place(def, 20, 0)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}
	if item.ID != 8 {
		t.Errorf("ID after restore = %d, expected 8", item.ID)
	}
}

func TestDraw(t *testing.T) {
	catalog.Register(testDef("draw-dot", core.SizePrefs{Default: core.Size{Width: 12, Height: 4}}))
	def, err := catalog.Get("draw-dot")
	if err != nil {
		t.Fatal(err)
	}

	c := New("dash", 30)
	item, err := c.Place(def, 2, 1)
	if err != nil {
		t.Fatalf("Place() returned error: %v", err)
	}

	s := Draw(c, 0)
	if s.Width() != 30 || s.Height() != 5 {
		t.Fatalf("surface = %dx%d, expected 30x5", s.Width(), s.Height())
	}

	// Frame corners
	if s.Get(item.Box.X, item.Box.Y) != '┌' || s.Get(item.Box.Right()-1, item.Box.Bottom()-1) != '┘' {
		t.Errorf("item frame missing:\n%s", s.String())
	}
	// Title on the top border
	if !strings.Contains(s.Row(item.Box.Y), "draw-dot") {
		t.Errorf("title missing from top border: %q", s.Row(item.Box.Y))
	}
	// Widget content in the interior
	if s.Get(item.Box.X+1, item.Box.Y+1) != '*' {
		t.Errorf("widget content missing:\n%s", s.String())
	}
}

func TestDrawMinHeight(t *testing.T) {
	c := New("dash", 30)
	s := Draw(c, 12)
	if s.Height() != 12 {
		t.Errorf("Height = %d, expected the minimum 12", s.Height())
	}
}

func TestDrawUnknownComponent(t *testing.T) {
	c := New("dash", 30)
	c.Restore([]Item{
		{ID: 1, Component: "gone", Title: "gone", Box: core.NewRect(0, 0, 10, 4)},
	})

	s := Draw(c, 0)
	if s.Get(1, 1) != '?' {
		t.Errorf("stale component should render a '?' marker:\n%s", s.String())
	}
}
