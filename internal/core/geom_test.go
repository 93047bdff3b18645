package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "panels sharing rows and columns",
			a:    NewRect(0, 0, 20, 6),
			b:    NewRect(10, 3, 20, 6),
			want: true,
		},
		{
			name: "side by side with a gap",
			a:    NewRect(0, 0, 24, 10),
			b:    NewRect(26, 0, 24, 10),
			want: false,
		},
		{
			name: "same column, separate rows",
			a:    NewRect(5, 0, 40, 5),
			b:    NewRect(5, 8, 40, 5),
			want: false,
		},
		{
			name: "flush right edge to left edge",
			a:    NewRect(0, 0, 25, 8),
			b:    NewRect(25, 0, 25, 8),
			want: false,
		},
		{
			name: "flush bottom edge to top edge",
			a:    NewRect(0, 0, 50, 12),
			b:    NewRect(0, 12, 50, 12),
			want: false,
		},
		{
			name: "badge inside a panel",
			a:    NewRect(0, 0, 50, 12),
			b:    NewRect(35, 2, 12, 3),
			want: true,
		},
		{
			name: "corner cell shared",
			a:    NewRect(0, 0, 20, 6),
			b:    NewRect(19, 5, 20, 6),
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			if got := tc.b.Intersects(tc.a); got != tc.want {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	// Hit testing against a log panel placed a little into the canvas
	panel := NewRect(4, 2, 50, 12)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"cursor inside", 20, 8, true},
		{"top-left corner", 4, 2, true},
		{"last interior cell", 53, 13, true},
		{"right edge is exclusive", 54, 8, false},
		{"bottom edge is exclusive", 20, 14, false},
		{"left of the panel", 3, 8, false},
		{"above the panel", 20, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := panel.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectFromSize(t *testing.T) {
	// Boxes are built the way the designer builds ghost boxes: an anchor
	// plus the component's default size.
	def := Size{Width: 25, Height: 8}
	box := NewRect(12, 4, def.Width, def.Height)

	if box.Right() != 37 {
		t.Errorf("Right() = %d, expected 37", box.Right())
	}
	if box.Bottom() != 12 {
		t.Errorf("Bottom() = %d, expected 12", box.Bottom())
	}
	cx, cy := box.Center()
	if cx != 24 || cy != 8 {
		t.Errorf("Center() = (%d, %d), expected (24, 8)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	// Viewport scrolling over a canvas occupying rows 0-29
	tests := []struct {
		name          string
		top, min, max int
		want          int
	}{
		{"mid scroll", 6, 0, 29, 6},
		{"before the first row", -3, 0, 29, 0},
		{"past the last row", 40, 0, 29, 29},
		{"at the first row", 0, 0, 29, 0},
		{"at the last row", 29, 0, 29, 29},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.top, tc.min, tc.max); got != tc.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.top, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	// Gauge fill fractions stay in [0, 1] whatever the data source reports
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"normal fill", 0.65, 0.65},
		{"negative reading", -0.2, 0},
		{"overshoot", 1.7, 1},
		{"empty", 0, 0},
		{"full", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.ratio, 0, 1); got != tc.want {
				t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	// Canvas height tracking: the max of the current bottom edges
	if got := Max(0, 12); got != 12 {
		t.Errorf("Max(0, 12) = %d, expected 12", got)
	}
	if got := Max(12, 9); got != 12 {
		t.Errorf("Max(12, 9) = %d, expected 12", got)
	}

	// Width capping: a wide default against a narrow canvas
	if got := Min(60, 50); got != 50 {
		t.Errorf("Min(60, 50) = %d, expected 50", got)
	}
	if got := Min(20, 50); got != 20 {
		t.Errorf("Min(20, 50) = %d, expected 20", got)
	}
}

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{-4, 4}, {4, 4}, {0, 0}} {
		if got := Abs(tc.in); got != tc.want {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
