package core

// DefaultCanvasWidth is the canvas width, in grid units, used whenever a
// caller does not supply one.
const DefaultCanvasWidth = 50

// SizePrefs holds a component's declared size preferences. Default is
// required and strictly positive by convention; Min and Max are optional.
// A nil Min means no floor, a nil Max means no ceiling. The core reads
// these values but never mutates them.
type SizePrefs struct {
	Default Size
	Min     *Size
	Max     *Size
}

// MinWidth returns the declared minimum width, or 0 when no minimum is set.
func (p SizePrefs) MinWidth() int {
	if p.Min == nil {
		return 0
	}
	return p.Min.Width
}

// ResolvedSize is the outcome of ResolveSize: the size to actually use and
// whether it differs from the declared default.
type ResolvedSize struct {
	Width    int
	Height   int
	Adjusted bool
}

// Placement is a resolved bounding box plus two independent flags reporting
// whether the position or the size had to be corrected. The flags are
// informational only; an adjusted placement is still a valid placement.
type Placement struct {
	X, Y             int
	Width, Height    int
	PositionAdjusted bool
	SizeAdjusted     bool
}

// Box returns the placement's bounding box as a Rect.
func (p Placement) Box() Rect {
	return NewRect(p.X, p.Y, p.Width, p.Height)
}

// CanFit reports whether a component whose minimum width is minWidth can
// exist anywhere on a canvas of the given width. Equality counts as fitting.
// A component with no declared minimum has minWidth 0 and always fits.
// Inputs are not validated; a negative canvas width degenerates to the plain
// comparison.
func CanFit(minWidth, canvasWidth int) bool {
	return minWidth <= canvasWidth
}

// ResolveSize computes the size a component actually occupies on a canvas of
// the given width. The width starts at the default, is lowered to the canvas
// width, lowered again to the declared maximum, and finally raised to the
// declared minimum. The floor wins last: an explicit minimum can push the
// final width above both the canvas width and the maximum. Callers reject
// components whose minimum cannot fit via CanFit before resolving.
//
// Height always equals the default height. The canvas has no vertical
// ceiling, so min/max heights are carried in SizePrefs but never applied.
func ResolveSize(prefs SizePrefs, canvasWidth int) ResolvedSize {
	width := prefs.Default.Width
	width = Min(width, canvasWidth)
	if prefs.Max != nil {
		width = Min(width, prefs.Max.Width)
	}
	if prefs.Min != nil {
		width = Max(width, prefs.Min.Width)
	}
	return ResolvedSize{
		Width:    width,
		Height:   prefs.Default.Height,
		Adjusted: width != prefs.Default.Width,
	}
}

// ResolvePosition clamps a proposed top-left anchor so the box stays within
// the canvas horizontally while the vertical axis remains unbounded below.
// The left edge is corrected before the right edge, so a width larger than
// the canvas resolves to a negative x; that degenerate output is accepted
// because the pipeline rejects such components up front. A negative y is
// raised to 0; any non-negative y is kept as proposed, however large.
// Width and height pass through unchanged for caller convenience.
func ResolvePosition(x, y, width, height, canvasWidth int) Placement {
	newX := x
	if newX < 0 {
		newX = 0
	}
	if newX+width > canvasWidth {
		newX = canvasWidth - width
	}
	newY := y
	if newY < 0 {
		newY = 0
	}
	return Placement{
		X:                newX,
		Y:                newY,
		Width:            width,
		Height:           height,
		PositionAdjusted: newX != x || newY != y,
	}
}

// Resolve runs the whole placement pipeline: fit check, size resolution,
// position resolution. Passing canvasWidth 0 selects DefaultCanvasWidth.
//
// The boolean result is false when the component's minimum width exceeds the
// canvas width, meaning it cannot be placed at any position. That is a
// normal outcome for callers to branch on, not an error.
func Resolve(prefs SizePrefs, x, y, canvasWidth int) (Placement, bool) {
	if canvasWidth == 0 {
		canvasWidth = DefaultCanvasWidth
	}
	if !CanFit(prefs.MinWidth(), canvasWidth) {
		return Placement{}, false
	}
	size := ResolveSize(prefs, canvasWidth)
	placed := ResolvePosition(x, y, size.Width, size.Height, canvasWidth)
	placed.SizeAdjusted = size.Adjusted
	return placed, true
}
