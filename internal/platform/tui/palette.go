package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
)

// PaletteModel is the component picker overlay shown when adding a component
// to the canvas. The designer drives it while in palette mode.
type PaletteModel struct {
	items  []catalog.Definition
	cursor int
}

// NewPaletteModel creates a palette over the current catalog contents.
func NewPaletteModel() PaletteModel {
	return PaletteModel{items: catalog.List()}
}

// MoveUp moves the cursor one entry up.
func (m PaletteModel) MoveUp() PaletteModel {
	if m.cursor > 0 {
		m.cursor--
	}
	return m
}

// MoveDown moves the cursor one entry down.
func (m PaletteModel) MoveDown() PaletteModel {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
	return m
}

// Selected returns the definition under the cursor, or false when the
// catalog is empty.
func (m PaletteModel) Selected() (catalog.Definition, bool) {
	if len(m.items) == 0 {
		return catalog.Definition{}, false
	}
	return m.items[m.cursor], true
}

// Len returns the number of components in the palette.
func (m PaletteModel) Len() int {
	return len(m.items)
}

// View renders the picker list.
func (m PaletteModel) View(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("ADD COMPONENT", width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No components registered.", width))
		b.WriteString("\n")
		return b.String()
	}

	for i, def := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-12s %-16s %s", cursor, def.ID, def.Title, describePrefs(def.Prefs))
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Place  |  Esc: Back  |  Q: Quit", width))

	return b.String()
}

// describePrefs formats a component's size preferences for display.
func describePrefs(prefs core.SizePrefs) string {
	s := fmt.Sprintf("%dx%d", prefs.Default.Width, prefs.Default.Height)
	if prefs.Min != nil {
		s += fmt.Sprintf("  min %dx%d", prefs.Min.Width, prefs.Min.Height)
	}
	if prefs.Max != nil {
		s += fmt.Sprintf("  max %dx%d", prefs.Max.Width, prefs.Max.Height)
	}
	return s
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
