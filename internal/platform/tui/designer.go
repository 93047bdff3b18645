package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-canvas/internal/canvas"
	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/config"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
	"github.com/vovakirdan/tui-canvas/internal/storage"
)

// designerMode is the designer's current interaction state.
type designerMode int

const (
	// modeBrowse is the neutral state: scroll the canvas, open the palette,
	// or pick an item.
	modeBrowse designerMode = iota
	// modePalette shows the component picker.
	modePalette
	// modePlacing moves a ghost box; Enter commits the placement.
	modePlacing
	// modeSelected has an item selected for moving or deleting.
	modeSelected
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	flashStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// DesignerModel is the Bubble Tea model for the interactive canvas designer.
type DesignerModel struct {
	cv    *canvas.Canvas
	store *storage.Store // nil when running without persistence
	cfg   config.Config
	keys  DesignerKeyMap
	help  help.Model

	mode    designerMode
	palette PaletteModel

	// Ghost box state while placing
	ghostDef catalog.Definition
	ghostX   int
	ghostY   int

	selected int // Item ID in modeSelected
	viewTop  int // First visible canvas row
	width    int
	height   int
	showGrid bool

	// Status flash state
	status      string
	statusBad   bool // Render the flash as a rejection
	statusTicks int

	dirty    bool
	back     bool // Leave the designer (back to browser in SSH sessions)
	quitting bool
}

// NewDesignerModel creates a designer for the given canvas.
// A nil store disables saving but everything else works.
func NewDesignerModel(cv *canvas.Canvas, store *storage.Store, cfg config.Config, width, height int) DesignerModel {
	h := help.New()
	h.ShowAll = false

	return DesignerModel{
		cv:       cv,
		store:    store,
		cfg:      cfg,
		keys:     DefaultDesignerKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		showGrid: cfg.Designer.ShowGrid,
	}
}

// Init initializes the designer.
func (m DesignerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the designer state.
func (m DesignerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick counts the status flash down and stops ticking when it expires.
func (m DesignerModel) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTicks <= 0 {
		return m, nil
	}
	m.statusTicks--
	if m.statusTicks == 0 {
		m.status = ""
		return m, nil
	}
	return m, tickCmd()
}

// handleKey dispatches keyboard input by interaction mode.
func (m DesignerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys work in every mode
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.Grid):
		m.showGrid = !m.showGrid
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.mode {
	case modePalette:
		return m.handlePaletteKey(msg)
	case modePlacing:
		return m.handlePlacingKey(msg)
	case modeSelected:
		return m.handleSelectedKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m DesignerModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.back = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modePalette
		m.palette = NewPaletteModel()

	case key.Matches(msg, m.keys.Next):
		m = m.selectNext()

	case key.Matches(msg, m.keys.Up):
		m.viewTop = core.Max(m.viewTop-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.viewTop = m.clampScroll(m.viewTop + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewTop = core.Max(m.viewTop-m.visibleRows(), 0)
	case key.Matches(msg, m.keys.PageDown):
		m.viewTop = m.clampScroll(m.viewTop + m.visibleRows())
	}

	return m, nil
}

func (m DesignerModel) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse

	case key.Matches(msg, m.keys.Up):
		m.palette = m.palette.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.palette = m.palette.MoveDown()

	case key.Matches(msg, m.keys.Confirm):
		def, ok := m.palette.Selected()
		if !ok {
			m.mode = modeBrowse
			break
		}
		m.mode = modePlacing
		m.ghostDef = def
		m.ghostX = 0
		m.ghostY = m.viewTop
	}

	return m, nil
}

func (m DesignerModel) handlePlacingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse

	// The ghost moves freely, past every edge: committing clamps it back,
	// and that correction is exactly what the snap feedback shows.
	case key.Matches(msg, m.keys.Up):
		m.ghostY--
		m = m.scrollTo(m.ghostY, m.ghostDef.Prefs.Default.Height)
	case key.Matches(msg, m.keys.Down):
		m.ghostY++
		m = m.scrollTo(m.ghostY, m.ghostDef.Prefs.Default.Height)
	case key.Matches(msg, m.keys.Left):
		m.ghostX--
	case key.Matches(msg, m.keys.Right):
		m.ghostX++

	case key.Matches(msg, m.keys.Confirm):
		return m.commitGhost()
	}

	return m, nil
}

// commitGhost runs the placement pipeline on the ghost's proposal.
func (m DesignerModel) commitGhost() (tea.Model, tea.Cmd) {
	item, err := m.cv.Place(m.ghostDef, m.ghostX, m.ghostY)
	if err != nil {
		if errors.Is(err, canvas.ErrCannotPlace) {
			// Expected outcome: the component's minimum width exceeds the
			// canvas. Stay in placing mode so the user can pick again.
			return m.withRejection(fmt.Sprintf("%q does not fit on this canvas", m.ghostDef.ID))
		}
		return m.withRejection(err.Error())
	}

	m.dirty = true
	m.mode = modeSelected
	m.selected = item.ID
	m = m.scrollTo(item.Box.Y, item.Box.H)

	switch {
	case item.SizeAdjusted && item.PositionAdjusted:
		return m.withFlash("snapped to fit: size and position adjusted")
	case item.SizeAdjusted:
		return m.withFlash("snapped to fit: size adjusted")
	case item.PositionAdjusted:
		return m.withFlash("snapped to fit: position adjusted")
	default:
		return m.withFlash("placed " + item.Component)
	}
}

func (m DesignerModel) handleSelectedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.cv.Item(m.selected)
	if !ok {
		m.mode = modeBrowse
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Confirm):
		m.mode = modeBrowse

	case key.Matches(msg, m.keys.Next):
		m = m.selectNext()

	case key.Matches(msg, m.keys.Add):
		m.mode = modePalette
		m.palette = NewPaletteModel()

	case key.Matches(msg, m.keys.Delete):
		if err := m.cv.Remove(m.selected); err == nil {
			m.dirty = true
			m.mode = modeBrowse
			return m.withFlash("removed " + item.Component)
		}

	case key.Matches(msg, m.keys.Up):
		return m.moveSelected(item.Box.X, item.Box.Y-1)
	case key.Matches(msg, m.keys.Down):
		return m.moveSelected(item.Box.X, item.Box.Y+1)
	case key.Matches(msg, m.keys.Left):
		return m.moveSelected(item.Box.X-1, item.Box.Y)
	case key.Matches(msg, m.keys.Right):
		return m.moveSelected(item.Box.X+1, item.Box.Y)
	}

	return m, nil
}

// moveSelected re-anchors the selected item, flashing when the position got
// clamped back inside the canvas.
func (m DesignerModel) moveSelected(x, y int) (tea.Model, tea.Cmd) {
	moved, err := m.cv.Move(m.selected, x, y)
	if err != nil {
		m.mode = modeBrowse
		return m, nil
	}
	m.dirty = true
	m = m.scrollTo(moved.Box.Y, moved.Box.H)
	if moved.PositionAdjusted {
		return m.withFlash("snapped to fit")
	}
	return m, nil
}

// selectNext cycles the selection through the placed items in draw order.
func (m DesignerModel) selectNext() DesignerModel {
	items := m.cv.Items()
	if len(items) == 0 {
		m.mode = modeBrowse
		return m
	}

	next := items[0]
	if m.mode == modeSelected {
		for i, item := range items {
			if item.ID == m.selected {
				next = items[(i+1)%len(items)]
				break
			}
		}
	}

	m.mode = modeSelected
	m.selected = next.ID
	return m.scrollTo(next.Box.Y, next.Box.H)
}

// save persists the canvas, if a store is attached.
func (m DesignerModel) save() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m.withRejection("no storage attached, cannot save")
	}
	if _, err := m.store.SaveCanvas(m.cv); err != nil {
		return m.withRejection("save failed: " + err.Error())
	}
	m.dirty = false
	return m.withFlash("saved " + m.cv.Name)
}

// withFlash shows an informational status message for the configured
// number of ticks.
func (m DesignerModel) withFlash(msg string) (DesignerModel, tea.Cmd) {
	m.status = msg
	m.statusBad = false
	m.statusTicks = m.flashTicks()
	return m, tickCmd()
}

// withRejection shows a rejection status message.
func (m DesignerModel) withRejection(msg string) (DesignerModel, tea.Cmd) {
	m.status = msg
	m.statusBad = true
	m.statusTicks = m.flashTicks()
	return m, tickCmd()
}

func (m DesignerModel) flashTicks() int {
	if m.cfg.Designer.SnapFlashTicks > 0 {
		return m.cfg.Designer.SnapFlashTicks
	}
	return config.DefaultConfig().Designer.SnapFlashTicks
}

// visibleRows returns how many canvas rows fit between the title and the
// status/help chrome.
func (m DesignerModel) visibleRows() int {
	return core.Max(m.height-4, 1)
}

// clampScroll keeps manual scrolling within the occupied canvas rows.
func (m DesignerModel) clampScroll(top int) int {
	return core.Clamp(top, 0, core.Max(m.cv.Height()-1, 0))
}

// scrollTo adjusts the viewport so the row span [y, y+h) is visible.
func (m DesignerModel) scrollTo(y, h int) DesignerModel {
	rows := m.visibleRows()
	if y < m.viewTop {
		m.viewTop = core.Max(y, 0)
	}
	if y+h > m.viewTop+rows {
		m.viewTop = y + h - rows
	}
	if m.viewTop < 0 {
		m.viewTop = 0
	}
	return m
}

// View renders the designer.
func (m DesignerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modePalette {
		return m.palette.View(m.width)
	}

	var b strings.Builder
	b.WriteString(m.titleView())
	b.WriteString("\n")
	b.WriteString(m.canvasView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m DesignerModel) titleView() string {
	title := fmt.Sprintf(" %s  %d cols  %d items", m.cv.Name, m.cv.Width, m.cv.Len())
	out := titleStyle.Render(title)
	if m.dirty {
		out += dirtyStyle.Render("  [unsaved]")
	}
	return out
}

// canvasView draws the canvas with overlays and slices out the viewport.
func (m DesignerModel) canvasView() string {
	rows := m.visibleRows()

	height := core.Max(m.cv.Height(), m.viewTop+rows)
	if m.mode == modePlacing {
		height = core.Max(height, m.ghostY+m.ghostDef.Prefs.Default.Height)
	}

	s := render.NewSurface(m.cv.Width, height)
	if m.showGrid {
		drawGrid(s)
	}
	for _, item := range m.cv.Items() {
		canvas.DrawItem(s, item)
	}

	if m.mode == modeSelected {
		if item, ok := m.cv.Item(m.selected); ok {
			s.DrawBoxColor(item.Box, render.ColorBrightCyan)
		}
	}
	if m.mode == modePlacing {
		ghost := core.NewRect(m.ghostX, m.ghostY, m.ghostDef.Prefs.Default.Width, m.ghostDef.Prefs.Default.Height)
		s.DrawBoxColor(ghost, render.ColorYellow)
	}

	return RenderSurfaceRows(s, m.viewTop, rows)
}

func (m DesignerModel) statusView() string {
	if m.status != "" && m.statusTicks > 0 {
		if m.statusBad {
			return rejectStyle.Render(" " + m.status)
		}
		return flashStyle.Render(" " + m.status)
	}

	switch m.mode {
	case modePlacing:
		return hintStyle.Render(fmt.Sprintf(" placing %s at (%d, %d)", m.ghostDef.ID, m.ghostX, m.ghostY))
	case modeSelected:
		if item, ok := m.cv.Item(m.selected); ok {
			line := fmt.Sprintf(" #%d %s at (%d, %d) %dx%d",
				item.ID, item.Component, item.Box.X, item.Box.Y, item.Box.W, item.Box.H)
			// Overlapping counts the item itself
			if n := len(m.cv.Overlapping(item.Box)) - 1; n > 0 {
				line += fmt.Sprintf("  overlaps %d", n)
			}
			return hintStyle.Render(line)
		}
	}
	return hintStyle.Render(fmt.Sprintf(" rows %d-%d", m.viewTop, m.viewTop+m.visibleRows()-1))
}

// drawGrid dots every other cell so placements stay easy to line up.
func drawGrid(s *render.Surface) {
	for y := 0; y < s.Height(); y += 2 {
		for x := 0; x < s.Width(); x += 2 {
			s.SetCell(x, y, '·', render.ColorGray)
		}
	}
}

// WantsBack reports that the user left the designer without quitting the
// whole program.
func (m DesignerModel) WantsBack() bool {
	return m.back
}

// IsQuitting reports that the user requested to quit entirely.
func (m DesignerModel) IsQuitting() bool {
	return m.quitting
}

// Dirty reports whether the canvas has unsaved changes.
func (m DesignerModel) Dirty() bool {
	return m.dirty
}

// RunDesigner starts the interactive designer for the given canvas and
// blocks until the user leaves it. back reports that the user stepped out
// of the designer rather than quitting.
func RunDesigner(cv *canvas.Canvas, store *storage.Store, cfg config.Config, width, height int) (back bool, err error) {
	model := NewDesignerModel(cv, store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(DesignerModel)
	if !ok {
		return false, nil
	}

	return m.WantsBack(), nil
}
