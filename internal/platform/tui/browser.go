package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-canvas/internal/storage"
)

// BrowserKeyMap defines the key bindings for the canvas browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	New    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.New, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new canvas"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the canvas browser, the screen
// for picking a stored canvas to open in the designer.
type BrowserModel struct {
	store  *storage.Store
	infos  []storage.CanvasInfo
	table  table.Model
	help   help.Model
	keys   BrowserKeyMap
	width  int
	height int

	confirmDelete string // Canvas name pending delete confirmation
	status        string

	selected string // Canvas name chosen to open
	quitting bool
}

// NewBrowserModel creates a browser over the stored canvases.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:  store,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.reload()

	return m
}

// createTable creates the canvas table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Canvas", Width: 24},
		{Title: "Width", Width: 7},
		{Title: "Items", Width: 7},
		{Title: "Updated", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload refreshes the canvas list from storage.
func (m *BrowserModel) reload() {
	if m.store == nil {
		m.infos = nil
		m.updateTableRows()
		return
	}

	infos, err := m.store.ListCanvases()
	if err != nil {
		m.infos = nil
		m.status = "cannot list canvases: " + err.Error()
	} else {
		m.infos = infos
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current canvas list.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.infos))
	for i, info := range m.infos {
		rows[i] = table.Row{
			info.Name,
			fmt.Sprintf("%d", info.Width),
			fmt.Sprintf("%d", info.Items),
			info.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cursorName returns the canvas name under the table cursor.
func (m BrowserModel) cursorName() (string, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.infos) {
		return "", false
	}
	return m.infos[i].Name, true
}

// nextUntitledName picks the first free untitled-N name.
func (m BrowserModel) nextUntitledName() string {
	taken := make(map[string]bool, len(m.infos))
	for _, info := range m.infos {
		taken[info.Name] = true
	}
	if !taken["untitled"] {
		return "untitled"
	}
	for n := 2; ; n++ {
		name := fmt.Sprintf("untitled-%d", n)
		if !taken[name] {
			return name
		}
	}
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A pending delete eats the next key: y confirms, anything else
		// cancels.
		if m.confirmDelete != "" {
			name := m.confirmDelete
			m.confirmDelete = ""
			if msg.String() == "y" {
				if err := m.store.DeleteCanvas(name); err != nil {
					m.status = "delete failed: " + err.Error()
				} else {
					m.status = "deleted " + name
					m.reload()
				}
			} else {
				m.status = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if name, ok := m.cursorName(); ok {
				m.selected = name
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.selected = m.nextUntitledName()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			if m.store == nil {
				return m, nil
			}
			if name, ok := m.cursorName(); ok {
				m.confirmDelete = name
				m.status = fmt.Sprintf("delete %q? press y to confirm", name)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(header.Render(centerText("CANVASES", m.width)))
	b.WriteString("\n\n")

	if len(m.infos) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(emptyStyle.Render("No canvases yet.\nPress n to start a new one."), m.width))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(flashStyle.Render(" " + m.status))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the canvas name the user chose to open, or false when
// the browser was quit instead.
func (m BrowserModel) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// IsQuitting returns true if the user quit the browser.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser shows the canvas browser and returns the canvas name the user
// picked. ok is false when the user quit without picking.
func RunBrowser(store *storage.Store, width, height int) (name string, ok bool, err error) {
	model := NewBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isBrowser := finalModel.(BrowserModel)
	if !isBrowser {
		return "", false, nil
	}

	name, ok = m.Selected()
	return name, ok, nil
}
