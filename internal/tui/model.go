package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/papapumpkin/obedit/internal/catalog"
	"github.com/papapumpkin/obedit/internal/editor"
	"github.com/papapumpkin/obedit/internal/gui"
)

func tuiLog() zerolog.Logger {
	return log.With().Str("module", "tui").Logger()
}

// AppModel is the root bubbletea model. Every key press drives one editor
// frame against the catalog.
type AppModel struct {
	Catalog   *catalog.Catalog
	Persist   Persistence
	Term      *gui.Term
	Session   *editor.Session
	Keys      KeyMap
	StatusBar StatusBar
	Viewport  viewport.Model
	Width     int
	Height    int
	Quitting  bool

	content string
}

// NewAppModel creates a root model editing c and draws the first frame.
func NewAppModel(c *catalog.Catalog, p Persistence) AppModel {
	m := AppModel{
		Catalog:  c,
		Persist:  p,
		Term:     gui.NewTerm(),
		Session:  editor.NewSession(),
		Keys:     DefaultKeyMap(),
		Viewport: viewport.New(gui.DefaultWidth, MinHeight),
	}
	m.StatusBar.Path = p.DocumentPath
	m.render(nil)
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.StatusBar.Width = msg.Width
		m.Term.Width = msg.Width
		m.Viewport.Width = msg.Width
		m.Viewport.Height = max(msg.Height-chromeHeight, 1)
		m.render(nil)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.save()
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Save):
		m.save()
	case key.Matches(msg, m.Keys.PageUp):
		m.Viewport.SetYOffset(m.Viewport.YOffset - m.Viewport.Height)
	case key.Matches(msg, m.Keys.PageDown):
		m.Viewport.SetYOffset(m.Viewport.YOffset + m.Viewport.Height)
	default:
		m.render(&msg)
	}
	return m, nil
}

// render runs a frame with ev and, when there was an event, a second frame
// so the screen shows the state the first one produced.
func (m *AppModel) render(ev *tea.KeyMsg) {
	draw := func(ui gui.UI) { m.Session.Frame(ui, m.Catalog) }
	m.content = m.Term.Frame(ev, draw)
	if ev != nil {
		m.content = m.Term.Frame(nil, draw)
	}
	m.Viewport.SetContent(m.content)
	m.followFocus()
	m.StatusBar.Refresh(m.Catalog)
}

// followFocus scrolls the viewport so the focused widget is visible.
func (m *AppModel) followFocus() {
	line := focusLine(m.content, gui.FocusIndicator)
	if line < 0 {
		return
	}
	switch {
	case line < m.Viewport.YOffset:
		m.Viewport.SetYOffset(line)
	case line >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(line - m.Viewport.Height + 1)
	}
}

func (m *AppModel) save() {
	err := m.Persist.Save(context.Background(), m.Catalog)
	m.StatusBar.Saved = err == nil
	m.StatusBar.SaveErr = err
	l := tuiLog()
	if err != nil {
		l.Error().Err(err).Msg("save failed")
		return
	}
	l.Debug().Str("path", m.Persist.DocumentPath).Msg("catalog saved")
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}
	if m.Width == 0 {
		return "initializing..."
	}

	footer := Footer{Width: m.Width, Bindings: EditorFooterBindings(m.Keys, m.Term.Keys)}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.StatusBar.View(),
		m.Viewport.View(),
		footer.View(),
	)
}
