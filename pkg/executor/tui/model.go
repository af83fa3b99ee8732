package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/config"
	"github.com/entrhq/slidemenu/pkg/content"
	"github.com/entrhq/slidemenu/pkg/menu"
	"github.com/entrhq/slidemenu/pkg/slidemenu"
)

// model represents the state of the TUI application: a document viewport
// sliding over a menu panel.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	// Slide core
	controller    *slidemenu.Controller
	layout        slidemenu.PanelLayout
	layoutErr     error
	frameInterval time.Duration
	pressed       bool            // left button is held
	lastUp        slidemenu.Point // position of the most recent pointer release

	// Panels
	menu        *menu.Menu
	doc         *content.Document
	path        string
	contentOpts content.Options
	ui          *config.UISection

	// UI state
	overlay *overlayState
	toast   *toastNotification
	status  string

	// Window dimensions
	width  int
	height int
	ready  bool

	// Commands queued by controller callbacks during the current Update
	pending []tea.Cmd

	// Side effects, replaceable in tests
	now       func() time.Time
	clipboard func(string) error

	// Application state
	shouldQuit bool
}

// toastNotification represents a temporary notification message
type toastNotification struct {
	active    bool
	message   string
	details   string
	icon      string
	isError   bool
	showUntil time.Time
}

// toastMsg triggers a toast notification
type toastMsg struct {
	message string
	details string
	icon    string
	isError bool
}

// clearStatusMsg expires a toast
type clearStatusMsg struct{}

// queue defers cmd until the current Update returns
func (m *model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// flush returns every queued command as one batch
func (m *model) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

// bodyHeight is the number of rows available to the two panels
func (m *model) bodyHeight() int {
	h := m.height
	if m.ui.ShouldShowStatusBar() {
		h--
	}
	return max(h, 1)
}

// PanelState implements types.StateProvider
func (m *model) PanelState() slidemenu.PanelState {
	return m.controller.State()
}

// DocumentPath implements types.StateProvider
func (m *model) DocumentPath() string {
	if m.doc != nil {
		return m.doc.Path
	}
	return m.path
}
