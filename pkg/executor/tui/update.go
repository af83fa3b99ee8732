package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
	"github.com/entrhq/slidemenu/pkg/logging"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("tui")
	if err != nil {
		debugLog.Warnf("Failed to initialize TUI logger, using stderr fallback: %v", err)
	}
}

// Update handles all state updates for the TUI model.
//
// Uses pointer receiver so that controller callbacks, which run inside
// Update, mutate the same model Bubble Tea renders.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if quit was requested by an overlay or component
	if m.shouldQuit {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		debugLog.Debugf("Received tea.WindowSizeMsg: width=%d, height=%d", msg.Width, msg.Height)
		return m.handleWindowResize(msg)

	case types.FrameMsg:
		return m.handleFrame(msg)

	case types.ReloadMsg:
		debugLog.Debugf("Received ReloadMsg: %s", msg.Path)
		return m.handleReload(msg)

	case toastMsg:
		return m.handleToast(msg)

	case types.ToastMsg:
		return m.handleToast(toastMsg{
			message: msg.Message,
			details: msg.Details,
			icon:    msg.Icon,
			isError: msg.IsError,
		})

	case clearStatusMsg:
		if m.toast.active && !m.now().Before(m.toast.showUntil) {
			m.toast.active = false
		}
		return m, nil

	case tea.MouseMsg:
		if m.overlay.isActive() {
			return m.updateOverlay(msg)
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		debugLog.Debugf("Received tea.KeyMsg: %s", msg.String())
		return m.handleKeyPress(msg)
	}

	if m.overlay.isActive() {
		return m.updateOverlay(msg)
	}
	return m, nil
}

// updateOverlay forwards msg to the active overlay and closes it when the
// overlay returns nil, keeping whatever command it produced.
func (m *model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.overlay.overlay.Update(msg, m, m)
	if updated == nil {
		m.ClearOverlay()
	} else {
		m.overlay.overlay = updated
	}
	return m, m.flush(cmd)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
	m.relayout()

	if m.overlay.isActive() {
		m.overlay.overlay.SetDimensions(m.width, m.height)
	}
	return m, m.flush()
}

func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay.isActive() {
		return m.updateOverlay(msg)
	}

	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.controller.Toggle(now)

	case key.Matches(msg, m.keys.Close):
		m.controller.Close(now)

	case key.Matches(msg, m.keys.ForceClose):
		m.controller.ForceClose()
		m.status = ""

	case key.Matches(msg, m.keys.Help):
		m.queue(m.runAction(actionHelp))

	case key.Matches(msg, m.keys.Reload):
		m.queue(reloadCmd(""))

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	}

	return m, m.flush()
}

func (m *model) handleReload(msg types.ReloadMsg) (tea.Model, tea.Cmd) {
	if err := m.loadDocument(); err != nil {
		m.ShowToast("Reload failed", err.Error(), "✗", true)
		return m, m.flush(clearToastAfter(toastDuration))
	}
	if m.ready {
		m.relayout()
	}
	if msg.Path == "" {
		m.ShowToast("Reloaded", m.DocumentPath(), "↻", false)
		return m, m.flush(clearToastAfter(toastDuration))
	}
	return m, m.flush()
}

func (m *model) handleToast(msg toastMsg) (tea.Model, tea.Cmd) {
	m.ShowToast(msg.message, msg.details, msg.icon, msg.isError)
	return m, clearToastAfter(toastDuration)
}

// reloadCmd emits a ReloadMsg for path
func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return types.ReloadMsg{Path: path}
	}
}
