package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
)

const toastDuration = 3 * time.Second

// SetOverlay activates an overlay sized to the current window
func (m *model) SetOverlay(mode types.OverlayMode, overlay types.Overlay) {
	m.cancelPointer()
	if m.width > 0 && m.height > 0 {
		overlay.SetDimensions(m.width, m.height)
	}
	m.overlay.activate(mode, overlay)
}

// ClearOverlay closes the current overlay
func (m *model) ClearOverlay() {
	m.overlay.deactivate()
}

// ShowToast displays a toast notification
func (m *model) ShowToast(message, details, icon string, isError bool) {
	m.toast = &toastNotification{
		active:    true,
		message:   message,
		details:   details,
		icon:      icon,
		isError:   isError,
		showUntil: m.now().Add(toastDuration),
	}
}

// Quit triggers application exit by setting a flag that will be checked in the Update loop.
// This allows overlays to request termination without returning tea.Quit themselves.
func (m *model) Quit() {
	m.shouldQuit = true
}

// clearToastAfter expires the toast once d has passed
func clearToastAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
