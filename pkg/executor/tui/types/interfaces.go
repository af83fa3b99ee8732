package types

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/slidemenu"
)

// Overlay is a modal component drawn above the panels.
// Returning a nil Overlay from Update signals that it wants to close.
type Overlay interface {
	Update(msg tea.Msg, state StateProvider, actions ActionHandler) (Overlay, tea.Cmd)
	View() string
	Width() int
	Height() int
	SetDimensions(width, height int)
	Focused() bool
	SetFocused(focused bool)
}

// StateProvider exposes read-only model state to overlays
type StateProvider interface {
	PanelState() slidemenu.PanelState
	DocumentPath() string
}

// ActionHandler lets overlays act on the model
type ActionHandler interface {
	ShowToast(message, details, icon string, isError bool)
	ClearOverlay()
	Quit()
}
