package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
)

// HelpOverlay displays key bindings and menu entries in a modal dialog
type HelpOverlay struct {
	*BaseOverlay
	title   string
	closing bool
}

// NewHelpOverlay creates a help overlay sized for a width x height screen
func NewHelpOverlay(title, content string, width, height int) *HelpOverlay {
	const (
		viewportWidth  = 60
		viewportHeight = 18
		overlayWidth   = viewportWidth + chromeWidth
		overlayHeight  = viewportHeight + chromeHeight
	)

	overlay := &HelpOverlay{
		title: title,
	}

	baseConfig := BaseOverlayConfig{
		Width:          overlayWidth,
		Height:         overlayHeight,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		Content:        content,
		OnCustomKey: func(msg tea.KeyMsg, actions types.ActionHandler) (bool, tea.Cmd) {
			// Enter and ? also dismiss help
			if msg.Type == tea.KeyEnter || msg.String() == "?" {
				overlay.closing = true
				return true, nil
			}
			return false, nil
		},
		RenderHeader: overlay.renderHeader,
		RenderFooter: overlay.renderFooter,
	}

	overlay.BaseOverlay = NewBaseOverlay(baseConfig)
	if width > 0 && height > 0 {
		overlay.SetDimensions(width, height)
	}
	return overlay
}

// Update handles messages for the help overlay
func (h *HelpOverlay) Update(msg tea.Msg, state types.StateProvider, actions types.ActionHandler) (types.Overlay, tea.Cmd) {
	_, updatedBase, cmd := h.BaseOverlay.Update(msg, actions)
	if updatedBase == nil || h.closing {
		return nil, cmd
	}
	h.BaseOverlay = updatedBase
	return h, cmd
}

// renderHeader renders the help overlay header
func (h *HelpOverlay) renderHeader() string {
	return types.OverlayTitleStyle.Render(h.title)
}

// renderFooter renders the help overlay footer
func (h *HelpOverlay) renderFooter() string {
	return types.OverlayHelpStyle.Render("Press ESC, Enter or ? to close")
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	return h.BaseOverlay.View(h.BaseOverlay.Viewport().Width + chromeWidth - 2)
}
