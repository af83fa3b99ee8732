package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
)

// overlayState tracks the active overlay
type overlayState struct {
	mode    types.OverlayMode
	overlay types.Overlay
}

// newOverlayState creates a new overlay state
func newOverlayState() *overlayState {
	return &overlayState{
		mode: types.OverlayModeNone,
	}
}

// activate replaces any active overlay
func (o *overlayState) activate(mode types.OverlayMode, overlay types.Overlay) {
	o.mode = mode
	o.overlay = overlay
}

// deactivate closes the current overlay
func (o *overlayState) deactivate() {
	o.mode = types.OverlayModeNone
	o.overlay = nil
}

// isActive returns whether any overlay is currently active
func (o *overlayState) isActive() bool {
	if o.mode == types.OverlayModeNone {
		return false
	}
	// Mode set without an overlay is inconsistent; reset rather than panic later
	if o.overlay == nil {
		o.mode = types.OverlayModeNone
		return false
	}
	return true
}

// renderOverlay renders an overlay centered on a clean background
func renderOverlay(baseView string, overlay types.Overlay, width, height int) string {
	if overlay == nil {
		return baseView
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

// renderToastOverlay paints toastContent over the bottom-right of baseView,
// keeping the base lines visible to its left.
func renderToastOverlay(baseView string, toastContent string, width int) string {
	if toastContent == "" {
		return baseView
	}

	baseLines := strings.Split(baseView, "\n")
	toastLines := strings.Split(strings.TrimRight(toastContent, "\n"), "\n")

	// Sit one line above the bottom row so the status bar stays readable
	startLine := max(len(baseLines)-1-len(toastLines), 0)

	for i, toastLine := range toastLines {
		idx := startLine + i
		if idx >= len(baseLines) {
			break
		}
		toastWidth := ansi.StringWidth(toastLine)
		left := max(width-toastWidth-1, 0)
		baseLines[idx] = padRight(ansi.Truncate(baseLines[idx], left, ""), left) + toastLine
	}

	return strings.Join(baseLines, "\n")
}
