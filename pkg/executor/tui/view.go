package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the entire TUI interface.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	body := m.composePanels(m.viewport.View(), m.renderMenu())
	if m.ui.ShouldShowStatusBar() {
		body += "\n" + m.buildStatusBar()
	}

	return m.applyOverlays(body)
}

// renderMenu draws the menu layer at its configured width
func (m *model) renderMenu() string {
	width := m.ui.GetMenuWidth()
	inner := width - 2 // horizontal padding

	lines := []string{menuTitleStyle.Render(ansi.Truncate(m.menu.Title, inner, "…")), ""}
	for _, item := range m.menu.Items {
		title := item.Title
		keyHint := ""
		if item.Key != "" {
			keyHint = " " + item.Key
		}
		room := max(inner-ansi.StringWidth(keyHint), 1)
		title = ansi.Truncate(title, room, "…")
		gap := max(inner-ansi.StringWidth(title)-ansi.StringWidth(keyHint), 0)
		lines = append(lines, menuItemStyle.Render(title)+strings.Repeat(" ", gap)+menuKeyStyle.Render(keyHint))
	}

	return menuPanelStyle(width, m.bodyHeight(), m.ui.GetMenuBackground()).
		Render(strings.Join(lines, "\n"))
}

// composePanels paints the main layer shifted by the current translation
// over the menu layer, which stays right-aligned in the container.
func (m *model) composePanels(mainView, menuView string) string {
	shift := 0
	if m.layoutErr == nil {
		shift = -int(math.Round(m.controller.State().Translation))
	}
	return composeLayers(mainView, menuView, m.width, m.bodyHeight(), shift)
}

// composeLayers builds height rows of width cells. Each row is the main
// row with its first shift cells scrolled off, followed by the rightmost
// shift cells of the menu row.
func composeLayers(mainView, menuView string, width, height, shift int) string {
	mainLines := strings.Split(mainView, "\n")
	menuLines := strings.Split(menuView, "\n")
	menuWidth := lipgloss.Width(menuView)
	shift = min(max(shift, 0), menuWidth, width)

	rows := make([]string, height)
	for i := range rows {
		mainLine := lineAt(mainLines, i)
		if shift == 0 {
			rows[i] = padRight(ansi.Truncate(mainLine, width, ""), width)
			continue
		}

		visibleMain := padRight(ansi.Cut(mainLine, shift, width), width-shift)
		menuLine := padRight(lineAt(menuLines, i), menuWidth)
		revealed := ansi.Cut(menuLine, menuWidth-shift, menuWidth)
		rows[i] = visibleMain + revealed
	}
	return strings.Join(rows, "\n")
}

// buildStatusBar shows the document, the last status and the short key help
func (m *model) buildStatusBar() string {
	left := filepath.Base(m.DocumentPath())
	if m.status != "" {
		left += "  " + statusTextStyle.Render(m.status)
	}
	if m.layoutErr != nil {
		left += "  " + lipgloss.NewStyle().Foreground(errorRed).Render("menu unavailable: window too narrow")
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	inner := max(m.width-2, 0) // statusBarStyle padding
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return statusBarStyle.Render(ansi.Truncate(left, inner, "…"))
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

// applyOverlays layers all active overlays on top of the base view
func (m *model) applyOverlays(baseView string) string {
	if m.overlay.isActive() {
		baseView = renderOverlay(baseView, m.overlay.overlay, m.width, m.height)
	}

	if m.toast.active && m.now().Before(m.toast.showUntil) {
		baseView = renderToastOverlay(baseView, m.renderToast(), m.width)
	}

	return baseView
}

// renderToast renders a toast notification
func (m *model) renderToast() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", m.toast.icon, m.toast.message))
	if m.toast.details != "" {
		b.WriteString("\n")
		b.WriteString(ansi.Truncate(m.toast.details, max(m.width/2, 20), "…"))
	}

	style := toastStyle
	if m.toast.isError {
		style = style.BorderForeground(errorRed)
	}
	return style.Render(b.String())
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

// padRight pads s with spaces to width cells
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
