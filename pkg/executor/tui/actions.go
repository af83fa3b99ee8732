package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/content"
	"github.com/entrhq/slidemenu/pkg/executor/tui/overlay"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
	"github.com/entrhq/slidemenu/pkg/logging"
	"github.com/entrhq/slidemenu/pkg/menu"
)

const actionHelp = menu.ActionHelp

// runAction performs a menu action. Actions that change what the main
// panel shows also close the menu so the result is visible.
func (m *model) runAction(action menu.Action) tea.Cmd {
	now := m.now()

	switch action {
	case menu.ActionClose:
		m.controller.Close(now)

	case menu.ActionHelp:
		m.SetOverlay(types.OverlayModeHelp, overlay.NewHelpOverlay("slidemenu help", m.helpContent(), m.width, m.height))

	case menu.ActionCopyPath:
		path := m.DocumentPath()
		if err := m.clipboard(path); err != nil {
			debugLog.Warnf("clipboard write failed: %v", err)
			m.ShowToast("Copy failed", err.Error(), "✗", true)
		} else {
			m.ShowToast("Copied path", path, "✓", false)
		}
		return clearToastAfter(toastDuration)

	case menu.ActionReload:
		m.controller.Close(now)
		return reloadCmd("")

	case menu.ActionTop:
		m.viewport.GotoTop()
		m.controller.Close(now)

	case menu.ActionBottom:
		m.viewport.GotoBottom()
		m.controller.Close(now)

	case menu.ActionQuit:
		return tea.Quit

	default:
		debugLog.Warnf("unknown menu action %q", action)
	}
	return nil
}

// loadDocument (re)reads the current path into the viewport, keeping the
// scroll offset where possible.
func (m *model) loadDocument() error {
	start := time.Now()
	doc, err := content.Load(m.path, m.contentOpts)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", m.path, err)
	}

	offset := m.viewport.YOffset
	m.doc = doc
	m.viewport.SetContent(doc.String())
	m.viewport.SetYOffset(offset)
	debugLog.Debugf("loaded %s (%d lines) in %s", doc.Path, len(doc.Plain), logging.Since(start))
	return nil
}

// helpContent lists key bindings followed by the menu entries
func (m *model) helpContent() string {
	var b strings.Builder
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\nDrag the page left with the mouse to reveal the menu,\n")
	b.WriteString("drag it back right or press esc to close it.\n\n")
	b.WriteString(menuTitleStyle.Render(m.menu.Title))
	b.WriteString("\n")
	for _, item := range m.menu.Items {
		line := fmt.Sprintf("  %-20s %s", item.Title, item.Action)
		if item.Key != "" {
			line += menuKeyStyle.Render("  (" + item.Key + ")")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// formatClickedLine renders a 1-based line reference for the status bar
func formatClickedLine(row int, line string) string {
	return fmt.Sprintf("%d: %s", row+1, strings.TrimSpace(line))
}
