package overlay

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
)

const (
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"
	keyQ     = "q"
)

// Space taken around the viewport by the container border, padding,
// header and footer.
const (
	chromeWidth  = 6
	chromeHeight = 8
)

// BaseOverlay provides common functionality for all overlays.
// It handles viewport management, dimensions, focus state, and common key bindings.
type BaseOverlay struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool

	onClose      func(actions types.ActionHandler) tea.Cmd
	onCustomKey  func(msg tea.KeyMsg, actions types.ActionHandler) (bool, tea.Cmd) // Returns (handled, cmd)
	renderHeader func() string
	renderFooter func() string
}

// BaseOverlayConfig configures a base overlay
type BaseOverlayConfig struct {
	Width          int
	Height         int
	ViewportWidth  int
	ViewportHeight int
	Content        string
	OnClose        func(actions types.ActionHandler) tea.Cmd
	OnCustomKey    func(msg tea.KeyMsg, actions types.ActionHandler) (bool, tea.Cmd)
	RenderHeader   func() string
	RenderFooter   func() string
}

// NewBaseOverlay creates a new base overlay with the given configuration
func NewBaseOverlay(config BaseOverlayConfig) *BaseOverlay {
	vp := viewport.New(config.ViewportWidth, config.ViewportHeight)
	vp.Style = lipgloss.NewStyle()
	if config.Content != "" {
		vp.SetContent(config.Content)
	}

	return &BaseOverlay{
		viewport:     vp,
		width:        config.Width,
		height:       config.Height,
		focused:      true,
		onClose:      config.OnClose,
		onCustomKey:  config.OnCustomKey,
		renderHeader: config.RenderHeader,
		renderFooter: config.RenderFooter,
	}
}

// Update handles common overlay messages (window resize, scrolling, close keys).
// It returns (handled, overlay, cmd); a nil overlay means the overlay closed.
func (b *BaseOverlay) Update(msg tea.Msg, actions types.ActionHandler) (bool, *BaseOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKeyMsg(msg, actions)
	case tea.WindowSizeMsg:
		b.SetDimensions(msg.Width, msg.Height)
		return true, b, nil
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			b.viewport, cmd = b.viewport.Update(msg)
			return true, b, cmd
		}
		// Swallow other mouse input so nothing reaches the panels underneath
		return true, b, nil
	}
	return false, b, nil
}

// handleKeyMsg processes keyboard input
func (b *BaseOverlay) handleKeyMsg(msg tea.KeyMsg, actions types.ActionHandler) (bool, *BaseOverlay, tea.Cmd) {
	if b.isCloseKey(msg) {
		return true, nil, b.close(actions)
	}

	// Give custom handler first priority
	if b.onCustomKey != nil {
		if handled, cmd := b.onCustomKey(msg, actions); handled {
			return true, b, cmd
		}
	}

	if b.isScrollKey(msg) {
		var cmd tea.Cmd
		b.viewport, cmd = b.viewport.Update(msg)
		return true, b, cmd
	}

	return false, b, nil
}

// isCloseKey checks if the key should close the overlay
func (b *BaseOverlay) isCloseKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case keyEsc, keyCtrlC, keyQ:
		return true
	}
	return false
}

// isScrollKey checks if the key is for scrolling
func (b *BaseOverlay) isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		return true
	}
	return false
}

// close runs the configured close handler, if any
func (b *BaseOverlay) close(actions types.ActionHandler) tea.Cmd {
	if b.onClose != nil {
		return b.onClose(actions)
	}
	return nil
}

// View renders the overlay with header, viewport content, and footer
func (b *BaseOverlay) View(contentWidth int) string {
	var sections []string
	if b.renderHeader != nil {
		sections = append(sections, b.renderHeader(), "")
	}
	sections = append(sections, b.viewport.View())
	if b.renderFooter != nil {
		sections = append(sections, "", b.renderFooter())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return types.CreateOverlayContainerStyle(contentWidth).Render(content)
}

// SetContent updates the viewport content
func (b *BaseOverlay) SetContent(content string) {
	b.viewport.SetContent(content)
}

// Viewport returns the underlying viewport for advanced manipulation
func (b *BaseOverlay) Viewport() *viewport.Model {
	return &b.viewport
}

// Focused returns whether this overlay should handle input
func (b *BaseOverlay) Focused() bool {
	return b.focused
}

// SetFocused sets the focus state
func (b *BaseOverlay) SetFocused(focused bool) {
	b.focused = focused
}

// Width returns the overlay width
func (b *BaseOverlay) Width() int {
	return b.width
}

// Height returns the overlay height
func (b *BaseOverlay) Height() int {
	return b.height
}

// SetDimensions fits the overlay inside a width x height screen, shrinking
// the viewport but never growing it past its configured size.
func (b *BaseOverlay) SetDimensions(width, height int) {
	if width < b.width {
		b.width = width
	}
	if height < b.height {
		b.height = height
	}
	b.viewport.Width = max(1, min(b.viewport.Width, b.width-chromeWidth))
	b.viewport.Height = max(1, min(b.viewport.Height, b.height-chromeHeight))
}
