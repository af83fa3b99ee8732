package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // Soft pastel salmon pink - primary accent
	coralPink   = lipgloss.Color("#FFCCCB") // Lighter coral accent - secondary
	mintGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - success states
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - primary text
	errorRed    = lipgloss.Color("203")
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	statusTextStyle = lipgloss.NewStyle().
			Foreground(coralPink)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mintGreen).
			Padding(0, 1)
)

// menuPanelStyle is the menu layer's box. Width and height are exact so that
// the measured width equals the configured menu width.
func menuPanelStyle(width, height int, background string) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Padding(0, 1)
	if background != "" {
		style = style.Background(lipgloss.Color(background))
	}
	return style
}
