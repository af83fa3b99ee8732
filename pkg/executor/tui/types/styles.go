package types

import "github.com/charmbracelet/lipgloss"

var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mutedGray  = lipgloss.Color("#6B7280")
)

var (
	// OverlayTitleStyle is used for main overlay titles
	OverlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(salmonPink)

	// OverlayHelpStyle is used for help text and hints
	OverlayHelpStyle = lipgloss.NewStyle().
				Foreground(mutedGray).
				Italic(true)
)

// CreateOverlayContainerStyle returns the bordered box every overlay is drawn in.
func CreateOverlayContainerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(salmonPink).
		Padding(1, 2).
		Width(width)
}
