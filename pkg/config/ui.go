package config

import (
	"fmt"
	"regexp"
	"sync"
)

const (
	// SectionIDUI is the identifier for the UI settings section
	SectionIDUI = "ui"

	// Default values for UI settings
	defaultMenuWidth      = 28
	defaultMenuBackground = "#2D2A3E"
	defaultHighlightStyle = "monokai"
	defaultShowStatusBar  = true
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// UISection manages how the two panels are drawn.
type UISection struct {
	MenuWidth      int    `json:"menu_width"`
	MenuBackground string `json:"menu_background"`
	HighlightStyle string `json:"highlight_style"`
	ShowStatusBar  bool   `json:"show_status_bar"`
	mu             sync.RWMutex
}

// NewUISection creates a new UI section with default settings.
func NewUISection() *UISection {
	s := &UISection{}
	s.Reset()
	return s
}

// ID returns the section identifier.
func (s *UISection) ID() string {
	return SectionIDUI
}

// Title returns the section title.
func (s *UISection) Title() string {
	return "UI Settings"
}

// Description returns the section description.
func (s *UISection) Description() string {
	return "Configure menu width and color, syntax highlighting and the status bar."
}

// Data returns the current configuration data.
func (s *UISection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"menu_width":      s.MenuWidth,
		"menu_background": s.MenuBackground,
		"highlight_style": s.HighlightStyle,
		"show_status_bar": s.ShowStatusBar,
	}
}

// SetData updates the configuration from the provided data.
func (s *UISection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "menu_width":
			f, err := toFloat(key, value)
			if err != nil {
				return err
			}
			s.MenuWidth = int(f)

		case "menu_background", "highlight_style":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for %s: expected string, got %T", key, value)
			}
			if key == "menu_background" {
				s.MenuBackground = str
			} else {
				s.HighlightStyle = str
			}

		case "show_status_bar":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for show_status_bar: expected bool, got %T", value)
			}
			s.ShowStatusBar = enabled

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *UISection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// The menu must stay wider than the classifier's minimum
	if s.MenuWidth <= 10 || s.MenuWidth > 120 {
		return fmt.Errorf("menu_width must be between 11 and 120 cells, got %d", s.MenuWidth)
	}
	if s.MenuBackground != "" && !hexColorPattern.MatchString(s.MenuBackground) {
		return fmt.Errorf("menu_background must be a hex color like #2D2A3E, got %q", s.MenuBackground)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *UISection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.MenuWidth = defaultMenuWidth
	s.MenuBackground = defaultMenuBackground
	s.HighlightStyle = defaultHighlightStyle
	s.ShowStatusBar = defaultShowStatusBar
}

// GetMenuWidth returns the menu panel width in cells.
func (s *UISection) GetMenuWidth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MenuWidth
}

// GetMenuBackground returns the menu background color.
func (s *UISection) GetMenuBackground() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.MenuBackground
}

// SetMenuBackground sets the menu background color.
func (s *UISection) SetMenuBackground(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MenuBackground = color
}

// GetHighlightStyle returns the chroma style used for the main panel.
func (s *UISection) GetHighlightStyle() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HighlightStyle
}

// ShouldShowStatusBar reports whether the bottom status bar is drawn.
func (s *UISection) ShouldShowStatusBar() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ShowStatusBar
}
