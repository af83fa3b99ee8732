// Package menu defines the entries shown in the slide-out menu panel and
// loads them from YAML or TOML files.
package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Action names what a menu entry does when tapped
type Action string

const (
	ActionClose    Action = "close"
	ActionHelp     Action = "help"
	ActionCopyPath Action = "copy-path"
	ActionReload   Action = "reload"
	ActionTop      Action = "top"
	ActionBottom   Action = "bottom"
	ActionQuit     Action = "quit"
)

var knownActions = map[Action]bool{
	ActionClose:    true,
	ActionHelp:     true,
	ActionCopyPath: true,
	ActionReload:   true,
	ActionTop:      true,
	ActionBottom:   true,
	ActionQuit:     true,
}

// Item is a single menu row
type Item struct {
	Title  string `yaml:"title" toml:"title"`   // Text shown in the panel
	Action Action `yaml:"action" toml:"action"` // What a tap does
	Key    string `yaml:"key" toml:"key"`       // Optional shortcut hint drawn at the right edge
}

// Menu is an ordered list of items
type Menu struct {
	Title string `yaml:"title" toml:"title"`
	Items []Item `yaml:"items" toml:"items"`
}

// Validate checks that every item has a title and a known action
func (m *Menu) Validate() error {
	if len(m.Items) == 0 {
		return fmt.Errorf("menu has no items")
	}
	for i, item := range m.Items {
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("item %d: title cannot be empty", i)
		}
		if !knownActions[item.Action] {
			return fmt.Errorf("item %q: unknown action %q", item.Title, item.Action)
		}
	}
	return nil
}

// At returns the item drawn on row, where row 0 is the first line of the panel.
// The panel starts with the title and a blank line, so items begin at row 2.
func (m *Menu) At(row int) (Item, bool) {
	idx := row - HeaderRows
	if idx < 0 || idx >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[idx], true
}

// HeaderRows is the number of panel rows drawn above the first item
const HeaderRows = 2

// Default returns the built-in menu
func Default() *Menu {
	return &Menu{
		Title: "Menu",
		Items: []Item{
			{Title: "Back to top", Action: ActionTop, Key: "g"},
			{Title: "Jump to bottom", Action: ActionBottom, Key: "G"},
			{Title: "Reload", Action: ActionReload, Key: "r"},
			{Title: "Copy path", Action: ActionCopyPath, Key: "y"},
			{Title: "Help", Action: ActionHelp, Key: "?"},
			{Title: "Close menu", Action: ActionClose, Key: "esc"},
			{Title: "Quit", Action: ActionQuit, Key: "q"},
		},
	}
}

// Load reads a menu file. The format is picked by extension:
// .yaml/.yml for YAML and .toml for TOML.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var m Menu
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported menu file extension %q", ext)
	}

	if m.Title == "" {
		m.Title = "Menu"
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu: %w", err)
	}
	return &m, nil
}
