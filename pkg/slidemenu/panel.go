package slidemenu

import (
	"errors"
	"fmt"
)

// DefaultMenuMinWidth is the width a child must exceed to qualify as the menu.
const DefaultMenuMinWidth = 10

var (
	// ErrChildCount is returned when the container does not hold exactly two children.
	ErrChildCount = errors.New("slide menu requires exactly two children")
	// ErrNoMenuPanel is returned when no child qualifies as the menu.
	ErrNoMenuPanel = errors.New("no child qualifies as the menu panel")
	// ErrAmbiguousMenuPanel is returned when both children qualify as the menu.
	ErrAmbiguousMenuPanel = errors.New("more than one child qualifies as the menu panel")
)

// PanelLayout is the outcome of classifying the two children.
type PanelLayout struct {
	Menu             int // index of the menu child
	Main             int // index of the main child
	SlidableDistance int
}

// ClassifyPanels picks the menu child: the one strictly narrower than the
// container and strictly wider than minWidth. The other child is the main
// panel. Anything but exactly one qualifying child out of two is a
// precondition violation.
func ClassifyPanels(containerWidth, minWidth int, widths ...int) (PanelLayout, error) {
	if len(widths) != 2 {
		return PanelLayout{}, fmt.Errorf("classify panels: got %d children: %w", len(widths), ErrChildCount)
	}

	menu := -1
	for i, w := range widths {
		if w < containerWidth && w > minWidth {
			if menu >= 0 {
				return PanelLayout{}, fmt.Errorf("classify panels: widths %v in container %d: %w", widths, containerWidth, ErrAmbiguousMenuPanel)
			}
			menu = i
		}
	}
	if menu < 0 {
		return PanelLayout{}, fmt.Errorf("classify panels: widths %v in container %d: %w", widths, containerWidth, ErrNoMenuPanel)
	}

	return PanelLayout{
		Menu:             menu,
		Main:             1 - menu,
		SlidableDistance: widths[menu],
	}, nil
}
