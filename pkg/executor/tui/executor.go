// Package tui hosts the slide menu in a terminal: a document viewport that
// the mouse drags sideways to reveal a menu panel behind it.
//
// The TUI codebase is split into multiple files:
// - executor.go: Executor and program lifecycle
// - model.go: Core model structure and state
// - init.go: Model construction and controller wiring
// - update.go: Bubble Tea Update function and message handling
// - slide.go: Controller collaborators and mouse translation
// - actions.go: Menu actions
// - view.go: Bubble Tea View function and layer compositing
// - styles.go: Color schemes and styling
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/config"
	"github.com/entrhq/slidemenu/pkg/content"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
	"github.com/entrhq/slidemenu/pkg/menu"
	"github.com/entrhq/slidemenu/pkg/watcher"
)

// Config describes what the executor shows and how it behaves.
type Config struct {
	// Path is the file or directory shown in the main panel
	Path string
	// Match filters directory listings
	Match []string
	// Menu is the menu panel definition; nil uses menu.Default()
	Menu *menu.Menu
	// Slide and UI default to the global configuration when nil
	Slide *config.SlideSection
	UI    *config.UISection
	// Watch reloads the document when it changes on disk
	Watch bool
}

// Executor runs the slide menu TUI.
type Executor struct {
	cfg     Config
	program *tea.Program
}

// NewExecutor creates a new TUI executor.
func NewExecutor(cfg Config) *Executor {
	if cfg.Slide == nil {
		cfg.Slide = config.GetSlide()
	}
	if cfg.UI == nil {
		cfg.UI = config.GetUI()
	}
	return &Executor{cfg: cfg}
}

// Run starts the TUI and blocks until the user exits or ctx is cancelled.
func (e *Executor) Run(ctx context.Context) error {
	debugLog.Infof("TUI executor starting, path=%s", e.cfg.Path)

	m := newModel(modelConfig{
		path:        e.cfg.Path,
		contentOpts: content.Options{Match: e.cfg.Match, Style: e.cfg.UI.GetHighlightStyle()},
		menu:        e.cfg.Menu,
		slide:       e.cfg.Slide,
		ui:          e.cfg.UI,
	})
	if m.doc == nil {
		return fmt.Errorf("cannot display %s: %s", e.cfg.Path, m.status)
	}

	e.program = tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if e.cfg.Watch {
		path := m.doc.Path
		w, err := watcher.New(path, watcher.NewDebouncer(0), func() {
			e.program.Send(types.ReloadMsg{Path: path})
		})
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			// Reloading is a convenience; the viewer still works without it
			debugLog.Warnf("file watching disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := e.program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}

	debugLog.Infof("TUI executor stopped")
	return nil
}
