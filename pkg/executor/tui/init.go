package tui

import (
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/entrhq/slidemenu/pkg/config"
	"github.com/entrhq/slidemenu/pkg/content"
	"github.com/entrhq/slidemenu/pkg/menu"
	"github.com/entrhq/slidemenu/pkg/slidemenu"
)

// modelConfig carries everything newModel needs
type modelConfig struct {
	path        string
	contentOpts content.Options
	menu        *menu.Menu
	slide       *config.SlideSection
	ui          *config.UISection
}

// newModel builds the model and wires it into a fresh controller as the
// listener, renderer and frame scheduler.
func newModel(cfg modelConfig) *model {
	if cfg.menu == nil {
		cfg.menu = menu.Default()
	}
	if cfg.slide == nil {
		cfg.slide = config.NewSlideSection()
	}
	if cfg.ui == nil {
		cfg.ui = config.NewUISection()
	}
	if cfg.contentOpts.Style == "" {
		cfg.contentOpts.Style = cfg.ui.GetHighlightStyle()
	}

	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(salmonPink)
	h.Styles.FullKey = h.Styles.FullKey.Foreground(salmonPink)

	m := &model{
		viewport:      viewport.New(0, 0),
		help:          h,
		keys:          defaultKeyMap(),
		frameInterval: cfg.slide.GetFrameInterval(),
		menu:          cfg.menu,
		path:          cfg.path,
		contentOpts:   cfg.contentOpts,
		ui:            cfg.ui,
		overlay:       newOverlayState(),
		toast:         &toastNotification{},
		now:           time.Now,
		clipboard:     clipboard.WriteAll,
	}

	m.controller = slidemenu.NewController(cfg.slide.Options())
	m.controller.SetListener(m)
	m.controller.SetRenderer(m)
	m.controller.SetScheduler(m)
	m.controller.SetClickHandler(m.handleClick)
	m.controller.SetMenuBackground(cfg.ui.GetMenuBackground())

	if err := m.loadDocument(); err != nil {
		m.status = err.Error()
	}
	return m
}

// Init implements tea.Model
func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("slidemenu: " + filepath.Base(m.DocumentPath()))
}
