package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the settings that may be overridden from the
// environment. Unset variables leave the loaded value untouched.
type envOverrides struct {
	TouchSlop      float64       `env:"TOUCH_SLOP"`
	MaxVelocity    float64       `env:"MAX_VELOCITY"`
	FrameInterval  time.Duration `env:"FRAME_INTERVAL"`
	MenuWidth      int           `env:"MENU_WIDTH"`
	MenuBackground string        `env:"MENU_BACKGROUND"`
	HighlightStyle string        `env:"HIGHLIGHT_STYLE"`
}

// EnvPrefix is prepended to every override variable.
const EnvPrefix = "SLIDEMENU_"

// ApplyEnv overlays SLIDEMENU_* environment variables onto the sections.
func ApplyEnv(slide *SlideSection, ui *UISection) error {
	return applyEnv(slide, ui, nil)
}

// applyEnv is ApplyEnv with an optional explicit environment for tests.
func applyEnv(slide *SlideSection, ui *UISection, environment map[string]string) error {
	slide.mu.Lock()
	defer slide.mu.Unlock()
	ui.mu.Lock()
	defer ui.mu.Unlock()

	overrides := envOverrides{
		TouchSlop:      slide.TouchSlop,
		MaxVelocity:    slide.MaxVelocity,
		FrameInterval:  slide.FrameInterval,
		MenuWidth:      ui.MenuWidth,
		MenuBackground: ui.MenuBackground,
		HighlightStyle: ui.HighlightStyle,
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&overrides, opts); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	slide.TouchSlop = overrides.TouchSlop
	slide.MaxVelocity = overrides.MaxVelocity
	slide.FrameInterval = overrides.FrameInterval
	ui.MenuWidth = overrides.MenuWidth
	ui.MenuBackground = overrides.MenuBackground
	ui.HighlightStyle = overrides.HighlightStyle
	return nil
}
