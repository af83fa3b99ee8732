package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/entrhq/slidemenu/pkg/slidemenu"
)

const (
	// SectionIDSlide is the identifier for the gesture and animation section
	SectionIDSlide = "slide"

	defaultFrameInterval = 16 * time.Millisecond
)

// SlideSection tunes gesture classification and snap animation.
type SlideSection struct {
	TouchSlop        float64
	MaxVelocity      float64
	MinFlingDuration time.Duration
	MaxFlingDuration time.Duration
	CloseDuration    time.Duration
	MenuMinWidth     int
	FrameInterval    time.Duration
	mu               sync.RWMutex
}

// NewSlideSection creates a slide section with default settings.
func NewSlideSection() *SlideSection {
	s := &SlideSection{}
	s.Reset()
	return s
}

// ID returns the section identifier.
func (s *SlideSection) ID() string {
	return SectionIDSlide
}

// Title returns the section title.
func (s *SlideSection) Title() string {
	return "Slide Settings"
}

// Description returns the section description.
func (s *SlideSection) Description() string {
	return "Tune drag slop, fling velocity and snap animation durations."
}

// Data returns the current configuration data.
func (s *SlideSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"touch_slop":         s.TouchSlop,
		"max_velocity":       s.MaxVelocity,
		"min_fling_duration": s.MinFlingDuration.String(),
		"max_fling_duration": s.MaxFlingDuration.String(),
		"close_duration":     s.CloseDuration.String(),
		"menu_min_width":     s.MenuMinWidth,
		"frame_interval":     s.FrameInterval.String(),
	}
}

// SetData updates the configuration from the provided data.
func (s *SlideSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		var err error
		switch key {
		case "touch_slop":
			s.TouchSlop, err = toFloat(key, value)
		case "max_velocity":
			s.MaxVelocity, err = toFloat(key, value)
		case "min_fling_duration":
			s.MinFlingDuration, err = toDuration(key, value)
		case "max_fling_duration":
			s.MaxFlingDuration, err = toDuration(key, value)
		case "close_duration":
			s.CloseDuration, err = toDuration(key, value)
		case "frame_interval":
			s.FrameInterval, err = toDuration(key, value)
		case "menu_min_width":
			var f float64
			f, err = toFloat(key, value)
			s.MenuMinWidth = int(f)
		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *SlideSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.TouchSlop <= 0 {
		return fmt.Errorf("touch_slop must be positive, got %v", s.TouchSlop)
	}
	if s.MaxVelocity <= 0 {
		return fmt.Errorf("max_velocity must be positive, got %v", s.MaxVelocity)
	}
	if s.MinFlingDuration <= 0 || s.MaxFlingDuration < s.MinFlingDuration {
		return fmt.Errorf("fling durations must satisfy 0 < min <= max, got %v..%v", s.MinFlingDuration, s.MaxFlingDuration)
	}
	if s.CloseDuration <= 0 || s.CloseDuration > 5*time.Second {
		return fmt.Errorf("close_duration must be between 0 and 5s, got %v", s.CloseDuration)
	}
	if s.FrameInterval < time.Millisecond || s.FrameInterval > 200*time.Millisecond {
		return fmt.Errorf("frame_interval must be between 1ms and 200ms, got %v", s.FrameInterval)
	}
	if s.MenuMinWidth <= 0 {
		return fmt.Errorf("menu_min_width must be positive, got %d", s.MenuMinWidth)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *SlideSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := slidemenu.DefaultOptions()
	s.TouchSlop = d.TouchSlop
	s.MaxVelocity = d.MaxVelocity
	s.MinFlingDuration = d.MinFlingDuration
	s.MaxFlingDuration = d.MaxFlingDuration
	s.CloseDuration = d.CloseDuration
	s.MenuMinWidth = d.MenuMinWidth
	s.FrameInterval = defaultFrameInterval
}

// Options converts the section into controller options.
func (s *SlideSection) Options() slidemenu.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slidemenu.Options{
		TouchSlop:        s.TouchSlop,
		MaxVelocity:      s.MaxVelocity,
		MinFlingDuration: s.MinFlingDuration,
		MaxFlingDuration: s.MaxFlingDuration,
		CloseDuration:    s.CloseDuration,
		MenuMinWidth:     s.MenuMinWidth,
	}
}

// GetFrameInterval returns the animation frame interval.
func (s *SlideSection) GetFrameInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.FrameInterval
}

func toFloat(key string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("invalid value type for %s: expected number, got %T", key, value)
	}
}

func toDuration(key string, value interface{}) (time.Duration, error) {
	switch v := value.(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid duration string for %s: %w", key, err)
		}
		return d, nil
	case float64:
		// JSON numbers come as float64
		return time.Duration(v), nil
	case int64:
		return time.Duration(v), nil
	case time.Duration:
		return v, nil
	default:
		return 0, fmt.Errorf("invalid value type for %s: expected string or number, got %T", key, value)
	}
}
