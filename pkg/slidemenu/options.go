package slidemenu

import "time"

// Default tuning values.
const (
	DefaultTouchSlop        = 2.0
	DefaultMaxVelocity      = 8.0
	DefaultMinFlingDuration = 200 * time.Millisecond
	DefaultMaxFlingDuration = 300 * time.Millisecond
	DefaultCloseDuration    = 300 * time.Millisecond
)

// Options tunes gesture classification and snap animation.
type Options struct {
	// TouchSlop is the cumulative horizontal travel, in cells, before a
	// move counts as a drag.
	TouchSlop float64
	// MaxVelocity clamps the estimated velocity, in cells per millisecond.
	MaxVelocity float64
	// MinFlingDuration and MaxFlingDuration bound the snap-open duration.
	MinFlingDuration time.Duration
	MaxFlingDuration time.Duration
	// CloseDuration is used for every closing animation.
	CloseDuration time.Duration
	// MenuMinWidth is the width a child must exceed to be the menu.
	MenuMinWidth int
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		TouchSlop:        DefaultTouchSlop,
		MaxVelocity:      DefaultMaxVelocity,
		MinFlingDuration: DefaultMinFlingDuration,
		MaxFlingDuration: DefaultMaxFlingDuration,
		CloseDuration:    DefaultCloseDuration,
		MenuMinWidth:     DefaultMenuMinWidth,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TouchSlop <= 0 {
		o.TouchSlop = d.TouchSlop
	}
	if o.MaxVelocity <= 0 {
		o.MaxVelocity = d.MaxVelocity
	}
	if o.MinFlingDuration <= 0 {
		o.MinFlingDuration = d.MinFlingDuration
	}
	if o.MaxFlingDuration <= 0 {
		o.MaxFlingDuration = d.MaxFlingDuration
	}
	if o.MaxFlingDuration < o.MinFlingDuration {
		o.MaxFlingDuration = o.MinFlingDuration
	}
	if o.CloseDuration <= 0 {
		o.CloseDuration = d.CloseDuration
	}
	if o.MenuMinWidth <= 0 {
		o.MenuMinWidth = d.MenuMinWidth
	}
	return o
}
