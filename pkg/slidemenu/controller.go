// Package slidemenu implements the gesture and animation core of a two-layer
// sliding panel: a menu layer behind a main layer that a horizontal drag
// translates to reveal the menu.
//
// The package is host agnostic. A host feeds PointerEvents into
// Controller.HandlePointer, delivers animation frames through
// Controller.Tick, and paints the main layer shifted by
// PanelState.Translation over the menu layer.
//
// All methods must be called from a single goroutine (the host's event loop).
package slidemenu

import (
	"math"
	"time"
)

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a single pointer sample delivered by the host.
type PointerEvent struct {
	Action   PointerAction
	Position Point
	Time     time.Time
}

// PanelState is the persistent state of the widget.
// Translation always satisfies -SlidableDistance <= Translation <= 0.
type PanelState struct {
	Translation      float64
	SlidableDistance int
}

// IsOpen reports whether the menu is fully revealed.
func (s PanelState) IsOpen() bool {
	return s.SlidableDistance > 0 && s.Translation == -float64(s.SlidableDistance)
}

// IsClosed reports whether the main layer is at rest over the menu.
func (s PanelState) IsClosed() bool {
	return s.Translation == 0
}

// Controller owns the panel state and arbitrates between drags and
// animations so that exactly one of them drives the translation.
type Controller struct {
	opts           Options
	state          PanelState
	containerWidth int

	classifier *GestureClassifier
	velocity   *VelocityEstimator
	animator   *Animator

	listener  Listener
	onClick   ClickFunc
	renderer  Renderer
	scheduler Scheduler
}

// NewController creates a controller. Zero option fields take defaults.
func NewController(opts Options) *Controller {
	opts = opts.withDefaults()
	c := &Controller{
		opts:       opts,
		classifier: NewGestureClassifier(opts.TouchSlop),
		velocity:   NewVelocityEstimator(opts.MaxVelocity),
	}
	c.animator = NewAnimator(Decelerate, c.onAnimationUpdate, c.onAnimationComplete)
	return c
}

// SetListener registers the menu callbacks. A nil listener silences them.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// SetClickHandler registers the plain click handler, independent of the
// menu listener.
func (c *Controller) SetClickHandler(fn ClickFunc) {
	c.onClick = fn
}

// SetRenderer registers the paint collaborator.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

// SetScheduler registers the frame source for animations.
func (c *Controller) SetScheduler(s Scheduler) {
	c.scheduler = s
}

// Options returns the effective tuning.
func (c *Controller) Options() Options {
	return c.opts
}

// State returns a snapshot of the panel state.
func (c *Controller) State() PanelState {
	return c.state
}

// ContainerWidth returns the width recorded by the last Layout.
func (c *Controller) ContainerWidth() int {
	return c.containerWidth
}

// Session returns the active gesture session, or nil.
func (c *Controller) Session() *GestureSession {
	return c.classifier.Session()
}

// Animating reports whether an animation job is in flight.
func (c *Controller) Animating() bool {
	return c.animator.Running()
}

// SetMenuBackground delegates the menu color to the renderer and redraws.
func (c *Controller) SetMenuBackground(color string) {
	if c.renderer != nil {
		c.renderer.SetMenuBackground(color)
	}
	c.invalidate()
}

// Layout classifies the two children, records the menu width as the
// slidable distance and re-clamps the translation. On a classification
// error the slidable distance drops to zero, which turns every gesture
// into a pass-through, and the error is returned.
func (c *Controller) Layout(containerWidth int, childWidths ...int) (PanelLayout, error) {
	c.containerWidth = containerWidth

	layout, err := ClassifyPanels(containerWidth, c.opts.MenuMinWidth, childWidths...)
	if err != nil {
		c.state.SlidableDistance = 0
	} else {
		c.state.SlidableDistance = layout.SlidableDistance
	}

	c.state.Translation = c.clamp(c.state.Translation)
	c.invalidate()
	return layout, err
}

// ApplyDrag moves the main layer by dx, clamped to the slidable range.
func (c *Controller) ApplyDrag(dx float64) {
	c.state.Translation = c.clamp(c.state.Translation + dx)
	c.invalidate()
}

// ForceClose snaps the panel shut without animation or callbacks.
func (c *Controller) ForceClose() {
	c.animator.Cancel()
	c.state.Translation = 0
	c.invalidate()
}

// Open animates the menu fully open. It reports whether an animation started.
func (c *Controller) Open(now time.Time) bool {
	if c.state.SlidableDistance == 0 || (c.state.IsOpen() && !c.animator.Running()) {
		return false
	}
	c.animate(-float64(c.state.SlidableDistance), c.opts.CloseDuration, now)
	return true
}

// Close animates the menu shut. It reports whether an animation started.
func (c *Controller) Close(now time.Time) bool {
	if c.state.IsClosed() && !c.animator.Running() {
		return false
	}
	c.animate(0, c.opts.CloseDuration, now)
	return true
}

// Toggle closes a menu that is at least half revealed and opens it otherwise.
func (c *Controller) Toggle(now time.Time) bool {
	if c.state.Translation <= -float64(c.state.SlidableDistance)/2 && c.state.SlidableDistance > 0 {
		return c.Close(now)
	}
	return c.Open(now)
}

// Tick advances the animation job id to now. It reports whether the job
// still needs frames, and schedules the next one if so.
func (c *Controller) Tick(id int, now time.Time) bool {
	running := c.animator.Tick(id, now)
	if running && c.scheduler != nil {
		c.scheduler.ScheduleFrame(id)
	}
	return running
}

// HandlePointer is the pointer entry point. Pointer-down is always
// captured and cancels any running animation before the new session
// starts. The returned Gesture tells the host whether the event was
// consumed (drag) or should be forwarded (pass-through).
func (c *Controller) HandlePointer(ev PointerEvent) Gesture {
	switch ev.Action {
	case PointerDown:
		c.animator.Cancel()
		c.velocity.Reset()
		c.velocity.AddSample(ev.Position, ev.Time)
		return c.classifier.Down(ev.Position)

	case PointerMove:
		c.velocity.AddSample(ev.Position, ev.Time)
		g := c.classifier.Move(ev.Position, c.view())
		if g.Kind == GestureDrag {
			c.ApplyDrag(g.DeltaX)
		}
		return g

	case PointerUp, PointerCancel:
		session := c.classifier.Session()
		g := c.classifier.Up(ev.Position)
		if session == nil {
			return g
		}
		tap := ev.Action == PointerUp && ev.Position == session.Anchor
		c.resolve(ev.Position, tap, c.velocity.XVelocity(), session.Direction, ev.Time)
		return g
	}
	return Gesture{Kind: GestureNone, Point: ev.Position}
}

// ResolveGesture decides the end-of-gesture outcome: a plain click when
// nothing moved, otherwise a snap animation towards open or closed.
func (c *Controller) ResolveGesture(up, down Point, velocity float64, dir Direction, now time.Time) {
	c.resolve(up, up == down, velocity, dir, now)
}

func (c *Controller) resolve(up Point, tap bool, velocity float64, dir Direction, now time.Time) {
	t := c.state.Translation
	if t == 0 {
		if tap && c.onClick != nil {
			c.onClick(up)
		}
		return
	}

	d := c.state.SlidableDistance
	end := 0.0
	duration := c.opts.CloseDuration

	switch {
	case tap && t == -float64(d) && up.X > float64(c.containerWidth)+t:
		if c.listener != nil {
			c.listener.OnMenuClick()
		}
	case (t < float64(-d/8) && dir != DirectionRight) || t < float64(-7*d/8):
		end = -float64(d)
		duration = c.flingDuration(end-t, velocity)
	case t < 0 && t > float64(-7*d/8) && dir == DirectionRight:
		// Released while moving right: close.
	}

	c.animate(end, duration, now)
}

// flingDuration is the time to cover distance at velocity (cells/ms),
// clamped to the fling bounds. Zero distance takes the minimum and zero
// velocity the maximum.
func (c *Controller) flingDuration(distance, velocity float64) time.Duration {
	minD, maxD := c.opts.MinFlingDuration, c.opts.MaxFlingDuration
	if distance == 0 {
		return minD
	}
	if velocity == 0 {
		return maxD
	}
	ms := math.Abs(distance / velocity)
	if ms >= float64(maxD/time.Millisecond) {
		return maxD
	}
	d := time.Duration(int64(ms)) * time.Millisecond
	if d < minD {
		return minD
	}
	return d
}

func (c *Controller) animate(end float64, duration time.Duration, now time.Time) {
	id := c.animator.Start(Job{Start: c.state.Translation, End: end, Duration: duration}, now)
	if c.scheduler != nil {
		c.scheduler.ScheduleFrame(id)
	}
}

func (c *Controller) onAnimationUpdate(value float64) {
	c.state.Translation = c.clamp(value)
	c.invalidate()
}

func (c *Controller) onAnimationComplete(job Job) {
	if c.listener == nil {
		return
	}
	switch job.End {
	case 0:
		c.listener.OnMenuClosed()
	case -float64(c.state.SlidableDistance):
		c.listener.OnMenuOpened()
	}
}

func (c *Controller) view() PanelView {
	return PanelView{
		Translation:      c.state.Translation,
		SlidableDistance: c.state.SlidableDistance,
		ContainerWidth:   c.containerWidth,
	}
}

func (c *Controller) clamp(v float64) float64 {
	lower := -float64(c.state.SlidableDistance)
	if v < lower {
		return lower
	}
	if v > 0 {
		return 0
	}
	return v
}

func (c *Controller) invalidate() {
	if c.renderer != nil {
		c.renderer.Invalidate()
	}
}
