package slidemenu

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every collaborator call made by the controller.
type recorder struct {
	menuClicks  int
	opened      int
	closed      int
	clicks      []Point
	invalidates int
	background  string
	frames      []int
}

func (r *recorder) OnMenuClick()                   { r.menuClicks++ }
func (r *recorder) OnMenuOpened()                  { r.opened++ }
func (r *recorder) OnMenuClosed()                  { r.closed++ }
func (r *recorder) Invalidate()                    { r.invalidates++ }
func (r *recorder) SetMenuBackground(color string) { r.background = color }
func (r *recorder) ScheduleFrame(jobID int)        { r.frames = append(r.frames, jobID) }

const (
	testContainer = 400
	testMenu      = 200
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestController(t *testing.T) (*Controller, *recorder) {
	t.Helper()
	c := NewController(DefaultOptions())
	rec := &recorder{}
	c.SetListener(rec)
	c.SetRenderer(rec)
	c.SetScheduler(rec)
	c.SetClickHandler(func(p Point) { rec.clicks = append(rec.clicks, p) })

	_, err := c.Layout(testContainer, testContainer, testMenu)
	require.NoError(t, err)
	return c, rec
}

// gesture replays pointer events 10ms apart.
type gesture struct {
	c   *Controller
	now time.Time
}

func (g *gesture) send(action PointerAction, x, y float64) Gesture {
	g.now = g.now.Add(10 * time.Millisecond)
	return g.c.HandlePointer(PointerEvent{Action: action, Position: Point{X: x, Y: y}, Time: g.now})
}

// dragTo presses at (x, y) and moves horizontally in steps of step cells
// until x reaches toX, without releasing.
func (g *gesture) dragTo(x, y, toX, step float64) float64 {
	g.send(PointerDown, x, y)
	for x != toX {
		if x > toX {
			x -= step
		} else {
			x += step
		}
		g.send(PointerMove, x, y)
	}
	return x
}

// finish ticks the running animation until it completes.
func finish(t *testing.T, c *Controller, rec *recorder, now time.Time) {
	t.Helper()
	require.NotEmpty(t, rec.frames, "animation should have requested a frame")
	id := rec.frames[len(rec.frames)-1]
	for i := 0; c.Tick(id, now.Add(time.Duration(i)*16*time.Millisecond)); i++ {
		require.Less(t, i, 100, "animation did not finish")
	}
}

func TestController_TranslationStaysClamped(t *testing.T) {
	c, _ := newTestController(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		c.ApplyDrag(rng.Float64()*160 - 80)
		tr := c.State().Translation
		require.GreaterOrEqual(t, tr, -float64(testMenu))
		require.LessOrEqual(t, tr, 0.0)
	}
}

func TestController_ForceCloseIsIdempotent(t *testing.T) {
	c, rec := newTestController(t)
	c.ApplyDrag(-120)

	c.ForceClose()
	assert.Equal(t, 0.0, c.State().Translation)
	c.ForceClose()
	assert.Equal(t, 0.0, c.State().Translation)

	assert.Zero(t, rec.opened+rec.closed+rec.menuClicks)
	assert.Empty(t, rec.clicks)
}

func TestController_ForceCloseCancelsAnimation(t *testing.T) {
	c, rec := newTestController(t)
	c.ApplyDrag(-100)
	require.True(t, c.Close(testEpoch))

	c.ForceClose()
	assert.False(t, c.Animating())
	assert.False(t, c.Tick(rec.frames[0], testEpoch.Add(time.Second)))
	assert.Zero(t, rec.closed)
}

func TestController_DragPastDistanceOpens(t *testing.T) {
	c, rec := newTestController(t)
	g := &gesture{c: c, now: testEpoch}

	x := g.dragTo(150, 3, -70, 10)
	assert.Equal(t, -float64(testMenu), c.State().Translation, "220 cells of drag clamps at the menu width")
	assert.True(t, c.State().IsOpen())

	g.send(PointerUp, x, 3)
	require.True(t, c.Animating())
	job := c.animator.active.Job
	assert.Equal(t, -float64(testMenu), job.End)
	assert.Equal(t, DefaultMinFlingDuration, job.Duration)

	finish(t, c, rec, g.now)
	assert.Equal(t, 1, rec.opened)
	assert.Zero(t, rec.closed)
	assert.True(t, c.State().IsOpen())
}

func TestController_ShortLeftDragSnapsOpen(t *testing.T) {
	c, rec := newTestController(t)
	g := &gesture{c: c, now: testEpoch}

	// Past the slop the first move applies its full delta: 150 -> 120 is -30.
	x := g.dragTo(150, 3, 120, 30)
	require.Equal(t, -30.0, c.State().Translation)

	g.send(PointerUp, x, 3)
	require.True(t, c.Animating())
	job := c.animator.active.Job
	assert.Equal(t, -30.0, job.Start)
	assert.Equal(t, -float64(testMenu), job.End)
	assert.GreaterOrEqual(t, job.Duration, DefaultMinFlingDuration)
	assert.LessOrEqual(t, job.Duration, DefaultMaxFlingDuration)

	finish(t, c, rec, g.now)
	assert.Equal(t, 1, rec.opened)
}

func TestController_ShallowDragSnapsClosed(t *testing.T) {
	c, rec := newTestController(t)
	g := &gesture{c: c, now: testEpoch}

	x := g.dragTo(150, 3, 140, 10)
	require.Equal(t, -10.0, c.State().Translation, "-10 is inside the -25 threshold")

	g.send(PointerUp, x, 3)
	job := c.animator.active.Job
	assert.Equal(t, 0.0, job.End)
	assert.Equal(t, DefaultCloseDuration, job.Duration)

	finish(t, c, rec, g.now)
	assert.Equal(t, 1, rec.closed)
	assert.Zero(t, rec.opened)
}

func TestController_RightwardReleaseCloses(t *testing.T) {
	c, rec := newTestController(t)
	c.ApplyDrag(-150)
	g := &gesture{c: c, now: testEpoch}

	x := g.dragTo(100, 3, 120, 10)
	require.Equal(t, -130.0, c.State().Translation)

	g.send(PointerUp, x, 3)
	job := c.animator.active.Job
	assert.Equal(t, 0.0, job.End)
	assert.Equal(t, DefaultCloseDuration, job.Duration)

	finish(t, c, rec, g.now)
	assert.Equal(t, 1, rec.closed)
}

func TestController_DeepRightwardReleaseStaysOpen(t *testing.T) {
	c, _ := newTestController(t)
	c.ApplyDrag(-200)

	c.ResolveGesture(Point{X: 50}, Point{X: 40}, 0.5, DirectionRight, testEpoch)
	job := c.animator.active.Job
	assert.Equal(t, -float64(testMenu), job.End, "past 7/8 of the distance snaps open regardless of direction")
}

func TestController_TapOnRevealedMenuCloses(t *testing.T) {
	c, rec := newTestController(t)
	c.ApplyDrag(-float64(testMenu))
	require.True(t, c.State().IsOpen())
	g := &gesture{c: c, now: testEpoch}

	// The revealed edge sits at 400-200 = 200.
	g.send(PointerDown, 300, 4)
	g.send(PointerUp, 300, 4)

	assert.Equal(t, 1, rec.menuClicks)
	require.True(t, c.Animating())
	job := c.animator.active.Job
	assert.Equal(t, 0.0, job.End)
	assert.Equal(t, 300*time.Millisecond, job.Duration)

	finish(t, c, rec, g.now)
	assert.Equal(t, 1, rec.closed)
	assert.Zero(t, rec.opened)
	assert.Empty(t, rec.clicks)
}

func TestController_TapWhenClosedIsPlainClick(t *testing.T) {
	c, rec := newTestController(t)
	g := &gesture{c: c, now: testEpoch}

	g.send(PointerDown, 42, 7)
	g.send(PointerUp, 42, 7)

	assert.Equal(t, []Point{{X: 42, Y: 7}}, rec.clicks)
	assert.Zero(t, rec.menuClicks+rec.opened+rec.closed)
	assert.False(t, c.Animating())
}

func TestController_MovedReleaseWhenClosedIsNoop(t *testing.T) {
	c, rec := newTestController(t)
	g := &gesture{c: c, now: testEpoch}

	g.send(PointerDown, 42, 7)
	g.send(PointerMove, 42, 12)
	g.send(PointerUp, 42, 12)

	assert.Empty(t, rec.clicks)
	assert.False(t, c.Animating())
}

func TestController_VerticalMovesNeverTranslate(t *testing.T) {
	c, _ := newTestController(t)
	g := &gesture{c: c, now: testEpoch}

	g.send(PointerDown, 150, 0)
	for i := 1; i <= 10; i++ {
		got := g.send(PointerMove, 150-float64(i), float64(i*3))
		assert.Equal(t, GesturePassThrough, got.Kind)
		assert.Equal(t, 3.0, got.DeltaY)
	}
	assert.Equal(t, 0.0, c.State().Translation)
}

func TestController_NewGestureCancelsAnimation(t *testing.T) {
	c, rec := newTestController(t)
	c.ApplyDrag(-100)
	require.True(t, c.Close(testEpoch))
	stale := rec.frames[len(rec.frames)-1]
	require.True(t, c.Tick(stale, testEpoch.Add(50*time.Millisecond)))
	mid := c.State().Translation
	require.Less(t, mid, 0.0)

	c.HandlePointer(PointerEvent{Action: PointerDown, Position: Point{X: 50}, Time: testEpoch.Add(60 * time.Millisecond)})
	assert.False(t, c.Animating())
	assert.Equal(t, mid, c.State().Translation, "the gesture takes over from the interrupted position")

	assert.False(t, c.Tick(stale, testEpoch.Add(time.Second)))
	assert.Zero(t, rec.closed, "an interrupted animation never completes")
}

func TestController_LayoutErrorDegradesToPassThrough(t *testing.T) {
	c := NewController(DefaultOptions())
	rec := &recorder{}
	c.SetClickHandler(func(p Point) { rec.clicks = append(rec.clicks, p) })

	_, err := c.Layout(80, 80, 80)
	require.ErrorIs(t, err, ErrNoMenuPanel)

	g := &gesture{c: c, now: testEpoch}
	g.send(PointerDown, 40, 1)
	got := g.send(PointerMove, 10, 1)
	assert.Equal(t, GesturePassThrough, got.Kind)
	assert.Equal(t, 0.0, c.State().Translation)

	g.send(PointerDown, 5, 5)
	g.send(PointerUp, 5, 5)
	assert.Len(t, rec.clicks, 1, "plain clicks still work without a layout")
}

func TestController_RelayoutReclamps(t *testing.T) {
	c, _ := newTestController(t)
	c.ApplyDrag(-180)

	layout, err := c.Layout(300, 120, 300)
	require.NoError(t, err)
	assert.Equal(t, PanelLayout{Menu: 0, Main: 1, SlidableDistance: 120}, layout)
	assert.Equal(t, -120.0, c.State().Translation)
	assert.True(t, c.State().IsOpen())
	assert.Equal(t, 300, c.ContainerWidth())
}

func TestController_MissingListenerIsNoop(t *testing.T) {
	c := NewController(Options{})
	_, err := c.Layout(testContainer, testMenu, testContainer)
	require.NoError(t, err)

	c.ApplyDrag(-float64(testMenu))
	c.ResolveGesture(Point{X: 300}, Point{X: 300}, 0, DirectionNone, testEpoch)
	id := c.animator.ActiveID()
	require.NotZero(t, id)
	for i := 1; c.Tick(id, testEpoch.Add(time.Duration(i)*50*time.Millisecond)); i++ {
	}
	assert.Equal(t, 0.0, c.State().Translation)
}

func TestController_OpenCloseToggle(t *testing.T) {
	c, rec := newTestController(t)

	assert.False(t, c.Close(testEpoch), "already closed")
	require.True(t, c.Toggle(testEpoch))
	finish(t, c, rec, testEpoch)
	assert.True(t, c.State().IsOpen())
	assert.Equal(t, 1, rec.opened)

	assert.False(t, c.Open(testEpoch), "already open")
	require.True(t, c.Toggle(testEpoch))
	finish(t, c, rec, testEpoch)
	assert.True(t, c.State().IsClosed())
	assert.Equal(t, 1, rec.closed)
}

func TestController_SetMenuBackground(t *testing.T) {
	c, rec := newTestController(t)
	before := rec.invalidates

	c.SetMenuBackground("#224466")
	assert.Equal(t, "#224466", rec.background)
	assert.Equal(t, before+1, rec.invalidates)
}

func TestController_FlingDuration(t *testing.T) {
	c := NewController(DefaultOptions())

	tests := []struct {
		name     string
		distance float64
		velocity float64
		want     time.Duration
	}{
		{"zero distance", 0, 1, DefaultMinFlingDuration},
		{"zero velocity", -100, 0, DefaultMaxFlingDuration},
		{"fast fling clamps low", -100, -2, DefaultMinFlingDuration},
		{"slow fling clamps high", -100, -0.1, DefaultMaxFlingDuration},
		{"in range", -125, -0.5, 250 * time.Millisecond},
		{"in range truncates to ms", -80, -0.3, 266 * time.Millisecond},
		{"opposite velocity uses magnitude", -125, 0.5, 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.flingDuration(tt.distance, tt.velocity))
		})
	}
}
