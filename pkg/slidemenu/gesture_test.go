package slidemenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGestureClassifier_Move(t *testing.T) {
	closed := PanelView{Translation: 0, SlidableDistance: 200, ContainerWidth: 400}

	tests := []struct {
		name      string
		anchor    Point
		move      Point
		view      PanelView
		hasSlid   bool
		wantKind  GestureKind
		wantDelta float64
		wantDir   Direction
	}{
		{
			name:     "horizontal move past slop drags",
			anchor:   Point{X: 150, Y: 5},
			move:     Point{X: 140, Y: 5},
			view:     closed,
			wantKind: GestureDrag, wantDelta: -10, wantDir: DirectionLeft,
		},
		{
			name:     "rightward drag records direction",
			anchor:   Point{X: 150, Y: 5},
			move:     Point{X: 160, Y: 5},
			view:     PanelView{Translation: -50, SlidableDistance: 200, ContainerWidth: 400},
			wantKind: GestureDrag, wantDelta: 10, wantDir: DirectionRight,
		},
		{
			name:     "vertical dominant move passes through",
			anchor:   Point{X: 150, Y: 5},
			move:     Point{X: 147, Y: 9},
			view:     closed,
			wantKind: GesturePassThrough,
		},
		{
			name:     "move inside slop passes through",
			anchor:   Point{X: 150, Y: 5},
			move:     Point{X: 149, Y: 5},
			view:     closed,
			wantKind: GesturePassThrough,
		},
		{
			name:     "anchor on revealed menu passes through",
			anchor:   Point{X: 390, Y: 5},
			move:     Point{X: 380, Y: 5},
			view:     PanelView{Translation: -200, SlidableDistance: 200, ContainerWidth: 400},
			wantKind: GesturePassThrough,
		},
		{
			name:     "closed after an earlier slide passes through once",
			anchor:   Point{X: 150, Y: 5},
			move:     Point{X: 140, Y: 5},
			view:     closed,
			hasSlid:  true,
			wantKind: GesturePassThrough,
		},
		{
			name:     "no slidable distance passes through",
			anchor:   Point{X: 150, Y: 5},
			move:     Point{X: 100, Y: 5},
			view:     PanelView{ContainerWidth: 400},
			wantKind: GesturePassThrough,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureClassifier(DefaultTouchSlop)
			down := g.Down(tt.anchor)
			require.Equal(t, GestureTapCandidate, down.Kind)
			g.Session().HasSlid = tt.hasSlid

			got := g.Move(tt.move, tt.view)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.move, g.Session().Last, "every move should advance the last point")
			if tt.wantKind == GestureDrag {
				assert.Equal(t, tt.wantDelta, got.DeltaX)
				assert.Equal(t, tt.wantDir, g.Session().Direction)
				assert.True(t, g.Session().HasSlid)
			}
		})
	}
}

func TestGestureClassifier_HasSlidIsOneShot(t *testing.T) {
	g := NewGestureClassifier(DefaultTouchSlop)
	closed := PanelView{SlidableDistance: 200, ContainerWidth: 400}

	g.Down(Point{X: 150})
	g.Session().HasSlid = true

	assert.Equal(t, GesturePassThrough, g.Move(Point{X: 140}, closed).Kind)
	assert.False(t, g.Session().HasSlid)
	assert.Equal(t, GestureDrag, g.Move(Point{X: 130}, closed).Kind)
}

func TestGestureClassifier_SlopIsCumulative(t *testing.T) {
	g := NewGestureClassifier(3)
	closed := PanelView{SlidableDistance: 200, ContainerWidth: 400}

	g.Down(Point{X: 150})
	assert.Equal(t, GesturePassThrough, g.Move(Point{X: 149}, closed).Kind)
	assert.Equal(t, GesturePassThrough, g.Move(Point{X: 148}, closed).Kind)

	got := g.Move(Point{X: 147}, closed)
	assert.Equal(t, GestureDrag, got.Kind)
	assert.Equal(t, -1.0, got.DeltaX, "delta is measured from the last point, not the anchor")
}

func TestGestureClassifier_UpEndsSession(t *testing.T) {
	g := NewGestureClassifier(DefaultTouchSlop)

	assert.Equal(t, GesturePassThrough, g.Move(Point{X: 1}, PanelView{}).Kind, "move without a session")

	g.Down(Point{X: 10, Y: 2})
	got := g.Up(Point{X: 12, Y: 2})
	assert.Equal(t, GestureEnd, got.Kind)
	assert.Equal(t, Point{X: 12, Y: 2}, got.Point)
	assert.Nil(t, g.Session())
}
