package slidemenu

import "math"

// Point is a pointer position in container cells.
type Point struct {
	X float64
	Y float64
}

// Direction is the sign of the most recent horizontal drag delta.
type Direction int

const (
	// DirectionNone means no drag delta has been applied in the session.
	DirectionNone Direction = iota
	// DirectionLeft means the last delta moved towards negative X (opening).
	DirectionLeft
	// DirectionRight means the last delta moved towards positive X (closing).
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// GestureKind classifies what a pointer event means to the widget.
type GestureKind int

const (
	// GestureNone is returned for events that carry no decision.
	GestureNone GestureKind = iota
	// GestureTapCandidate starts a session; it may still end as a tap.
	GestureTapCandidate
	// GestureDrag carries a horizontal delta to apply to the translation.
	GestureDrag
	// GesturePassThrough belongs to the host (scroll, dead zone, slop).
	GesturePassThrough
	// GestureEnd closes the session at the up point.
	GestureEnd
)

func (k GestureKind) String() string {
	switch k {
	case GestureTapCandidate:
		return "tap-candidate"
	case GestureDrag:
		return "drag"
	case GesturePassThrough:
		return "pass-through"
	case GestureEnd:
		return "end"
	default:
		return "none"
	}
}

// Gesture is the classifier's decision for a single pointer event.
type Gesture struct {
	Kind   GestureKind
	DeltaX float64
	DeltaY float64
	Point  Point
}

// GestureSession is the state of one touch sequence, from down to up.
type GestureSession struct {
	Anchor    Point
	Last      Point
	HasSlid   bool
	Direction Direction
}

// PanelView is the read-only slice of panel state the classifier consults.
type PanelView struct {
	Translation      float64
	SlidableDistance int
	ContainerWidth   int
}

// GestureClassifier turns pointer down/move/up into drag deltas or
// pass-through decisions.
type GestureClassifier struct {
	touchSlop float64
	session   *GestureSession
}

// NewGestureClassifier creates a classifier with the given slop in cells.
func NewGestureClassifier(touchSlop float64) *GestureClassifier {
	return &GestureClassifier{touchSlop: touchSlop}
}

// Session returns the active session, or nil between gestures.
func (g *GestureClassifier) Session() *GestureSession {
	return g.session
}

// Down starts a new session anchored at p.
func (g *GestureClassifier) Down(p Point) Gesture {
	g.session = &GestureSession{Anchor: p, Last: p}
	return Gesture{Kind: GestureTapCandidate, Point: p}
}

// Move classifies a pointer move against the current panel state.
func (g *GestureClassifier) Move(p Point, view PanelView) Gesture {
	s := g.session
	if s == nil {
		return Gesture{Kind: GesturePassThrough, Point: p}
	}

	dx := p.X - s.Last.X
	dy := p.Y - s.Last.Y
	pass := Gesture{Kind: GesturePassThrough, DeltaX: dx, DeltaY: dy, Point: p}

	// Every branch consumes the move.
	s.Last = p

	switch {
	case view.SlidableDistance <= 0:
		return pass
	case view.Translation == 0 && s.HasSlid:
		s.HasSlid = false
		return pass
	case view.Translation < 0 && s.Anchor.X > float64(view.ContainerWidth)+view.Translation:
		return pass
	case math.Abs(dy) > math.Abs(dx):
		return pass
	case math.Abs(p.X-s.Anchor.X) < g.touchSlop:
		return pass
	}

	switch {
	case dx > 0:
		s.Direction = DirectionRight
	case dx < 0:
		s.Direction = DirectionLeft
	}
	s.HasSlid = true
	return Gesture{Kind: GestureDrag, DeltaX: dx, DeltaY: dy, Point: p}
}

// Up ends the session and reports the up point.
func (g *GestureClassifier) Up(p Point) Gesture {
	g.session = nil
	return Gesture{Kind: GestureEnd, Point: p}
}
