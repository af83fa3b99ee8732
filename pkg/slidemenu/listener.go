package slidemenu

// Listener receives the menu callbacks.
type Listener interface {
	// OnMenuClick fires when a tap lands on the revealed menu while fully open.
	OnMenuClick()
	// OnMenuOpened fires when an open animation completes uncancelled.
	OnMenuOpened()
	// OnMenuClosed fires when a close animation completes uncancelled.
	OnMenuClosed()
}

// ListenerFuncs adapts optional functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	MenuClick  func()
	MenuOpened func()
	MenuClosed func()
}

func (l ListenerFuncs) OnMenuClick() {
	if l.MenuClick != nil {
		l.MenuClick()
	}
}

func (l ListenerFuncs) OnMenuOpened() {
	if l.MenuOpened != nil {
		l.MenuOpened()
	}
}

func (l ListenerFuncs) OnMenuClosed() {
	if l.MenuClosed != nil {
		l.MenuClosed()
	}
}

// ClickFunc handles a plain click on the closed widget.
type ClickFunc func(p Point)

// Renderer paints the two layers. Invalidate is a fire-and-forget redraw hint.
type Renderer interface {
	Invalidate()
	SetMenuBackground(color string)
}

// Scheduler delivers animation frames back to the controller via Tick.
type Scheduler interface {
	ScheduleFrame(jobID int)
}
