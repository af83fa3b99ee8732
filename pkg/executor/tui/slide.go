package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/entrhq/slidemenu/pkg/executor/tui/types"
	"github.com/entrhq/slidemenu/pkg/slidemenu"
)

// OnMenuClick implements slidemenu.Listener. The tapped row picks the item.
func (m *model) OnMenuClick() {
	item, ok := m.menu.At(int(m.lastUp.Y))
	if !ok {
		return
	}
	debugLog.Debugf("menu click: %q (%s)", item.Title, item.Action)
	m.queue(m.runAction(item.Action))
}

// OnMenuOpened implements slidemenu.Listener
func (m *model) OnMenuOpened() {
	debugLog.Debugf("menu opened")
	m.status = "menu open"
}

// OnMenuClosed implements slidemenu.Listener
func (m *model) OnMenuClosed() {
	debugLog.Debugf("menu closed")
	m.status = ""
}

// Invalidate implements slidemenu.Renderer. Bubble Tea repaints after every
// Update, so there is nothing to queue.
func (m *model) Invalidate() {}

// SetMenuBackground implements slidemenu.Renderer
func (m *model) SetMenuBackground(color string) {
	m.ui.SetMenuBackground(color)
}

// ScheduleFrame implements slidemenu.Scheduler with a tea.Tick per frame
func (m *model) ScheduleFrame(jobID int) {
	m.queue(tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return types.FrameMsg{JobID: jobID, Time: t}
	}))
}

// handleFrame advances the animation; the controller reschedules itself
func (m *model) handleFrame(msg types.FrameMsg) (tea.Model, tea.Cmd) {
	m.controller.Tick(msg.JobID, msg.Time)
	return m, m.flush()
}

// handleClick reports the document line under a plain click on the closed panel
func (m *model) handleClick(p slidemenu.Point) {
	if m.doc == nil {
		return
	}
	row := int(p.Y) + m.viewport.YOffset
	line, ok := m.doc.Line(row)
	if !ok {
		return
	}
	m.status = formatClickedLine(row, line)
}

// handleMouse turns left-button mouse input into pointer events. Wheel input
// and vertical pass-through drags scroll the document.
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if m.controller.State().IsClosed() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	p := slidemenu.Point{X: float64(msg.X), Y: float64(msg.Y)}
	now := m.now()

	var ev slidemenu.PointerEvent
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y >= m.bodyHeight() {
			return m, nil
		}
		m.pressed = true
		ev = slidemenu.PointerEvent{Action: slidemenu.PointerDown, Position: p, Time: now}
	case msg.Action == tea.MouseActionMotion && m.pressed:
		ev = slidemenu.PointerEvent{Action: slidemenu.PointerMove, Position: p, Time: now}
	case msg.Action == tea.MouseActionRelease && m.pressed:
		m.pressed = false
		m.lastUp = p
		ev = slidemenu.PointerEvent{Action: slidemenu.PointerUp, Position: p, Time: now}
	default:
		return m, nil
	}

	g := m.controller.HandlePointer(ev)
	if g.Kind == slidemenu.GesturePassThrough {
		m.scrollBy(g.DeltaY)
	}
	return m, m.flush()
}

// cancelPointer ends a held gesture without a tap, e.g. when focus moves to
// an overlay mid-drag.
func (m *model) cancelPointer() {
	if !m.pressed {
		return
	}
	m.pressed = false
	session := m.controller.Session()
	if session == nil {
		return
	}
	m.controller.HandlePointer(slidemenu.PointerEvent{
		Action:   slidemenu.PointerCancel,
		Position: session.Last,
		Time:     m.now(),
	})
}

// scrollBy drags the document like a touch surface: pointer down scrolls up.
func (m *model) scrollBy(dy float64) {
	rows := int(math.Round(math.Abs(dy)))
	if rows == 0 || !m.controller.State().IsClosed() {
		return
	}
	if dy > 0 {
		m.viewport.LineUp(rows)
	} else {
		m.viewport.LineDown(rows)
	}
}

// relayout measures both rendered panels and hands their widths to the
// controller in menu, main order.
func (m *model) relayout() {
	menuView := m.renderMenu()
	mainView := m.viewport.View()

	layout, err := m.controller.Layout(m.width, lipgloss.Width(menuView), lipgloss.Width(mainView))
	m.layout = layout
	m.layoutErr = err
	if err != nil {
		debugLog.Warnf("layout failed, menu disabled: %v", err)
		return
	}
	debugLog.Debugf("layout: container=%d slidable=%d", m.width, layout.SlidableDistance)
}
