package widget

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
)

// RawEvent is one input event delivered by the windowing shell. The set of
// variants is closed: KeyDown, KeyUp, MouseDown, MouseUp, MouseMove and
// MouseWheel.
type RawEvent interface {
	isRawEvent()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// MouseButtons is the set of buttons held during an event.
type MouseButtons uint8

// Has reports whether b is held.
func (s MouseButtons) Has(b MouseButton) bool {
	if b == MouseButtonNone {
		return false
	}
	return s&(1<<uint(b-1)) != 0
}

// With returns the set including b.
func (s MouseButtons) With(b MouseButton) MouseButtons {
	if b == MouseButtonNone {
		return s
	}
	return s | 1<<uint(b-1)
}

// Modifiers is the set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// MouseEvent carries pointer state.
type MouseEvent struct {
	// Pos is the position in the coordinate space of the receiver.
	Pos graphics.Offset
	// WindowPos is the position in window coordinates.
	WindowPos  graphics.Offset
	Buttons    MouseButtons
	Mods       Modifiers
	Count      int
	Button     MouseButton
	WheelDelta graphics.Offset
}

// KeyEvent carries keyboard state.
type KeyEvent struct {
	// Key is the logical key, e.g. "a", "enter", "up".
	Key    string
	Mods   Modifiers
	Repeat bool
}

type (
	KeyDown    struct{ KeyEvent }
	KeyUp      struct{ KeyEvent }
	MouseDown  struct{ MouseEvent }
	MouseUp    struct{ MouseEvent }
	MouseMove  struct{ MouseEvent }
	MouseWheel struct{ MouseEvent }
)

func (KeyDown) isRawEvent()    {}
func (KeyUp) isRawEvent()      {}
func (MouseDown) isRawEvent()  {}
func (MouseUp) isRawEvent()    {}
func (MouseMove) isRawEvent()  {}
func (MouseWheel) isRawEvent() {}

// mouseOf returns the pointer payload of a mouse event.
func mouseOf(event RawEvent) (MouseEvent, bool) {
	switch e := event.(type) {
	case MouseDown:
		return e.MouseEvent, true
	case MouseUp:
		return e.MouseEvent, true
	case MouseMove:
		return e.MouseEvent, true
	case MouseWheel:
		return e.MouseEvent, true
	}
	return MouseEvent{}, false
}

// translated returns event with its receiver-relative position shifted by
// -origin. Keyboard events are returned unchanged.
func translated(event RawEvent, origin graphics.Offset) RawEvent {
	switch e := event.(type) {
	case MouseDown:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseUp:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseMove:
		e.Pos = e.Pos.Sub(origin)
		return e
	case MouseWheel:
		e.Pos = e.Pos.Sub(origin)
		return e
	}
	return event
}

// LifeCycle is a structural notification.
type LifeCycle interface {
	isLifeCycle()
}

// HotChanged is sent to a widget when the pointer enters or leaves it.
// It is local to the widget and not forwarded to children.
type HotChanged struct {
	Hot bool
}

// WidgetAdded is sent once to a widget during the first update pass after
// its pod was created.
type WidgetAdded struct{}

// MeasurerChanged is broadcast through the whole tree when the text
// measurer of the backend is replaced. Every pod re-measures.
type MeasurerChanged struct{}

func (HotChanged) isLifeCycle()      {}
func (WidgetAdded) isLifeCycle()     {}
func (MeasurerChanged) isLifeCycle() {}

// Message is queued by a widget for the view layer. Path addresses the view
// node that built the widget.
type Message struct {
	Path id.Path
	Body any
}

// ButtonClicked is the message body a Button emits when clicked.
type ButtonClicked struct{}
