package testing

import (
	"fmt"

	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/widget"
)

// Tap simulates a left click at the center of the first widget matched by
// finder.
func (t *Tester[T, A]) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(center)
}

// TapAt simulates a left click at the given window position.
func (t *Tester[T, A]) TapAt(pos graphics.Offset) error {
	if err := t.SendMouseDown(pos, widget.MouseButtonLeft); err != nil {
		return err
	}
	return t.SendMouseUp(pos, widget.MouseButtonLeft)
}

// Hover moves the pointer to the center of the first widget matched by
// finder.
func (t *Tester[T, A]) Hover(finder Finder) error {
	center, err := t.centerOf("Hover", finder)
	if err != nil {
		return err
	}
	return t.SendMouseMove(center)
}

// Scroll sends a wheel event with delta at the center of the first widget
// matched by finder.
func (t *Tester[T, A]) Scroll(finder Finder, delta graphics.Offset) error {
	center, err := t.centerOf("Scroll", finder)
	if err != nil {
		return err
	}
	return t.send(widget.MouseWheel{MouseEvent: t.mouse(center, widget.MouseButtonNone, delta)})
}

// SendMouseDown presses button at pos.
func (t *Tester[T, A]) SendMouseDown(pos graphics.Offset, button widget.MouseButton) error {
	t.buttons = t.buttons.With(button)
	ev := t.mouse(pos, button, graphics.Offset{})
	ev.Count = 1
	return t.send(widget.MouseDown{MouseEvent: ev})
}

// SendMouseUp releases button at pos.
func (t *Tester[T, A]) SendMouseUp(pos graphics.Offset, button widget.MouseButton) error {
	t.buttons = 0
	ev := t.mouse(pos, button, graphics.Offset{})
	ev.Count = 1
	return t.send(widget.MouseUp{MouseEvent: ev})
}

// SendMouseMove moves the pointer to pos with the currently held buttons.
func (t *Tester[T, A]) SendMouseMove(pos graphics.Offset) error {
	return t.send(widget.MouseMove{MouseEvent: t.mouse(pos, widget.MouseButtonNone, graphics.Offset{})})
}

// SendKey sends a key press followed by its release.
func (t *Tester[T, A]) SendKey(key string, mods widget.Modifiers) error {
	ev := widget.KeyEvent{Key: key, Mods: mods}
	if err := t.send(widget.KeyDown{KeyEvent: ev}); err != nil {
		return err
	}
	return t.send(widget.KeyUp{KeyEvent: ev})
}

func (t *Tester[T, A]) mouse(pos graphics.Offset, button widget.MouseButton, wheel graphics.Offset) widget.MouseEvent {
	return widget.MouseEvent{
		Pos:        pos,
		WindowPos:  pos,
		Buttons:    t.buttons,
		Button:     button,
		WheelDelta: wheel,
	}
}

func (t *Tester[T, A]) send(event widget.RawEvent) error {
	if t.app == nil {
		return fmt.Errorf("no application: call Pump first")
	}
	return t.app.HandleEvent(event)
}

func (t *Tester[T, A]) centerOf(gesture string, finder Finder) (graphics.Offset, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Offset{}, fmt.Errorf("%s: finder matched no widgets: %s", gesture, finder.Description())
	}
	return result.First().Center(), nil
}
