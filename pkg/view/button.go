package view

import (
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// ButtonView is a clickable label. The callback runs with mutable access
// to the application state when the button is clicked.
type ButtonView[T, A any] struct {
	label   string
	clicked func(app *T) A
}

// Button returns a button showing label that calls clicked on click and
// returns its result as the action.
func Button[T, A any](label string, clicked func(app *T) A) ButtonView[T, A] {
	return ButtonView[T, A]{label: label, clicked: clicked}
}

func (b ButtonView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	var w *widget.Button
	vid := cx.WithNewId(func(cx *Cx) {
		w = widget.NewButton(cx.IdPath(), b.label)
	})
	return vid, nil, w
}

func (b ButtonView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Button.Rebuild"
	p := prevAs[ButtonView[T, A]](prev, op)
	button := widget.Downcast[*widget.Button](w, op)
	if b.label == p.label {
		return false
	}
	button.SetLabel(b.label)
	return true
}

func (b ButtonView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	if len(path) != 0 {
		return Stale[A]()
	}
	if _, ok := event.(widget.ButtonClicked); !ok || b.clicked == nil {
		return Nop[A]()
	}
	return Action(b.clicked(app))
}
