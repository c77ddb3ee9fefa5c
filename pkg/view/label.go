package view

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// LabelView displays text.
type LabelView[T, A any] struct {
	text  string
	color graphics.Color
	bold  bool
}

// Label returns a view showing text.
func Label[T, A any](text string) LabelView[T, A] {
	return LabelView[T, A]{text: text, color: graphics.ColorWhite}
}

// Color returns a copy drawn in c.
func (l LabelView[T, A]) Color(c graphics.Color) LabelView[T, A] {
	l.color = c
	return l
}

// Bold returns a copy drawn in bold.
func (l LabelView[T, A]) Bold() LabelView[T, A] {
	l.bold = true
	return l
}

func (l LabelView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	w := widget.NewLabel(l.text)
	w.SetColor(l.color)
	w.SetBold(l.bold)
	return id.Next(), nil, w
}

func (l LabelView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Label.Rebuild"
	p := prevAs[LabelView[T, A]](prev, op)
	label := widget.Downcast[*widget.Label](w, op)
	if l == p {
		return false
	}
	label.SetText(l.text)
	label.SetColor(l.color)
	label.SetBold(l.bold)
	return true
}

// Event always reports Stale: labels never address messages to themselves.
func (l LabelView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	return Stale[A]()
}
