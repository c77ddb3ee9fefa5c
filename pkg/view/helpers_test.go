package view

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

type counter struct {
	count int
	text  string
}

type action = string

// tree keeps one root view alive across rebuilds the way the app driver
// does.
type tree[T, A any] struct {
	cx    *Cx
	view  View[T, A]
	id    id.Id
	state any
	pod   *widget.Pod
}

func mount[T, A any](v View[T, A]) *tree[T, A] {
	t := &tree[T, A]{cx: NewCx(), view: v}
	t.id, t.state, t.pod = BuildPod(t.cx, v)
	return t
}

func (t *tree[T, A]) rebuild(v View[T, A]) bool {
	changed := RebuildChild(t.cx, v, t.view, &t.id, &t.state, t.pod)
	t.view = v
	if changed {
		t.pod.RequestUpdate()
	}
	return changed
}

func (t *tree[T, A]) event(path id.Path, event any, app *T) EventResult[A] {
	head, tail, ok := path.Head()
	if !ok || head != t.id {
		return Stale[A]()
	}
	return t.view.Event(tail, t.state, event, app)
}

// stubView builds stubWidgets and counts builds and the events routed to
// it.
type stubView[T, A any] struct {
	name   string
	builds *int
	events *int
}

func stub[T, A any](name string, builds *int) stubView[T, A] {
	return stubView[T, A]{name: name, builds: builds}
}

func (p stubView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	if p.builds != nil {
		*p.builds++
	}
	return id.Next(), nil, &stubWidget{name: p.name}
}

func (p stubView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	pw := widget.Downcast[*stubWidget](w, "stub.Rebuild")
	old := prevAs[stubView[T, A]](prev, "stub.Rebuild")
	if old.name == p.name {
		return false
	}
	pw.name = p.name
	return true
}

func (p stubView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	if p.events != nil {
		*p.events++
	}
	return Nop[A]()
}

type stubWidget struct {
	widget.Base
	name     string
	disposed int
}

func (w *stubWidget) Measure(cx *widget.LayoutCx) (graphics.Size, graphics.Size) {
	return graphics.SizeZero, graphics.SizeZero
}

func (w *stubWidget) Layout(cx *widget.LayoutCx, proposed graphics.Size) graphics.Size {
	return graphics.SizeZero
}

func (w *stubWidget) Paint(cx *widget.PaintCx) {}

func (w *stubWidget) Dispose() {
	w.disposed++
}
