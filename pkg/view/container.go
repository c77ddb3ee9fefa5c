package view

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// ContainerView pads a single child.
type ContainerView[T, A any] struct {
	child      View[T, A]
	padding    widget.Insets
	background graphics.Color
}

// Container wraps child with no padding.
func Container[T, A any](child View[T, A]) ContainerView[T, A] {
	return ContainerView[T, A]{child: child}
}

// Padding returns a copy with padding on each side.
func (c ContainerView[T, A]) Padding(padding widget.Insets) ContainerView[T, A] {
	c.padding = padding
	return c
}

// Background returns a copy filling its bounds with color.
func (c ContainerView[T, A]) Background(color graphics.Color) ContainerView[T, A] {
	c.background = color
	return c
}

// childState is the diff-state of views with exactly one child.
type childState struct {
	id    id.Id
	state any
}

func (c ContainerView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	state := &childState{}
	var container *widget.Container
	vid := cx.WithNewId(func(cx *Cx) {
		cid, cs, w := c.child.Build(cx)
		container = widget.NewContainer(w, c.padding)
		container.ChildPod().SetId(cid)
		*state = childState{id: cid, state: cs}
	})
	container.SetBackground(c.background)
	return vid, state, container
}

func (c ContainerView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Container.Rebuild"
	p := prevAs[ContainerView[T, A]](prev, op)
	st := stateAs[*childState](state, op)
	container := widget.Downcast[*widget.Container](w, op)

	changed := false
	cx.WithId(vid, func(cx *Cx) {
		pod := container.ChildPod()
		if RebuildChild(cx, c.child, p.child, &st.id, &st.state, pod) {
			pod.RequestUpdate()
			changed = true
		}
	})
	if c.padding != p.padding {
		container.SetPadding(c.padding)
		changed = true
	}
	if c.background != p.background {
		container.SetBackground(c.background)
		changed = true
	}
	return changed
}

func (c ContainerView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	return forwardToChild(c.child, path, stateAs[*childState](state, "view.Container.Event"), event, app)
}

func forwardToChild[T, A any](child View[T, A], path id.Path, st *childState, event any, app *T) EventResult[A] {
	head, tail, ok := path.Head()
	if !ok || head != st.id {
		return Stale[A]()
	}
	return child.Event(tail, st.state, event, app)
}
