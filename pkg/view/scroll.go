package view

import (
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// ScrollView shows a vertically scrollable window onto its child.
type ScrollView[T, A any] struct {
	child View[T, A]
}

// Scroll wraps child in a scroll view.
func Scroll[T, A any](child View[T, A]) ScrollView[T, A] {
	return ScrollView[T, A]{child: child}
}

func (s ScrollView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	state := &childState{}
	var sv *widget.ScrollView
	vid := cx.WithNewId(func(cx *Cx) {
		cid, cs, w := s.child.Build(cx)
		sv = widget.NewScrollView(w)
		sv.ChildPod().SetId(cid)
		*state = childState{id: cid, state: cs}
	})
	return vid, state, sv
}

func (s ScrollView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Scroll.Rebuild"
	p := prevAs[ScrollView[T, A]](prev, op)
	st := stateAs[*childState](state, op)
	sv := widget.Downcast[*widget.ScrollView](w, op)

	changed := false
	cx.WithId(vid, func(cx *Cx) {
		pod := sv.ChildPod()
		if RebuildChild(cx, s.child, p.child, &st.id, &st.state, pod) {
			pod.RequestUpdate()
			changed = true
		}
	})
	return changed
}

func (s ScrollView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	return forwardToChild(s.child, path, stateAs[*childState](state, "view.Scroll.Event"), event, app)
}
