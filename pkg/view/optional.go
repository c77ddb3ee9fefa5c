package view

import (
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// OptionalView holds a child that may be absent.
type OptionalView[T, A any] struct {
	child View[T, A]
}

// Optional returns a view showing child, or nothing if child is nil.
func Optional[T, A any](child View[T, A]) OptionalView[T, A] {
	return OptionalView[T, A]{child: child}
}

// When shows child only while cond holds.
func When[T, A any](cond bool, child View[T, A]) OptionalView[T, A] {
	if !cond {
		return OptionalView[T, A]{}
	}
	return OptionalView[T, A]{child: child}
}

// IsPresent reports whether the view has a child.
func (o OptionalView[T, A]) IsPresent() bool {
	return o.child != nil
}

type optionalState struct {
	present bool
	id      id.Id
	state   any
}

func (o OptionalView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	state := &optionalState{}
	var opt *widget.Option
	vid := cx.WithNewId(func(cx *Cx) {
		if o.child == nil {
			opt = widget.NewOption(nil)
			return
		}
		cid, cs, w := o.child.Build(cx)
		opt = widget.NewOption(w)
		opt.ChildPod().SetId(cid)
		*state = optionalState{present: true, id: cid, state: cs}
	})
	return vid, state, opt
}

// Rebuild handles the four presence transitions. Absent to absent is a
// no-op, absent to present builds and installs the child, present to present
// delegates and present to absent drops the child.
func (o OptionalView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Optional.Rebuild"
	p := prevAs[OptionalView[T, A]](prev, op)
	st := stateAs[*optionalState](state, op)
	opt := widget.Downcast[*widget.Option](w, op)
	if st.present != (p.child != nil) || opt.IsPresent() != st.present {
		panic(&errors.ContractError{Op: op, Want: presence(p.child != nil), Got: presence(opt.IsPresent())})
	}

	changed := false
	cx.WithId(vid, func(cx *Cx) {
		switch {
		case p.child == nil && o.child == nil:
		case p.child == nil:
			cid, cs, cw := o.child.Build(cx)
			opt.SetChild(cw).SetId(cid)
			*st = optionalState{present: true, id: cid, state: cs}
			changed = true
		case o.child == nil:
			opt.SetChild(nil)
			*st = optionalState{}
			changed = true
		default:
			pod := opt.ChildPod()
			if RebuildChild(cx, o.child, p.child, &st.id, &st.state, pod) {
				pod.RequestUpdate()
				changed = true
			}
		}
	})
	return changed
}

func (o OptionalView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	st := stateAs[*optionalState](state, "view.Optional.Event")
	if o.child == nil || !st.present {
		return Stale[A]()
	}
	head, tail, ok := path.Head()
	if !ok || head != st.id {
		return Stale[A]()
	}
	return o.child.Event(tail, st.state, event, app)
}

func presence(present bool) string {
	if present {
		return "present child"
	}
	return "absent child"
}
