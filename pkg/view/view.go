package view

import (
	"reflect"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// View is an immutable description of one node of the UI. T is the
// application state handlers mutate and A the action type they return.
type View[T, A any] interface {
	// Build allocates the node's id under cx, builds its children and
	// returns the new widget together with the diff-state to keep for the
	// next Rebuild. Build must not mutate application state.
	Build(cx *Cx) (id.Id, any, widget.Widget)

	// Rebuild compares against prev, which has the same concrete type and
	// key, pushes changed parameters into w and rebuilds the children. It
	// reports whether anything visible changed; the caller then requests an
	// update on the pod holding w.
	Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool

	// Event delivers a message whose path, with this node's id already
	// stripped, is path.
	Event(path id.Path, state any, event any, app *T) EventResult[A]
}

// Keyed is implemented by views that carry an explicit identity key. A key
// change at the same position rebuilds the slot fresh.
type Keyed interface {
	Key() any
}

type unwrapper interface {
	unwrapView() any
}

// SameKind reports whether next can be rebuilt against prev: both have the
// same concrete type and equal keys.
func SameKind(prev, next any) bool {
	if prev == nil || next == nil {
		return false
	}
	if reflect.TypeOf(prev) != reflect.TypeOf(next) {
		return false
	}
	if kp, ok := prev.(Keyed); ok {
		if !reflect.DeepEqual(kp.Key(), next.(Keyed).Key()) {
			return false
		}
	}
	if up, ok := prev.(unwrapper); ok {
		return SameKind(up.unwrapView(), next.(unwrapper).unwrapView())
	}
	return true
}

// deferredKind is implemented by views whose child is only known once it is
// produced. sameKindAs may keep what it produced in state for the Rebuild
// that follows a true result.
type deferredKind interface {
	sameKindAs(prev, state any) bool
}

// canRebuild extends SameKind with the check of children produced at
// rebuild time. Unwrappers hand state to their child unchanged, so the
// check descends through them with the same state.
func canRebuild(prev, next, state any) bool {
	if !SameKind(prev, next) {
		return false
	}
	for {
		if d, ok := next.(deferredKind); ok {
			return d.sameKindAs(prev, state)
		}
		up, ok := next.(unwrapper)
		if !ok {
			return true
		}
		prev, next = prev.(unwrapper).unwrapView(), up.unwrapView()
	}
}

// RebuildChild rebuilds the child held in pod. If the kind changed the old
// widget is disposed and a fresh one is built and installed, replacing vid
// and state. It reports whether the child changed; the caller is
// responsible for requesting an update on pod.
func RebuildChild[T, A any](cx *Cx, next, prev View[T, A], vid *id.Id, state *any, pod *widget.Pod) bool {
	if !canRebuild(prev, next, *state) {
		newId, newState, w := next.Build(cx)
		pod.ReplaceWidget(w)
		pod.SetId(newId)
		*vid, *state = newId, newState
		return true
	}
	return next.Rebuild(cx, prev, *vid, *state, pod.Widget())
}

// BuildPod builds v into a fresh pod tagged with the view's id.
func BuildPod[T, A any](cx *Cx, v View[T, A]) (id.Id, any, *widget.Pod) {
	vid, state, w := v.Build(cx)
	pod := widget.NewPod(w)
	pod.SetId(vid)
	return vid, state, pod
}

func prevAs[V any](prev any, op string) V {
	v, ok := prev.(V)
	if !ok {
		errors.Contract[V](op, prev)
	}
	return v
}

func stateAs[S any](state any, op string) S {
	s, ok := state.(S)
	if !ok {
		errors.Contract[S](op, state)
	}
	return s
}

// KeyedView attaches an identity key to a view.
type KeyedView[T, A any] struct {
	key  any
	view View[T, A]
}

// Key wraps v with key. Slots whose key changes are rebuilt fresh.
func Key[T, A any](key any, v View[T, A]) KeyedView[T, A] {
	return KeyedView[T, A]{key: key, view: v}
}

func (k KeyedView[T, A]) Key() any {
	return k.key
}

func (k KeyedView[T, A]) unwrapView() any {
	return k.view
}

func (k KeyedView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	return k.view.Build(cx)
}

func (k KeyedView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	p := prevAs[KeyedView[T, A]](prev, "view.Keyed.Rebuild")
	return k.view.Rebuild(cx, p.view, vid, state, w)
}

func (k KeyedView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	return k.view.Event(path, state, event, app)
}
