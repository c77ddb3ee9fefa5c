package view

import (
	"fmt"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// AdaptThunk delivers a pending event to the adapted child once the parent
// handler has projected its state.
type AdaptThunk[U, B any] struct {
	child View[U, B]
	path  id.Path
	state any
	event any
}

// Call delivers the event to the child with state.
func (t AdaptThunk[U, B]) Call(state *U) EventResult[B] {
	return t.child.Event(t.path, t.state, t.event, state)
}

// AdaptView embeds a component written against state U and action B into
// an application with state T and action A.
type AdaptView[T, A, U, B any] struct {
	handle func(app *T, thunk AdaptThunk[U, B]) EventResult[A]
	child  View[U, B]
}

// Adapt wraps child. handle receives the parent state and a thunk; it calls
// the thunk with the projected child state and maps the result.
func Adapt[T, A, U, B any](handle func(app *T, thunk AdaptThunk[U, B]) EventResult[A], child View[U, B]) AdaptView[T, A, U, B] {
	return AdaptView[T, A, U, B]{handle: handle, child: child}
}

// AdaptState adapts child by projecting the application state to the part
// the child works on. Actions pass through unchanged.
func AdaptState[T, A, U any](project func(app *T) *U, child View[U, A]) AdaptView[T, A, U, A] {
	return Adapt(func(app *T, thunk AdaptThunk[U, A]) EventResult[A] {
		return thunk.Call(project(app))
	}, child)
}

func (a AdaptView[T, A, U, B]) unwrapView() any {
	return a.child
}

// Build returns the child's id as its own.
func (a AdaptView[T, A, U, B]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	return a.child.Build(cx)
}

func (a AdaptView[T, A, U, B]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Adapt.Rebuild"
	p := prevAs[AdaptView[T, A, U, B]](prev, op)
	if !SameKind(p.child, a.child) {
		panic(&errors.ContractError{Op: op, Want: fmt.Sprintf("%T", p.child), Got: fmt.Sprintf("%T", a.child)})
	}
	return a.child.Rebuild(cx, p.child, vid, state, w)
}

func (a AdaptView[T, A, U, B]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	return a.handle(app, AdaptThunk[U, B]{child: a.child, path: path, state: state, event: event})
}
