package view

import (
	"fmt"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// MemoizeView skips rebuilding its subtree while its input data is equal to
// the previous cycle's.
//
// When the builder returns a view of a different kind than before, the
// enclosing slot is rebuilt fresh with a new id.
type MemoizeView[T, A any, D comparable] struct {
	data  D
	build func(D) View[T, A]
}

// Memoize returns a view built from data by build, rebuilt only when data
// changes or a descendant handler requests it.
func Memoize[T, A any, D comparable](data D, build func(D) View[T, A]) MemoizeView[T, A, D] {
	return MemoizeView[T, A, D]{data: data, build: build}
}

type memoizeState[T, A any] struct {
	view  View[T, A]
	state any
	dirty bool
	// next is the child produced by sameKindAs for the pending Rebuild.
	next View[T, A]
}

// Build returns the child's id as its own; the memo node does not occupy a
// position in id paths.
func (m MemoizeView[T, A, D]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	child := m.build(m.data)
	vid, cs, w := child.Build(cx)
	return vid, &memoizeState[T, A]{view: child, state: cs}, w
}

func (m MemoizeView[T, A, D]) sameKindAs(prev, state any) bool {
	const op = "view.Memoize.Rebuild"
	p := prevAs[MemoizeView[T, A, D]](prev, op)
	st := stateAs[*memoizeState[T, A]](state, op)
	if p.data == m.data && !st.dirty {
		return true
	}
	child := m.build(m.data)
	if !canRebuild(st.view, child, st.state) {
		return false
	}
	st.next = child
	return true
}

// Rebuild panics with a ContractError if the builder changed kind; parents
// going through RebuildChild rebuild the slot fresh instead.
func (m MemoizeView[T, A, D]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Memoize.Rebuild"
	p := prevAs[MemoizeView[T, A, D]](prev, op)
	st := stateAs[*memoizeState[T, A]](state, op)
	if p.data == m.data && !st.dirty {
		return false
	}
	child := st.next
	st.next = nil
	if child == nil {
		child = m.build(m.data)
		if !canRebuild(st.view, child, st.state) {
			panic(&errors.ContractError{Op: op, Want: fmt.Sprintf("%T", st.view), Got: fmt.Sprintf("%T", child)})
		}
	}
	changed := child.Rebuild(cx, st.view, vid, st.state, w)
	st.view = child
	st.dirty = false
	return changed
}

func (m MemoizeView[T, A, D]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	st := stateAs[*memoizeState[T, A]](state, "view.Memoize.Event")
	result := st.view.Event(path, st.state, event, app)
	if result.Kind == ResultRequestRebuild {
		st.dirty = true
	}
	return result
}
