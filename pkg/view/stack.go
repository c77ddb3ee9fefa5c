package view

import (
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/widget"
)

// StackView lays its children out along one axis.
type StackView[T, A any] struct {
	children  Seq[T, A]
	axis      widget.Axis
	alignment widget.SingleAlignment
	spacing   float64
}

// HStack lines children up horizontally, centered vertically.
func HStack[T, A any](children ...View[T, A]) StackView[T, A] {
	return StackView[T, A]{children: children, axis: widget.AxisHorizontal, alignment: widget.AlignCenter}
}

// VStack stacks children vertically, centered horizontally.
func VStack[T, A any](children ...View[T, A]) StackView[T, A] {
	return StackView[T, A]{children: children, axis: widget.AxisVertical, alignment: widget.AlignHorizontalCenter}
}

// Align returns a copy aligning children on a. The guide must measure
// across the stack: vertical guides for HStack, horizontal ones for VStack.
// Any other guide aligns children on the cross axis center.
func (s StackView[T, A]) Align(a widget.SingleAlignment) StackView[T, A] {
	s.alignment = a
	return s
}

// Spacing returns a copy with the given gap between children.
func (s StackView[T, A]) Spacing(spacing float64) StackView[T, A] {
	s.spacing = spacing
	return s
}

// Children returns the child views.
func (s StackView[T, A]) Children() Seq[T, A] {
	return s.children
}

func (s StackView[T, A]) Build(cx *Cx) (id.Id, any, widget.Widget) {
	var state *SeqState
	var pods []*widget.Pod
	vid := cx.WithNewId(func(cx *Cx) {
		state, pods = s.children.Build(cx)
	})
	if s.axis == widget.AxisHorizontal {
		return vid, state, widget.NewHStack(pods, s.alignment, s.spacing)
	}
	return vid, state, widget.NewVStack(pods, s.alignment, s.spacing)
}

func (s StackView[T, A]) Rebuild(cx *Cx, prev View[T, A], vid id.Id, state any, w widget.Widget) bool {
	const op = "view.Stack.Rebuild"
	p := prevAs[StackView[T, A]](prev, op)
	st := stateAs[*SeqState](state, op)
	stack := widget.Downcast[*widget.Stack](w, op)
	changed := false
	cx.WithId(vid, func(cx *Cx) {
		changed = s.children.Rebuild(cx, p.children, st, stack.ChildrenMut())
	})
	if s.axis != stack.Axis() {
		stack.SetAxis(s.axis)
		changed = true
	}
	if s.alignment != p.alignment {
		stack.SetAlignment(s.alignment)
		changed = true
	}
	if s.spacing != p.spacing {
		stack.SetSpacing(s.spacing)
		changed = true
	}
	return changed
}

func (s StackView[T, A]) Event(path id.Path, state any, event any, app *T) EventResult[A] {
	return s.children.Event(path, stateAs[*SeqState](state, "view.Stack.Event"), event, app)
}
