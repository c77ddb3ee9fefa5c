package widget

import "github.com/go-drift/weft/pkg/graphics"

// Option holds zero or one child. When empty it measures and lays out as a
// zero size.
type Option struct {
	Base
	child *Pod
}

// NewOption returns an Option holding child, or an empty one if child is nil.
func NewOption(child Widget) *Option {
	o := &Option{}
	if child != nil {
		o.child = NewPod(child)
	}
	return o
}

// ChildPod returns the child pod or nil.
func (o *Option) ChildPod() *Pod {
	return o.child
}

// IsPresent reports whether a child is installed.
func (o *Option) IsPresent() bool {
	return o.child != nil
}

// SetChild installs child, disposing any previous child. A nil child empties
// the slot. The caller requests an update on the Option's pod.
func (o *Option) SetChild(child Widget) *Pod {
	if o.child != nil {
		o.child.Dispose()
		o.child = nil
	}
	if child != nil {
		o.child = NewPod(child)
	}
	return o.child
}

func (o *Option) VisitChildren(visitor func(*Pod)) {
	if o.child != nil {
		visitor(o.child)
	}
}

func (o *Option) Event(cx *EventCx, event RawEvent) {
	if o.child != nil {
		o.child.Event(cx, event)
	}
}

func (o *Option) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	if o.child != nil {
		o.child.Lifecycle(cx, event)
	}
}

func (o *Option) Update(cx *UpdateCx) {
	if o.child != nil {
		o.child.Update(cx)
	}
	cx.RequestLayout()
}

func (o *Option) Measure(cx *LayoutCx) (min, max graphics.Size) {
	if o.child == nil {
		return graphics.SizeZero, graphics.SizeZero
	}
	return o.child.Measure(cx)
}

func (o *Option) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	if o.child == nil {
		return graphics.SizeZero
	}
	o.child.SetOrigin(graphics.Offset{})
	return o.child.Layout(cx, proposed)
}

func (o *Option) Align(cx *AlignCx, alignment SingleAlignment) {
	if o.child != nil {
		o.child.Align(cx, alignment)
	}
}

func (o *Option) PreparePaint(cx *PreparePaintCx, visible graphics.Rect) {
	if o.child != nil {
		o.child.PreparePaint(cx, visible)
	}
}

func (o *Option) Paint(cx *PaintCx) {
	if o.child != nil {
		o.child.Paint(cx)
	}
}
