package widget

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
)

// PodFlags is the set of dirty and interaction flags kept by a Pod.
type PodFlags uint16

const (
	// FlagRequestUpdate marks a pod whose widget must receive Update.
	FlagRequestUpdate PodFlags = 1 << iota
	// FlagNeedsMeasure invalidates the memoized min/max sizes.
	FlagNeedsMeasure
	// FlagNeedsLayout invalidates the cached size for the last proposal.
	FlagNeedsLayout
	// FlagNeedsPaint marks painted output as stale.
	FlagNeedsPaint
	// FlagIsHot is set while the pointer is inside the pod's rect.
	FlagIsHot
	// FlagIsActive is set while the widget has captured the pointer.
	FlagIsActive
	// FlagHasActive is set when the widget or a descendant is active.
	FlagHasActive
	// FlagIsNew is set until the widget has received WidgetAdded.
	FlagIsNew

	// flagsUpward propagate from a child's state to its parent's.
	flagsUpward = FlagNeedsLayout | FlagNeedsPaint | FlagHasActive
	// flagsInit are set on freshly created pods.
	flagsInit = FlagRequestUpdate | FlagNeedsMeasure | FlagNeedsLayout | FlagNeedsPaint | FlagIsNew
)

// Has reports whether every bit of flag is set.
func (f PodFlags) Has(flag PodFlags) bool {
	return f&flag == flag
}

// WidgetState is the layout and interaction state a Pod keeps for its
// widget. Origin is in the parent's coordinate space.
type WidgetState struct {
	Flags        PodFlags
	Origin       graphics.Offset
	ProposedSize graphics.Size
	Size         graphics.Size
	MinSize      graphics.Size
	MaxSize      graphics.Size
}

func (s *WidgetState) setFlag(flag PodFlags, on bool) {
	if on {
		s.Flags |= flag
	} else {
		s.Flags &^= flag
	}
}

func (s *WidgetState) mergeUp(child *WidgetState) {
	s.Flags |= child.Flags & flagsUpward
}

// Pod is the generic container around one widget. It tracks dirty flags,
// memoizes measurement and layout, translates coordinates into the widget's
// space and routes pointer events by hit testing its rect.
type Pod struct {
	State  WidgetState
	widget Widget
	id     id.Id
}

// NewPod wraps w with all dirty flags set.
func NewPod(w Widget) *Pod {
	return &Pod{State: WidgetState{Flags: flagsInit}, widget: w}
}

// Widget returns the wrapped widget.
func (p *Pod) Widget() Widget {
	return p.widget
}

// ReplaceWidget disposes the current widget and installs w as if the pod
// were new. The origin is kept so the parent can place it without a jump.
func (p *Pod) ReplaceWidget(w Widget) {
	p.Dispose()
	p.widget = w
	p.State = WidgetState{Flags: flagsInit, Origin: p.State.Origin}
}

// Id returns the identity of the view node that built the widget, or
// id.Zero if none was recorded.
func (p *Pod) Id() id.Id {
	return p.id
}

// SetId records the identity of the view node that built the widget.
func (p *Pod) SetId(vid id.Id) {
	p.id = vid
}

// RequestUpdate schedules Update, Measure and Layout for this pod.
func (p *Pod) RequestUpdate() {
	p.State.Flags |= FlagRequestUpdate
}

// SetOrigin positions the pod inside its parent.
func (p *Pod) SetOrigin(origin graphics.Offset) {
	if p.State.Origin != origin {
		p.State.Origin = origin
		p.State.Flags |= FlagNeedsPaint
	}
}

// Origin returns the position inside the parent.
func (p *Pod) Origin() graphics.Offset {
	return p.State.Origin
}

// Size returns the size from the most recent layout.
func (p *Pod) Size() graphics.Size {
	return p.State.Size
}

// Rect returns the pod's bounds in its parent's coordinates.
func (p *Pod) Rect() graphics.Rect {
	return graphics.RectFromOriginSize(p.State.Origin, p.State.Size)
}

// WidthFlexibility is the difference between max and min measured width.
func (p *Pod) WidthFlexibility() float64 {
	return p.State.MaxSize.Width - p.State.MinSize.Width
}

// HeightFlexibility is the difference between max and min measured height.
func (p *Pod) HeightFlexibility() float64 {
	return p.State.MaxSize.Height - p.State.MinSize.Height
}

func (p *Pod) IsHot() bool {
	return p.State.Flags.Has(FlagIsHot)
}

func (p *Pod) IsActive() bool {
	return p.State.Flags.Has(FlagIsActive)
}

func (p *Pod) HasActive() bool {
	return p.State.Flags.Has(FlagHasActive)
}

// Event routes event to the widget. Pointer positions are translated into
// the widget's coordinates and hit tested against its rect; a change in hot
// state is reported with a HotChanged lifecycle event first. Pointer events
// reach the widget when it is hot or holds the pointer (directly or through
// a descendant). Key events always reach it.
func (p *Pod) Event(cx *EventCx, event RawEvent) {
	local := translated(event, p.State.Origin)
	hadActive := p.State.Flags.Has(FlagHasActive)
	deliver := true
	if m, ok := mouseOf(local); ok {
		wasHot := p.IsHot()
		hot := p.State.Size.Contains(m.Pos)
		if hot != wasHot {
			p.State.setFlag(FlagIsHot, hot)
			p.widget.Lifecycle(&LifeCycleCx{cxState: cx.cxState, state: &p.State}, HotChanged{Hot: hot})
		}
		switch local.(type) {
		case MouseMove:
			// Children of a pod the pointer just left still need to see
			// the move to clear their own hot state.
			deliver = hot || wasHot || hadActive
		case MouseUp:
			deliver = hot || hadActive
		default:
			deliver = hot
		}
	}
	if deliver {
		childCx := &EventCx{cxState: cx.cxState, state: &p.State}
		p.State.Flags &^= FlagHasActive
		p.widget.Event(childCx, local)
		if p.IsActive() {
			p.State.Flags |= FlagHasActive
		}
		if childCx.handled {
			cx.handled = true
		}
	}
	cx.state.mergeUp(&p.State)
}

// Lifecycle forwards tree-wide notifications. HotChanged and WidgetAdded
// are local to one widget and are not forwarded.
func (p *Pod) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	switch event.(type) {
	case HotChanged, WidgetAdded:
		return
	case MeasurerChanged:
		p.State.Flags |= FlagNeedsMeasure | FlagNeedsLayout | FlagNeedsPaint
	}
	p.widget.Lifecycle(&LifeCycleCx{cxState: cx.cxState, state: &p.State}, event)
	cx.state.mergeUp(&p.State)
}

// Update notifies the widget if an update was requested and invalidates the
// memoized measurement. Pods without a pending request are skipped along
// with their subtree.
func (p *Pod) Update(cx *UpdateCx) {
	if !p.State.Flags.Has(FlagRequestUpdate) {
		return
	}
	if p.State.Flags.Has(FlagIsNew) {
		p.State.Flags &^= FlagIsNew
		p.widget.Lifecycle(&LifeCycleCx{cxState: cx.cxState, state: &p.State}, WidgetAdded{})
	}
	p.widget.Update(&UpdateCx{cxState: cx.cxState, state: &p.State})
	p.State.Flags &^= FlagRequestUpdate
	p.State.Flags |= FlagNeedsMeasure | FlagNeedsLayout | FlagNeedsPaint
	cx.state.mergeUp(&p.State)
}

// Measure returns the widget's [min, max] size envelope, computing it only
// after creation or an update.
func (p *Pod) Measure(cx *LayoutCx) (min, max graphics.Size) {
	if p.State.Flags.Has(FlagNeedsMeasure) {
		min, max = p.widget.Measure(&LayoutCx{cxState: cx.cxState, state: &p.State})
		p.State.MinSize, p.State.MaxSize = min, max
		p.State.Flags &^= FlagNeedsMeasure
		p.State.Flags |= FlagNeedsLayout
	}
	return p.State.MinSize, p.State.MaxSize
}

// Layout returns the widget's size for proposed. The previous size is
// reused when nothing changed and the proposal is the same.
func (p *Pod) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	if p.State.Flags.Has(FlagNeedsMeasure) {
		p.Measure(cx)
	}
	if !p.State.Flags.Has(FlagNeedsLayout) && p.State.ProposedSize == proposed {
		return p.State.Size
	}
	size := p.widget.Layout(&LayoutCx{cxState: cx.cxState, state: &p.State}, proposed)
	p.State.ProposedSize = proposed
	p.State.Size = size
	p.State.Flags &^= FlagNeedsLayout
	p.State.Flags |= FlagNeedsPaint
	cx.state.mergeUp(&p.State)
	return size
}

// Align reports this pod's value for alignment into cx, translated into the
// parent's coordinates.
func (p *Pod) Align(cx *AlignCx, alignment SingleAlignment) {
	childCx := &AlignCx{result: cx.result, origin: cx.origin.Add(p.State.Origin)}
	if alignment.IsContent() {
		p.widget.Align(childCx, alignment)
		return
	}
	childCx.Aggregate(alignment, p.geometric(alignment))
}

// GetAlignment returns the value of alignment in the widget's own
// coordinates. Content guides nobody reports fall back to the bottom (or
// trailing) edge.
func (p *Pod) GetAlignment(alignment SingleAlignment) float64 {
	if !alignment.IsContent() {
		return p.geometric(alignment)
	}
	var result alignResult
	p.widget.Align(&AlignCx{result: &result}, alignment)
	if v, ok := result.reap(alignment); ok {
		return v
	}
	if alignment.Axis() == AxisHorizontal {
		return p.State.Size.Width
	}
	return p.State.Size.Height
}

func (p *Pod) geometric(alignment SingleAlignment) float64 {
	size := p.State.Size
	switch alignment.kind {
	case kindVerticalCenter:
		return size.Height / 2
	case kindBottom:
		return size.Height
	case kindHorizontalCenter:
		return size.Width / 2
	case kindTrailing:
		return size.Width
	}
	return 0
}

// PreparePaint forwards the part of visible (in parent coordinates) that
// overlaps the pod.
func (p *Pod) PreparePaint(cx *PreparePaintCx, visible graphics.Rect) {
	local := visible.Translate(-p.State.Origin.X, -p.State.Origin.Y).Intersect(p.State.Size.ToRect())
	if local.IsEmpty() {
		return
	}
	p.widget.PreparePaint(&PreparePaintCx{cxState: cx.cxState, state: &p.State}, local)
	cx.state.mergeUp(&p.State)
}

// Paint paints the widget translated to its origin.
func (p *Pod) Paint(cx *PaintCx) {
	canvas := cx.canvas
	canvas.Save()
	canvas.Translate(p.State.Origin.X, p.State.Origin.Y)
	p.PaintRaw(cx)
	canvas.Restore()
}

// PaintRaw paints the widget without applying its origin.
func (p *Pod) PaintRaw(cx *PaintCx) {
	p.widget.Paint(&PaintCx{cxState: cx.cxState, state: &p.State, canvas: cx.canvas})
	p.State.Flags &^= FlagNeedsPaint
}

// VisitChildren calls visitor for each child pod of the wrapped widget.
func (p *Pod) VisitChildren(visitor func(*Pod)) {
	if cv, ok := p.widget.(ChildVisitor); ok {
		cv.VisitChildren(visitor)
	}
}

// Dispose releases the widget and its descendants.
func (p *Pod) Dispose() {
	if p.widget == nil {
		return
	}
	p.VisitChildren(func(child *Pod) {
		child.Dispose()
	})
	if d, ok := p.widget.(Disposer); ok {
		d.Dispose()
	}
}
