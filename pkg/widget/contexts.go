package widget

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
)

// CxState is shared by every context of one cycle.
type CxState struct {
	measurer graphics.TextMeasurer
	messages []Message
}

// NewCxState returns a CxState measuring text with m. A nil measurer
// selects graphics.DefaultMeasurer.
func NewCxState(m graphics.TextMeasurer) *CxState {
	if m == nil {
		m = graphics.DefaultMeasurer()
	}
	return &CxState{measurer: m}
}

// Measurer returns the text measurer of the current backend.
func (c *CxState) Measurer() graphics.TextMeasurer {
	return c.measurer
}

// SetMeasurer replaces the text measurer. Callers must request an update on
// the root afterwards so cached text layouts are recomputed.
func (c *CxState) SetMeasurer(m graphics.TextMeasurer) {
	if m != nil {
		c.measurer = m
	}
}

// TakeMessages drains the queued messages in the order they were added.
func (c *CxState) TakeMessages() []Message {
	msgs := c.messages
	c.messages = nil
	return msgs
}

// PendingMessages reports the number of queued messages.
func (c *CxState) PendingMessages() int {
	return len(c.messages)
}

// EventCx is passed to Widget.Event.
type EventCx struct {
	cxState *CxState
	state   *WidgetState
	handled bool
}

// NewEventCx returns a context for dispatching into a root pod. root holds
// the flags propagated up from the tree.
func NewEventCx(cs *CxState, root *WidgetState) *EventCx {
	return &EventCx{cxState: cs, state: root}
}

// AddMessage queues a message for the view node at path.
func (cx *EventCx) AddMessage(path id.Path, body any) {
	cx.cxState.messages = append(cx.cxState.messages, Message{Path: path.Clone(), Body: body})
}

// SetActive captures or releases the pointer for the current widget.
func (cx *EventCx) SetActive(active bool) {
	cx.state.setFlag(FlagIsActive, active)
}

// IsActive reports whether the current widget holds the pointer.
func (cx *EventCx) IsActive() bool {
	return cx.state.Flags.Has(FlagIsActive)
}

// IsHot reports whether the pointer is over the current widget.
func (cx *EventCx) IsHot() bool {
	return cx.state.Flags.Has(FlagIsHot)
}

// SetHandled marks the event as consumed.
func (cx *EventCx) SetHandled() {
	cx.handled = true
}

// IsHandled reports whether any widget consumed the event.
func (cx *EventCx) IsHandled() bool {
	return cx.handled
}

// RequestPaint schedules a repaint of the current widget.
func (cx *EventCx) RequestPaint() {
	cx.state.Flags |= FlagNeedsPaint
}

// RequestLayout schedules a layout of the current widget.
func (cx *EventCx) RequestLayout() {
	cx.state.Flags |= FlagNeedsLayout | FlagNeedsPaint
}

// LifeCycleCx is passed to Widget.Lifecycle.
type LifeCycleCx struct {
	cxState *CxState
	state   *WidgetState
}

// NewLifeCycleCx returns a context for notifying a root pod.
func NewLifeCycleCx(cs *CxState, root *WidgetState) *LifeCycleCx {
	return &LifeCycleCx{cxState: cs, state: root}
}

// RequestPaint schedules a repaint of the current widget.
func (cx *LifeCycleCx) RequestPaint() {
	cx.state.Flags |= FlagNeedsPaint
}

// RequestLayout schedules a layout of the current widget.
func (cx *LifeCycleCx) RequestLayout() {
	cx.state.Flags |= FlagNeedsLayout | FlagNeedsPaint
}

// UpdateCx is passed to Widget.Update.
type UpdateCx struct {
	cxState *CxState
	state   *WidgetState
}

// NewUpdateCx returns a context for updating a root pod.
func NewUpdateCx(cs *CxState, root *WidgetState) *UpdateCx {
	return &UpdateCx{cxState: cs, state: root}
}

// RequestLayout schedules a layout of the current widget.
func (cx *UpdateCx) RequestLayout() {
	cx.state.Flags |= FlagNeedsLayout | FlagNeedsPaint
}

// RequestPaint schedules a repaint of the current widget.
func (cx *UpdateCx) RequestPaint() {
	cx.state.Flags |= FlagNeedsPaint
}

// Measurer returns the text measurer of the current backend.
func (cx *UpdateCx) Measurer() graphics.TextMeasurer {
	return cx.cxState.measurer
}

// LayoutCx is passed to Widget.Measure and Widget.Layout.
type LayoutCx struct {
	cxState *CxState
	state   *WidgetState
}

// NewLayoutCx returns a context for laying out a root pod.
func NewLayoutCx(cs *CxState, root *WidgetState) *LayoutCx {
	return &LayoutCx{cxState: cs, state: root}
}

// Measurer returns the text measurer of the current backend.
func (cx *LayoutCx) Measurer() graphics.TextMeasurer {
	return cx.cxState.measurer
}

// MinSize returns the memoized minimum size of the current widget.
func (cx *LayoutCx) MinSize() graphics.Size {
	return cx.state.MinSize
}

// MaxSize returns the memoized maximum size of the current widget.
func (cx *LayoutCx) MaxSize() graphics.Size {
	return cx.state.MaxSize
}

// RequestPaint schedules a repaint of the current widget.
func (cx *LayoutCx) RequestPaint() {
	cx.state.Flags |= FlagNeedsPaint
}

// AlignCx collects alignment values reported by a widget and its
// descendants.
type AlignCx struct {
	result *alignResult
	origin graphics.Offset
}

// Aggregate reports value, in the current widget's coordinates, for
// alignment.
func (cx *AlignCx) Aggregate(alignment SingleAlignment, value float64) {
	origin := cx.origin.Y
	if alignment.Axis() == AxisHorizontal {
		origin = cx.origin.X
	}
	cx.result.aggregate(alignment, value+origin)
}

// PreparePaintCx is passed to Widget.PreparePaint.
type PreparePaintCx struct {
	cxState *CxState
	state   *WidgetState
}

// NewPreparePaintCx returns a context for preparing a root pod.
func NewPreparePaintCx(cs *CxState, root *WidgetState) *PreparePaintCx {
	return &PreparePaintCx{cxState: cs, state: root}
}

// RequestLayout schedules a layout of the current widget, typically after a
// virtualized child set changed.
func (cx *PreparePaintCx) RequestLayout() {
	cx.state.Flags |= FlagNeedsLayout | FlagNeedsPaint
}

// PaintCx is passed to Widget.Paint.
type PaintCx struct {
	cxState *CxState
	state   *WidgetState
	canvas  graphics.Canvas
}

// NewPaintCx returns a context for painting a root pod onto canvas.
func NewPaintCx(cs *CxState, root *WidgetState, canvas graphics.Canvas) *PaintCx {
	return &PaintCx{cxState: cs, state: root, canvas: canvas}
}

// Canvas returns the canvas in the current widget's coordinates.
func (cx *PaintCx) Canvas() graphics.Canvas {
	return cx.canvas
}

// Size returns the laid out size of the current widget.
func (cx *PaintCx) Size() graphics.Size {
	return cx.state.Size
}

// IsHot reports whether the pointer is over the current widget.
func (cx *PaintCx) IsHot() bool {
	return cx.state.Flags.Has(FlagIsHot)
}

// IsActive reports whether the current widget holds the pointer.
func (cx *PaintCx) IsActive() bool {
	return cx.state.Flags.Has(FlagIsActive)
}

// Measurer returns the text measurer of the current backend.
func (cx *PaintCx) Measurer() graphics.TextMeasurer {
	return cx.cxState.measurer
}

// WithSave runs fn between a canvas Save and Restore.
func (cx *PaintCx) WithSave(fn func()) {
	cx.canvas.Save()
	defer cx.canvas.Restore()
	fn()
}
