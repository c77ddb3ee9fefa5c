package widget

import (
	"math"

	"github.com/go-drift/weft/pkg/graphics"
)

// ScrollView shows a vertically scrollable window onto one child. The child
// is laid out with unbounded height and clipped to the view's bounds.
type ScrollView struct {
	Base
	child    *Pod
	offset   float64
	viewport graphics.Size
	visible  graphics.Rect
}

// NewScrollView wraps child.
func NewScrollView(child Widget) *ScrollView {
	return &ScrollView{child: NewPod(child)}
}

func (s *ScrollView) ChildPod() *Pod {
	return s.child
}

// Offset returns the current scroll position.
func (s *ScrollView) Offset() float64 {
	return s.offset
}

// Visible returns the region of the child, in the child's coordinates,
// passed to PreparePaint in the last paint pass.
func (s *ScrollView) Visible() graphics.Rect {
	return s.visible
}

// ScrollTo moves to offset, clamped to the scrollable range.
func (s *ScrollView) ScrollTo(offset float64) bool {
	limit := math.Max(s.child.Size().Height-s.viewport.Height, 0)
	offset = math.Min(math.Max(offset, 0), limit)
	if offset == s.offset {
		return false
	}
	s.offset = offset
	s.child.SetOrigin(graphics.Offset{Y: -s.offset})
	return true
}

func (s *ScrollView) VisitChildren(visitor func(*Pod)) {
	visitor(s.child)
}

// Event offers every event to the child first. A wheel event nothing below
// handled scrolls this view.
func (s *ScrollView) Event(cx *EventCx, event RawEvent) {
	s.child.Event(cx, event)
	wheel, ok := event.(MouseWheel)
	if !ok || cx.IsHandled() {
		return
	}
	if s.ScrollTo(s.offset + wheel.WheelDelta.Y) {
		cx.RequestPaint()
	}
	cx.SetHandled()
}

func (s *ScrollView) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	s.child.Lifecycle(cx, event)
}

func (s *ScrollView) Update(cx *UpdateCx) {
	s.child.Update(cx)
	cx.RequestLayout()
}

func (s *ScrollView) Measure(cx *LayoutCx) (min, max graphics.Size) {
	cmin, cmax := s.child.Measure(cx)
	return graphics.Size{Width: cmin.Width}, cmax
}

func (s *ScrollView) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	size := s.child.Layout(cx, graphics.Size{Width: proposed.Width, Height: graphics.Infinity})
	s.viewport = graphics.Size{Width: size.Width, Height: math.Min(proposed.Height, size.Height)}
	s.ScrollTo(s.offset)
	s.child.SetOrigin(graphics.Offset{Y: -s.offset})
	return s.viewport
}

func (s *ScrollView) PreparePaint(cx *PreparePaintCx, visible graphics.Rect) {
	s.visible = visible.Translate(0, s.offset).Intersect(s.child.Size().ToRect())
	s.child.PreparePaint(cx, visible)
}

func (s *ScrollView) Paint(cx *PaintCx) {
	cx.WithSave(func() {
		cx.Canvas().ClipRect(cx.Size().ToRect())
		s.child.Paint(cx)
	})
}
