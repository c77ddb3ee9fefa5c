package widget

import (
	"testing"

	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
)

func TestButtonClickQueuesMessage(t *testing.T) {
	path := id.Path{id.Next(), id.Next()}
	button := NewButton(path, "ok")
	h := newHarness(NewHStack(pods(button), AlignCenter, 0))
	h.layout(graphics.Size{Width: 100, Height: 10})

	// " ok " in cells.
	if got := h.pod.Size(); got != (graphics.Size{Width: 4, Height: 1}) {
		t.Fatalf("size = %v, want {4 1}", got)
	}

	h.event(MouseMove{mouseAt(1, 0)})
	h.event(MouseDown{mouseAt(1, 0)})
	h.event(MouseUp{mouseAt(2, 0)})

	msgs := h.cs.TakeMessages()
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Path.String() != path.String() {
		t.Errorf("path = %v, want %v", msgs[0].Path, path)
	}
	if _, ok := msgs[0].Body.(ButtonClicked); !ok {
		t.Errorf("body = %#v, want ButtonClicked", msgs[0].Body)
	}
	if h.pod.HasActive() {
		t.Error("pointer should be released")
	}
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	button := NewButton(id.Path{id.Next()}, "ok")
	h := newHarness(NewHStack(pods(button), AlignCenter, 0))
	h.layout(graphics.Size{Width: 100, Height: 10})

	h.event(MouseDown{mouseAt(1, 0)})
	if !h.pod.HasActive() {
		t.Fatal("stack should report an active descendant")
	}
	h.event(MouseMove{mouseAt(50, 5)})
	h.event(MouseUp{mouseAt(50, 5)})

	if n := h.cs.PendingMessages(); n != 0 {
		t.Errorf("messages = %d, want 0", n)
	}
	if h.pod.HasActive() {
		t.Error("pointer should be released")
	}
}

func TestOptionSetChild(t *testing.T) {
	opt := NewOption(nil)
	h := newHarness(opt)
	if size := h.layout(graphics.Size{Width: 10, Height: 10}); size != graphics.SizeZero {
		t.Errorf("empty size = %v, want zero", size)
	}

	first := newLeaf(graphics.Size{Width: 3, Height: 3}, graphics.Size{Width: 3, Height: 3})
	opt.SetChild(first)
	h.pod.RequestUpdate()
	if size := h.layout(graphics.Size{Width: 10, Height: 10}); size != (graphics.Size{Width: 3, Height: 3}) {
		t.Errorf("size = %v, want {3 3}", size)
	}

	opt.SetChild(nil)
	if first.disposed != 1 {
		t.Errorf("disposed = %d, want 1", first.disposed)
	}
	if opt.IsPresent() {
		t.Error("option should be empty")
	}
}

func TestContainerPadding(t *testing.T) {
	inner := newLeaf(graphics.Size{Width: 10, Height: 10}, graphics.Size{Width: 100, Height: 100})
	c := NewContainer(inner, Insets{Top: 1, Right: 2, Bottom: 3, Left: 4})
	h := newHarness(c)

	size := h.layout(graphics.Size{Width: 50, Height: 50})

	if inner.proposals[0] != (graphics.Size{Width: 44, Height: 46}) {
		t.Errorf("inner proposal = %v, want {44 46}", inner.proposals[0])
	}
	if size != (graphics.Size{Width: 50, Height: 50}) {
		t.Errorf("size = %v, want {50 50}", size)
	}
	if c.ChildPod().Origin() != (graphics.Offset{X: 4, Y: 1}) {
		t.Errorf("origin = %v, want {4 1}", c.ChildPod().Origin())
	}
}

func TestLabelWrapsWhenNarrow(t *testing.T) {
	l := NewLabel("hello big world")
	h := newHarness(l)

	if size := h.layout(graphics.Size{Width: 100, Height: 10}); size != (graphics.Size{Width: 15, Height: 1}) {
		t.Errorf("wide size = %v, want {15 1}", size)
	}
	if min := h.pod.State.MinSize; min.Width != 5 {
		t.Errorf("min width = %v, want 5", min.Width)
	}

	size := h.layout(graphics.Size{Width: 9, Height: 10})
	if size != (graphics.Size{Width: 9, Height: 2}) {
		t.Errorf("narrow size = %v, want {9 2}", size)
	}
	if got := h.pod.GetAlignment(AlignLastBaseline); got != 2 {
		t.Errorf("last baseline = %v, want 2", got)
	}
}

func TestLabelPaintsLines(t *testing.T) {
	l := NewLabel("a\nb")
	h := newHarness(l)
	h.layout(graphics.Size{Width: 10, Height: 10})

	ops := h.paint().Ops()
	var texts []string
	for _, op := range ops {
		if op.Kind == graphics.OpDrawText {
			texts = append(texts, op.Text)
		}
	}
	if len(texts) != 2 || texts[0] != "a" || texts[1] != "b" {
		t.Errorf("texts = %v, want [a b]", texts)
	}
}

func TestScrollViewWheelClamps(t *testing.T) {
	content := newLeaf(graphics.Size{Width: 10, Height: 100}, graphics.Size{Width: 10, Height: 100})
	sv := NewScrollView(content)
	h := newHarness(sv)
	if size := h.layout(graphics.Size{Width: 10, Height: 30}); size != (graphics.Size{Width: 10, Height: 30}) {
		t.Fatalf("size = %v, want {10 30}", size)
	}

	wheel := mouseAt(5, 5)
	wheel.WheelDelta = graphics.Offset{Y: 50}
	h.event(MouseWheel{wheel})
	if sv.Offset() != 50 {
		t.Errorf("offset = %v, want 50", sv.Offset())
	}
	h.event(MouseWheel{wheel})
	if sv.Offset() != 70 {
		t.Errorf("offset = %v, want clamped 70", sv.Offset())
	}

	h.pod.PreparePaint(NewPreparePaintCx(h.cs, &h.root), h.pod.Size().ToRect())
	if got := sv.Visible(); got != graphics.RectFromLTWH(0, 70, 10, 30) {
		t.Errorf("visible = %v, want {0 70 10 100}", got)
	}

	ops := h.paint().Ops()
	clipped := false
	for _, op := range ops {
		if op.Kind == graphics.OpClipRect {
			clipped = true
		}
	}
	if !clipped {
		t.Error("scroll view should clip its child")
	}
}

// fixedHeight offers its child a fixed height, giving a nested scroll view
// a bounded viewport.
type fixedHeight struct {
	Base
	child  *Pod
	height float64
}

func (f *fixedHeight) VisitChildren(visitor func(*Pod)) { visitor(f.child) }

func (f *fixedHeight) Event(cx *EventCx, event RawEvent) { f.child.Event(cx, event) }

func (f *fixedHeight) Update(cx *UpdateCx) {
	f.child.Update(cx)
	cx.RequestLayout()
}

func (f *fixedHeight) Measure(cx *LayoutCx) (graphics.Size, graphics.Size) {
	min, max := f.child.Measure(cx)
	return graphics.Size{Width: min.Width, Height: f.height}, graphics.Size{Width: max.Width, Height: f.height}
}

func (f *fixedHeight) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	size := f.child.Layout(cx, graphics.Size{Width: proposed.Width, Height: f.height})
	return graphics.Size{Width: size.Width, Height: f.height}
}

func (f *fixedHeight) Paint(cx *PaintCx) { f.child.Paint(cx) }

func TestNestedScrollViewScrollsInnerFirst(t *testing.T) {
	content := newLeaf(graphics.Size{Width: 10, Height: 100}, graphics.Size{Width: 10, Height: 100})
	inner := NewScrollView(content)
	box := &fixedHeight{child: NewPod(inner), height: 40}
	outer := NewScrollView(box)
	h := newHarness(outer)
	h.layout(graphics.Size{Width: 10, Height: 20})

	wheel := mouseAt(5, 5)
	wheel.WheelDelta = graphics.Offset{Y: 10}
	h.event(MouseWheel{wheel})

	if inner.Offset() != 10 {
		t.Errorf("inner offset = %v, want 10", inner.Offset())
	}
	if outer.Offset() != 0 {
		t.Errorf("outer offset = %v, want 0", outer.Offset())
	}
}

// wheelSink consumes every wheel event it sees.
type wheelSink struct {
	*leaf
}

func (w wheelSink) Event(cx *EventCx, event RawEvent) {
	w.leaf.Event(cx, event)
	if _, ok := event.(MouseWheel); ok {
		cx.SetHandled()
	}
}

func TestScrollViewLeavesHandledWheelAlone(t *testing.T) {
	sink := wheelSink{newLeaf(graphics.Size{Width: 10, Height: 100}, graphics.Size{Width: 10, Height: 100})}
	sv := NewScrollView(sink)
	h := newHarness(sv)
	h.layout(graphics.Size{Width: 10, Height: 30})

	wheel := mouseAt(5, 5)
	wheel.WheelDelta = graphics.Offset{Y: 20}
	h.event(MouseWheel{wheel})

	if len(sink.events) != 1 {
		t.Fatalf("child saw %d events, want 1", len(sink.events))
	}
	if sv.Offset() != 0 {
		t.Errorf("offset = %v, want 0", sv.Offset())
	}
}
