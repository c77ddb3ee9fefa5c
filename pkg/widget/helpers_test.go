package widget

import (
	"unicode/utf8"

	"github.com/go-drift/weft/pkg/graphics"
)

// cellMeasurer measures one unit per rune and one unit per line.
type cellMeasurer struct{}

func (cellMeasurer) MeasureText(text string) float64 {
	return float64(utf8.RuneCountInString(text))
}

func (cellMeasurer) LineMetrics() graphics.LineMetrics {
	return graphics.LineMetrics{Ascent: 1, LineHeight: 1}
}

// leaf is a widget with a fixed size envelope that records what it saw.
type leaf struct {
	Base
	min, max  graphics.Size
	baseline  float64
	hasBase   bool
	measures  int
	layouts   int
	updates   int
	disposed  int
	proposals []graphics.Size
	lifecycle []LifeCycle
	events    []RawEvent
}

func newLeaf(min, max graphics.Size) *leaf {
	return &leaf{min: min, max: max}
}

func (p *leaf) withBaseline(v float64) *leaf {
	p.baseline = v
	p.hasBase = true
	return p
}

func (p *leaf) Event(cx *EventCx, event RawEvent) {
	p.events = append(p.events, event)
}

func (p *leaf) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	p.lifecycle = append(p.lifecycle, event)
}

func (p *leaf) Update(cx *UpdateCx) {
	p.updates++
}

func (p *leaf) Measure(cx *LayoutCx) (graphics.Size, graphics.Size) {
	p.measures++
	return p.min, p.max
}

func (p *leaf) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	p.layouts++
	p.proposals = append(p.proposals, proposed)
	return proposed.Clamp(p.min, p.max)
}

func (p *leaf) Align(cx *AlignCx, alignment SingleAlignment) {
	if p.hasBase && alignment == AlignFirstBaseline {
		cx.Aggregate(alignment, p.baseline)
	}
}

func (p *leaf) Paint(cx *PaintCx) {
	cx.Canvas().DrawRect(cx.Size().ToRect(), graphics.DefaultPaint())
}

func (p *leaf) Dispose() {
	p.disposed++
}

// harness drives a root pod through the passes the app driver runs.
type harness struct {
	cs   *CxState
	root WidgetState
	pod  *Pod
}

func newHarness(w Widget) *harness {
	return &harness{cs: NewCxState(cellMeasurer{}), pod: NewPod(w)}
}

func (h *harness) layout(size graphics.Size) graphics.Size {
	h.pod.Update(NewUpdateCx(h.cs, &h.root))
	cx := NewLayoutCx(h.cs, &h.root)
	h.pod.Measure(cx)
	return h.pod.Layout(cx, size)
}

func (h *harness) event(ev RawEvent) {
	h.pod.Event(NewEventCx(h.cs, &h.root), ev)
}

func (h *harness) paint() *graphics.DisplayList {
	rec := &graphics.PictureRecorder{}
	h.pod.Paint(NewPaintCx(h.cs, &h.root, rec))
	return rec.EndRecording()
}

func pods(ws ...Widget) []*Pod {
	out := make([]*Pod, len(ws))
	for i, w := range ws {
		out[i] = NewPod(w)
	}
	return out
}

func mouseAt(x, y float64) MouseEvent {
	return MouseEvent{Pos: graphics.Offset{X: x, Y: y}, WindowPos: graphics.Offset{X: x, Y: y}, Button: MouseButtonLeft}
}
