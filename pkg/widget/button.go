package widget

import (
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
)

var (
	buttonColor        = graphics.RGB(0x3a, 0x3a, 0x3a)
	buttonHotColor     = graphics.RGB(0x50, 0x50, 0x50)
	buttonPressedColor = graphics.RGB(0x20, 0x20, 0x20)
)

// Button is a single line of text that queues a ButtonClicked message for
// its view when the pointer is pressed and released over it.
type Button struct {
	Base
	path   id.Path
	label  string
	layout *graphics.TextLayout
	padX   float64
}

// NewButton returns a button whose click messages are addressed to path.
func NewButton(path id.Path, label string) *Button {
	return &Button{path: path.Clone(), label: label}
}

func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the text. The caller requests an update.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Path returns the id path click messages are addressed to.
func (b *Button) Path() id.Path {
	return b.path
}

func (b *Button) Describe() string {
	return b.label
}

func (b *Button) Event(cx *EventCx, event RawEvent) {
	switch e := event.(type) {
	case MouseDown:
		if e.Button != MouseButtonLeft {
			return
		}
		cx.SetActive(true)
		cx.RequestPaint()
		cx.SetHandled()
	case MouseUp:
		if !cx.IsActive() {
			return
		}
		if cx.IsHot() {
			cx.AddMessage(b.path, ButtonClicked{})
		}
		cx.SetActive(false)
		cx.RequestPaint()
		cx.SetHandled()
	}
}

func (b *Button) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	if _, ok := event.(HotChanged); ok {
		cx.RequestPaint()
	}
}

func (b *Button) Update(cx *UpdateCx) {
	b.layout = nil
	cx.RequestLayout()
}

func (b *Button) Measure(cx *LayoutCx) (min, max graphics.Size) {
	m := cx.Measurer()
	b.layout = graphics.LayoutText(b.label, 0, m)
	b.padX = m.MeasureText(" ")
	size := graphics.Size{Width: b.layout.Size.Width + 2*b.padX, Height: b.layout.Size.Height}
	return size, size
}

func (b *Button) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	return cx.MaxSize()
}

func (b *Button) Align(cx *AlignCx, alignment SingleAlignment) {
	if b.layout == nil {
		return
	}
	switch alignment {
	case AlignFirstBaseline:
		cx.Aggregate(alignment, b.layout.FirstBaseline())
	case AlignLastBaseline:
		cx.Aggregate(alignment, b.layout.LastBaseline())
	}
}

func (b *Button) Paint(cx *PaintCx) {
	bg := buttonColor
	switch {
	case cx.IsHot() && cx.IsActive():
		bg = buttonPressedColor
	case cx.IsHot():
		bg = buttonHotColor
	}
	canvas := cx.Canvas()
	canvas.DrawRect(cx.Size().ToRect(), graphics.Paint{Color: bg, Style: graphics.PaintStyleFill})
	if b.layout == nil {
		return
	}
	style := graphics.TextStyle{Color: graphics.ColorWhite}
	for i, line := range b.layout.Lines {
		canvas.DrawText(line.Text, graphics.Offset{X: b.padX, Y: float64(i) * b.layout.Metrics.LineHeight}, style)
	}
}
