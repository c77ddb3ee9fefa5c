package widget

import (
	"math"
	"strings"

	"github.com/go-drift/weft/pkg/graphics"
)

// Label displays a paragraph of text. It is flexible in width: its maximum
// is the unwrapped text, its minimum the widest word, and narrower
// proposals wrap at spaces.
type Label struct {
	Base
	text   string
	color  graphics.Color
	bold   bool
	full   *graphics.TextLayout
	layout *graphics.TextLayout
	minW   float64
}

// NewLabel returns a label drawing text in the default foreground color.
func NewLabel(text string) *Label {
	return &Label{text: text, color: graphics.ColorWhite}
}

func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text. The caller requests an update.
func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Color() graphics.Color {
	return l.color
}

func (l *Label) SetColor(c graphics.Color) {
	l.color = c
}

func (l *Label) SetBold(bold bool) {
	l.bold = bold
}

func (l *Label) Describe() string {
	return l.text
}

// TextLayout returns the layout from the most recent Layout pass.
func (l *Label) TextLayout() *graphics.TextLayout {
	return l.layout
}

func (l *Label) Update(cx *UpdateCx) {
	l.full = nil
	l.layout = nil
	cx.RequestLayout()
}

func (l *Label) Measure(cx *LayoutCx) (min, max graphics.Size) {
	m := cx.Measurer()
	l.full = graphics.LayoutText(l.text, 0, m)
	l.minW = 0
	for _, word := range strings.Fields(l.text) {
		l.minW = math.Max(l.minW, m.MeasureText(word))
	}
	min = graphics.Size{Width: l.minW, Height: l.full.Size.Height}
	return min, l.full.Size
}

func (l *Label) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	if l.full == nil {
		l.Measure(cx)
	}
	if proposed.Width >= l.full.Size.Width {
		l.layout = l.full
	} else {
		l.layout = graphics.LayoutText(l.text, math.Max(proposed.Width, l.minW), cx.Measurer())
	}
	return l.layout.Size
}

func (l *Label) Align(cx *AlignCx, alignment SingleAlignment) {
	if l.layout == nil {
		return
	}
	switch alignment {
	case AlignFirstBaseline:
		cx.Aggregate(alignment, l.layout.FirstBaseline())
	case AlignLastBaseline:
		cx.Aggregate(alignment, l.layout.LastBaseline())
	}
}

func (l *Label) Paint(cx *PaintCx) {
	if l.layout == nil {
		return
	}
	style := graphics.TextStyle{Color: l.color, Bold: l.bold}
	for i, line := range l.layout.Lines {
		cx.Canvas().DrawText(line.Text, graphics.Offset{Y: float64(i) * l.layout.Metrics.LineHeight}, style)
	}
}
