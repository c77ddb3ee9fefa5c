package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// LineMetrics describes the vertical metrics shared by every line of text.
type LineMetrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// TextMeasurer measures single lines of text.
//
// Layout runs against whatever measurer the paint backend supplies so that
// sizes are expressed in the backend's units (pixels, terminal cells).
type TextMeasurer interface {
	MeasureText(text string) float64
	LineMetrics() LineMetrics
}

// FontMeasurer measures text with an x/image font face.
type FontMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures with the fixed 7x13 bitmap face.
func DefaultMeasurer() *FontMeasurer {
	return &FontMeasurer{Face: basicfont.Face7x13}
}

// MeasureText returns the advance width of text in pixels.
func (m *FontMeasurer) MeasureText(text string) float64 {
	adv := font.MeasureString(m.face(), text)
	return float64(adv) / 64
}

// LineMetrics returns the face metrics in pixels.
func (m *FontMeasurer) LineMetrics() LineMetrics {
	metrics := m.face().Metrics()
	return LineMetrics{
		Ascent:     float64(metrics.Ascent) / 64,
		Descent:    float64(metrics.Descent) / 64,
		LineHeight: float64(metrics.Height) / 64,
	}
}

func (m *FontMeasurer) face() font.Face {
	if m == nil || m.Face == nil {
		return basicfont.Face7x13
	}
	return m.Face
}

// TextLine is one laid out line of a paragraph.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout is the result of measuring and wrapping a paragraph.
type TextLayout struct {
	Lines   []TextLine
	Size    Size
	Metrics LineMetrics
}

// FirstBaseline returns the distance from the top to the first baseline.
func (l *TextLayout) FirstBaseline() float64 {
	return l.Metrics.Ascent
}

// LastBaseline returns the distance from the top to the last baseline.
func (l *TextLayout) LastBaseline() float64 {
	if len(l.Lines) == 0 {
		return l.Metrics.Ascent
	}
	return float64(len(l.Lines)-1)*l.Metrics.LineHeight + l.Metrics.Ascent
}

// LayoutText splits text into lines no wider than maxWidth, breaking at
// spaces. A maxWidth of zero or less disables wrapping. Explicit newlines
// always break. A single word wider than maxWidth occupies its own line.
func LayoutText(text string, maxWidth float64, m TextMeasurer) *TextLayout {
	metrics := m.LineMetrics()
	layout := &TextLayout{Metrics: metrics}
	for _, paragraph := range strings.Split(text, "\n") {
		if maxWidth <= 0 {
			layout.Lines = append(layout.Lines, TextLine{Text: paragraph, Width: m.MeasureText(paragraph)})
			continue
		}
		layout.Lines = append(layout.Lines, wrapParagraph(paragraph, maxWidth, m)...)
	}
	for _, line := range layout.Lines {
		if line.Width > layout.Size.Width {
			layout.Size.Width = line.Width
		}
	}
	layout.Size.Height = float64(len(layout.Lines)) * metrics.LineHeight
	return layout
}

func wrapParagraph(paragraph string, maxWidth float64, m TextMeasurer) []TextLine {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []TextLine{{Text: "", Width: 0}}
	}
	var lines []TextLine
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.MeasureText(candidate) <= maxWidth+epsilon {
			current = candidate
			continue
		}
		lines = append(lines, TextLine{Text: current, Width: m.MeasureText(current)})
		current = word
	}
	return append(lines, TextLine{Text: current, Width: m.MeasureText(current)})
}
