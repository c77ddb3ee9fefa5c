package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/weft/pkg/graphics"
)

// Measurer measures text in terminal cells. Every line is one cell high
// with the baseline at the bottom of the cell.
type Measurer struct{}

// MeasureText returns the display width of text in cells.
func (Measurer) MeasureText(text string) float64 {
	return float64(lipgloss.Width(text))
}

func (Measurer) LineMetrics() graphics.LineMetrics {
	return graphics.LineMetrics{Ascent: 1, LineHeight: 1}
}

var _ graphics.TextMeasurer = Measurer{}
