package graphics

import "testing"

func TestDefaultMeasurer_FixedAdvance(t *testing.T) {
	m := DefaultMeasurer()
	if got := m.MeasureText("abc"); got != 21 {
		t.Errorf("MeasureText(abc) = %v, want 21", got)
	}
	metrics := m.LineMetrics()
	if metrics.LineHeight != 13 || metrics.Ascent != 11 {
		t.Errorf("LineMetrics() = %+v, want height 13 ascent 11", metrics)
	}
}

func TestLayoutText_Wrap(t *testing.T) {
	m := DefaultMeasurer()
	tests := []struct {
		name      string
		text      string
		maxWidth  float64
		wantLines []string
	}{
		{"no wrap", "hello world", 0, []string{"hello world"}},
		{"fits", "hello world", 77, []string{"hello world"}},
		{"breaks at space", "hello world", 50, []string{"hello", "world"}},
		{"explicit newline", "a\nb", 0, []string{"a", "b"}},
		{"long word alone", "abcdefghij x", 21, []string{"abcdefghij", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := LayoutText(tt.text, tt.maxWidth, m)
			if len(layout.Lines) != len(tt.wantLines) {
				t.Fatalf("got %d lines %+v, want %v", len(layout.Lines), layout.Lines, tt.wantLines)
			}
			for i, want := range tt.wantLines {
				if layout.Lines[i].Text != want {
					t.Errorf("line %d = %q, want %q", i, layout.Lines[i].Text, want)
				}
			}
			if got := layout.Size.Height; got != float64(len(tt.wantLines))*13 {
				t.Errorf("height = %v", got)
			}
		})
	}
}

func TestTextLayout_Baselines(t *testing.T) {
	layout := LayoutText("a\nb\nc", 0, DefaultMeasurer())
	if got := layout.FirstBaseline(); got != 11 {
		t.Errorf("FirstBaseline() = %v, want 11", got)
	}
	if got := layout.LastBaseline(); got != 37 {
		t.Errorf("LastBaseline() = %v, want 37", got)
	}
}
