package graphics

// PaintStyle selects between filling and stroking shapes.
type PaintStyle int

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// DefaultPaint returns an opaque black fill.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack, Style: PaintStyleFill}
}

// TextStyle describes how a run of text is drawn.
type TextStyle struct {
	Color Color
	Bold  bool
}

// Canvas records or renders drawing commands.
//
// Paint backends implement Canvas; widgets only ever see this contract.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, style TextStyle)
}
