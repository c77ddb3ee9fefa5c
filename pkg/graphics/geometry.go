package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Infinity is used as an unbounded maximum size.
var Infinity = math.Inf(1)

// Offset represents a 2D point or vector in layout units.
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the vector from other to o.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in layout units.
type Size struct {
	Width  float64
	Height float64
}

// SizeZero is the empty size.
var SizeZero = Size{}

// SizeUnbounded is the largest size a widget can report as its maximum.
var SizeUnbounded = Size{Width: Infinity, Height: Infinity}

// Clamp constrains s to the inclusive range [min, max] on each axis.
func (s Size) Clamp(min, max Size) Size {
	return Size{
		Width:  clampFloat(s.Width, min.Width, max.Width),
		Height: clampFloat(s.Height, min.Height, max.Height),
	}
}

// ToRect returns the rectangle of this size anchored at the origin.
func (s Size) ToRect() Rect {
	return Rect{Right: s.Width, Bottom: s.Height}
}

// Contains reports whether the point lies inside a rectangle of this size
// anchored at the origin.
func (s Size) Contains(p Offset) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from an origin and size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Contains reports whether p lies inside the rectangle (right/bottom exclusive).
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the overlap of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Right-r.Left <= epsilon || r.Bottom-r.Top <= epsilon
}

// Translate returns the rectangle shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
