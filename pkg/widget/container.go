package widget

import (
	"math"

	"github.com/go-drift/weft/pkg/graphics"
)

// Insets is padding on each side of a box.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// InsetsAll returns equal padding on every side.
func InsetsAll(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// InsetsSymmetric returns horizontal and vertical padding.
func InsetsSymmetric(horizontal, vertical float64) Insets {
	return Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the sum of left and right padding.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the sum of top and bottom padding.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// Container pads a single child and optionally fills its background.
type Container struct {
	Base
	child      *Pod
	padding    Insets
	background graphics.Color
}

// NewContainer wraps child with padding.
func NewContainer(child Widget, padding Insets) *Container {
	return &Container{child: NewPod(child), padding: padding}
}

// ChildPod returns the pod of the padded child.
func (c *Container) ChildPod() *Pod {
	return c.child
}

func (c *Container) Padding() Insets {
	return c.padding
}

// SetPadding changes the padding. The caller requests an update.
func (c *Container) SetPadding(padding Insets) {
	c.padding = padding
}

func (c *Container) Background() graphics.Color {
	return c.background
}

// SetBackground sets the fill color. A transparent color disables the fill.
func (c *Container) SetBackground(color graphics.Color) {
	c.background = color
}

func (c *Container) VisitChildren(visitor func(*Pod)) {
	visitor(c.child)
}

func (c *Container) Event(cx *EventCx, event RawEvent) {
	c.child.Event(cx, event)
}

func (c *Container) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	c.child.Lifecycle(cx, event)
}

func (c *Container) Update(cx *UpdateCx) {
	c.child.Update(cx)
	cx.RequestLayout()
}

func (c *Container) Measure(cx *LayoutCx) (min, max graphics.Size) {
	cmin, cmax := c.child.Measure(cx)
	pad := graphics.Size{Width: c.padding.Horizontal(), Height: c.padding.Vertical()}
	min = graphics.Size{Width: cmin.Width + pad.Width, Height: cmin.Height + pad.Height}
	max = graphics.Size{Width: cmax.Width + pad.Width, Height: cmax.Height + pad.Height}
	return min, max
}

func (c *Container) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	inner := graphics.Size{
		Width:  math.Max(proposed.Width-c.padding.Horizontal(), 0),
		Height: math.Max(proposed.Height-c.padding.Vertical(), 0),
	}
	size := c.child.Layout(cx, inner)
	c.child.SetOrigin(graphics.Offset{X: c.padding.Left, Y: c.padding.Top})
	return graphics.Size{
		Width:  size.Width + c.padding.Horizontal(),
		Height: size.Height + c.padding.Vertical(),
	}
}

func (c *Container) Align(cx *AlignCx, alignment SingleAlignment) {
	c.child.Align(cx, alignment)
}

func (c *Container) PreparePaint(cx *PreparePaintCx, visible graphics.Rect) {
	c.child.PreparePaint(cx, visible)
}

func (c *Container) Paint(cx *PaintCx) {
	canvas := cx.Canvas()
	if c.background.Alpha() > 0 {
		canvas.DrawRect(cx.Size().ToRect(), graphics.Paint{Color: c.background, Style: graphics.PaintStyleFill})
	}
	c.child.Paint(cx)
}
