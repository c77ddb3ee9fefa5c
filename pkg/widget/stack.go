package widget

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-drift/weft/pkg/graphics"
)

// Stack lays out its children along one axis: an HStack lines them up left
// to right and aligns them vertically, a VStack stacks them top to bottom
// and aligns them horizontally.
//
// Layout visits children in order of increasing flexibility (max minus min
// size along the main axis, ties in child order) and offers each the
// remaining main-axis budget divided evenly among the children not yet laid
// out. Rigid children go first, so whatever they leave over is shared by
// the flexible ones.
type Stack struct {
	Base
	children  []*Pod
	axis      Axis
	alignment SingleAlignment
	spacing   float64
}

// NewHStack lines children up horizontally, aligning them on a vertical
// guide.
func NewHStack(children []*Pod, alignment SingleAlignment, spacing float64) *Stack {
	return &Stack{children: children, axis: AxisHorizontal, alignment: alignment, spacing: spacing}
}

// NewVStack stacks children vertically, aligning them on a horizontal guide.
func NewVStack(children []*Pod, alignment SingleAlignment, spacing float64) *Stack {
	return &Stack{children: children, axis: AxisVertical, alignment: alignment, spacing: spacing}
}

// Axis returns the main axis.
func (s *Stack) Axis() Axis {
	return s.axis
}

// SetAxis switches between horizontal and vertical stacking. The caller
// requests an update.
func (s *Stack) SetAxis(axis Axis) {
	s.axis = axis
}

// Children returns the child pods in order.
func (s *Stack) Children() []*Pod {
	return s.children
}

// ChildrenMut returns the child slice for in-place diffing.
func (s *Stack) ChildrenMut() *[]*Pod {
	return &s.children
}

// Alignment returns the cross-axis guide children are aligned on. A guide
// set along the main axis is replaced by the cross axis center.
func (s *Stack) Alignment() SingleAlignment {
	return crossAlignment(s.axis, s.alignment)
}

// SetAlignment sets the cross-axis guide. The guide is kept as given and
// checked against the axis at layout time, so a later SetAxis applies the
// same rule.
func (s *Stack) SetAlignment(a SingleAlignment) {
	s.alignment = a
}

// Spacing returns the gap between adjacent children.
func (s *Stack) Spacing() float64 {
	return s.spacing
}

// SetSpacing sets the gap between adjacent children.
func (s *Stack) SetSpacing(spacing float64) {
	s.spacing = spacing
}

func (s *Stack) VisitChildren(visitor func(*Pod)) {
	for _, child := range s.children {
		visitor(child)
	}
}

func (s *Stack) Event(cx *EventCx, event RawEvent) {
	for _, child := range s.children {
		child.Event(cx, event)
	}
}

func (s *Stack) Lifecycle(cx *LifeCycleCx, event LifeCycle) {
	for _, child := range s.children {
		child.Lifecycle(cx, event)
	}
}

func (s *Stack) Update(cx *UpdateCx) {
	for _, child := range s.children {
		child.Update(cx)
	}
	cx.RequestLayout()
}

func (s *Stack) totalSpacing() float64 {
	if len(s.children) < 2 {
		return 0
	}
	return s.spacing * float64(len(s.children)-1)
}

func (s *Stack) Measure(cx *LayoutCx) (min, max graphics.Size) {
	var minMain, minCross, maxMain, maxCross float64
	for _, child := range s.children {
		cmin, cmax := child.Measure(cx)
		minMain += s.main(cmin)
		maxMain += s.main(cmax)
		minCross = math.Max(minCross, s.cross(cmin))
		maxCross = math.Max(maxCross, s.cross(cmax))
	}
	spacing := s.totalSpacing()
	return s.size(minMain+spacing, minCross), s.size(maxMain+spacing, maxCross)
}

func (s *Stack) Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size {
	n := len(s.children)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(s.flexibility(s.children[a]), s.flexibility(s.children[b]))
	})

	sizes := make([]graphics.Size, n)
	remaining := s.main(proposed) - s.totalSpacing()
	left := n
	for _, ix := range order {
		share := math.Max(remaining/float64(left), 0)
		size := s.children[ix].Layout(cx, s.size(share, s.cross(proposed)))
		sizes[ix] = size
		remaining -= s.main(size)
		left--
	}

	alignment := s.Alignment()
	aligns := make([]float64, n)
	maxAlign := 0.0
	for i, child := range s.children {
		aligns[i] = child.GetAlignment(alignment)
		maxAlign = math.Max(maxAlign, aligns[i])
	}

	var mainPos, crossSize float64
	for i, child := range s.children {
		offset := maxAlign - aligns[i]
		child.SetOrigin(s.offset(mainPos, offset))
		mainPos += s.main(sizes[i])
		if i+1 < n {
			mainPos += s.spacing
		}
		crossSize = math.Max(crossSize, s.cross(sizes[i])+offset)
	}
	return s.size(mainPos, crossSize)
}

func (s *Stack) Align(cx *AlignCx, alignment SingleAlignment) {
	for _, child := range s.children {
		child.Align(cx, alignment)
	}
}

func (s *Stack) PreparePaint(cx *PreparePaintCx, visible graphics.Rect) {
	for _, child := range s.children {
		child.PreparePaint(cx, visible)
	}
}

func (s *Stack) Paint(cx *PaintCx) {
	for _, child := range s.children {
		child.Paint(cx)
	}
}

// crossAlignment returns a when it measures across axis, otherwise the
// center guide of the cross axis.
func crossAlignment(axis Axis, a SingleAlignment) SingleAlignment {
	if a.Axis() != axis {
		return a
	}
	if axis == AxisHorizontal {
		return AlignCenter
	}
	return AlignHorizontalCenter
}

func (s *Stack) flexibility(p *Pod) float64 {
	if s.axis == AxisHorizontal {
		return p.WidthFlexibility()
	}
	return p.HeightFlexibility()
}

func (s *Stack) main(size graphics.Size) float64 {
	if s.axis == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (s *Stack) cross(size graphics.Size) float64 {
	if s.axis == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (s *Stack) size(main, cross float64) graphics.Size {
	if s.axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (s *Stack) offset(main, cross float64) graphics.Offset {
	if s.axis == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}
