package widget

import "math"

// Axis selects the direction an alignment guide measures along.
type Axis int

const (
	// AxisVertical guides are y positions (Top, Center, baselines).
	AxisVertical Axis = iota
	// AxisHorizontal guides are x positions (Leading, Center, Trailing).
	AxisHorizontal
)

// AlignmentMerge selects how values reported by several descendants combine.
type AlignmentMerge int

const (
	MergeMin AlignmentMerge = iota
	MergeMean
	MergeMax
)

type alignmentKind int

const (
	kindTop alignmentKind = iota
	kindVerticalCenter
	kindBottom
	kindFirstBaseline
	kindLastBaseline
	kindLeading
	kindHorizontalCenter
	kindTrailing
)

// SingleAlignment is an alignment guide along one axis.
//
// Geometric guides (Top, Center, Bottom, Leading, Trailing) are computed by
// the Pod from the widget's size. Content guides (FirstBaseline,
// LastBaseline) are queried from the widget through Widget.Align and fall
// back to the bottom edge when nothing reports a value.
type SingleAlignment struct {
	kind  alignmentKind
	name  string
	axis  Axis
	merge AlignmentMerge
}

var (
	AlignTop           = SingleAlignment{kind: kindTop, name: "top", axis: AxisVertical, merge: MergeMin}
	AlignCenter        = SingleAlignment{kind: kindVerticalCenter, name: "center", axis: AxisVertical, merge: MergeMean}
	AlignBottom        = SingleAlignment{kind: kindBottom, name: "bottom", axis: AxisVertical, merge: MergeMax}
	AlignFirstBaseline = SingleAlignment{kind: kindFirstBaseline, name: "first_baseline", axis: AxisVertical, merge: MergeMin}
	AlignLastBaseline  = SingleAlignment{kind: kindLastBaseline, name: "last_baseline", axis: AxisVertical, merge: MergeMax}

	AlignLeading          = SingleAlignment{kind: kindLeading, name: "leading", axis: AxisHorizontal, merge: MergeMin}
	AlignHorizontalCenter = SingleAlignment{kind: kindHorizontalCenter, name: "h_center", axis: AxisHorizontal, merge: MergeMean}
	AlignTrailing         = SingleAlignment{kind: kindTrailing, name: "trailing", axis: AxisHorizontal, merge: MergeMax}
)

// Axis returns the axis the guide measures along.
func (a SingleAlignment) Axis() Axis {
	return a.axis
}

// Merge returns how reported values combine.
func (a SingleAlignment) Merge() AlignmentMerge {
	return a.merge
}

func (a SingleAlignment) String() string {
	return a.name
}

// IsContent reports whether the guide depends on widget content rather than
// only its size.
func (a SingleAlignment) IsContent() bool {
	return a.kind == kindFirstBaseline || a.kind == kindLastBaseline
}

// alignResult accumulates aggregated values for one query.
type alignResult struct {
	value float64
	count int
}

func (r *alignResult) aggregate(alignment SingleAlignment, value float64) {
	if r.count == 0 {
		r.value = value
		r.count = 1
		return
	}
	switch alignment.merge {
	case MergeMin:
		r.value = math.Min(r.value, value)
	case MergeMax:
		r.value = math.Max(r.value, value)
	case MergeMean:
		r.value += value
	}
	r.count++
}

func (r *alignResult) reap(alignment SingleAlignment) (float64, bool) {
	if r.count == 0 {
		return 0, false
	}
	if alignment.merge == MergeMean {
		return r.value / float64(r.count), true
	}
	return r.value, true
}
