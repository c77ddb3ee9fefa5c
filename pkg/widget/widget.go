package widget

import (
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/graphics"
)

// Widget is implemented by every node of the retained tree.
type Widget interface {
	// Event delivers raw input. Widgets mutate their own state and may
	// capture the pointer through cx.SetActive.
	Event(cx *EventCx, event RawEvent)

	// Lifecycle propagates structural notifications such as hot changes.
	Lifecycle(cx *LifeCycleCx, event LifeCycle)

	// Update is called when something below this widget changed and cached
	// sizes must be recomputed.
	Update(cx *UpdateCx)

	// Measure computes intrinsic sizes. It runs once after creation and
	// again after each update; the result is memoized by the Pod.
	Measure(cx *LayoutCx) (min, max graphics.Size)

	// Layout computes the definite size for a proposed size. It can count on
	// Measure having run.
	Layout(cx *LayoutCx, proposed graphics.Size) graphics.Size

	// Align reports alignment values for the given guide. It can count on
	// Layout having completed.
	Align(cx *AlignCx, alignment SingleAlignment)

	// PreparePaint is called before painting with the visible region in the
	// widget's own coordinates, primarily for virtualized children.
	PreparePaint(cx *PreparePaintCx, visible graphics.Rect)

	Paint(cx *PaintCx)
}

// ChildVisitor is implemented by widgets that own child pods.
type ChildVisitor interface {
	VisitChildren(visitor func(*Pod))
}

// Disposer is implemented by widgets that release resources when their pod
// is dropped from the tree.
type Disposer interface {
	Dispose()
}

// Describer is implemented by widgets that can summarize their content for
// inspection and test finders.
type Describer interface {
	Describe() string
}

// Base provides no-op implementations of the optional Widget methods.
// Embed it and override what the widget needs.
type Base struct{}

func (Base) Event(cx *EventCx, event RawEvent) {}

func (Base) Lifecycle(cx *LifeCycleCx, event LifeCycle) {}

func (Base) Update(cx *UpdateCx) {}

func (Base) Align(cx *AlignCx, alignment SingleAlignment) {}

func (Base) PreparePaint(cx *PreparePaintCx, visible graphics.Rect) {}

// Downcast recovers the concrete widget type a parent statically knows it
// built. A mismatch means the view and widget trees have diverged and panics
// with an *errors.ContractError.
func Downcast[W Widget](w Widget, op string) W {
	typed, ok := w.(W)
	if !ok {
		errors.Contract[W](op, w)
	}
	return typed
}
