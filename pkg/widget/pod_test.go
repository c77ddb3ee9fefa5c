package widget

import (
	"errors"
	"testing"

	wefterrors "github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/graphics"
)

func TestPodMemoizesMeasureAndLayout(t *testing.T) {
	p := newLeaf(graphics.Size{Width: 10, Height: 10}, graphics.Size{Width: 50, Height: 10})
	h := newHarness(p)
	proposed := graphics.Size{Width: 40, Height: 10}

	h.layout(proposed)
	h.layout(proposed)

	if p.measures != 1 {
		t.Errorf("measures = %d, want 1", p.measures)
	}
	if p.layouts != 1 {
		t.Errorf("layouts = %d, want 1", p.layouts)
	}
	if p.updates != 1 {
		t.Errorf("updates = %d, want 1", p.updates)
	}

	h.layout(graphics.Size{Width: 30, Height: 10})
	if p.measures != 1 || p.layouts != 2 {
		t.Errorf("after new proposal measures=%d layouts=%d, want 1 and 2", p.measures, p.layouts)
	}

	h.pod.RequestUpdate()
	h.layout(graphics.Size{Width: 30, Height: 10})
	if p.measures != 2 || p.layouts != 3 || p.updates != 2 {
		t.Errorf("after update measures=%d layouts=%d updates=%d, want 2, 3, 2", p.measures, p.layouts, p.updates)
	}
}

func TestPodSendsWidgetAddedOnce(t *testing.T) {
	p := newLeaf(graphics.Size{}, graphics.Size{})
	h := newHarness(p)
	h.layout(graphics.Size{})
	h.pod.RequestUpdate()
	h.layout(graphics.Size{})

	added := 0
	for _, ev := range p.lifecycle {
		if _, ok := ev.(WidgetAdded); ok {
			added++
		}
	}
	if added != 1 {
		t.Errorf("WidgetAdded delivered %d times, want 1", added)
	}
}

func TestPodHotTracking(t *testing.T) {
	inner := newLeaf(graphics.Size{Width: 20, Height: 20}, graphics.Size{Width: 20, Height: 20})
	container := NewContainer(inner, InsetsAll(10))
	h := newHarness(container)
	h.layout(graphics.Size{Width: 100, Height: 100})

	h.event(MouseMove{mouseAt(15, 15)})
	if !container.ChildPod().IsHot() {
		t.Fatal("inner pod should be hot")
	}
	if len(inner.lifecycle) == 0 {
		t.Fatal("expected HotChanged")
	}
	if hc, ok := inner.lifecycle[len(inner.lifecycle)-1].(HotChanged); !ok || !hc.Hot {
		t.Errorf("last lifecycle = %#v, want HotChanged{Hot: true}", inner.lifecycle[len(inner.lifecycle)-1])
	}
	if mv, ok := inner.events[len(inner.events)-1].(MouseMove); !ok || mv.Pos != (graphics.Offset{X: 5, Y: 5}) {
		t.Errorf("event position = %#v, want local {5 5}", inner.events[len(inner.events)-1])
	}

	// Outside the whole tree: both pods must go cold.
	h.event(MouseMove{mouseAt(500, 500)})
	if h.pod.IsHot() || container.ChildPod().IsHot() {
		t.Error("pods should not be hot after the pointer left")
	}
	if hc, ok := inner.lifecycle[len(inner.lifecycle)-1].(HotChanged); !ok || hc.Hot {
		t.Errorf("last lifecycle = %#v, want HotChanged{Hot: false}", inner.lifecycle[len(inner.lifecycle)-1])
	}
}

func TestPodDeliversKeysRegardlessOfHot(t *testing.T) {
	p := newLeaf(graphics.Size{Width: 5, Height: 5}, graphics.Size{Width: 5, Height: 5})
	h := newHarness(p)
	h.layout(graphics.Size{Width: 5, Height: 5})

	h.event(MouseDown{mouseAt(50, 50)})
	h.event(KeyDown{KeyEvent{Key: "a"}})

	if len(p.events) != 1 {
		t.Fatalf("events = %d, want 1", len(p.events))
	}
	if _, ok := p.events[0].(KeyDown); !ok {
		t.Errorf("event = %#v, want KeyDown", p.events[0])
	}
}

func TestDowncastMismatchPanicsWithContractError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("recovered %v, want error", r)
		}
		var ce *wefterrors.ContractError
		if !errors.As(err, &ce) {
			t.Fatalf("recovered %T, want *ContractError", r)
		}
		if ce.Want != "*widget.Stack" || ce.Got != "*widget.Label" {
			t.Errorf("contract = %+v", ce)
		}
	}()
	Downcast[*Stack](NewLabel("x"), "test")
}

func TestDowncastMatch(t *testing.T) {
	l := NewLabel("x")
	if got := Downcast[*Label](l, "test"); got != l {
		t.Error("Downcast returned a different widget")
	}
}

func TestReplaceWidgetDisposesSubtree(t *testing.T) {
	inner := newLeaf(graphics.Size{}, graphics.Size{})
	pod := NewPod(NewContainer(inner, Insets{}))
	pod.SetOrigin(graphics.Offset{X: 3})
	pod.ReplaceWidget(NewLabel("y"))

	if inner.disposed != 1 {
		t.Errorf("disposed = %d, want 1", inner.disposed)
	}
	if !pod.State.Flags.Has(FlagRequestUpdate | FlagNeedsMeasure | FlagIsNew) {
		t.Errorf("flags = %b, want fresh pod flags", pod.State.Flags)
	}
	if pod.Origin().X != 3 {
		t.Errorf("origin = %v, want kept", pod.Origin())
	}
}

func TestMeasurerChangedForcesRemeasure(t *testing.T) {
	p := newLeaf(graphics.Size{Width: 1}, graphics.Size{Width: 1})
	h := newHarness(NewContainer(p, Insets{}))
	h.layout(graphics.Size{Width: 10})

	h.pod.Lifecycle(NewLifeCycleCx(h.cs, &h.root), MeasurerChanged{})
	cx := NewLayoutCx(h.cs, &h.root)
	h.pod.Measure(cx)
	h.pod.Layout(cx, graphics.Size{Width: 10})

	if p.measures != 2 {
		t.Errorf("measures = %d, want 2", p.measures)
	}
}
