package testing

import (
	"testing"

	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/widget"
)

func TestScrollMovesViewport(t *testing.T) {
	tester := NewTesterWithT(t, todo{items: 10}, listView)
	tester.SetMeasurer(cells{})
	tester.SetSize(graphics.Size{Width: 20, Height: 4})
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}

	scroll := ByType[*widget.ScrollView]()
	if err := tester.Scroll(scroll, graphics.Offset{Y: 3}); err != nil {
		t.Fatal(err)
	}
	sv := tester.Find(scroll).Widget().(*widget.ScrollView)
	if sv.Offset() != 3 {
		t.Errorf("offset = %v, want 3", sv.Offset())
	}
	if got := tester.Find(ByText("item 3")).First().Origin; got.Y != 0 {
		t.Errorf("item 3 at y=%v, want 0 (top of the viewport)", got.Y)
	}

	// Clamped to content height minus viewport.
	if err := tester.Scroll(scroll, graphics.Offset{Y: 100}); err != nil {
		t.Fatal(err)
	}
	if sv.Offset() != 6 {
		t.Errorf("offset = %v, want 6", sv.Offset())
	}
}

func TestHoverMarksHot(t *testing.T) {
	tester := newTodoTester(t)
	if err := tester.Hover(ByText("hint")); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(ByText("hint")).First().Pod.IsHot() {
		t.Error("hovered button should be hot")
	}
	if tester.Find(ByText("+")).First().Pod.IsHot() {
		t.Error("other button should not be hot")
	}
}

func TestPressAndReleaseElsewhereDoesNotClick(t *testing.T) {
	tester := newTodoTester(t)
	plus := tester.Find(ByText("+")).First().Center()

	if err := tester.SendMouseDown(plus, widget.MouseButtonLeft); err != nil {
		t.Fatal(err)
	}
	away := graphics.Offset{X: 30, Y: 8}
	if err := tester.SendMouseMove(away); err != nil {
		t.Fatal(err)
	}
	if err := tester.SendMouseUp(away, widget.MouseButtonLeft); err != nil {
		t.Fatal(err)
	}
	if tester.State().count != 0 {
		t.Errorf("count = %d, want 0", tester.State().count)
	}
}

func TestSendKeyIsHarmless(t *testing.T) {
	tester := newTodoTester(t)
	if err := tester.SendKey("enter", widget.ModShift); err != nil {
		t.Fatal(err)
	}
	if len(tester.Errors()) != 0 {
		t.Errorf("errors = %v", tester.Errors())
	}
}
