package demos

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/graphics"
	wefttest "github.com/go-drift/weft/pkg/testing"
	"github.com/go-drift/weft/pkg/widget"
)

func button(label string) wefttest.Finder {
	return wefttest.ByPredicate("button "+label, func(w widget.Widget) bool {
		b, ok := w.(*widget.Button)
		return ok && b.Label() == label
	})
}

func tap(t *testing.T, tester interface{ Tap(wefttest.Finder) error }, label string, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		if err := tester.Tap(button(label)); err != nil {
			t.Fatalf("tap %q: %v", label, err)
		}
	}
}

func TestRegistry(t *testing.T) {
	if diff := cmp.Diff([]string{"counter", "list", "switcher"}, Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if _, err := Lookup("nope"); err == nil {
		t.Error("expected error for unknown demo")
	}
}

func TestEveryDemoStarts(t *testing.T) {
	for _, d := range All() {
		t.Run(d.Name, func(t *testing.T) {
			r := d.Start(Settings{Spacing: 2},
				app.WithLogger(log.New(io.Discard)),
				app.WithSize(graphics.Size{Width: 800, Height: 600}),
				app.WithSnapshots(),
			)
			if err := r.Render(); err != nil {
				t.Fatal(err)
			}
			if r.Root() == nil {
				t.Fatal("no widget tree")
			}
			node, ok := r.Snapshot()
			if !ok || node.Count() < 3 {
				t.Errorf("snapshot ok=%v nodes=%d", ok, node.Count())
			}
			if d.Summary == "" {
				t.Error("missing summary")
			}
		})
	}
}

func TestCounterDemo(t *testing.T) {
	tester := wefttest.NewTesterWithT(t, Counter{Text: ptr("hi")}, Settings{}.counterLogic)
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(wefttest.ByText("hi")).Exists() {
		t.Fatal("initial text missing")
	}

	tap(t, tester, "add", 2)
	if !tester.Find(wefttest.ByText("count: 2")).Exists() {
		t.Error("count label not updated")
	}

	tap(t, tester, "toggle text", 1)
	if tester.Find(wefttest.ByText("hi")).Exists() {
		t.Error("text should be hidden")
	}
	tap(t, tester, "toggle text", 1)
	if !tester.Find(wefttest.ByText("2")).Exists() {
		t.Error("text should show the count it was toggled at")
	}

	// The adapted, memoized button edits only the count.
	tap(t, tester, "count: 2", 1)
	if tester.State().Count != 3 {
		t.Errorf("count = %d, want 3", tester.State().Count)
	}
	if !tester.Find(button("count: 3")).Exists() {
		t.Error("memoized button not rebuilt after its data changed")
	}

	tap(t, tester, "reset", 1)
	if tester.State().Count != 0 {
		t.Errorf("count after reset = %d", tester.State().Count)
	}
	if diff := cmp.Diff([]string{"add", "add", "toggle", "toggle", "count", "reset"}, tester.Actions()); diff != "" {
		t.Errorf("actions (-want +got):\n%s", diff)
	}
}

func TestListPaging(t *testing.T) {
	tester := wefttest.NewTesterWithT(t, NewList(), Settings{Spacing: 1}.listLogic)
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	names := func() []string {
		return tester.Find(wefttest.ByTextContaining("name:")).Texts()
	}
	if diff := cmp.Diff([]string{"id: 0, name: Bruce", "id: 1, name: Cowman"}, names()); diff != "" {
		t.Errorf("page 1 (-want +got):\n%s", diff)
	}

	tap(t, tester, ">", 1)
	if diff := cmp.Diff([]string{"id: 2, name: Alan", "id: 3, name: Tom"}, names()); diff != "" {
		t.Errorf("page 2 (-want +got):\n%s", diff)
	}

	// The last page has a single item; further taps clamp.
	tap(t, tester, ">", 3)
	if diff := cmp.Diff([]string{"id: 4, name: Ada"}, names()); diff != "" {
		t.Errorf("page 3 (-want +got):\n%s", diff)
	}
	if !tester.Find(wefttest.ByText("page 3/3")).Exists() {
		t.Error("page indicator not updated")
	}

	tap(t, tester, "<", 5)
	if tester.State().Page != 0 {
		t.Errorf("page = %d, want 0", tester.State().Page)
	}
	if got := tester.Find(wefttest.ByTextContaining("hello:")).Count(); got != 30 {
		t.Errorf("generated rows = %d, want 30", got)
	}
}

func TestListVisible(t *testing.T) {
	l := List{Items: make([]Item, 3)}
	tests := []struct {
		page, want int
	}{
		{0, 2},
		{1, 1},
		{5, 0},
	}
	for _, tt := range tests {
		l.Page = tt.page
		if got := len(l.Visible()); got != tt.want {
			t.Errorf("page %d: %d items, want %d", tt.page, got, tt.want)
		}
	}
	if (&List{}).Pages() != 1 {
		t.Error("an empty list still has one page")
	}
}

func TestSwitcherChangesSlotType(t *testing.T) {
	tester := wefttest.NewTesterWithT(t, Switcher{}, Settings{}.switcherLogic)
	if err := tester.Pump(); err != nil {
		t.Fatal(err)
	}
	resets := func() int { return tester.Find(button("reset")).Count() }
	if resets() != 2 {
		t.Fatalf("reset buttons = %d, want 2", resets())
	}

	tap(t, tester, "add", BigCount+1)
	if !tester.Find(wefttest.ByText("biiig count: 6")).Exists() {
		t.Error("switched label missing")
	}
	if resets() != 1 {
		t.Errorf("reset buttons = %d, want 1 once the row is replaced", resets())
	}

	tap(t, tester, "w", 2)
	if !tester.Find(wefttest.ByText("text: ww")).Exists() {
		t.Error("doubleyous not rendered")
	}

	tap(t, tester, "reset", 1)
	if resets() != 2 {
		t.Errorf("reset buttons = %d, want 2 after switching back", resets())
	}
	if len(tester.Errors()) != 0 {
		t.Errorf("errors: %v", tester.Errors())
	}
}
