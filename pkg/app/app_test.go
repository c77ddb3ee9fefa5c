package app

import (
	stderrors "errors"
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/view"
	"github.com/go-drift/weft/pkg/widget"
)

type counterState struct {
	count    int
	showText bool
}

type V = view.View[counterState, string]

func counterView(s *counterState) V {
	return view.VStack[counterState, string](
		view.Label[counterState, string]("count: "+strconv.Itoa(s.count)),
		view.HStack[counterState, string](
			view.Button("inc", func(s *counterState) string {
				s.count++
				return "inc"
			}),
			view.Button("toggle", func(s *counterState) string {
				s.showText = !s.showText
				return "toggle"
			}),
		),
		view.When[counterState, string](s.showText, view.Label[counterState, string]("hello")),
	)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newCounter(t *testing.T, opts ...Option) *App[counterState, string] {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger()), WithSize(graphics.Size{Width: 400, Height: 300})}, opts...)
	a := New(counterState{}, counterView, opts...)
	if err := a.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return a
}

// find returns the first pod whose widget satisfies match, with its origin
// in window coordinates.
func find(p *widget.Pod, origin graphics.Offset, match func(widget.Widget) bool) (*widget.Pod, graphics.Offset) {
	origin = origin.Add(p.Origin())
	if match(p.Widget()) {
		return p, origin
	}
	var found *widget.Pod
	var at graphics.Offset
	p.VisitChildren(func(child *widget.Pod) {
		if found == nil {
			found, at = find(child, origin, match)
		}
	})
	return found, at
}

func described(text string) func(widget.Widget) bool {
	return func(w widget.Widget) bool {
		d, ok := w.(widget.Describer)
		return ok && d.Describe() == text
	}
}

func tap(t *testing.T, a *App[counterState, string], text string) {
	t.Helper()
	pod, at := find(a.Root(), graphics.Offset{}, described(text))
	if pod == nil {
		t.Fatalf("no widget %q", text)
	}
	center := graphics.Offset{X: at.X + pod.Size().Width/2, Y: at.Y + pod.Size().Height/2}
	ev := widget.MouseEvent{Pos: center, WindowPos: center, Button: widget.MouseButtonLeft}
	for _, e := range []widget.RawEvent{widget.MouseMove{MouseEvent: ev}, widget.MouseDown{MouseEvent: ev}, widget.MouseUp{MouseEvent: ev}} {
		if err := a.HandleEvent(e); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	}
}

func TestClickMutatesStateAndRebuilds(t *testing.T) {
	a := newCounter(t)

	tap(t, a, "inc")
	tap(t, a, "inc")

	if a.State().count != 2 {
		t.Errorf("count = %d, want 2", a.State().count)
	}
	if pod, _ := find(a.Root(), graphics.Offset{}, described("count: 2")); pod == nil {
		t.Error("label not updated to count: 2")
	}
	actions := a.TakeActions()
	if len(actions) != 2 || actions[0] != "inc" {
		t.Errorf("actions = %v, want [inc inc]", actions)
	}
	if len(a.TakeActions()) != 0 {
		t.Error("actions not drained")
	}
}

func TestOptionalTextToggles(t *testing.T) {
	a := newCounter(t)

	tap(t, a, "toggle")
	if pod, _ := find(a.Root(), graphics.Offset{}, described("hello")); pod == nil {
		t.Fatal("text should appear after toggle")
	}
	tap(t, a, "toggle")
	if pod, _ := find(a.Root(), graphics.Offset{}, described("hello")); pod != nil {
		t.Error("text should disappear after second toggle")
	}
}

type podLayout struct {
	pod  *widget.Pod
	size graphics.Size
}

// layouts lists every pod under p with its size, in tree order.
func layouts(p *widget.Pod) []podLayout {
	out := []podLayout{{pod: p, size: p.Size()}}
	p.VisitChildren(func(child *widget.Pod) {
		out = append(out, layouts(child)...)
	})
	return out
}

func TestIdempotentRenderKeepsWidgetsAndLayout(t *testing.T) {
	a := newCounter(t)
	before := layouts(a.Root())

	for i := range 2 {
		if err := a.Render(); err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		after := layouts(a.Root())
		if len(after) != len(before) {
			t.Fatalf("render %d: %d pods, want %d", i, len(after), len(before))
		}
		for j := range before {
			if after[j].pod != before[j].pod {
				t.Errorf("render %d: pod %d replaced", i, j)
			}
			if after[j].size != before[j].size {
				t.Errorf("render %d: pod %d size = %v, want %v", i, j, after[j].size, before[j].size)
			}
		}
		if a.Root().State.Flags.Has(widget.FlagNeedsLayout) || a.Root().State.Flags.Has(widget.FlagRequestUpdate) {
			t.Errorf("render %d: root flags = %b, want clean", i, a.Root().State.Flags)
		}
	}
	if got := a.Stats().Rebuilds; got != 1 {
		t.Errorf("rebuilds = %d, want 1 (the initial build)", got)
	}
}

func TestStaleMessageIsDropped(t *testing.T) {
	a := newCounter(t)

	if err := a.SendMessage(id.Path{a.RootId(), id.Next()}, widget.ButtonClicked{}); err != nil {
		t.Fatal(err)
	}
	if err := a.SendMessage(id.Path{id.Next()}, widget.ButtonClicked{}); err != nil {
		t.Fatal(err)
	}
	stats := a.Stats()
	if stats.StaleEvents != 2 || stats.Events != 2 {
		t.Errorf("stats = %+v, want 2 stale of 2 events", stats)
	}
	if a.State().count != 0 {
		t.Errorf("count = %d, want 0", a.State().count)
	}
}

type recordingHandler struct {
	errs   []*errors.WeftError
	builds []*errors.BuildError
}

func (h *recordingHandler) HandleError(err *errors.WeftError)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)     {}
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) { h.builds = append(h.builds, err) }

func TestLogicPanicIsBuildError(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	a := New(counterState{}, func(*counterState) V { panic("boom") }, WithLogger(quietLogger()))
	err := a.Render()

	var be *errors.BuildError
	if !stderrors.As(err, &be) {
		t.Fatalf("err = %v, want *BuildError", err)
	}
	if be.Phase != "logic" || be.Recovered != "boom" {
		t.Errorf("build error = %+v", be)
	}
	if len(h.builds) != 1 {
		t.Errorf("reported %d build errors, want 1", len(h.builds))
	}
}

// mismatched claims to be a label but builds an Option widget.
type mismatched struct {
	view.LabelView[counterState, string]
}

func (m mismatched) Build(cx *view.Cx) (id.Id, any, widget.Widget) {
	return id.Next(), nil, widget.NewOption(nil)
}

func TestContractViolationIsReturnedAndRecovered(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	fail := true
	a := New(counterState{}, func(*counterState) V {
		if fail {
			return mismatched{view.Label[counterState, string]("x")}
		}
		return view.Label[counterState, string]("ok")
	}, WithLogger(quietLogger()))
	if err := a.Render(); err != nil {
		t.Fatalf("first render: %v", err)
	}

	err := a.Render()
	var ce *errors.ContractError
	if !stderrors.As(err, &ce) {
		t.Fatalf("err = %v, want wrapped *ContractError", err)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindContract {
		t.Errorf("reported = %+v, want one contract error", h.errs)
	}
	if a.Root() != nil {
		t.Error("tree should be discarded after a failed cycle")
	}

	fail = false
	if err := a.Render(); err != nil {
		t.Fatalf("recovery render: %v", err)
	}
	if _, ok := a.Root().Widget().(*widget.Label); !ok {
		t.Errorf("root = %T, want *widget.Label", a.Root().Widget())
	}
}

func TestSnapshotsPublishedWhenEnabled(t *testing.T) {
	if _, ok := newCounter(t).Snapshot(); ok {
		t.Error("snapshot published without WithSnapshots")
	}
	a := newCounter(t, WithSnapshots())
	node, ok := a.Snapshot()
	if !ok {
		t.Fatal("no snapshot")
	}
	if node.Type != "VStack" {
		t.Errorf("root type = %q, want VStack", node.Type)
	}
}

func TestResizeRelayouts(t *testing.T) {
	a := newCounter(t)
	if err := a.Resize(graphics.Size{Width: 40, Height: 300}); err != nil {
		t.Fatal(err)
	}
	label, _ := find(a.Root(), graphics.Offset{}, described("count: 0"))
	// "count: 0" no longer fits in one 7px-per-glyph line of 40 and wraps.
	if h := label.Size().Height; h != 26 {
		t.Errorf("label height = %v, want 26", h)
	}
}

func TestPaintRecordsText(t *testing.T) {
	a := newCounter(t)
	rec := &graphics.PictureRecorder{}
	if err := a.Paint(rec); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, op := range rec.EndRecording().Ops() {
		if op.Kind == graphics.OpDrawText && op.Text == "count: 0" {
			found = true
		}
	}
	if !found {
		t.Error("label text not painted")
	}
	if a.NeedsPaint() {
		t.Error("paint flag should be clear after Paint")
	}
}
