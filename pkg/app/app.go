package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/weft/pkg/debug"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/id"
	"github.com/go-drift/weft/pkg/view"
	"github.com/go-drift/weft/pkg/widget"
)

// App owns the application state, the current view tree with its
// diff-state, and the retained widget tree.
type App[T, A any] struct {
	state  T
	logic  func(*T) view.View[T, A]
	logger *log.Logger

	cx        *view.Cx
	cxState   *widget.CxState
	rootState widget.WidgetState
	size      graphics.Size

	view      view.View[T, A]
	rootId    id.Id
	viewState any
	root      *widget.Pod

	actions []A

	snapshots bool
	mu        sync.RWMutex
	snapshot  debug.Node
	published bool
	stats     debug.Stats
}

// New returns an App rendering state with logic. No cycle runs until Render.
func New[T, A any](state T, logic func(*T) view.View[T, A], opts ...Option) *App[T, A] {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &App[T, A]{
		state:     state,
		logic:     logic,
		logger:    o.logger,
		cx:        view.NewCx(),
		cxState:   widget.NewCxState(o.measurer),
		size:      o.size,
		snapshots: o.snapshots,
	}
}

// State returns the application state. Mutations take effect on the next
// Render.
func (a *App[T, A]) State() *T {
	return &a.state
}

// Root returns the root pod, or nil before the first successful Render.
func (a *App[T, A]) Root() *widget.Pod {
	return a.root
}

// RootId returns the id of the root view node.
func (a *App[T, A]) RootId() id.Id {
	return a.rootId
}

// Size returns the surface size.
func (a *App[T, A]) Size() graphics.Size {
	return a.size
}

// Measurer returns the text measurer used for layout.
func (a *App[T, A]) Measurer() graphics.TextMeasurer {
	return a.cxState.Measurer()
}

// Render runs one full cycle: view function, diff, update, measure and
// layout. A panic inside the cycle is recovered and returned; the widget tree
// is then discarded and rebuilt from scratch by the next Render.
func (a *App[T, A]) Render() (err error) {
	start := time.Now()
	defer a.recoverCycle("app.Render", &err)

	v, err := a.runLogic()
	if err != nil {
		return err
	}
	if err := a.reconcile(v); err != nil {
		return err
	}
	a.layout()
	a.publish(time.Since(start))
	return nil
}

// Resize changes the surface size and lays the tree out again.
func (a *App[T, A]) Resize(size graphics.Size) (err error) {
	if size == a.size {
		return nil
	}
	a.size = size
	if a.root == nil {
		return nil
	}
	start := time.Now()
	defer a.recoverCycle("app.Resize", &err)
	a.layout()
	a.publish(time.Since(start))
	return nil
}

// SetMeasurer switches the text measurer and re-measures every widget.
func (a *App[T, A]) SetMeasurer(m graphics.TextMeasurer) (err error) {
	a.cxState.SetMeasurer(m)
	if a.root == nil {
		return nil
	}
	defer a.recoverCycle("app.SetMeasurer", &err)
	a.root.Lifecycle(widget.NewLifeCycleCx(a.cxState, &a.rootState), widget.MeasurerChanged{})
	a.layout()
	a.publish(0)
	return nil
}

// HandleEvent routes a raw input event through the widget tree and
// delivers the messages widgets queued. If any message reached a view the
// next cycle runs before HandleEvent returns.
func (a *App[T, A]) HandleEvent(event widget.RawEvent) (err error) {
	if a.root == nil {
		return nil
	}
	defer a.recoverCycle("app.HandleEvent", &err)

	a.root.Event(widget.NewEventCx(a.cxState, &a.rootState), event)
	delivered := false
	for _, msg := range a.cxState.TakeMessages() {
		if a.dispatch(msg) {
			delivered = true
		}
	}
	if delivered {
		return a.Render()
	}
	if a.rootState.Flags.Has(widget.FlagNeedsLayout) {
		a.layout()
		a.publish(0)
	}
	return nil
}

// SendMessage delivers body to the view at path as if a widget had queued
// it, then runs a cycle if the message reached a view.
func (a *App[T, A]) SendMessage(path id.Path, body any) (err error) {
	if a.root == nil {
		return nil
	}
	defer a.recoverCycle("app.SendMessage", &err)
	if a.dispatch(widget.Message{Path: path, Body: body}) {
		return a.Render()
	}
	return nil
}

// Paint prepares and paints the laid out tree onto canvas.
func (a *App[T, A]) Paint(canvas graphics.Canvas) (err error) {
	if a.root == nil {
		return nil
	}
	defer a.recoverCycle("app.Paint", &err)

	a.root.PreparePaint(widget.NewPreparePaintCx(a.cxState, &a.rootState), a.size.ToRect())
	if a.rootState.Flags.Has(widget.FlagNeedsLayout) {
		a.layout()
	}
	a.root.Paint(widget.NewPaintCx(a.cxState, &a.rootState, canvas))
	a.rootState.Flags &^= widget.FlagNeedsPaint
	return nil
}

// NeedsPaint reports whether anything changed since the last Paint.
func (a *App[T, A]) NeedsPaint() bool {
	return a.root != nil && (a.rootState.Flags.Has(widget.FlagNeedsPaint) || a.root.State.Flags.Has(widget.FlagNeedsPaint))
}

// TakeActions drains the actions returned by handlers since the last call.
func (a *App[T, A]) TakeActions() []A {
	actions := a.actions
	a.actions = nil
	return actions
}

// Snapshot returns the widget tree published by the last cycle. It is safe
// to call from any goroutine and reports false unless the App was created
// WithSnapshots.
func (a *App[T, A]) Snapshot() (debug.Node, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot, a.published
}

// Stats returns cycle counters. It is safe to call from any goroutine.
func (a *App[T, A]) Stats() debug.Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stats
}

func (a *App[T, A]) runLogic() (v view.View[T, A], err error) {
	defer func() {
		if r := recover(); r != nil {
			be := &errors.BuildError{
				View:       fmt.Sprintf("%T", a.logic),
				Phase:      "logic",
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportBuildError(be)
			a.countError()
			err = be
		}
	}()
	return a.logic(&a.state), nil
}

func (a *App[T, A]) reconcile(v view.View[T, A]) (err error) {
	phase := "rebuild"
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		a.reset()
		a.countError()
		if _, ok := r.(*errors.ContractError); ok {
			werr := errors.FromRecovered("app."+phase, r)
			errors.Report(werr)
			err = werr
			return
		}
		be := &errors.BuildError{
			View:       fmt.Sprintf("%T", v),
			Phase:      phase,
			Recovered:  r,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
		errors.ReportBuildError(be)
		err = be
	}()

	if a.root == nil {
		phase = "build"
		a.rootId, a.viewState, a.root = view.BuildPod(a.cx, v)
		a.view = v
		a.logger.Debug("built root", "view", fmt.Sprintf("%T", v), "id", a.rootId)
		a.updateStats(func(s *debug.Stats) { s.Rebuilds++ })
		return nil
	}
	changed := view.RebuildChild(a.cx, v, a.view, &a.rootId, &a.viewState, a.root)
	a.view = v
	if changed {
		a.root.RequestUpdate()
		a.updateStats(func(s *debug.Stats) { s.Rebuilds++ })
	}
	a.logger.Debug("rebuilt root", "changed", changed)
	return nil
}

func (a *App[T, A]) layout() {
	a.root.Update(widget.NewUpdateCx(a.cxState, &a.rootState))
	cx := widget.NewLayoutCx(a.cxState, &a.rootState)
	a.root.Measure(cx)
	a.root.Layout(cx, a.size)
	a.root.SetOrigin(graphics.Offset{})
	a.rootState.Flags &^= widget.FlagNeedsLayout
}

// dispatch delivers one message and reports whether a view handled it.
func (a *App[T, A]) dispatch(msg widget.Message) bool {
	a.updateStats(func(s *debug.Stats) { s.Events++ })
	head, tail, ok := msg.Path.Head()
	if !ok || head != a.rootId {
		a.stale(msg)
		return false
	}
	result := a.view.Event(tail, a.viewState, msg.Body, &a.state)
	switch result.Kind {
	case view.ResultStale:
		a.stale(msg)
		return false
	case view.ResultAction:
		a.actions = append(a.actions, result.Action)
	}
	a.logger.Debug("event delivered", "path", msg.Path, "result", result.Kind)
	return true
}

func (a *App[T, A]) stale(msg widget.Message) {
	a.updateStats(func(s *debug.Stats) { s.StaleEvents++ })
	a.logger.Debug("stale event dropped", "path", msg.Path, "body", fmt.Sprintf("%T", msg.Body))
}

// reset discards the retained tree after a failed cycle.
func (a *App[T, A]) reset() {
	if a.root != nil {
		a.root.Dispose()
	}
	a.root = nil
	a.view = nil
	a.viewState = nil
	a.rootId = id.Zero
	a.rootState = widget.WidgetState{}
	a.cx = view.NewCx()
	a.cxState.TakeMessages()
}

func (a *App[T, A]) recoverCycle(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	a.reset()
	a.countError()
	werr := errors.FromRecovered(op, r)
	errors.Report(werr)
	*err = werr
}

func (a *App[T, A]) publish(d time.Duration) {
	var node debug.Node
	if a.snapshots {
		node = debug.Snapshot(a.root)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.Cycles++
	a.stats.LastDuration = d
	if a.snapshots {
		a.snapshot = node
		a.published = true
	}
	a.logger.Debug("cycle", "n", a.stats.Cycles, "took", d, "size", a.size)
}

func (a *App[T, A]) updateStats(fn func(*debug.Stats)) {
	a.mu.Lock()
	fn(&a.stats)
	a.mu.Unlock()
}

func (a *App[T, A]) countError() {
	a.updateStats(func(s *debug.Stats) { s.Errors++ })
}
