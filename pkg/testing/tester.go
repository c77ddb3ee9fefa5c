package testing

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/errors"
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/view"
	"github.com/go-drift/weft/pkg/widget"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
)

// Tester runs an application through the same build, layout, event and
// paint phases as a shell, recording paint output instead of displaying it.
type Tester[T, A any] struct {
	state    T
	logic    func(*T) view.View[T, A]
	app      *app.App[T, A]
	size     graphics.Size
	measurer graphics.TextMeasurer
	logger   *log.Logger
	handler  *recordingHandler
	buttons  widget.MouseButtons
}

// NewTester creates a tester for an application. Errors reported while the
// tester is active are captured and available from Errors; call Cleanup to
// restore the previous error handler, or use NewTesterWithT instead.
func NewTester[T, A any](state T, logic func(*T) view.View[T, A]) *Tester[T, A] {
	h := &recordingHandler{prev: errors.CurrentHandler()}
	errors.SetHandler(h)
	return &Tester[T, A]{
		state:   state,
		logic:   logic,
		size:    graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		logger:  log.New(io.Discard),
		handler: h,
	}
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT[T, A any](t *testing.T, state T, logic func(*T) view.View[T, A]) *Tester[T, A] {
	tester := NewTester(state, logic)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the error handler that was active before the tester.
func (t *Tester[T, A]) Cleanup() {
	errors.SetHandler(t.handler.prev)
}

// SetSize sets the surface size. Takes effect on the next Pump.
func (t *Tester[T, A]) SetSize(size graphics.Size) {
	t.size = size
}

// SetMeasurer sets the text measurer. Must be called before the first Pump.
func (t *Tester[T, A]) SetMeasurer(m graphics.TextMeasurer) {
	t.measurer = m
}

// SetLogger replaces the discarding logger used by the application.
// Must be called before the first Pump.
func (t *Tester[T, A]) SetLogger(logger *log.Logger) {
	t.logger = logger
}

// Pump runs one cycle. The first call creates the application.
func (t *Tester[T, A]) Pump() error {
	if t.app == nil {
		t.app = app.New(t.state, t.logic,
			app.WithLogger(t.logger),
			app.WithMeasurer(t.measurer),
			app.WithSize(t.size),
		)
		return t.app.Render()
	}
	if err := t.app.Resize(t.size); err != nil {
		return err
	}
	return t.app.Render()
}

// App returns the application, or nil before the first Pump.
func (t *Tester[T, A]) App() *app.App[T, A] {
	return t.app
}

// State returns the application state. Before the first Pump it returns
// the initial state.
func (t *Tester[T, A]) State() *T {
	if t.app == nil {
		return &t.state
	}
	return t.app.State()
}

// Root returns the root pod of the widget tree.
func (t *Tester[T, A]) Root() *widget.Pod {
	if t.app == nil {
		return nil
	}
	return t.app.Root()
}

// Actions drains the actions produced since the last call.
func (t *Tester[T, A]) Actions() []A {
	if t.app == nil {
		return nil
	}
	return t.app.TakeActions()
}

// Errors returns every error reported while the tester was active.
func (t *Tester[T, A]) Errors() []error {
	return t.handler.errs
}

// Find evaluates a finder against the current widget tree.
func (t *Tester[T, A]) Find(finder Finder) FinderResult {
	root := t.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		matches: finder.Evaluate(root),
		finder:  finder,
	}
}

// Paint paints the tree and returns the recorded display list.
func (t *Tester[T, A]) Paint() (*graphics.DisplayList, error) {
	recorder := &graphics.PictureRecorder{}
	if t.app == nil {
		return recorder.EndRecording(), nil
	}
	if err := t.app.Paint(recorder); err != nil {
		return nil, err
	}
	return recorder.EndRecording(), nil
}

type recordingHandler struct {
	prev errors.ErrorHandler
	errs []error
}

func (h *recordingHandler) HandleError(err *errors.WeftError)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)     { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) { h.errs = append(h.errs, err) }
