package term

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/widget"
)

// Driver is the part of app.App the shell needs.
type Driver interface {
	Render() error
	Resize(size graphics.Size) error
	SetMeasurer(m graphics.TextMeasurer) error
	HandleEvent(event widget.RawEvent) error
	Paint(canvas graphics.Canvas) error
	NeedsPaint() bool
}

// Model is the bubbletea model hosting a Driver.
type Model struct {
	driver  Driver
	logger  *log.Logger
	grid    *Grid
	buttons widget.MouseButtons
	pressed widget.MouseButton
	quit    map[string]bool
	dirty   bool
	err     error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for event errors. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithQuitKeys replaces the keys that stop the program. Defaults to
// "ctrl+c".
func WithQuitKeys(keys ...string) Option {
	return func(m *Model) {
		m.quit = make(map[string]bool, len(keys))
		for _, k := range keys {
			m.quit[k] = true
		}
	}
}

// NewModel returns a model rendering d onto a width by height grid until
// the first window size message arrives.
func NewModel(d Driver, width, height int, opts ...Option) *Model {
	m := &Model{
		driver: d,
		logger: log.Default(),
		grid:   NewGrid(width, height),
		quit:   map[string]bool{"ctrl+c": true},
		dirty:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Grid returns the canvas the model paints onto.
func (m *Model) Grid() *Grid { return m.grid }

// Err returns the last error reported by the driver.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if m.quit[key] {
			return m, tea.Quit
		}
		m.deliver(KeyEvent(msg))
	case tea.MouseMsg:
		if event := m.mouseEvent(tea.MouseEvent(msg)); event != nil {
			m.deliver(event)
		}
	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Width, msg.Height)
		m.check(m.driver.Resize(graphics.Size{Width: float64(msg.Width), Height: float64(msg.Height)}))
		m.dirty = true
	}
	return m, nil
}

func (m *Model) View() string {
	if m.dirty || m.driver.NeedsPaint() {
		m.grid.Clear()
		m.check(m.driver.Paint(m.grid))
		m.dirty = false
	}
	return m.grid.Render()
}

func (m *Model) deliver(event widget.RawEvent) {
	m.check(m.driver.HandleEvent(event))
}

// check logs err and rebuilds the tree the failed cycle discarded.
func (m *Model) check(err error) {
	if err == nil {
		return
	}
	m.err = err
	m.logger.Error("cycle failed", "err", err)
	if err := m.driver.Render(); err != nil {
		m.logger.Error("rebuild failed", "err", err)
	}
	m.dirty = true
}

// KeyEvent converts a bubbletea key message to a KeyDown.
func KeyEvent(msg tea.KeyMsg) widget.KeyDown {
	key := msg.String()
	var mods widget.Modifiers
	if msg.Alt {
		mods |= widget.ModAlt
		key = strings.TrimPrefix(key, "alt+")
	}
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok {
		mods |= widget.ModCtrl
		key = rest
	}
	if rest, ok := strings.CutPrefix(key, "shift+"); ok {
		mods |= widget.ModShift
		key = rest
	}
	return widget.KeyDown{KeyEvent: widget.KeyEvent{Key: key, Mods: mods}}
}

func (m *Model) mouseEvent(msg tea.MouseEvent) widget.RawEvent {
	pos := graphics.Offset{X: float64(msg.X), Y: float64(msg.Y)}
	ev := widget.MouseEvent{Pos: pos, WindowPos: pos, Mods: mouseMods(msg)}

	if msg.IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			ev.WheelDelta = graphics.Offset{Y: -1}
		case tea.MouseButtonWheelDown:
			ev.WheelDelta = graphics.Offset{Y: 1}
		case tea.MouseButtonWheelLeft:
			ev.WheelDelta = graphics.Offset{X: -1}
		case tea.MouseButtonWheelRight:
			ev.WheelDelta = graphics.Offset{X: 1}
		}
		ev.Buttons = m.buttons
		return widget.MouseWheel{MouseEvent: ev}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		b := mouseButton(msg.Button)
		if b == widget.MouseButtonNone {
			return nil
		}
		m.buttons = m.buttons.With(b)
		m.pressed = b
		ev.Button, ev.Buttons, ev.Count = b, m.buttons, 1
		return widget.MouseDown{MouseEvent: ev}
	case tea.MouseActionRelease:
		b := mouseButton(msg.Button)
		if b == widget.MouseButtonNone {
			// Some encodings do not report which button was released.
			b = m.pressed
		}
		m.buttons = 0
		m.pressed = widget.MouseButtonNone
		ev.Button, ev.Buttons, ev.Count = b, m.buttons, 1
		return widget.MouseUp{MouseEvent: ev}
	default:
		ev.Buttons = m.buttons
		return widget.MouseMove{MouseEvent: ev}
	}
}

func mouseButton(b tea.MouseButton) widget.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return widget.MouseButtonLeft
	case tea.MouseButtonRight:
		return widget.MouseButtonRight
	case tea.MouseButtonMiddle:
		return widget.MouseButtonMiddle
	default:
		return widget.MouseButtonNone
	}
}

func mouseMods(msg tea.MouseEvent) widget.Modifiers {
	var mods widget.Modifiers
	if msg.Shift {
		mods |= widget.ModShift
	}
	if msg.Ctrl {
		mods |= widget.ModCtrl
	}
	if msg.Alt {
		mods |= widget.ModAlt
	}
	return mods
}

// Run renders d and runs the terminal program until a quit key is pressed
// or ctx is cancelled. The driver's measurer is switched to cell units.
func Run(ctx context.Context, d Driver, opts ...Option) error {
	if err := d.SetMeasurer(Measurer{}); err != nil {
		return err
	}
	if err := d.Render(); err != nil {
		return err
	}
	model := NewModel(d, 80, 24, opts...)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := program.Run()
	return err
}
