package app

import (
	"github.com/charmbracelet/log"

	"github.com/go-drift/weft/pkg/graphics"
)

type options struct {
	logger    *log.Logger
	measurer  graphics.TextMeasurer
	size      graphics.Size
	snapshots bool
}

// Option configures an App.
type Option func(*options)

// WithLogger sets the logger for cycle diagnostics. Defaults to
// log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMeasurer sets the text measurer of the paint backend. Defaults to
// graphics.DefaultMeasurer.
func WithMeasurer(m graphics.TextMeasurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithSize sets the initial surface size.
func WithSize(size graphics.Size) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithSnapshots publishes a copy of the widget tree after every cycle for
// readers on other goroutines, such as the debug server.
func WithSnapshots() Option {
	return func(o *options) {
		o.snapshots = true
	}
}
