// Package errors provides structured error handling for the weft engine.
//
// Programming-contract violations (a widget recovered as the wrong concrete
// type, a diff-state of the wrong shape) are raised as panics carrying a
// [*ContractError]. The application driver recovers them once per cycle and
// reports them through the global [ErrorHandler]. Routing misses are not
// errors and never reach this package.
package errors

import (
	"fmt"
	"reflect"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates a configuration or startup error.
	KindInit
	// KindRender indicates a layout or paint error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a failure while producing or diffing views.
	KindBuild
	// KindContract indicates a violated view/widget shape contract.
	KindContract
	// KindEvent indicates a failure while dispatching an event.
	KindEvent
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindContract:
		return "contract"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the engine.
type WeftError struct {
	// Op is the operation that failed (e.g., "app.Cycle").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.HandleEvent").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panic value that was itself an error, so that a
// recovered ContractError can still be matched with errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// BuildError represents a failure while running the view-producing function
// or a view's build/rebuild.
type BuildError struct {
	// View is the type name of the view being built.
	View string
	// Phase is "build", "rebuild" or "logic".
	Phase string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.%s(): %v", e.View, e.Phase, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.%s(): %v", e.View, e.Phase, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.%s()", e.View, e.Phase)
}

func (e *BuildError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

// ContractError reports that a retained node did not have the shape its
// parent built it with.
type ContractError struct {
	// Op is the operation that detected the violation (e.g., "widget.Downcast").
	Op string
	// Want is the type name the caller statically expected.
	Want string
	// Got is the type name actually found.
	Got string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: contract violation: want %s, got %s", e.Op, e.Want, e.Got)
}

// Contract panics with a ContractError describing the mismatch between the
// expected type W and the value found.
func Contract[W any](op string, got any) {
	panic(&ContractError{Op: op, Want: reflect.TypeFor[W]().String(), Got: fmt.Sprintf("%T", got)})
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WeftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when producing or diffing views fails.
	HandleBuildError(err *BuildError)
}
