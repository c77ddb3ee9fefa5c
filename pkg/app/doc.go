// Package app drives the reconciliation cycle for one application.
//
// A cycle runs the application's view function over its state, diffs the
// resulting view tree against the previous one, runs the widget update pass
// and lays the tree out at the surface size. Input events are routed
// through the widget tree; messages the widgets queue are delivered to the
// views that built them, which mutate the state, and a new cycle follows.
//
// Everything runs synchronously on the caller's goroutine. Panics raised
// while producing or diffing views are recovered per cycle and returned as
// errors after being reported to the errors package handler.
package app
