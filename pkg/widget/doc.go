// Package widget defines the retained side of the engine: the Widget
// capability, the Pod container that caches layout results and flags around
// one widget, the per-pass contexts, and the composite widgets the view
// layer builds (stacks, containers, optional slots, labels, buttons and
// scroll views).
//
// # Passes
//
// A cycle runs these passes over the tree, each one a plain recursive call
// through Pods:
//
//   - Event: raw input is routed to hot or active widgets. Widgets may
//     capture the pointer, change hot state and queue Messages addressed by
//     id path for the view layer.
//   - Update: pods flagged with RequestUpdate notify their widget, which
//     invalidates the cached measurement.
//   - Measure: each widget reports an inclusive [min, max] size envelope.
//     Pods memoize it until the next update.
//   - Layout: given a proposed size the widget returns its definite size and
//     positions its children by setting their origins.
//   - Align: after layout a widget can report alignment values (baselines)
//     that composites use to line children up.
//   - PreparePaint and Paint.
//
// # Flexible space
//
// Composites measure every child before laying any of them out, so they can
// distribute space using the bounds of all children. See [Stack].
package widget
