// Package debug exposes the widget tree for inspection. [Snapshot] copies a
// laid out tree into plain [Node] values that can be encoded as JSON,
// converted to Graphviz DOT with [ToDOT] and rendered to SVG with
// [RenderSVG]. [Start] serves those encodings over HTTP while an
// application runs.
package debug
