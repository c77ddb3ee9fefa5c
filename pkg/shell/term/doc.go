// Package term runs a weft application in a terminal.
//
// The shell owns the bubbletea message loop. Key, mouse and window size
// messages become raw events on the driver; after every message the tree
// is painted onto a Grid, a cell canvas rendered with lipgloss. Layout
// units are terminal cells, measured by Measurer.
//
// Terminals only report key presses, so the shell delivers KeyDown and
// never KeyUp.
package term
