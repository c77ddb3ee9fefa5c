package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/weft/pkg/graphics"
)

// Cell is one character cell of a Grid.
type Cell struct {
	Rune rune
	Fg   graphics.Color
	Bg   graphics.Color
	Bold bool
}

func (c Cell) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(c.Bold)
	if c.Fg.Alpha() > 0 {
		s = s.Foreground(lipgloss.Color(c.Fg.Hex()))
	}
	if c.Bg.Alpha() > 0 {
		s = s.Background(lipgloss.Color(c.Bg.Hex()))
	}
	return s
}

type gridState struct {
	dx, dy float64
	clip   graphics.Rect
}

// Grid is a graphics.Canvas over a fixed-size matrix of cells.
type Grid struct {
	width, height int
	cells         []Cell
	state         gridState
	stack         []gridState
}

// NewGrid returns a blank grid of width by height cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize discards the content and sets a new size.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.cells = make([]Cell, g.width*g.height)
	g.Clear()
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Clear blanks every cell and resets the transform and clip.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' '}
	}
	g.state = gridState{clip: graphics.RectFromLTWH(0, 0, float64(g.width), float64(g.height))}
	g.stack = g.stack[:0]
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) Save() {
	g.stack = append(g.stack, g.state)
}

func (g *Grid) Restore() {
	if len(g.stack) == 0 {
		return
	}
	g.state = g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
}

func (g *Grid) Translate(dx, dy float64) {
	g.state.dx += dx
	g.state.dy += dy
}

func (g *Grid) ClipRect(rect graphics.Rect) {
	g.state.clip = g.state.clip.Intersect(rect.Translate(g.state.dx, g.state.dy))
}

// DrawRect fills the covered cells with the paint color as background.
// Stroked rects are drawn as filled.
func (g *Grid) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	if paint.Color.Alpha() == 0 {
		return
	}
	r := rect.Translate(g.state.dx, g.state.dy).Intersect(g.state.clip)
	if r.IsEmpty() {
		return
	}
	x0, y0 := cellIndex(r.Left), cellIndex(r.Top)
	x1, y1 := cellIndex(r.Right), cellIndex(r.Bottom)
	for y := max(y0, 0); y < min(y1, g.height); y++ {
		for x := max(x0, 0); x < min(x1, g.width); x++ {
			c := &g.cells[y*g.width+x]
			c.Bg = paint.Color
			c.Rune = ' '
		}
	}
}

// DrawText writes text on the row containing position, one rune per cell
// (two for wide runes). Cells outside the clip are skipped.
func (g *Grid) DrawText(text string, position graphics.Offset, style graphics.TextStyle) {
	y := cellIndex(position.Y + g.state.dy)
	if y < 0 || y >= g.height {
		return
	}
	x := cellIndex(position.X + g.state.dx)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if g.inClip(x, y) && x+w <= g.width {
			c := &g.cells[y*g.width+x]
			c.Rune = r
			c.Fg = style.Color
			c.Bold = style.Bold
			for i := 1; i < w; i++ {
				g.cells[y*g.width+x+i].Rune = 0
			}
		}
		x += w
	}
}

func (g *Grid) inClip(x, y int) bool {
	if x < 0 || x >= g.width {
		return false
	}
	return g.state.clip.Contains(graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
}

// Plain returns the grid as text without styling, rows separated by
// newlines and trailing spaces trimmed.
func (g *Grid) Plain() string {
	rows := make([]string, g.height)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < g.width; x++ {
			if r := g.cells[y*g.width+x].Rune; r != 0 {
				b.WriteRune(r)
			}
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}

// Render returns the grid as styled terminal output. Adjacent cells with
// the same style are rendered as one run.
func (g *Grid) Render() string {
	rows := make([]string, g.height)
	for y := range rows {
		var (
			b     strings.Builder
			run   strings.Builder
			start Cell
		)
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(start.style().Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.Rune == 0 {
				continue
			}
			if run.Len() > 0 && !sameStyle(c, start) {
				flush()
			}
			if run.Len() == 0 {
				start = c
			}
			run.WriteRune(c.Rune)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func sameStyle(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Bold == b.Bold
}

func cellIndex(v float64) int {
	return int(math.Floor(v + 0.5))
}

var _ graphics.Canvas = (*Grid)(nil)
