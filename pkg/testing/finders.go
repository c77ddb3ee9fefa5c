package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/widget"
)

// Match is one pod found by a Finder, with its origin in window
// coordinates.
type Match struct {
	Pod    *widget.Pod
	Origin graphics.Offset
}

// Rect returns the pod's bounds in window coordinates.
func (m Match) Rect() graphics.Rect {
	return graphics.RectFromOriginSize(m.Origin, m.Pod.Size())
}

// Center returns the center of the pod in window coordinates.
func (m Match) Center() graphics.Offset {
	size := m.Pod.Size()
	return graphics.Offset{X: m.Origin.X + size.Width/2, Y: m.Origin.Y + size.Height/2}
}

// Finder locates pods in the widget tree.
type Finder interface {
	// Evaluate returns all matching pods under root (depth-first pre-order).
	Evaluate(root *widget.Pod) []Match
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []Match
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() Match {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) Match {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.description()))
	}
	return r.matches[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []Match {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() widget.Widget {
	return r.First().Pod.Widget()
}

// Texts returns the description of every matched widget that has one.
func (r FinderResult) Texts() []string {
	var out []string
	for _, m := range r.matches {
		if d, ok := m.Pod.Widget().(widget.Describer); ok {
			out = append(out, d.Describe())
		}
	}
	return out
}

// --- Concrete finders ---

type predicateFinder struct {
	desc  string
	match func(widget.Widget) bool
}

func (f *predicateFinder) Evaluate(root *widget.Pod) []Match {
	return collectMatches(root, f.match)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByType returns a finder that matches pods whose widget is type W.
func ByType[W widget.Widget]() Finder {
	t := reflect.TypeFor[W]()
	return &predicateFinder{
		desc: fmt.Sprintf("ByType(%s)", t.String()),
		match: func(w widget.Widget) bool {
			return reflect.TypeOf(w) == t
		},
	}
}

// ByText returns a finder that matches widgets whose description equals
// text exactly, such as a Label's text or a Button's label.
func ByText(text string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByText(%q)", text),
		match: func(w widget.Widget) bool {
			d, ok := w.(widget.Describer)
			return ok && d.Describe() == text
		},
	}
}

// ByTextContaining returns a finder that matches widgets whose description
// contains substr.
func ByTextContaining(substr string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByTextContaining(%q)", substr),
		match: func(w widget.Widget) bool {
			d, ok := w.(widget.Describer)
			return ok && strings.Contains(d.Describe(), substr)
		},
	}
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(desc string, fn func(widget.Widget) bool) Finder {
	return &predicateFinder{desc: fmt.Sprintf("ByPredicate(%s)", desc), match: fn}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *widget.Pod) []Match {
	var out []Match
	seen := map[*widget.Pod]bool{}
	for _, ancestor := range f.of.Evaluate(root) {
		ancestor.Pod.VisitChildren(func(child *widget.Pod) {
			for _, m := range f.matching.Evaluate(child) {
				if seen[m.Pod] {
					continue
				}
				seen[m.Pod] = true
				m.Origin = m.Origin.Add(ancestor.Origin)
				out = append(out, m)
			}
		})
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches pods found by matching strictly
// below any pod found by of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches walks the tree depth-first pre-order, tracking window
// origins.
func collectMatches(root *widget.Pod, match func(widget.Widget) bool) []Match {
	var out []Match
	var walk func(p *widget.Pod, parent graphics.Offset)
	walk = func(p *widget.Pod, parent graphics.Offset) {
		origin := parent.Add(p.Origin())
		if match(p.Widget()) {
			out = append(out, Match{Pod: p, Origin: origin})
		}
		p.VisitChildren(func(child *widget.Pod) {
			walk(child, origin)
		})
	}
	walk(root, graphics.Offset{})
	return out
}
