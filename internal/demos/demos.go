// Package demos contains the sample applications run by the weft CLI.
package demos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/debug"
	"github.com/go-drift/weft/pkg/shell/term"
	"github.com/go-drift/weft/pkg/widget"
)

// Runner is a started demo application.
type Runner interface {
	term.Driver
	debug.Source
	Root() *widget.Pod
}

// Settings are the layout knobs a demo honors.
type Settings struct {
	// Spacing is the gap between stacked children.
	Spacing float64
}

// Demo describes one sample application.
type Demo struct {
	Name    string
	Summary string
	Start   func(settings Settings, opts ...app.Option) Runner
}

var registry = map[string]Demo{}

func register(d Demo) {
	if _, dup := registry[d.Name]; dup {
		panic("demos: duplicate demo " + d.Name)
	}
	registry[d.Name] = d
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted demo names.
func Names() []string {
	var names []string
	for _, d := range All() {
		names = append(names, d.Name)
	}
	return names
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, error) {
	d, ok := registry[name]
	if !ok {
		return Demo{}, fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}
