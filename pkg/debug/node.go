package debug

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/widget"
)

// maxTreeDepth limits recursion depth to prevent stack overflow from malformed trees.
const maxTreeDepth = 500

// Node is one widget of a snapshot. Dimensions use SafeFloat since
// measured maximums are often unbounded.
type Node struct {
	Type        string     `json:"type"`
	Id          string     `json:"id,omitempty"`
	Text        string     `json:"text,omitempty"`
	Origin      SafeOffset `json:"origin"`
	Size        SafeSize   `json:"size"`
	MinSize     SafeSize   `json:"minSize"`
	MaxSize     SafeSize   `json:"maxSize"`
	Depth       int        `json:"depth"`
	Hot         bool       `json:"hot,omitempty"`
	Active      bool       `json:"active,omitempty"`
	NeedsLayout bool       `json:"needsLayout"`
	NeedsPaint  bool       `json:"needsPaint"`
	Children    []Node     `json:"children,omitempty"`
}

// Count returns the number of nodes in the subtree rooted at n.
func (n Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeSize is a JSON-safe version of graphics.Size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeOffset is a JSON-safe version of graphics.Offset.
type SafeOffset struct {
	X SafeFloat `json:"x"`
	Y SafeFloat `json:"y"`
}

func safeSize(s graphics.Size) SafeSize {
	return SafeSize{Width: SafeFloat(s.Width), Height: SafeFloat(s.Height)}
}

func safeOffset(o graphics.Offset) SafeOffset {
	return SafeOffset{X: SafeFloat(o.X), Y: SafeFloat(o.Y)}
}

// Snapshot copies the tree rooted at root.
func Snapshot(root *widget.Pod) Node {
	return snapshot(root, 0)
}

func snapshot(p *widget.Pod, depth int) Node {
	node := Node{
		Type:        TypeName(p.Widget()),
		Origin:      safeOffset(p.State.Origin),
		Size:        safeSize(p.State.Size),
		MinSize:     safeSize(p.State.MinSize),
		MaxSize:     safeSize(p.State.MaxSize),
		Depth:       depth,
		Hot:         p.IsHot(),
		Active:      p.IsActive(),
		NeedsLayout: p.State.Flags.Has(widget.FlagNeedsLayout),
		NeedsPaint:  p.State.Flags.Has(widget.FlagNeedsPaint),
	}
	if !p.Id().IsZero() {
		node.Id = p.Id().String()
	}
	if d, ok := p.Widget().(widget.Describer); ok {
		node.Text = d.Describe()
	}
	if depth >= maxTreeDepth {
		return node
	}
	p.VisitChildren(func(child *widget.Pod) {
		node.Children = append(node.Children, snapshot(child, depth+1))
	})
	return node
}

// TypeName returns the widget's type name without package or pointer, with
// stacks reported by axis.
func TypeName(w widget.Widget) string {
	if s, ok := w.(*widget.Stack); ok {
		if s.Axis() == widget.AxisHorizontal {
			return "HStack"
		}
		return "VStack"
	}
	t := reflect.TypeOf(w)
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
