package debug

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a snapshot to Graphviz DOT format, one box per widget
// labeled with its type, content and laid out size.
func ToDOT(root Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph widgets {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\"];\n")
	buf.WriteString("\n")
	next := 0
	writeDOTNode(&buf, root, &next)
	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n Node, next *int) string {
	name := fmt.Sprintf("n%d", *next)
	*next++
	attrs := []string{fmt.Sprintf("label=%q", dotLabel(n))}
	if n.Hot {
		attrs = append(attrs, "fillcolor=lightyellow")
	}
	if n.NeedsLayout {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	fmt.Fprintf(buf, "  %s [%s];\n", name, strings.Join(attrs, ", "))
	for _, child := range n.Children {
		childName := writeDOTNode(buf, child, next)
		fmt.Fprintf(buf, "  %s -> %s;\n", name, childName)
	}
	return name
}

func dotLabel(n Node) string {
	parts := []string{n.Type}
	if n.Id != "" {
		parts[0] += " " + n.Id
	}
	if n.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", n.Text))
	}
	parts = append(parts, fmt.Sprintf("%gx%g @ %g,%g", n.Size.Width, n.Size.Height, n.Origin.X, n.Origin.Y))
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
