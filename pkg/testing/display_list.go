package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/weft/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// SerializeDisplayList converts recorded operations into their snapshot
// form. Coordinates are rounded to two decimals.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	ops := make([]DisplayOp, 0, len(dl.Ops()))
	for _, op := range dl.Ops() {
		out := DisplayOp{Op: op.Kind.String()}
		switch op.Kind {
		case graphics.OpTranslate:
			out.Params = params("dx", round2(op.Offset.X), "dy", round2(op.Offset.Y))
		case graphics.OpClipRect:
			out.Params = params("rect", serializeRect(op.Rect))
		case graphics.OpDrawRect:
			out.Params = params("rect", serializeRect(op.Rect), "color", serializeColor(op.Paint.Color))
		case graphics.OpDrawText:
			out.Params = params(
				"text", op.Text,
				"x", round2(op.Offset.X),
				"y", round2(op.Offset.Y),
				"color", serializeColor(op.TextStyle.Color),
			)
			if op.TextStyle.Bold {
				out.Params["bold"] = true
			}
		}
		ops = append(ops, out)
	}
	return ops
}

func serializeRect(r graphics.Rect) map[string]any {
	return params(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places. Infinite values are kept.
func round2(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	return math.Round(f*100) / 100
}

// params creates a map from alternating key-value pairs. encoding/json
// sorts map keys, so snapshots are stable.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
