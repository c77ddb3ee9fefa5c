package demos

import (
	"fmt"

	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/graphics"
	"github.com/go-drift/weft/pkg/view"
)

func init() {
	register(Demo{
		Name:    "counter",
		Summary: "counter with optional text, reset and a memoized count button",
		Start: func(s Settings, opts ...app.Option) Runner {
			return app.New(Counter{Text: ptr("hi")}, s.counterLogic, opts...)
		},
	})
}

// Counter is the state of the counter demo.
type Counter struct {
	Count int
	// Text is shown below the count when set.
	Text *string
}

func (s Settings) counterLogic(c *Counter) view.View[Counter, string] {
	return view.VStack[Counter, string](
		view.Label[Counter, string](fmt.Sprintf("count: %d", c.Count)).Bold(),
		optionalText(c.Text),
		view.HStack[Counter, string](
			view.Button("reset", func(c *Counter) string {
				c.Count = 0
				return "reset"
			}),
			view.Button("add", func(c *Counter) string {
				c.Count++
				return "add"
			}),
			view.Button("toggle text", func(c *Counter) string {
				if c.Text != nil {
					c.Text = nil
				} else {
					c.Text = ptr(fmt.Sprint(c.Count))
				}
				return "toggle"
			}),
		).Spacing(s.Spacing),
		view.Adapt(
			func(c *Counter, thunk view.AdaptThunk[int, struct{}]) view.EventResult[string] {
				return view.MapResult(thunk.Call(&c.Count), func(struct{}) string { return "count" })
			},
			countButton(c.Count),
		),
	).Spacing(s.Spacing)
}

func optionalText(text *string) view.OptionalView[Counter, string] {
	if text == nil {
		return view.Optional[Counter, string](nil)
	}
	return view.Optional[Counter, string](view.Label[Counter, string](*text).Color(graphics.ColorGray))
}

// countButton only rebuilds its button when count changes.
func countButton(count int) view.View[int, struct{}] {
	return view.Memoize(count, func(count int) view.View[int, struct{}] {
		return view.Button(fmt.Sprintf("count: %d", count), func(n *int) struct{} {
			*n++
			return struct{}{}
		})
	})
}

func ptr[T any](v T) *T { return &v }
