package demos

import (
	"fmt"

	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/view"
	"github.com/go-drift/weft/pkg/widget"
)

func init() {
	register(Demo{
		Name:    "switcher",
		Summary: "a slot that switches between a label and a row once the count passes a threshold",
		Start: func(s Settings, opts ...app.Option) Runner {
			return app.New(Switcher{}, s.switcherLogic, opts...)
		},
	})
}

// BigCount is the count above which the switcher demo replaces its row
// with a single label.
const BigCount = 5

// Switcher is the state of the switcher demo.
type Switcher struct {
	Count      int
	Doubleyous string
}

func (s Settings) switcherLogic(sw *Switcher) view.View[Switcher, string] {
	return view.HStack[Switcher, string](
		view.Label[Switcher, string]("text: "+sw.Doubleyous),
		view.Label[Switcher, string](fmt.Sprintf("count: %d", sw.Count)),
		s.switched(sw),
		view.VStack[Switcher, string](
			view.Button("reset", resetSwitcher),
			view.Button("add", func(sw *Switcher) string {
				sw.Count++
				return "add"
			}),
			view.Button("w", func(sw *Switcher) string {
				sw.Doubleyous += "w"
				return "w"
			}),
		).Align(widget.AlignLeading).Spacing(s.Spacing),
	).Align(widget.AlignTop).Spacing(s.Spacing)
}

// switched returns views of different types depending on the count; the
// slot is torn down and rebuilt whenever the type changes.
func (s Settings) switched(sw *Switcher) view.View[Switcher, string] {
	if sw.Count > BigCount {
		return view.Label[Switcher, string](fmt.Sprintf("biiig count: %d", sw.Count)).Bold()
	}
	return view.HStack[Switcher, string](
		view.Label[Switcher, string](fmt.Sprintf("count: %d", sw.Count)),
		view.Button("reset", resetSwitcher),
	).Spacing(s.Spacing)
}

func resetSwitcher(sw *Switcher) string {
	sw.Count = 0
	return "reset"
}
