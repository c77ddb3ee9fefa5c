package demos

import (
	"fmt"

	"github.com/go-drift/weft/pkg/app"
	"github.com/go-drift/weft/pkg/view"
	"github.com/go-drift/weft/pkg/widget"
)

func init() {
	register(Demo{
		Name:    "list",
		Summary: "paged item list next to a scrollable list of generated rows",
		Start: func(s Settings, opts ...app.Option) Runner {
			return app.New(NewList(), s.listLogic, opts...)
		},
	})
}

// PageSize is the number of items shown per page of the list demo.
const PageSize = 2

// Item is one entry of the list demo.
type Item struct {
	ID   int
	Name string
	Note string
}

// List is the state of the list demo.
type List struct {
	Items []Item
	Page  int
	// Rows is the length of the generated scrolling list.
	Rows int
}

// NewList returns the list demo's initial state.
func NewList() List {
	return List{
		Items: []Item{
			{ID: 0, Name: "Bruce", Note: "went to the park"},
			{ID: 1, Name: "Cowman", Note: "went to the shops"},
			{ID: 2, Name: "Alan", Note: "ate ice cream"},
			{ID: 3, Name: "Tom", Note: "waited for the moon"},
			{ID: 4, Name: "Ada", Note: "wrote a program"},
		},
		Rows: 30,
	}
}

// Pages returns the number of pages of Items.
func (l *List) Pages() int {
	return max((len(l.Items)+PageSize-1)/PageSize, 1)
}

// Visible returns the items on the current page.
func (l *List) Visible() []Item {
	start := min(l.Page*PageSize, len(l.Items))
	end := min(start+PageSize, len(l.Items))
	return l.Items[start:end]
}

type listView = view.View[List, string]

func (s Settings) listLogic(l *List) listView {
	rows := make([]listView, l.Rows)
	for i := range rows {
		rows[i] = view.Label[List, string](fmt.Sprintf("hello: %d", i))
	}

	page := make([]listView, 0, PageSize)
	for _, item := range l.Visible() {
		// Keyed by item so a slot showing a different item is rebuilt.
		page = append(page, view.Key(item.ID, listView(view.VStack[List, string](
			view.Label[List, string](fmt.Sprintf("id: %d, name: %s", item.ID, item.Name)).Bold(),
			view.Label[List, string](item.Note),
		).Align(widget.AlignLeading))))
	}

	return view.HStack[List, string](
		view.Scroll[List, string](view.VStack[List, string](rows...).Align(widget.AlignLeading)),
		view.VStack[List, string](
			view.HStack[List, string](
				view.Button("<", func(l *List) string {
					l.Page = max(l.Page-1, 0)
					return "prev"
				}),
				view.Label[List, string](fmt.Sprintf("page %d/%d", l.Page+1, l.Pages())),
				view.Button(">", func(l *List) string {
					l.Page = min(l.Page+1, l.Pages()-1)
					return "next"
				}),
			).Spacing(s.Spacing),
			view.VStack[List, string](page...).Align(widget.AlignLeading).Spacing(s.Spacing),
		).Align(widget.AlignLeading).Spacing(s.Spacing),
	).Align(widget.AlignTop).Spacing(s.Spacing)
}
