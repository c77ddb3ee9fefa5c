package view

import "github.com/go-drift/weft/pkg/id"

// Cx carries the id path of the view node being built or rebuilt.
type Cx struct {
	idPath id.Path
}

// NewCx returns an empty context positioned at the root.
func NewCx() *Cx {
	return &Cx{}
}

// IdPath returns a copy of the current id path.
func (cx *Cx) IdPath() id.Path {
	return cx.idPath.Clone()
}

// Depth returns the length of the current id path.
func (cx *Cx) Depth() int {
	return len(cx.idPath)
}

// WithNewId allocates a fresh id and runs fn with it pushed onto the path.
func (cx *Cx) WithNewId(fn func(cx *Cx)) id.Id {
	vid := id.Next()
	cx.WithId(vid, fn)
	return vid
}

// WithId runs fn with vid pushed onto the path.
func (cx *Cx) WithId(vid id.Id, fn func(cx *Cx)) {
	cx.idPath = append(cx.idPath, vid)
	defer func() {
		cx.idPath = cx.idPath[:len(cx.idPath)-1]
	}()
	fn(cx)
}
