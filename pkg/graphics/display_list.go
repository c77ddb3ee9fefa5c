package graphics

// OpKind identifies a recorded canvas operation.
type OpKind int

const (
	OpSave OpKind = iota
	OpRestore
	OpTranslate
	OpClipRect
	OpDrawRect
	OpDrawText
)

func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpTranslate:
		return "translate"
	case OpClipRect:
		return "clipRect"
	case OpDrawRect:
		return "drawRect"
	case OpDrawText:
		return "drawText"
	default:
		return "unknown"
	}
}

// DisplayOp is one recorded drawing command.
type DisplayOp struct {
	Kind      OpKind
	Offset    Offset
	Rect      Rect
	Paint     Paint
	Text      string
	TextStyle TextStyle
}

// DisplayList is an immutable sequence of drawing commands.
type DisplayList struct {
	ops []DisplayOp
}

// Ops returns the recorded operations.
func (d *DisplayList) Ops() []DisplayOp {
	if d == nil {
		return nil
	}
	return d.ops
}

// Paint replays the recorded operations onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	if d == nil || canvas == nil {
		return
	}
	for _, op := range d.ops {
		switch op.Kind {
		case OpSave:
			canvas.Save()
		case OpRestore:
			canvas.Restore()
		case OpTranslate:
			canvas.Translate(op.Offset.X, op.Offset.Y)
		case OpClipRect:
			canvas.ClipRect(op.Rect)
		case OpDrawRect:
			canvas.DrawRect(op.Rect, op.Paint)
		case OpDrawText:
			canvas.DrawText(op.Text, op.Offset, op.TextStyle)
		}
	}
}

// PictureRecorder is a Canvas that records every call into a DisplayList.
type PictureRecorder struct {
	ops []DisplayOp
}

// EndRecording returns the recorded list and resets the recorder.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{ops: r.ops}
	r.ops = nil
	return list
}

func (r *PictureRecorder) Save() {
	r.ops = append(r.ops, DisplayOp{Kind: OpSave})
}

func (r *PictureRecorder) Restore() {
	r.ops = append(r.ops, DisplayOp{Kind: OpRestore})
}

func (r *PictureRecorder) Translate(dx, dy float64) {
	r.ops = append(r.ops, DisplayOp{Kind: OpTranslate, Offset: Offset{X: dx, Y: dy}})
}

func (r *PictureRecorder) ClipRect(rect Rect) {
	r.ops = append(r.ops, DisplayOp{Kind: OpClipRect, Rect: rect})
}

func (r *PictureRecorder) DrawRect(rect Rect, paint Paint) {
	r.ops = append(r.ops, DisplayOp{Kind: OpDrawRect, Rect: rect, Paint: paint})
}

func (r *PictureRecorder) DrawText(text string, position Offset, style TextStyle) {
	r.ops = append(r.ops, DisplayOp{Kind: OpDrawText, Text: text, Offset: position, TextStyle: style})
}
