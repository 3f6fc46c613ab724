package canvas

import "image/color"

// OpKind names a recorded draw call.
type OpKind string

const (
	OpClear    OpKind = "clear"
	OpRect     OpKind = "rect"
	OpCircle   OpKind = "circle"
	OpPolygon  OpKind = "polygon"
	OpGradient OpKind = "gradient"
	OpText     OpKind = "text"
	OpPresent  OpKind = "present"
)

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	X, Y   float64
	W, H   float64
	R      float64
	Points []Point
	Text   string
	Size   float64
	Align  Align
	Color  color.NRGBA
	Color2 color.NRGBA // gradient bottom
}

// Recorder is a surface that remembers every call instead of drawing.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder creates a recorder of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Kinds returns the op kinds in call order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Filter returns the ops of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: rad, Color: c})
}

func (r *Recorder) FillPolygon(pts []Point, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: append([]Point(nil), pts...), Color: c})
}

func (r *Recorder) FillVerticalGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, X: x, Y: y, W: w, H: h, Color: top, Color2: bottom})
}

func (r *Recorder) FillText(text string, x, y, size float64, align Align, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Size: size, Align: align, Color: c})
}

func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
}
