package render

// OpKind names a recorded primitive
type OpKind int

const (
	OpBackground OpKind = iota
	OpRect
	OpCircle
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpBackground:
		return "background"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded primitive with translated coordinates and the pen at draw time
type Op struct {
	Kind  OpKind
	Args  []float64
	Pen   PenState
	Color RGB // background color
	Tag   string
}

// Recorder is a Surface that records primitives instead of drawing them
// Tag labels subsequent ops, letting callers attribute ops to layers
type Recorder struct {
	Pen
	W, H float64
	Ops  []Op
	tag  string
}

// NewRecorder creates a recorder of the given size
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Pen: NewPen(), W: w, H: h}
}

// SetTag labels subsequent ops
func (r *Recorder) SetTag(tag string) {
	r.tag = tag
}

func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

func (r *Recorder) Background(c RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpBackground, Args: []float64{0, 0, r.W, r.H}, Pen: r.State(), Color: c, Tag: r.tag})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	x, y = r.Apply(x, y)
	r.record(OpRect, x, y, w, h)
}

func (r *Recorder) Circle(cx, cy, d float64) {
	cx, cy = r.Apply(cx, cy)
	r.record(OpCircle, cx, cy, d)
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	x1, y1 = r.Apply(x1, y1)
	x2, y2 = r.Apply(x2, y2)
	r.record(OpLine, x1, y1, x2, y2)
}

func (r *Recorder) record(kind OpKind, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args, Pen: r.State(), Tag: r.tag})
}

// Count returns the number of recorded ops of kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded ops and pen state
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Pen.Reset()
	r.tag = ""
}
