package surface

// OpKind names a drawing primitive.
type OpKind int

const (
	OpGradient OpKind = iota
	OpCircle
	OpLine
)

func (k OpKind) String() string {
	switch k {
	case OpGradient:
		return "gradient"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Fields not used by Kind are zero.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	Radius float64
	Width  float64
	Paint  Paint
	Stops  []Stop
}

// Recorder is a Canvas that keeps the primitives drawn on it instead of pixels.
type Recorder struct {
	Ops []Op

	width, height int
	resizes       int
}

// NewRecorder returns a Recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

// Resize clears the recorded ops, like clearing pixels.
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.Ops = nil
	r.resizes++
}

// Resizes reports how many times Resize was called.
func (r *Recorder) Resizes() int { return r.resizes }

// Reset drops the recorded ops and keeps the size.
func (r *Recorder) Reset() { r.Ops = nil }

func (r *Recorder) FillLinearGradient(x0, y0, x1, y1 float64, stops []Stop) {
	cp := make([]Stop, len(stops))
	copy(cp, stops)
	r.Ops = append(r.Ops, Op{Kind: OpGradient, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: cp})
}

func (r *Recorder) FillCircle(x, y, radius float64, p Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: x, Y0: y, Radius: radius, Paint: p})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, p Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Paint: p})
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
