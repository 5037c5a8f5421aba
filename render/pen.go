package render

// PenState is the drawing state shared by every Surface backend
type PenState struct {
	Fill      RGB
	FillAlpha float64
	HasFill   bool

	Stroke      RGB
	StrokeAlpha float64
	HasStroke   bool
	Weight      float64

	// Accumulated translation
	TX, TY float64
}

// DefaultPen is white fill, black 1-unit stroke, no translation
var DefaultPen = PenState{
	Fill:        RGB{R: 255, G: 255, B: 255},
	FillAlpha:   1,
	HasFill:     true,
	Stroke:      RGB{},
	StrokeAlpha: 1,
	HasStroke:   true,
	Weight:      1,
}

// Pen implements the state half of Surface
// Backends embed it and add Size, Background and the primitives
type Pen struct {
	state PenState
	stack []PenState
}

// NewPen returns a pen in DefaultPen state
func NewPen() Pen {
	return Pen{state: DefaultPen, stack: make([]PenState, 0, 8)}
}

// State returns the current pen state
func (p *Pen) State() PenState {
	return p.state
}

// Depth returns the number of unmatched Push calls
func (p *Pen) Depth() int {
	return len(p.stack)
}

// Reset drops the stack and returns to DefaultPen
func (p *Pen) Reset() {
	p.state = DefaultPen
	p.stack = p.stack[:0]
}

func (p *Pen) Fill(c RGB, alpha float64) {
	p.state.Fill = c
	p.state.FillAlpha = clampUnit(alpha)
	p.state.HasFill = true
}

func (p *Pen) NoFill() {
	p.state.HasFill = false
}

func (p *Pen) Stroke(c RGB, alpha float64) {
	p.state.Stroke = c
	p.state.StrokeAlpha = clampUnit(alpha)
	p.state.HasStroke = true
}

func (p *Pen) NoStroke() {
	p.state.HasStroke = false
}

func (p *Pen) StrokeWeight(w float64) {
	if w < 0 {
		w = 0
	}
	p.state.Weight = w
}

func (p *Pen) Push() {
	p.stack = append(p.stack, p.state)
}

// Pop on an empty stack is ignored
func (p *Pen) Pop() {
	n := len(p.stack)
	if n == 0 {
		return
	}
	p.state = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

func (p *Pen) Translate(dx, dy float64) {
	p.state.TX += dx
	p.state.TY += dy
}

// Apply maps a local point through the current translation
func (p *Pen) Apply(x, y float64) (float64, float64) {
	return x + p.state.TX, y + p.state.TY
}

// Fills reports whether shapes get filled with visible color
func (p *Pen) Fills() bool {
	return p.state.HasFill && p.state.FillAlpha > 0
}

// Strokes reports whether outlines are drawn with visible color
func (p *Pen) Strokes() bool {
	return p.state.HasStroke && p.state.StrokeAlpha > 0 && p.state.Weight > 0
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
