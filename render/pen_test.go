package render

import "testing"

func TestPenStack(t *testing.T) {
	p := NewPen()
	p.Fill(RGB{R: 10}, 0.5)
	p.Translate(5, 5)

	p.Push()
	p.NoFill()
	p.Translate(1, 2)
	p.StrokeWeight(3)
	if x, y := p.Apply(0, 0); x != 6 || y != 7 {
		t.Errorf("nested translation = (%v, %v), want (6, 7)", x, y)
	}
	if p.Fills() {
		t.Error("NoFill ignored")
	}
	p.Pop()

	st := p.State()
	if !st.HasFill || st.Fill.R != 10 || st.FillAlpha != 0.5 || st.Weight != 1 {
		t.Errorf("state after Pop = %+v", st)
	}
	if x, y := p.Apply(0, 0); x != 5 || y != 5 {
		t.Errorf("translation after Pop = (%v, %v)", x, y)
	}

	// Unbalanced Pop is ignored
	p.Pop()
	if p.State() != st {
		t.Error("Pop on empty stack changed state")
	}
}

func TestPenVisibility(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(p *Pen)
		fills   bool
		strokes bool
	}{
		{"Default", func(p *Pen) {}, true, true},
		{"Zero alpha fill", func(p *Pen) { p.Fill(RGB{}, 0) }, false, true},
		{"Alpha clamped", func(p *Pen) { p.Stroke(RGB{}, 7) }, true, true},
		{"Zero weight", func(p *Pen) { p.StrokeWeight(0) }, true, false},
		{"Negative weight", func(p *Pen) { p.StrokeWeight(-2) }, true, false},
		{"No stroke", func(p *Pen) { p.NoStroke() }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPen()
			tt.setup(&p)
			if p.Fills() != tt.fills || p.Strokes() != tt.strokes {
				t.Errorf("fills=%v strokes=%v, want %v %v", p.Fills(), p.Strokes(), tt.fills, tt.strokes)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	bg := RGB{R: 0, G: 100, B: 200}
	fg := RGB{R: 200, G: 100, B: 0}

	tests := []struct {
		alpha float64
		want  RGB
	}{
		{0, bg},
		{-1, bg},
		{1, fg},
		{2, fg},
		{0.5, RGB{R: 100, G: 100, B: 100}},
	}
	for _, tt := range tests {
		if got := Blend(bg, fg, tt.alpha); got != tt.want {
			t.Errorf("Blend(%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}
