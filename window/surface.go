package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/gridsketch/render"
)

// Surface draws onto an ebiten image with antialiased vector primitives
type Surface struct {
	render.Pen
	dst  *ebiten.Image
	w, h float64
}

func NewSurface() *Surface {
	return &Surface{Pen: render.NewPen()}
}

// SetTarget points the surface at the frame's screen image and resets the pen
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	b := dst.Bounds()
	s.w, s.h = float64(b.Dx()), float64(b.Dy())
	s.Reset()
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) Background(c render.RGB) {
	s.dst.Fill(toColor(c, 1))
}

func (s *Surface) Rect(x, y, w, h float64) {
	x, y = s.Apply(x, y)
	st := s.State()
	if s.Fills() {
		vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), toColor(st.Fill, st.FillAlpha), true)
	}
	if s.Strokes() {
		vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(st.Weight), toColor(st.Stroke, st.StrokeAlpha), true)
	}
}

func (s *Surface) Circle(cx, cy, d float64) {
	cx, cy = s.Apply(cx, cy)
	st := s.State()
	r := float32(d / 2)
	if s.Fills() {
		vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), r, toColor(st.Fill, st.FillAlpha), true)
	}
	if s.Strokes() {
		vector.StrokeCircle(s.dst, float32(cx), float32(cy), r, float32(st.Weight), toColor(st.Stroke, st.StrokeAlpha), true)
	}
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	if !s.Strokes() {
		return
	}
	x1, y1 = s.Apply(x1, y1)
	x2, y2 = s.Apply(x2, y2)
	st := s.State()
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(st.Weight), toColor(st.Stroke, st.StrokeAlpha), true)
}

func toColor(c render.RGB, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
