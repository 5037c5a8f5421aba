// Package vector streams frames as SVG elements through svgo
package vector

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/lixenwraith/gridsketch/render"
)

// precision is the number of SVG user units per surface unit
// svgo takes integer coordinates, the viewBox scales them back down
const precision = 10

// Surface is a render.Surface writing SVG
type Surface struct {
	render.Pen
	canvas *svg.SVG
	w, h   float64
	closed bool
}

// New starts an SVG document of width x height on w
func New(w io.Writer, width, height float64) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	iw, ih := int(math.Ceil(width)), int(math.Ceil(height))
	canvas := svg.New(w)
	canvas.Startview(iw, ih, 0, 0, iw*precision, ih*precision)
	return &Surface{
		Pen:    render.NewPen(),
		canvas: canvas,
		w:      float64(iw),
		h:      float64(ih),
	}
}

// Close ends the document, later calls are no-ops
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.canvas.End()
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) Background(c render.RGB) {
	s.canvas.Rect(0, 0, scale(s.w), scale(s.h), "fill:"+c.Hex())
}

func (s *Surface) Rect(x, y, w, h float64) {
	style, ok := s.style(true)
	if !ok {
		return
	}
	x, y = s.Apply(x, y)
	s.canvas.Rect(scale(x), scale(y), scale(w), scale(h), style)
}

func (s *Surface) Circle(cx, cy, d float64) {
	style, ok := s.style(true)
	if !ok {
		return
	}
	cx, cy = s.Apply(cx, cy)
	s.canvas.Circle(scale(cx), scale(cy), scale(d/2), style)
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	style, ok := s.style(false)
	if !ok {
		return
	}
	x1, y1 = s.Apply(x1, y1)
	x2, y2 = s.Apply(x2, y2)
	s.canvas.Line(scale(x1), scale(y1), scale(x2), scale(y2), style)
}

// style builds the CSS for the current pen, false when nothing would be visible
func (s *Surface) style(closedShape bool) (string, bool) {
	st := s.State()
	fills := closedShape && s.Fills()
	strokes := s.Strokes()
	if !fills && !strokes {
		return "", false
	}

	var css string
	if fills {
		css = fmt.Sprintf("fill:%s;fill-opacity:%.3f", st.Fill.Hex(), st.FillAlpha)
	} else {
		css = "fill:none"
	}
	if strokes {
		css += fmt.Sprintf(";stroke:%s;stroke-opacity:%.3f;stroke-width:%d;stroke-linecap:round",
			st.Stroke.Hex(), st.StrokeAlpha, max(1, scale(st.Weight)))
	}
	return css, true
}

func scale(v float64) int {
	return int(math.Round(v * precision))
}
