// Package raster draws frames into an in-memory image through gg
package raster

import (
	"fmt"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/render"
)

// Surface is a render.Surface backed by a gg context
type Surface struct {
	render.Pen
	dc   *gg.Context
	w, h float64
}

// New creates a width x height raster surface, dimensions are rounded up to whole pixels
func New(width, height float64) (*Surface, error) {
	if !(width >= 1) || !(height >= 1) {
		return nil, fmt.Errorf("raster surface %vx%v: dimensions must be at least 1", width, height)
	}
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	dc := gg.NewContext(w, h)
	dc.SetLineCap(gg.LineCapRound)
	return &Surface{
		Pen: render.NewPen(),
		dc:  dc,
		w:   float64(w),
		h:   float64(h),
	}, nil
}

func (s *Surface) Size() (float64, float64) {
	return s.w, s.h
}

func (s *Surface) Background(c render.RGB) {
	s.dc.SetColor(c.RGBA(1))
	s.dc.Clear()
}

func (s *Surface) Rect(x, y, w, h float64) {
	x, y = s.Apply(x, y)
	s.dc.DrawRectangle(x, y, w, h)
	s.paint()
}

func (s *Surface) Circle(cx, cy, d float64) {
	cx, cy = s.Apply(cx, cy)
	s.dc.DrawCircle(cx, cy, d/2)
	s.paint()
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	if !s.Strokes() {
		return
	}
	x1, y1 = s.Apply(x1, y1)
	x2, y2 = s.Apply(x2, y2)
	st := s.State()
	s.dc.SetColor(st.Stroke.RGBA(st.StrokeAlpha))
	s.dc.SetLineWidth(st.Weight)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// paint fills then strokes the current path according to the pen
func (s *Surface) paint() {
	st := s.State()
	fills, strokes := s.Fills(), s.Strokes()
	switch {
	case fills && strokes:
		s.dc.SetColor(st.Fill.RGBA(st.FillAlpha))
		s.dc.FillPreserve()
		s.dc.SetColor(st.Stroke.RGBA(st.StrokeAlpha))
		s.dc.SetLineWidth(st.Weight)
		s.dc.Stroke()
	case fills:
		s.dc.SetColor(st.Fill.RGBA(st.FillAlpha))
		s.dc.Fill()
	case strokes:
		s.dc.SetColor(st.Stroke.RGBA(st.StrokeAlpha))
		s.dc.SetLineWidth(st.Weight)
		s.dc.Stroke()
	default:
		s.dc.ClearPath()
	}
}

// Caption writes a single line of text at the bottom-left corner
func (s *Surface) Caption(text string) {
	if text == "" {
		return
	}
	s.dc.SetFontFace(basicfont.Face7x13)
	s.dc.SetColor(palette.White.RGBA(0.8))
	s.dc.DrawStringAnchored(text, 8, s.h-8, 0, 0)
}

// EncodePNG writes the frame as PNG
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the frame to path
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
