// Package terminal hosts the sketch in a terminal through tcell
//
// Each character cell shows two vertically stacked pixels with the upper half
// block glyph: foreground is the top pixel, background the bottom one.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
)

const halfBlock = '▀'

// Surface rasterizes primitives into a half-block pixel buffer with alpha blending
type Surface struct {
	render.Pen
	cols, rows int
	// pix holds cols x rows*2 pixels, row-major
	pix []render.RGB
}

// NewSurface creates a surface covering cols x rows character cells
func NewSurface(cols, rows int) *Surface {
	s := &Surface{Pen: render.NewPen()}
	s.Resize(cols, rows)
	return s
}

// Resize adopts a new character grid, contents are cleared
func (s *Surface) Resize(cols, rows int) {
	s.cols = max(cols, 0)
	s.rows = max(rows, 0)
	n := s.cols * s.rows * 2
	if cap(s.pix) >= n {
		s.pix = s.pix[:n]
		clear(s.pix)
	} else {
		s.pix = make([]render.RGB, n)
	}
}

// Cells returns the character grid size
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * parameter.TerminalUnitsPerColumn,
		float64(s.rows*2) * parameter.TerminalUnitsPerSubRow
}

// CellCenter maps a character cell to surface coordinates
func (s *Surface) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * parameter.TerminalUnitsPerColumn,
		float64(row*2+1) * parameter.TerminalUnitsPerSubRow
}

// Pixel returns the color at pixel (x, y), black outside
func (s *Surface) Pixel(x, y int) render.RGB {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows*2 {
		return render.RGB{}
	}
	return s.pix[y*s.cols+x]
}

func (s *Surface) blend(x, y int, c render.RGB, alpha float64) {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows*2 {
		return
	}
	i := y*s.cols + x
	s.pix[i] = render.Blend(s.pix[i], c, alpha)
}

// toPixel converts surface units to fractional pixel coordinates
func toPixel(x, y float64) (float64, float64) {
	return x / parameter.TerminalUnitsPerColumn, y / parameter.TerminalUnitsPerSubRow
}

func (s *Surface) Background(c render.RGB) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

func (s *Surface) Rect(x, y, w, h float64) {
	x, y = s.Apply(x, y)
	px0, py0 := toPixel(x, y)
	px1, py1 := toPixel(x+w, y+h)
	x0, y0 := int(math.Round(px0)), int(math.Round(py0))
	x1, y1 := int(math.Round(px1)), int(math.Round(py1))
	st := s.State()

	if s.Fills() {
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				s.blend(px, py, st.Fill, st.FillAlpha)
			}
		}
	}
	if s.Strokes() && x1 > x0 && y1 > y0 {
		for px := x0; px < x1; px++ {
			s.blend(px, y0, st.Stroke, st.StrokeAlpha)
			if y1-1 != y0 {
				s.blend(px, y1-1, st.Stroke, st.StrokeAlpha)
			}
		}
		for py := y0 + 1; py < y1-1; py++ {
			s.blend(x0, py, st.Stroke, st.StrokeAlpha)
			if x1-1 != x0 {
				s.blend(x1-1, py, st.Stroke, st.StrokeAlpha)
			}
		}
	}
}

func (s *Surface) Circle(cx, cy, d float64) {
	cx, cy = s.Apply(cx, cy)
	pcx, pcy := toPixel(cx, cy)
	r := d / 2 / parameter.TerminalUnitsPerColumn
	st := s.State()
	fills, strokes := s.Fills(), s.Strokes()

	// Sub-pixel dots still light the pixel they fall in
	if r < 0.5 {
		if fills {
			s.blend(int(math.Floor(pcx)), int(math.Floor(pcy)), st.Fill, st.FillAlpha)
		} else if strokes {
			s.blend(int(math.Floor(pcx)), int(math.Floor(pcy)), st.Stroke, st.StrokeAlpha)
		}
		return
	}

	ring := math.Max(0.5, st.Weight/2/parameter.TerminalUnitsPerColumn)
	x0, x1 := int(math.Floor(pcx-r-ring)), int(math.Ceil(pcx+r+ring))
	y0, y1 := int(math.Floor(pcy-r-ring)), int(math.Ceil(pcy+r+ring))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dist := math.Hypot(float64(px)+0.5-pcx, float64(py)+0.5-pcy)
			switch {
			case strokes && math.Abs(dist-r) <= ring:
				s.blend(px, py, st.Stroke, st.StrokeAlpha)
			case fills && dist <= r:
				s.blend(px, py, st.Fill, st.FillAlpha)
			}
		}
	}
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	if !s.Strokes() {
		return
	}
	x1, y1 = s.Apply(x1, y1)
	x2, y2 = s.Apply(x2, y2)
	ax, ay := toPixel(x1, y1)
	bx, by := toPixel(x2, y2)
	st := s.State()

	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		px := int(math.Floor(ax + (bx-ax)*t))
		py := int(math.Floor(ay + (by-ay)*t))
		if px == lastX && py == lastY {
			continue
		}
		lastX, lastY = px, py
		s.blend(px, py, st.Stroke, st.StrokeAlpha)
	}
}

// Flush copies the pixel buffer onto screen as half blocks
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pix[(row*2)*s.cols+col]
			bottom := s.pix[(row*2+1)*s.cols+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func tcellColor(c palette.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
