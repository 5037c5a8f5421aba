package renderer

import (
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
)

// GridLinesRenderer draws the interior cell borders
type GridLinesRenderer struct{}

func NewGridLinesRenderer() *GridLinesRenderer {
	return &GridLinesRenderer{}
}

func (r *GridLinesRenderer) Render(ctx render.Context, s render.Surface) {
	g := ctx.Grid
	if g.Count() == 0 {
		return
	}
	w, h := g.Width(), g.Height()

	s.Translate(ctx.GridOrigin())
	s.Stroke(palette.White, parameter.GridLineAlpha)
	s.StrokeWeight(parameter.GridLineWeight)
	for c := 1; c < g.Columns; c++ {
		x := float64(c) * g.CellW
		s.Line(x, 0, x, h)
	}
	for row := 1; row < g.Rows; row++ {
		y := float64(row) * g.CellH
		s.Line(0, y, w, y)
	}
}
