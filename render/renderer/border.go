package renderer

import (
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
)

// BorderRenderer outlines the whole grid
type BorderRenderer struct{}

func NewBorderRenderer() *BorderRenderer {
	return &BorderRenderer{}
}

func (r *BorderRenderer) Render(ctx render.Context, s render.Surface) {
	g := ctx.Grid
	if g.Count() == 0 {
		return
	}
	s.Translate(ctx.GridOrigin())
	s.NoFill()
	s.Stroke(palette.White, parameter.BorderAlpha)
	s.StrokeWeight(parameter.BorderWeight)
	s.Rect(0, 0, g.Width(), g.Height())
}
