package renderer

import (
	"math"

	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
)

// OccupancyRenderer fills cells currently crossed by particles with a shimmering glow
type OccupancyRenderer struct {
	sketch *engine.Sketch
}

func NewOccupancyRenderer(sketch *engine.Sketch) *OccupancyRenderer {
	return &OccupancyRenderer{sketch: sketch}
}

func (r *OccupancyRenderer) Render(ctx render.Context, s render.Surface) {
	field := r.sketch.Occupancy()
	if field.Len() == 0 {
		return
	}
	g := ctx.Grid
	glow := r.sketch.Config().CircleColor.RGB()

	s.Translate(ctx.GridOrigin())
	s.NoStroke()
	field.Range(func(cell int, v float64) {
		if !g.Contains(cell) {
			return
		}
		pulse := 0.5 + 0.5*math.Sin(float64(ctx.Frame)*parameter.OccupancyPulseSpeed+float64(cell))
		s.Fill(glow, v*pulse*parameter.OccupancyAlpha)
		x, y := g.Origin(cell)
		s.Rect(x, y, g.CellW, g.CellH)
	})
}
