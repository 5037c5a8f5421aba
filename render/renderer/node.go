package renderer

import (
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
)

// NodeRenderer draws the reveal circle at the anchor of hovered and selected cells
// Hidden when the configuration turns circles off
type NodeRenderer struct {
	sketch *engine.Sketch
}

func NewNodeRenderer(sketch *engine.Sketch) *NodeRenderer {
	return &NodeRenderer{sketch: sketch}
}

func (r *NodeRenderer) IsVisible() bool {
	return r.sketch.Config().ShowCircle
}

func (r *NodeRenderer) Render(ctx render.Context, s render.Surface) {
	g := ctx.Grid
	sel := r.sketch.Selection()
	hover := r.sketch.Config().CircleColor.RGB()
	full := g.CellSize() * parameter.NodeCircleScale

	s.Translate(ctx.GridOrigin())
	s.StrokeWeight(parameter.NodeCircleWeight)
	r.sketch.Reveal().Range(func(cell int, v float64) {
		if !g.Contains(cell) {
			return
		}
		x, y := g.Anchor(cell)

		if !sel.IsSelected(cell) {
			s.NoFill()
			s.Stroke(hover, v)
			s.Circle(x, y, full*v)
			return
		}

		c := r.sketch.ColorOf(cell)
		s.NoFill()
		s.Stroke(c, 1)
		s.Circle(x, y, full*v)
		s.NoStroke()
		s.Fill(c, 1)
		s.Circle(x, y, g.CellSize()*parameter.NodeCoreScale*v)
	})
}
