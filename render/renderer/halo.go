package renderer

import (
	"math"

	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
	"github.com/lixenwraith/gridsketch/vmath"
)

// HaloRenderer orbits glow dots around active nodes
// Count, radius and speed come from per-cell hashes so each node moves differently but reproducibly
type HaloRenderer struct {
	sketch *engine.Sketch
}

func NewHaloRenderer(sketch *engine.Sketch) *HaloRenderer {
	return &HaloRenderer{sketch: sketch}
}

// Halo describes the orbiting dots of one cell
type Halo struct {
	Count  int
	Radius float64 // fraction of cell size
	Speed  float64 // radians per frame
}

// HaloFor derives the halo of (col, row)
func HaloFor(col, row int) Halo {
	return Halo{
		Count:  parameter.HaloCountMin + int(math.Floor(vmath.CellHashCount(col, row)*parameter.HaloCountRange)),
		Radius: vmath.Lerp(parameter.HaloRadiusMin, parameter.HaloRadiusMax, vmath.CellHashSize(col, row)),
		Speed:  vmath.Lerp(parameter.HaloSpeedMin, parameter.HaloSpeedMax, vmath.CellHashSpeed(col, row)),
	}
}

func (r *HaloRenderer) Render(ctx render.Context, s render.Surface) {
	g := ctx.Grid
	size := g.CellSize()
	hover := r.sketch.Config().CircleColor.RGB()
	sel := r.sketch.Selection()

	s.Translate(ctx.GridOrigin())
	s.NoStroke()
	r.sketch.Reveal().Range(func(cell int, v float64) {
		if !g.Contains(cell) {
			return
		}
		col, row := g.ColRow(cell)
		h := HaloFor(col, row)
		x, y := g.Anchor(cell)
		radius := h.Radius * size * v

		c := hover
		if sel.IsSelected(cell) {
			c = r.sketch.ColorOf(cell)
		}
		s.Fill(c, parameter.HaloAlpha*v)

		base := float64(ctx.Frame) * h.Speed
		for i := 0; i < h.Count; i++ {
			a := base + float64(i)*parameter.TwoPi/float64(h.Count)
			s.Circle(x+radius*math.Cos(a), y+radius*math.Sin(a), parameter.HaloDotSize)
		}
	})
}
