package renderer

import (
	"math"

	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
	"github.com/lixenwraith/gridsketch/vmath"
)

// CrosshairRenderer draws a pulsing cross at every interior grid intersection
// Phase and speed vary per cell through the cell hash
type CrosshairRenderer struct {
	sketch *engine.Sketch
}

func NewCrosshairRenderer(sketch *engine.Sketch) *CrosshairRenderer {
	return &CrosshairRenderer{sketch: sketch}
}

// CrosshairOpacity returns the opacity of the crosshair at the bottom-right corner of (col, row)
func CrosshairOpacity(col, row int, frame uint64, minOpacity, maxOpacity, speed, variation float64) float64 {
	h := vmath.CellHash(col, row)
	phase := h * parameter.TwoPi
	cellSpeed := speed * (1 + (2*h-1)*variation)
	wave := 0.5 + 0.5*math.Sin(float64(frame)*parameter.CrosshairPhaseScale*cellSpeed+phase)
	return vmath.Clamp(vmath.Lerp(minOpacity, maxOpacity, wave), 0, 1)
}

func (r *CrosshairRenderer) Render(ctx render.Context, s render.Surface) {
	g := ctx.Grid
	cfg := r.sketch.Config()
	arm := g.CellSize() * parameter.CrosshairArmScale
	if arm <= 0 {
		return
	}

	s.Translate(ctx.GridOrigin())
	s.StrokeWeight(parameter.CrosshairWeight)
	// The last column and row have no interior intersection
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Columns-1; col++ {
			alpha := CrosshairOpacity(col, row, ctx.Frame,
				cfg.CrosshairOpacityMin, cfg.CrosshairOpacityMax,
				cfg.CrosshairAnimationSpeed, cfg.CrosshairSpeedVariation)
			if alpha <= 0 {
				continue
			}
			x, y := g.Anchor(g.Index(col, row))
			s.Stroke(palette.White, alpha)
			s.Line(x-arm, y, x+arm, y)
			s.Line(x, y-arm, x, y+arm)
		}
	}
}
