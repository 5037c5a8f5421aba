package renderer

import (
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
	"github.com/lixenwraith/gridsketch/vmath"
)

// segment is one link between consecutive cells of a set
type segment struct {
	x1, y1, x2, y2 float64
	c1, c2         palette.RGB
}

// eachSegment visits links in set order
func eachSegment(sketch *engine.Sketch, fn func(seg segment)) {
	sel := sketch.Selection()
	g := sketch.Geometry()
	p := sketch.Palette()
	for si := 0; si < sel.Len(); si++ {
		set := sel.Set(si)
		for i := 1; i < len(set); i++ {
			a, b := set[i-1], set[i]
			if !g.Contains(a) || !g.Contains(b) {
				continue
			}
			x1, y1 := g.Anchor(a)
			x2, y2 := g.Anchor(b)
			fn(segment{x1, y1, x2, y2, p.At(i - 1), p.At(i)})
		}
	}
}

// ConnectorRenderer draws gradient lines joining consecutive cells of each set
type ConnectorRenderer struct {
	sketch *engine.Sketch
}

func NewConnectorRenderer(sketch *engine.Sketch) *ConnectorRenderer {
	return &ConnectorRenderer{sketch: sketch}
}

func (r *ConnectorRenderer) Render(ctx render.Context, s render.Surface) {
	s.Translate(ctx.GridOrigin())
	eachSegment(r.sketch, func(seg segment) {
		// Thick gradient body
		s.StrokeWeight(parameter.ConnectorWeight)
		const n = parameter.ConnectorGradientSteps
		for k := 0; k < n; k++ {
			t0 := float64(k) / n
			t1 := float64(k+1) / n
			s.Stroke(palette.Lerp(seg.c1, seg.c2, t0), parameter.ConnectorAlpha)
			s.Line(
				vmath.Lerp(seg.x1, seg.x2, t0), vmath.Lerp(seg.y1, seg.y2, t0),
				vmath.Lerp(seg.x1, seg.x2, t1), vmath.Lerp(seg.y1, seg.y2, t1),
			)
		}

		// Thin dark core
		s.StrokeWeight(parameter.ConnectorCoreWeight)
		s.Stroke(palette.Dark, 1)
		s.Line(seg.x1, seg.y1, seg.x2, seg.y2)
	})
}

// ConnectorDotRenderer moves dots along every connector
type ConnectorDotRenderer struct {
	sketch *engine.Sketch
}

func NewConnectorDotRenderer(sketch *engine.Sketch) *ConnectorDotRenderer {
	return &ConnectorDotRenderer{sketch: sketch}
}

// DotPosition returns the progress in [0, 1) of dot k along its segment at frame
func DotPosition(frame uint64, k int) float64 {
	return vmath.Fract(float64(frame)*parameter.ConnectorDotSpeed + float64(k)/parameter.ConnectorDotsPerSegment)
}

func (r *ConnectorDotRenderer) Render(ctx render.Context, s render.Surface) {
	s.Translate(ctx.GridOrigin())
	s.NoStroke()
	eachSegment(r.sketch, func(seg segment) {
		for k := 0; k < parameter.ConnectorDotsPerSegment; k++ {
			t := DotPosition(ctx.Frame, k)
			s.Fill(palette.Lerp(seg.c1, seg.c2, t), 1)
			s.Circle(vmath.Lerp(seg.x1, seg.x2, t), vmath.Lerp(seg.y1, seg.y2, t), parameter.ConnectorDotSize)
		}
	})
}
