package renderer

import (
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/render"
	"github.com/lixenwraith/gridsketch/vmath"
)

// ParticleRenderer draws live particles, nearer ones larger and brighter
type ParticleRenderer struct {
	sketch *engine.Sketch
}

func NewParticleRenderer(sketch *engine.Sketch) *ParticleRenderer {
	return &ParticleRenderer{sketch: sketch}
}

func (r *ParticleRenderer) Render(ctx render.Context, s render.Surface) {
	sim := r.sketch.Particles()
	if sim.Len() == 0 {
		return
	}
	s.Translate(ctx.GridOrigin())
	s.NoStroke()
	for i := 0; i < sim.Len(); i++ {
		p := sim.At(i)
		size := vmath.MapRange(p.Z, 0, 1, parameter.ParticleSizeMin, parameter.ParticleSizeMax)
		alpha := vmath.MapRange(p.Z, 0, 1, parameter.ParticleAlphaMin, parameter.ParticleAlphaMax)
		s.Fill(p.Color, alpha)
		s.Circle(p.Pos.X, p.Pos.Y, size)
	}
}
