// Package renderer holds the layers drawing a sketch onto a render.Surface
package renderer

import (
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/render"
)

// NewPipeline registers every layer of the sketch in drawing order
func NewPipeline(sketch *engine.Sketch) *render.Orchestrator {
	o := render.NewOrchestrator()
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewOccupancyRenderer(sketch), render.PriorityOccupancy)
	o.Register(NewGridLinesRenderer(), render.PriorityGridLines)
	o.Register(NewCrosshairRenderer(sketch), render.PriorityCrosshair)
	o.Register(NewBorderRenderer(), render.PriorityBorder)
	o.Register(NewConnectorRenderer(sketch), render.PriorityConnector)
	o.Register(NewConnectorDotRenderer(sketch), render.PriorityConnector)
	o.Register(NewParticleRenderer(sketch), render.PriorityParticle)
	o.Register(NewNodeRenderer(sketch), render.PriorityNode)
	o.Register(NewHaloRenderer(sketch), render.PriorityHalo)
	return o
}

// Frame renders one frame of sketch onto s
func Frame(o *render.Orchestrator, sketch *engine.Sketch, s render.Surface) {
	o.RenderFrame(render.NewContext(sketch), s)
}
