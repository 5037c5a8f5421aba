package render

import (
	"time"

	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/grid"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	// Frame counter drives every periodic animation
	Frame uint64
	Time  time.Time

	// Surface dimensions
	Width  float64
	Height float64

	// Grid placement on the surface
	Grid grid.Geometry
}

// NewContext snapshots the sketch for one frame
func NewContext(s *engine.Sketch) Context {
	w, h := s.Size()
	return Context{
		Frame:  s.FrameIndex(),
		Time:   s.Now(),
		Width:  w,
		Height: h,
		Grid:   s.Geometry(),
	}
}

// GridOrigin is the grid's top-left corner on the surface
func (c Context) GridOrigin() (x, y float64) {
	return c.Grid.OffsetX, c.Grid.OffsetY
}
