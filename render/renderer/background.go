package renderer

import (
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/render"
)

// BackgroundRenderer clears the surface
type BackgroundRenderer struct {
	Color render.RGB
}

// NewBackgroundRenderer creates a renderer clearing to the dark backdrop
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{Color: palette.Dark}
}

func (r *BackgroundRenderer) Render(ctx render.Context, s render.Surface) {
	s.Background(r.Color)
}
