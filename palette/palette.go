// Package palette holds the color type shared by the engine and every drawing backend
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a plain 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	// Dark is the background and connector center line color
	Dark = RGB{18, 18, 24}
)

// RGBA converts to an image/color value with the given opacity in [0, 1]
func (c RGB) RGBA(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// Hex returns the #rrggbb form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lerp blends a toward b per channel, t is clamped to [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t))
}

// ParseHex parses #rrggbb or #rgb
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Palette is an ordered color cycle indexed by position within a selection set
type Palette []RGB

// DefaultHex is the selection palette, cycled in order
var DefaultHex = []string{
	"#ff5f6d",
	"#ffc371",
	"#47e5bc",
	"#4fc3f7",
	"#b388ff",
	"#f06292",
}

// Default returns the built-in palette
func Default() Palette {
	p, err := FromHex(DefaultHex...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromHex builds a palette from hex strings, empty input is an error
func FromHex(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// At returns the color at i modulo the palette size, white for an empty palette
func (p Palette) At(i int) RGB {
	if len(p) == 0 {
		return White
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
