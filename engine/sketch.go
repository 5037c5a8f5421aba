// Package engine ties geometry, selection, animation fields and particles into one sketch
//
// A Sketch is driven by a single owner loop: input is applied between frames
// through Click, and Update advances one frame. Renderers read it afterwards.
package engine

import (
	"time"

	"github.com/lixenwraith/gridsketch/anim"
	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/grid"
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/particle"
	"github.com/lixenwraith/gridsketch/selection"
	"github.com/lixenwraith/gridsketch/vmath"
)

// Listener observes selection changes made by clicks
type Listener func(change selection.Change, cell, set int)

// Frame carries per-frame host input
type Frame struct {
	Index uint64
	Now   time.Time

	// Pointer in surface coordinates, ignored when PointerIn is false
	PointerX  float64
	PointerY  float64
	PointerIn bool
}

// Sketch is the complete simulation state
type Sketch struct {
	cfg     config.Config
	palette palette.Palette
	width   float64
	height  float64
	geom    grid.Geometry

	sel       *selection.Model
	reveal    *anim.Field
	occupancy *anim.Field
	particles *particle.Simulation

	frame   uint64
	now     time.Time
	hovered int

	listeners  []Listener
	attractors []particle.Attractor
	active     map[int]struct{}
}

// Option configures a Sketch
type Option func(*Sketch)

// WithSeed makes particle randomness reproducible
func WithSeed(seed uint64) Option {
	return func(s *Sketch) {
		s.particles = particle.New(0, 0, vmath.NewFastRand(seed))
	}
}

// WithPalette replaces the default node palette
func WithPalette(p palette.Palette) Option {
	return func(s *Sketch) {
		if len(p) > 0 {
			s.palette = p
		}
	}
}

// WithListener registers a selection listener
func WithListener(l Listener) Option {
	return func(s *Sketch) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// New creates a sketch with an empty selection and no surface yet
// Call Resize before the first Update
func New(cfg config.Config, opts ...Option) *Sketch {
	s := &Sketch{
		cfg:       cfg,
		palette:   palette.Default(),
		sel:       selection.New(0),
		reveal:    anim.NewField(parameter.RevealRate, parameter.RevealEpsilon),
		occupancy: anim.NewField(parameter.OccupancyRate, parameter.RevealEpsilon),
		hovered:   -1,
		active:    make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.particles == nil {
		s.particles = particle.New(0, 0, nil)
	}
	s.rebuild()
	return s
}

// AddListener registers a selection listener after construction
func (s *Sketch) AddListener(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// Resize adopts a new surface size
func (s *Sketch) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.rebuild()
}

// SetConfig adopts a new configuration snapshot
func (s *Sketch) SetConfig(cfg config.Config) {
	if cfg == s.cfg {
		return
	}
	s.cfg = cfg
	s.rebuild()
}

// rebuild derives geometry and drops state for cells that no longer exist
// The cell range follows the configured grid, not the surface, so a
// zero-size surface keeps the selection
func (s *Sketch) rebuild() {
	s.geom = grid.FromConfig(s.cfg, s.width, s.height)
	limit := max(s.cfg.Columns, 0) * max(s.cfg.Rows, 0)
	if limit != s.sel.Limit() {
		s.sel.SetLimit(limit)
	}
	keep := func(cell int) bool { return cell < limit }
	s.reveal.Retain(keep)
	s.occupancy.Retain(keep)
	if !s.geom.Contains(s.hovered) {
		s.hovered = -1
	}
	s.particles.SetBounds(s.geom.Width(), s.geom.Height())
}

// Click applies one pointer press at surface coordinates
// A press outside the grid changes nothing; modifier starts a new set
func (s *Sketch) Click(x, y float64, modifier bool) selection.Change {
	cell, ok := s.geom.CellAt(x, y)
	if !ok {
		return selection.None
	}

	var change selection.Change
	if modifier {
		change = s.sel.NewSet(cell)
	} else {
		change = s.sel.Toggle(cell)
	}
	if change == selection.None {
		return change
	}

	set := -1
	if change != selection.Removed {
		s.reveal.Snap(cell, 1)
		set, _ = s.sel.SetOf(cell)
	}
	for _, l := range s.listeners {
		l(change, cell, set)
	}
	return change
}

// Restore replaces the selection with snap and shows its cells fully revealed
func (s *Sketch) Restore(snap selection.Snapshot) error {
	if err := s.sel.Restore(snap); err != nil {
		return err
	}
	s.reveal.Reset()
	s.sel.Each(func(_, _, cell int) {
		s.reveal.Snap(cell, 1)
	})
	return nil
}

// Update advances one frame
func (s *Sketch) Update(f Frame) {
	s.frame = f.Index
	s.now = f.Now

	s.hovered = -1
	if f.PointerIn {
		if cell, ok := s.geom.CellAt(f.PointerX, f.PointerY); ok {
			s.hovered = cell
		}
	}

	clear(s.active)
	s.sel.Each(func(_, _, cell int) {
		s.active[cell] = struct{}{}
	})
	if s.hovered >= 0 {
		s.active[s.hovered] = struct{}{}
	}
	s.reveal.Advance(s.active)

	s.particles.Spawn(f.Now)
	s.particles.Step(f.Now, s.Attractors())

	s.occupancy.Advance(s.particles.Occupied(s.geom))
}

// Attractors lists the anchors of all selected cells in set order
// The slice is reused and valid until the next call
func (s *Sketch) Attractors() []particle.Attractor {
	s.attractors = s.attractors[:0]
	s.sel.Each(func(set, pos, cell int) {
		x, y := s.geom.Anchor(cell)
		s.attractors = append(s.attractors, particle.Attractor{
			Cell:  cell,
			Set:   set,
			X:     x,
			Y:     y,
			Color: s.palette.At(pos),
		})
	})
	return s.attractors
}

// ColorOf is white for unselected cells, else the palette color by position in its set
func (s *Sketch) ColorOf(cell int) palette.RGB {
	return s.sel.ColorOf(cell, s.palette)
}

// Reset clears the selection, animation state and particles
func (s *Sketch) Reset() {
	s.sel.Clear()
	s.reveal.Reset()
	s.occupancy.Reset()
	s.particles.Reset()
}

// --- Read accessors for renderers and hosts ---

func (s *Sketch) Config() config.Config { return s.cfg }
func (s *Sketch) Geometry() grid.Geometry { return s.geom }
func (s *Sketch) Palette() palette.Palette { return s.palette }
func (s *Sketch) Selection() *selection.Model { return s.sel }
func (s *Sketch) Reveal() *anim.Field { return s.reveal }
func (s *Sketch) Occupancy() *anim.Field { return s.occupancy }
func (s *Sketch) Particles() *particle.Simulation { return s.particles }
func (s *Sketch) FrameIndex() uint64 { return s.frame }
func (s *Sketch) Now() time.Time { return s.now }
func (s *Sketch) Size() (width, height float64) { return s.width, s.height }

// Hovered returns the cell under the pointer, if any
func (s *Sketch) Hovered() (int, bool) {
	return s.hovered, s.hovered >= 0
}
