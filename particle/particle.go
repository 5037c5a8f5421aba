// Package particle simulates the particles raining over the grid and orbiting selected cells
//
// All positions are grid-local. Lifetime is wall-clock, every other quantity
// advances per frame.
package particle

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gridsketch/grid"
	"github.com/lixenwraith/gridsketch/palette"
	"github.com/lixenwraith/gridsketch/parameter"
	"github.com/lixenwraith/gridsketch/vmath"
)

// State is derived from attachment, never stored
type State int

const (
	Falling State = iota
	Orbiting
)

func (s State) String() string {
	if s == Orbiting {
		return "orbiting"
	}
	return "falling"
}

// Particle is one simulated point
type Particle struct {
	Pos r2.Vec
	// Z is depth in [0, 1), nearer particles fall faster and draw larger
	Z    float64
	Born time.Time
	ID   uint32

	Angle  float64
	Speed  float64 // radians per frame, signed
	Radius float64 // valid while attached

	// Attached is the cell being orbited, -1 while falling
	Attached int
	Color    palette.RGB

	// decisions memoizes the attraction outcome per cell for this particle's lifetime
	decisions map[int]bool
}

// State reports falling or orbiting
func (p *Particle) State() State {
	if p.Attached >= 0 {
		return Orbiting
	}
	return Falling
}

// Attracted returns the memoized decision for cell, computing it on first use
func (p *Particle) Attracted(cell int) bool {
	if d, ok := p.decisions[cell]; ok {
		return d
	}
	if p.decisions == nil {
		p.decisions = make(map[int]bool, 2)
	}
	d := vmath.PairHash(p.ID, cell) < parameter.AttractionChance
	p.decisions[cell] = d
	return d
}

// Attractor is a selected cell's anchor
type Attractor struct {
	Cell  int
	Set   int
	X, Y  float64
	Color palette.RGB
}

// Stats counts lifecycle transitions since the last Reset
type Stats struct {
	Spawned  int
	Captured int
	Expired  int
	Dropped  int // fell past the bottom margin
}

// Simulation owns the particle arena
// Not safe for concurrent use
type Simulation struct {
	particles []Particle
	width     float64
	height    float64
	rng       *vmath.FastRand

	occupied map[int]struct{}
	stats    Stats
}

// New creates an empty simulation over a width x height grid
func New(width, height float64, rng *vmath.FastRand) *Simulation {
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return &Simulation{
		particles: make([]Particle, 0, parameter.ParticleInitialCapacity),
		width:     width,
		height:    height,
		rng:       rng,
		occupied:  make(map[int]struct{}),
	}
}

// SetBounds updates the grid extent used for spawning and removal
func (s *Simulation) SetBounds(width, height float64) {
	s.width = width
	s.height = height
}

// Len returns the number of live particles
func (s *Simulation) Len() int {
	return len(s.particles)
}

// At returns particle i, valid until the next Step or Spawn
func (s *Simulation) At(i int) *Particle {
	return &s.particles[i]
}

// State returns the state of particle i
func (s *Simulation) State(i int) State {
	return s.particles[i].State()
}

// Stats returns lifecycle counters
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Reset drops every particle and zeroes counters
func (s *Simulation) Reset() {
	s.particles = s.particles[:0]
	clear(s.occupied)
	s.stats = Stats{}
}

// Spawn rolls the per-frame spawn chance and adds at most one particle on the top edge
func (s *Simulation) Spawn(now time.Time) bool {
	if s.width <= 0 || !s.rng.Chance(parameter.ParticleSpawnChance) {
		return false
	}
	s.Add(now, s.rng.Range(0, s.width))
	return true
}

// Add places a fresh falling particle at (x, 0)
func (s *Simulation) Add(now time.Time, x float64) {
	speed := s.rng.Range(parameter.OrbitSpeedMin, parameter.OrbitSpeedMax)
	if s.rng.Chance(0.5) {
		speed = -speed
	}
	s.particles = append(s.particles, Particle{
		Pos:      r2.Vec{X: x, Y: 0},
		Z:        s.rng.Float64(),
		Born:     now,
		ID:       s.rng.Uint32(),
		Angle:    s.rng.Range(0, parameter.TwoPi),
		Speed:    speed,
		Attached: -1,
		Color:    palette.White,
	})
	s.stats.Spawned++
}

// Step advances every particle one frame and removes expired ones
func (s *Simulation) Step(now time.Time, attractors []Attractor) {
	for i := 0; i < len(s.particles); {
		p := &s.particles[i]
		s.move(p, attractors)

		if s.expired(p, now) {
			s.removeAt(i)
			continue
		}
		i++
	}
}

func (s *Simulation) move(p *Particle, attractors []Attractor) {
	a, ok := nearest(p.Pos, attractors)
	if !ok || !p.Attracted(a.Cell) {
		p.Pos.Y += vmath.MapRange(p.Z, 0, 1, parameter.ParticleFallSpeedMin, parameter.ParticleFallSpeedMax)
		p.Color = palette.White
		p.Attached = -1
		return
	}

	if p.Attached != a.Cell {
		if p.Attached < 0 {
			s.stats.Captured++
		}
		p.Attached = a.Cell
		p.Radius = s.rng.Range(parameter.OrbitRadiusMin, parameter.OrbitRadiusMax) * parameter.OrbitBaseRadius
	}
	p.Color = a.Color

	p.Angle += p.Speed
	ideal := r2.Vec{
		X: a.X + p.Radius*math.Cos(p.Angle),
		Y: a.Y + p.Radius*math.Sin(p.Angle),
	}
	p.Pos = r2.Add(p.Pos, r2.Scale(parameter.OrbitApproach, r2.Sub(ideal, p.Pos)))
}

// nearest returns the closest attractor within capture distance
// Ties keep the earlier attractor
func nearest(pos r2.Vec, attractors []Attractor) (Attractor, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i := range attractors {
		d := r2.Norm(r2.Sub(r2.Vec{X: attractors[i].X, Y: attractors[i].Y}, pos))
		if d <= parameter.CaptureDistance && d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return Attractor{}, false
	}
	return attractors[best], true
}

func (s *Simulation) expired(p *Particle, now time.Time) bool {
	if now.Sub(p.Born) > parameter.ParticleLifetime {
		s.stats.Expired++
		return true
	}
	if p.Pos.Y > s.height+parameter.ParticleBottomMargin {
		s.stats.Dropped++
		return true
	}
	return false
}

// removeAt swaps the last particle into i
func (s *Simulation) removeAt(i int) {
	last := len(s.particles) - 1
	s.particles[i] = s.particles[last]
	s.particles[last] = Particle{}
	s.particles = s.particles[:last]
}

// Occupied returns the cells containing at least one live particle
// The map is reused and valid until the next call
func (s *Simulation) Occupied(g grid.Geometry) map[int]struct{} {
	clear(s.occupied)
	for i := range s.particles {
		if cell, ok := g.CellAtLocal(s.particles[i].Pos.X, s.particles[i].Pos.Y); ok {
			s.occupied[cell] = struct{}{}
		}
	}
	return s.occupied
}
