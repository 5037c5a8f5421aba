package parameter

import (
	"math"
	"time"
)

// Falling particles
const (
	// ParticleSpawnChance is the per-frame probability of spawning one particle on the top edge
	ParticleSpawnChance = 0.3
	// ParticleLifetime is the wall-clock age after which a particle is removed
	ParticleLifetime = 20 * time.Second
	// ParticleBottomMargin is how far below the grid a particle may fall before removal
	ParticleBottomMargin = 50.0

	// ParticleFallSpeedMin/Max map depth z in [0,1] to units per frame
	ParticleFallSpeedMin = 0.5
	ParticleFallSpeedMax = 2.0

	// ParticleInitialCapacity sizes the particle arena
	ParticleInitialCapacity = 256
)

// Orbit capture
const (
	// CaptureDistance is the absolute distance within which a falling particle evaluates an attractor
	CaptureDistance = 50.0
	// AttractionChance is the share of (particle, cell) pairs that result in capture
	AttractionChance = 0.7

	// OrbitBaseRadius is the absolute orbit radius, scaled per attachment by OrbitRadiusMin/Max
	OrbitBaseRadius = 30.0
	OrbitRadiusMin  = 0.7
	OrbitRadiusMax  = 1.3

	// OrbitSpeedMin/Max bound the angular speed magnitude in radians per frame, direction is random
	OrbitSpeedMin = 0.02
	OrbitSpeedMax = 0.05

	// OrbitApproach is the fraction of remaining distance to the ideal orbit point covered per frame
	OrbitApproach = 0.1

	TwoPi = 2 * math.Pi
)
