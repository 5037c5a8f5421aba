package parameter

// Hover / selection reveal
const (
	// RevealRate is the exponential step toward the target reveal value per frame
	RevealRate = 0.15
	// RevealEpsilon snaps the reveal value onto its target
	RevealEpsilon = 0.01

	// NodeCircleScale is the full hover circle diameter as a fraction of cell size
	NodeCircleScale = 0.5
	// NodeCircleWeight is the hover circle stroke weight
	NodeCircleWeight = 2.0
	// NodeCoreScale is the filled core dot of a selected node as a fraction of cell size
	NodeCoreScale = 0.18
)

// Particle occupancy highlight
const (
	// OccupancyRate smooths the per-cell highlight under particle-occupied cells
	OccupancyRate = 0.15
	// OccupancyAlpha is the peak fill opacity of the highlight
	OccupancyAlpha = 0.12
	// OccupancyPulseSpeed is the shimmer phase speed per frame, phase offset by cell index
	OccupancyPulseSpeed = 0.05
)

// Grid lines and crosshairs
const (
	GridLineAlpha   = 0.12
	GridLineWeight  = 1.0
	BorderAlpha     = 0.6
	BorderWeight    = 1.5
	CrosshairWeight = 1.0
	// CrosshairArmScale is the half-length of a crosshair arm as a fraction of cell size
	CrosshairArmScale = 0.15
	// CrosshairPhaseScale converts frame count times speed into radians
	CrosshairPhaseScale = 0.01
)

// Connectors between consecutive cells of a set
const (
	// ConnectorGradientSteps is the number of sub-segments used for the color gradient
	ConnectorGradientSteps = 50
	ConnectorWeight        = 4.0
	ConnectorCoreWeight    = 1.0
	ConnectorAlpha         = 0.85

	// ConnectorDotsPerSegment dots travel each segment, evenly phased
	ConnectorDotsPerSegment = 3
	// ConnectorDotSpeed is the per-frame advance of a dot along its segment
	ConnectorDotSpeed = 0.005
	ConnectorDotSize  = 5.0
)

// Falling particle appearance
const (
	ParticleSizeMin  = 1.5
	ParticleSizeMax  = 3.5
	ParticleAlphaMin = 0.25
	ParticleAlphaMax = 0.9
)

// Glow halo orbiting active nodes
const (
	HaloCountMin   = 3
	HaloCountRange = 5
	// HaloRadiusMin/Max bound the halo orbit radius as a fraction of cell size, picked by size hash
	HaloRadiusMin = 0.35
	HaloRadiusMax = 0.75
	// HaloSpeedMin/Max bound the halo angular speed in radians per frame, picked by speed hash
	HaloSpeedMin = 0.01
	HaloSpeedMax = 0.04
	HaloDotSize  = 3.0
	HaloAlpha    = 0.7
)
