package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityOccupancy
	PriorityGridLines
	PriorityCrosshair
	PriorityBorder
	PriorityConnector
	PriorityParticle
	PriorityNode
	PriorityHalo
	PriorityOverlay
)
