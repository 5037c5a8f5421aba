package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// --- Mapping ---

// MapRange maps v from [inMin, inMax] to [outMin, outMax] without clamping
// A degenerate input range maps everything to outMin
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Fract returns the fractional part of v in [0, 1), negative inputs wrap upward
func Fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return r2.Norm(r2.Sub(r2.Vec{X: x2, Y: y2}, r2.Vec{X: x1, Y: y1}))
}

// Approach advances value one exponential step toward target
// Result is clamped to [0, 1] and snapped onto target once within epsilon, so it never overshoots
func Approach(value, target, rate, epsilon float64) float64 {
	next := value + (target-value)*Clamp(rate, 0, 1)
	if math.Abs(target-next) < epsilon {
		next = target
	}
	return Clamp(next, 0, 1)
}
