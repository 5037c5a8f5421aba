package vmath

// FastRand is a xorshift64 generator, reproducible for a fixed seed
// Not safe for concurrent use, each owner keeps its own
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uint32 returns the high bits, which carry better entropy than the low ones
func (r *FastRand) Uint32() uint32 {
	return uint32(r.Next() >> 32)
}

// Float64 returns a value in [0, 1) using 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}
