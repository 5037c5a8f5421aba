package vmath

// Spatial hash multipliers, large odd constants decorrelating column and row
const (
	HashPrimeA = 73856093
	HashPrimeB = 19349663
	HashPrimeC = 83492791
)

// hashBuckets is the resolution of every hash: values are multiples of 1/hashBuckets
const hashBuckets = 1000

// hash32 evaluates ((a*pa) XOR (b*pb)) mod 1000 in 32-bit two's complement
// Products wrap exactly like bitwise operands do in 32-bit integer arithmetic
func hash32(a, b int, pa, pb int64) float64 {
	x := int32(int64(a) * pa)
	y := int32(int64(b) * pb)
	v := (x ^ y) % hashBuckets
	if v < 0 {
		v = -v
	}
	return float64(v) / hashBuckets
}

// CellHash is the primary per-cell hash in [0, 1), drives crosshair phase and speed
func CellHash(col, row int) float64 {
	return hash32(col, row, HashPrimeA, HashPrimeB)
}

// CellHashSize varies glow orbit radius
func CellHashSize(col, row int) float64 {
	return hash32(col, row, HashPrimeB, HashPrimeA)
}

// CellHashSpeed varies glow orbit angular speed
func CellHashSpeed(col, row int) float64 {
	return hash32(col, row, HashPrimeC, HashPrimeA)
}

// CellHashCount varies glow particle count
func CellHashCount(col, row int) float64 {
	return hash32(col, row, HashPrimeB, HashPrimeC)
}

// PairHash combines an entity id with a cell index, stable for the pair
func PairHash(id uint32, cell int) float64 {
	return hash32(int(id), cell, HashPrimeA, HashPrimeB)
}
