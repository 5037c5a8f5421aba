// Package anim holds sparse per-cell scalars eased toward a target every frame
package anim

import (
	"sort"

	"github.com/lixenwraith/gridsketch/vmath"
)

// Field maps cell index to a value in [0, 1]
// Absent cells read as 0; entries that settle at 0 are dropped
type Field struct {
	values  map[int]float64
	rate    float64
	epsilon float64
}

// NewField creates a field stepping by rate and snapping within epsilon
func NewField(rate, epsilon float64) *Field {
	return &Field{
		values:  make(map[int]float64),
		rate:    rate,
		epsilon: epsilon,
	}
}

// Value returns the current value of cell
func (f *Field) Value(cell int) float64 {
	return f.values[cell]
}

// Snap sets cell directly, clamped to [0, 1]
func (f *Field) Snap(cell int, v float64) {
	v = vmath.Clamp(v, 0, 1)
	if v == 0 {
		delete(f.values, cell)
		return
	}
	f.values[cell] = v
}

// Step eases cell one frame toward target and returns the new value
// Calling Step at the target is a no-op
func (f *Field) Step(cell int, target float64) float64 {
	cur, ok := f.values[cell]
	if !ok && target == 0 {
		return 0
	}
	next := vmath.Approach(cur, target, f.rate, f.epsilon)
	if next == 0 {
		delete(f.values, cell)
		return 0
	}
	f.values[cell] = next
	return next
}

// Advance steps every tracked cell plus the given active cells
// Active cells move toward 1, the rest toward 0
func (f *Field) Advance(active map[int]struct{}) {
	for cell := range f.values {
		if _, on := active[cell]; !on {
			f.Step(cell, 0)
		}
	}
	for cell := range active {
		f.Step(cell, 1)
	}
}

// Len returns the number of tracked cells
func (f *Field) Len() int {
	return len(f.values)
}

// Range visits tracked cells in ascending index order
func (f *Field) Range(fn func(cell int, v float64)) {
	cells := make([]int, 0, len(f.values))
	for c := range f.values {
		cells = append(cells, c)
	}
	sort.Ints(cells)
	for _, c := range cells {
		fn(c, f.values[c])
	}
}

// Retain drops entries for which keep returns false
func (f *Field) Retain(keep func(cell int) bool) {
	for c := range f.values {
		if !keep(c) {
			delete(f.values, c)
		}
	}
}

// Reset clears every entry
func (f *Field) Reset() {
	clear(f.values)
}
