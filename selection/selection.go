// Package selection keeps the ordered sets of selected cells
//
// A cell belongs to at most one set. Set order drives connector order and the
// palette color of each member. One set is always current and receives plain clicks.
package selection

import (
	"github.com/lixenwraith/gridsketch/palette"
)

// Change describes the outcome of a mutation
type Change int

const (
	None Change = iota
	Added
	Removed
	// Moved means the cell left another set and was appended to the current one
	Moved
)

func (c Change) String() string {
	switch c {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Moved:
		return "moved"
	default:
		return "none"
	}
}

// Model is the selection state
// Not safe for concurrent use, mutated only between frames by the owning loop
type Model struct {
	sets    [][]int
	current int
	owner   map[int]int // cell -> set index
	limit   int

	// last remembers the previous Toggle so an immediate repeat restores the prior state exactly
	last toggleRecord
}

type toggleRecord struct {
	valid   bool
	cell    int
	change  Change
	current int
	// set and pos locate the cell before the toggle, for Removed and Moved
	set int
	pos int
}

// New creates a model accepting cells in [0, limit) with one empty current set
func New(limit int) *Model {
	m := &Model{}
	m.reset(limit)
	return m
}

func (m *Model) reset(limit int) {
	if limit < 0 {
		limit = 0
	}
	m.sets = [][]int{{}}
	m.current = 0
	m.owner = make(map[int]int)
	m.limit = limit
	m.last = toggleRecord{}
}

// Limit returns the exclusive upper bound of valid cells
func (m *Model) Limit() int {
	return m.limit
}

func (m *Model) valid(cell int) bool {
	return cell >= 0 && cell < m.limit
}

// Toggle removes cell from the current set if present, else moves or adds it into the current set
// Toggling the same cell twice in a row restores the exact prior state, including positions
// That memo takes precedence over the remove-or-append rule: a cell just moved
// into the current set goes back to its old set instead of being removed
func (m *Model) Toggle(cell int) Change {
	if !m.valid(cell) {
		return None
	}

	if m.last.valid && m.last.cell == cell && m.last.current == m.current {
		return m.revert()
	}

	rec := toggleRecord{valid: true, cell: cell, current: m.current}

	if set, ok := m.owner[cell]; ok {
		rec.set = set
		rec.pos = m.remove(cell, set)
		if set == m.current {
			rec.change = Removed
			m.last = rec
			return Removed
		}
		m.append(cell, m.current)
		rec.change = Moved
		m.last = rec
		return Moved
	}

	m.append(cell, m.current)
	rec.change = Added
	m.last = rec
	return Added
}

// revert undoes the previous Toggle
func (m *Model) revert() Change {
	rec := m.last
	m.last = toggleRecord{}

	switch rec.change {
	case Added:
		m.remove(rec.cell, m.current)
		return Removed
	case Removed:
		m.insert(rec.cell, rec.set, rec.pos)
		return Added
	case Moved:
		m.remove(rec.cell, m.current)
		m.insert(rec.cell, rec.set, rec.pos)
		return Moved
	}
	return None
}

// NewSet appends a set holding cell and makes it current
// An invalid cell leaves the model untouched
func (m *Model) NewSet(cell int) Change {
	if !m.valid(cell) {
		return None
	}

	m.last = toggleRecord{}
	change := Added
	if set, ok := m.owner[cell]; ok {
		m.remove(cell, set)
		change = Moved
	}

	m.sets = append(m.sets, []int{})
	m.current = len(m.sets) - 1
	m.append(cell, m.current)
	return change
}

func (m *Model) append(cell, set int) {
	m.sets[set] = append(m.sets[set], cell)
	m.owner[cell] = set
}

func (m *Model) insert(cell, set, pos int) {
	s := m.sets[set]
	if pos > len(s) {
		pos = len(s)
	}
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = cell
	m.sets[set] = s
	m.owner[cell] = set
}

// remove deletes cell from set and returns its former position
func (m *Model) remove(cell, set int) int {
	s := m.sets[set]
	pos := -1
	for i, c := range s {
		if c == cell {
			m.sets[set] = append(s[:i], s[i+1:]...)
			pos = i
			break
		}
	}
	delete(m.owner, cell)
	return pos
}

// Current returns the index of the set receiving plain clicks
func (m *Model) Current() int {
	return m.current
}

// Len returns the number of sets, including empty ones
func (m *Model) Len() int {
	return len(m.sets)
}

// Count returns the number of selected cells
func (m *Model) Count() int {
	return len(m.owner)
}

// Set returns set i, read-only view valid until the next mutation
func (m *Model) Set(i int) []int {
	if i < 0 || i >= len(m.sets) {
		return nil
	}
	return m.sets[i]
}

// Sets returns a deep copy of all sets
func (m *Model) Sets() [][]int {
	out := make([][]int, len(m.sets))
	for i, s := range m.sets {
		out[i] = append([]int{}, s...)
	}
	return out
}

// IsSelected reports whether cell is in any set
func (m *Model) IsSelected(cell int) bool {
	_, ok := m.owner[cell]
	return ok
}

// SetOf returns the owning set of cell
func (m *Model) SetOf(cell int) (int, bool) {
	set, ok := m.owner[cell]
	return set, ok
}

// Position returns the index of cell within its own set
func (m *Model) Position(cell int) (int, bool) {
	set, ok := m.owner[cell]
	if !ok {
		return 0, false
	}
	for i, c := range m.sets[set] {
		if c == cell {
			return i, true
		}
	}
	return 0, false
}

// ColorOf is white for an unselected cell, else the palette color at its position within its set
func (m *Model) ColorOf(cell int, p palette.Palette) palette.RGB {
	pos, ok := m.Position(cell)
	if !ok {
		return palette.White
	}
	return p.At(pos)
}

// Each visits every selected cell in set order then position order
func (m *Model) Each(fn func(set, pos, cell int)) {
	for si, s := range m.sets {
		for pi, c := range s {
			fn(si, pi, c)
		}
	}
}

// Clear drops every set and starts over with one empty current set
func (m *Model) Clear() {
	m.reset(m.limit)
}

// SetLimit changes the valid cell range, dropping cells that fall outside it
// Sets emptied by the drop are kept so set indices and the current set stay stable
func (m *Model) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	m.limit = limit
	m.last = toggleRecord{}
	for si, s := range m.sets {
		kept := s[:0]
		for _, c := range s {
			if c < limit {
				kept = append(kept, c)
			} else {
				delete(m.owner, c)
			}
		}
		m.sets[si] = kept
	}
}
