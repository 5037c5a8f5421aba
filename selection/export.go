package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrInvalidSnapshot is returned when imported data breaks the model's invariants
var ErrInvalidSnapshot = errors.New("invalid selection snapshot")

// Snapshot is the transferable form of a model, used for clipboard copy and scripted selections
type Snapshot struct {
	Current int     `json:"current"`
	Sets    [][]int `json:"sets"`
}

// Snapshot captures the model state
func (m *Model) Snapshot() Snapshot {
	return Snapshot{Current: m.current, Sets: m.Sets()}
}

// MarshalJSON encodes the snapshot form
func (m *Model) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Snapshot())
}

// Restore replaces the model state with s
// Out-of-range or duplicated cells and a dangling current index are rejected as a whole
func (m *Model) Restore(s Snapshot) error {
	if len(s.Sets) == 0 {
		s.Sets = [][]int{{}}
	}
	if s.Current < 0 || s.Current >= len(s.Sets) {
		return fmt.Errorf("%w: current set %d of %d", ErrInvalidSnapshot, s.Current, len(s.Sets))
	}

	owner := make(map[int]int)
	sets := make([][]int, len(s.Sets))
	for si, set := range s.Sets {
		sets[si] = make([]int, 0, len(set))
		for _, c := range set {
			if !m.valid(c) {
				return fmt.Errorf("%w: cell %d outside [0,%d)", ErrInvalidSnapshot, c, m.limit)
			}
			if _, dup := owner[c]; dup {
				return fmt.Errorf("%w: cell %d appears twice", ErrInvalidSnapshot, c)
			}
			owner[c] = si
			sets[si] = append(sets[si], c)
		}
	}

	m.sets = sets
	m.owner = owner
	m.current = s.Current
	m.last = toggleRecord{}
	return nil
}

// UnmarshalJSON decodes and restores a snapshot, the model keeps its limit
func (m *Model) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding selection: %w", err)
	}
	if m.owner == nil {
		m.reset(m.limit)
	}
	return m.Restore(s)
}

// ParseSets reads the compact scripted form: sets separated by ';', cells by ','
// "0,5;12,13" is two sets, an empty segment is an empty set
func ParseSets(text string) ([][]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ";")
	sets := make([][]int, 0, len(parts))
	for _, part := range parts {
		set := []int{}
		for _, field := range strings.Split(part, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			c, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %q", ErrInvalidSnapshot, field)
			}
			set = append(set, c)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
