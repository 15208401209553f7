// Package selection tracks which suppliers are chosen for side-by-side
// comparison.
//
// A Selection is a value: Toggle and Clear return new values rather than
// mutating, matching the copy-on-write discipline of the rest of the
// core. The set holds at most three ids in insertion order; toggling a
// fourth evicts the oldest, so the newest selection always survives.
package selection

// Capacity is the maximum number of suppliers compared at once.
const Capacity = 3

// Selection is an ordered set of supplier ids, capacity 3, no duplicates.
// The zero value is an empty selection.
type Selection struct {
	ids []string
}

// Toggle flips membership of id and returns the resulting selection.
// An id already present is removed. A new id is appended; at capacity
// the oldest id is evicted first (FIFO).
func (s Selection) Toggle(id string) Selection {
	for i, existing := range s.ids {
		if existing == id {
			out := make([]string, 0, len(s.ids)-1)
			out = append(out, s.ids[:i]...)
			out = append(out, s.ids[i+1:]...)
			return Selection{ids: out}
		}
	}
	if len(s.ids) < Capacity {
		out := make([]string, len(s.ids), len(s.ids)+1)
		copy(out, s.ids)
		return Selection{ids: append(out, id)}
	}
	out := make([]string, 0, Capacity)
	out = append(out, s.ids[1:]...)
	out = append(out, id)
	return Selection{ids: out}
}

// Clear returns an empty selection; used after a comparison is dismissed.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.ids)
}

// CanCompare reports whether the selection is large enough to offer a
// comparison view. One supplier alone has nothing to compare against.
func (s Selection) CanCompare() bool {
	return len(s.ids) >= 2
}

// IDs returns the selected ids in insertion order. The first id is the
// comparison baseline.
func (s Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
