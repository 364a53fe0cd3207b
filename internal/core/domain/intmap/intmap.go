package intmap

import "golang.org/x/exp/constraints"

// Map is a plain integer-keyed, integer-valued map with explicit
// previous-value semantics on Put and Remove. Absent keys read as zero.
// No thread safety is provided within this structure; callers needing
// concurrent access must guard it themselves.
type Map[K constraints.Integer, V constraints.Integer] struct {
	entries map[K]V
}

// New initializes a new empty Map.
func New[K constraints.Integer, V constraints.Integer]() *Map[K, V] {
	return &Map[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the value stored for key, or zero if the key is absent.
func (m *Map[K, V]) Get(key K) V {
	return m.entries[key]
}

// Put stores value for key and returns the previously stored value,
// or zero if the key was absent.
func (m *Map[K, V]) Put(key K, value V) V {
	previous := m.entries[key]
	m.entries[key] = value
	return previous
}

// Remove deletes key and returns the previously stored value,
// or zero if the key was absent.
func (m *Map[K, V]) Remove(key K) V {
	previous := m.entries[key]
	delete(m.entries, key)
	return previous
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Size returns the number of stored keys.
func (m *Map[K, V]) Size() int {
	return len(m.entries)
}

// Range calls fn for every stored entry until fn returns false.
// Iteration order is unspecified.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for key, value := range m.entries {
		if !fn(key, value) {
			return
		}
	}
}
