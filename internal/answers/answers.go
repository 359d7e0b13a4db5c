// Package answers provides the immutable answer store built from one
// generation run. A store maps question IDs to validated, normalized
// values; questions skipped by their activation condition carry an
// explicit inactive marker instead of a value.
package answers

import "sort"

// Store is the completed, immutable mapping of question ID to value.
// Construct one with NewStore; a finished store is never mutated, and
// re-running the flow builds a new store.
type Store struct {
	values   map[string]any
	inactive map[string]bool
}

// NewStore builds a store from validated values and the set of inactive
// question IDs. Both maps are copied; the caller's maps stay free.
func NewStore(values map[string]any, inactive []string) *Store {
	s := &Store{
		values:   make(map[string]any, len(values)),
		inactive: make(map[string]bool, len(inactive)),
	}
	for k, v := range values {
		s.values[k] = v
	}
	for _, id := range inactive {
		s.inactive[id] = true
	}
	return s
}

// Get returns the value recorded for id. The second result is false when
// no value exists (unknown ID or inactive question).
func (s *Store) Get(id string) (any, bool) {
	v, ok := s.values[id]
	return v, ok
}

// GetString returns the string value for id, or "" when absent or not a string.
func (s *Store) GetString(id string) string {
	if v, ok := s.values[id]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// GetBool returns the bool value for id, or false when absent or not a bool.
func (s *Store) GetBool(id string) bool {
	if v, ok := s.values[id]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetStrings returns the multi-choice value for id, or nil when absent.
func (s *Store) GetStrings(id string) []string {
	if v, ok := s.values[id]; ok {
		if ss, ok := v.([]string); ok {
			return ss
		}
	}
	return nil
}

// IsInactive reports whether id was skipped by its activation condition.
func (s *Store) IsInactive(id string) bool {
	return s.inactive[id]
}

// Len returns the number of recorded entries, values and markers combined.
func (s *Store) Len() int {
	return len(s.values) + len(s.inactive)
}

// IDs returns the IDs carrying values, sorted for deterministic iteration.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Data returns a fresh map of the active values, suitable as template
// data. Inactive markers are excluded so a template referencing a
// skipped question fails loudly instead of rendering a zero value.
func (s *Store) Data() map[string]any {
	data := make(map[string]any, len(s.values))
	for k, v := range s.values {
		data[k] = v
	}
	return data
}
