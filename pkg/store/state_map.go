package store

import (
	"bytes"
	"encoding/json"
	"slices"
)

// StateMap is the immutable, ordered keyed state produced by CombineReducers.
// Keys keep reducer registration order. A nil *StateMap is an empty map.
type StateMap struct {
	keys   []string
	values map[string]any
}

// NewStateMap builds a StateMap from values, ordered by keys. Keys missing
// from values are skipped.
func NewStateMap(keys []string, values map[string]any) *StateMap {
	m := &StateMap{
		keys:   make([]string, 0, len(keys)),
		values: make(map[string]any, len(keys)),
	}
	for _, k := range keys {
		v, ok := values[k]
		if !ok {
			continue
		}
		if _, dup := m.values[k]; !dup {
			m.keys = append(m.keys, k)
		}
		m.values[k] = v
	}
	return m
}

func (m *StateMap) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *StateMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in order. The slice is a copy.
func (m *StateMap) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Map returns an unordered copy of the entries.
func (m *StateMap) Map() map[string]any {
	out := make(map[string]any, m.Len())
	if m == nil {
		return out
	}
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// With returns a copy of m with key set to value. New keys are appended.
func (m *StateMap) With(key string, value any) *StateMap {
	keys := m.Keys()
	values := m.Map()
	if _, ok := values[key]; !ok {
		keys = append(keys, key)
	}
	values[key] = value
	return &StateMap{keys: keys, values: values}
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m *StateMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// keyedLookup reads sub-states from the shapes CombineReducers accepts.
type keyedLookup func(key string) (any, bool)

func missing(string) (any, bool) { return nil, false }

func asKeyed(state any) (keyedLookup, bool) {
	switch s := state.(type) {
	case nil:
		return missing, true
	case *StateMap:
		return s.Get, true
	case map[string]any:
		return func(k string) (any, bool) {
			v, ok := s[k]
			return v, ok
		}, true
	default:
		return missing, false
	}
}

// stateKeys lists the keys of a keyed state in a stable order.
func stateKeys(state any) []string {
	switch s := state.(type) {
	case *StateMap:
		if s == nil {
			return nil
		}
		return s.keys
	case map[string]any:
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return keys
	default:
		return nil
	}
}
