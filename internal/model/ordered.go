package model

// orderedMap is an insertion-ordered map keyed by declared name. Upsert
// on an existing key keeps the original position; last write wins on the
// value.
type orderedMap[V any] struct {
	keys  []string
	items map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{items: make(map[string]V)}
}

func (m *orderedMap[V]) upsert(key string, v V) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = v
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

func (m *orderedMap[V]) ordered() []string {
	return append([]string(nil), m.keys...)
}

func (m *orderedMap[V]) values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.items[k])
	}
	return out
}

func (m *orderedMap[V]) reset() {
	m.keys = nil
	m.items = make(map[string]V)
}
