package types

import "iter"

// OrderedMap is a generic map that remembers the order in which keys were
// first inserted and can create missing values on demand.
//
// Example use case:
//
//	m := NewOrderedMap[string](func() []string { return nil })
//	m.Update("mainnet", func(v []string) []string { return append(v, "1.2.3.4:18080") })
type OrderedMap[K comparable, V any] struct {
	keys        []K      // keys in first-insertion order
	data        map[K]V  // underlying map storing the key-value pairs
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewOrderedMap creates an empty OrderedMap. defaultFunc produces the value
// of a key on its first access through Get or Update; it may be nil, in
// which case the zero value is used.
func NewOrderedMap[K comparable, V any](defaultFunc func() V) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

func (m *OrderedMap[K, V]) newValue() V {
	if m.defaultFunc == nil {
		var zero V
		return zero
	}
	return m.defaultFunc()
}

// Get returns the value stored under key, first inserting a default value
// when the key is absent.
func (m *OrderedMap[K, V]) Get(key K) V {
	val, ok := m.data[key]
	if ok {
		return val
	}

	val = m.newValue()
	m.Set(key, val)
	return val
}

// Lookup returns the value stored under key without inserting anything.
func (m *OrderedMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := m.data[key]
	return val, ok
}

// Set assigns val to key. A new key is appended to the iteration order; an
// existing key keeps its position.
func (m *OrderedMap[K, V]) Set(key K, val V) {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = val
}

// Update replaces the value under key with fn applied to the current (or
// default) value.
func (m *OrderedMap[K, V]) Update(key K, fn func(V) V) {
	m.Set(key, fn(m.Get(key)))
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return append([]K(nil), m.keys...)
}

// All iterates key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.data[k]) {
				return
			}
		}
	}
}

// ToMap returns the underlying map. Iterating it loses the insertion order.
func (m *OrderedMap[K, V]) ToMap() map[K]V {
	return m.data
}
