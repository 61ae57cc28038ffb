package orderedmap

import (
	"errors"
	"fmt"
	"iter"
)

var ErrorKeyNotFound = errors.New("key not found")
var ErrorDuplicateKey = errors.New("key already exists")
var ErrorEmptyCollection = errors.New("empty collection")

const none = -1

type node[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// Map keeps insertion order and allows splicing new keys next to existing
// ones. Nodes live in an arena and are linked by position, so the index never
// holds a stale reference: nothing is ever removed.
type Map[K comparable, V any] struct {
	nodes []node[K, V]
	index map[K]int
	first int
	last  int
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		nodes: []node[K, V]{},
		index: map[K]int{},
		first: none,
		last:  none,
	}
}

func (m *Map[K, V]) Len() int {
	return len(m.index)
}

func (m *Map[K, V]) IsEmpty() bool {
	return len(m.index) == 0
}

func (m *Map[K, V]) Has(key K) bool {
	_, exists := m.index[key]
	return exists
}

func (m *Map[K, V]) Get(key K) (V, error) {
	i, exists := m.index[key]
	if !exists {
		var zero V
		return zero, fmt.Errorf("%w: '%v'", ErrorKeyNotFound, key)
	}
	return m.nodes[i].value, nil
}

// Set replaces the value of an existing key without moving it, or appends
// the key at the end.
func (m *Map[K, V]) Set(key K, value V) {
	if i, exists := m.index[key]; exists {
		m.nodes[i].value = value
		return
	}

	i := m.alloc(key, value)
	m.link(i, m.last, none)
}

func (m *Map[K, V]) InsertBefore(anchor, key K, value V) error {
	a, err := m.anchor(anchor, key)
	if err != nil {
		return err
	}

	i := m.alloc(key, value)
	m.link(i, m.nodes[a].prev, a)
	return nil
}

func (m *Map[K, V]) InsertAfter(anchor, key K, value V) error {
	a, err := m.anchor(anchor, key)
	if err != nil {
		return err
	}

	i := m.alloc(key, value)
	m.link(i, a, m.nodes[a].next)
	return nil
}

func (m *Map[K, V]) FirstKey() (K, error) {
	if m.first == none {
		var zero K
		return zero, ErrorEmptyCollection
	}
	return m.nodes[m.first].key, nil
}

func (m *Map[K, V]) LastKey() (K, error) {
	if m.last == none {
		var zero K
		return zero, ErrorEmptyCollection
	}
	return m.nodes[m.last].key, nil
}

// All iterates entries in order. The map must not be mutated while iterating.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := m.first; i != none; i = m.nodes[i].next {
			if !yield(m.nodes[i].key, m.nodes[i].value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// anchor validates a splice: the new key must be absent and the anchor present.
func (m *Map[K, V]) anchor(anchor, key K) (int, error) {
	if _, exists := m.index[key]; exists {
		return none, fmt.Errorf("%w: '%v'", ErrorDuplicateKey, key)
	}
	a, exists := m.index[anchor]
	if !exists {
		return none, fmt.Errorf("%w: anchor '%v'", ErrorKeyNotFound, anchor)
	}
	return a, nil
}

func (m *Map[K, V]) alloc(key K, value V) int {
	i := len(m.nodes)
	m.nodes = append(m.nodes, node[K, V]{
		key:   key,
		value: value,
		prev:  none,
		next:  none,
	})
	m.index[key] = i
	return i
}

// link places node i between prev and next, either of which may be none.
func (m *Map[K, V]) link(i, prev, next int) {
	m.nodes[i].prev = prev
	m.nodes[i].next = next

	if prev == none {
		m.first = i
	} else {
		m.nodes[prev].next = i
	}

	if next == none {
		m.last = i
	} else {
		m.nodes[next].prev = i
	}
}
