package automaton

import "iter"

// HashMap Chained hash map keyed by Hashable values. Not safe for concurrent use.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity Initial bucket count, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

// WithLoadFactor Size to bucket ratio past which the map doubles. Defaults to 0.75.
func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.loadFactor = loadFactor
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{capacity: 1, loadFactor: 0.75}
	for _, o := range options {
		o(opt)
	}

	capacity := 1
	for capacity < opt.capacity {
		capacity <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*entry[T], capacity),
		mask:       uint64(capacity - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set Insert or replace the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

func (m *HashMap[T]) Delete(key Hashable) {
	index := key.Hash() & m.mask

	var prev *entry[T]
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if !e.key.Equals(key) {
			continue
		}
		if prev == nil {
			m.buckets[index] = e.next
		} else {
			prev.next = e.next
		}
		m.size--
		return
	}
}

func (m *HashMap[T]) resize() {
	buckets := make([]*entry[T], len(m.buckets)<<1)
	mask := uint64(len(buckets) - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & mask
			e.next = buckets[index]
			buckets[index] = e
			e = next
		}
	}

	m.buckets = buckets
	m.mask = mask
}

func (m *HashMap[T]) Size() int {
	return m.size
}

// All Iterate over every key/value pair in bucket order.
func (m *HashMap[T]) All() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
