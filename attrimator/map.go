package attrimator

import (
	"math"
)

// Map holds the head of each attribute's attrimator queue. It keeps
// insertion order, finds by attribute in constant time and removes by
// swapping the last entry into the removed slot.
type Map struct {
	keys    []string
	values  []Attrimator
	indices map[string]int
}

// NewMap creates an instance of a Map.
func NewMap() *Map {
	m := new(Map)
	m.indices = make(map[string]int)
	return m
}

// Put sets the head for attr, replacing any existing queue.
func (m *Map) Put(attr string, a Attrimator) {
	if i, ok := m.indices[attr]; ok {
		m.values[i] = a
		return
	}
	m.indices[attr] = len(m.values)
	m.keys = append(m.keys, attr)
	m.values = append(m.values, a)
}

// Get returns the head for attr, or nil.
func (m *Map) Get(attr string) Attrimator {
	if i, ok := m.indices[attr]; ok {
		return m.values[i]
	}
	return nil
}

func (m *Map) Has(attr string) bool {
	_, ok := m.indices[attr]
	return ok
}

// Remove deletes attr and reports whether it was present.
func (m *Map) Remove(attr string) bool {
	i, ok := m.indices[attr]
	if ok {
		m.RemoveAt(i)
	}
	return ok
}

// RemoveAt deletes the entry at index i. The last entry takes its place.
func (m *Map) RemoveAt(i int) {
	last := len(m.values) - 1
	delete(m.indices, m.keys[i])
	if i != last {
		m.keys[i] = m.keys[last]
		m.values[i] = m.values[last]
		m.indices[m.keys[i]] = i
	}
	m.values[last] = nil
	m.keys = m.keys[:last]
	m.values = m.values[:last]
}

// IndexOf returns the index of attr, or -1.
func (m *Map) IndexOf(attr string) int {
	if i, ok := m.indices[attr]; ok {
		return i
	}
	return -1
}

func (m *Map) Len() int {
	return len(m.values)
}

// Keys returns the attributes in index order. The slice must not be
// modified.
func (m *Map) Keys() []string {
	return m.keys
}

// Values returns the heads in index order. The slice must not be modified.
func (m *Map) Values() []Attrimator {
	return m.values
}

func (m *Map) At(i int) Attrimator {
	return m.values[i]
}

// SetAt replaces the head at index i.
func (m *Map) SetAt(i int, a Attrimator) {
	m.values[i] = a
}

// Queue appends a to the queue for its attribute, or makes it the head when
// there is none. The existing head is returned.
func (m *Map) Queue(a Attrimator) Attrimator {
	current := m.Get(a.Attribute())
	if current != nil {
		current.Queue(a)
	} else {
		m.Put(a.Attribute(), a)
	}
	return current
}

// QueueMap queues every attrimator in other so that they all begin once
// everything finite in m has finished. Infinite queues in m are stopped at
// that point. onNew, when given, is called for attrimators that become a
// new head.
func (m *Map) QueueMap(other *Map, onNew func(Attrimator)) {
	maxRemaining := m.TimeRemaining()

	for i := len(m.values) - 1; i >= 0; i-- {
		existing := m.values[i]
		if existing.IsInfinite() && !other.Has(m.keys[i]) {
			existing.StopIn(maxRemaining)
		}
	}

	for i := len(other.values) - 1; i >= 0; i-- {
		a := other.values[i]
		existing := m.Get(a.Attribute())
		if existing != nil {
			if existing.IsInfinite() {
				existing.StopIn(a.Delay() + maxRemaining)
			} else {
				a.SetDelay(a.Delay() + maxRemaining - existing.TimeRemaining())
			}
			existing.Queue(a)
		} else {
			a.SetDelay(a.Delay() + maxRemaining)
			m.Put(a.Attribute(), a)
			if onNew != nil {
				onNew(a)
			}
		}
	}
}

// UnqueueAt replaces the head at index i with the next in its queue, or
// removes the entry when the queue is empty.
func (m *Map) UnqueueAt(i int) {
	if next := m.values[i].Next(); next != nil {
		m.values[i] = next
	} else {
		m.RemoveAt(i)
	}
}

// Clone returns a map of unstarted clones of every queue.
func (m *Map) Clone() *Map {
	c := NewMap()
	for i, a := range m.values {
		c.Put(m.keys[i], a.Clone())
	}
	return c
}

// TimeRemaining is the longest time left on any finite queue.
func (m *Map) TimeRemaining() float64 {
	max := 0.0
	for _, a := range m.values {
		if !a.IsInfinite() {
			max = math.Max(max, a.TimeRemaining())
		}
	}
	return max
}

// ApplyCycle tags every attrimator with a cycle, starting with next for the
// heads and increasing by one for each level of queued attrimators. It
// returns the last cycle assigned.
func (m *Map) ApplyCycle(next int) int {
	depth := make([]Attrimator, len(m.values))
	copy(depth, m.values)
	for len(depth) > 0 {
		var deeper []Attrimator
		for _, a := range depth {
			a.SetCycle(next)
			if n := a.Next(); n != nil {
				deeper = append(deeper, n)
			}
		}
		if len(deeper) > 0 {
			next++
		}
		depth = deeper
	}
	return next
}

// Iterate calls fn for each entry in index order until it returns false.
func (m *Map) Iterate(fn func(attr string, a Attrimator) bool) {
	for i, a := range m.values {
		if !fn(m.keys[i], a) {
			return
		}
	}
}

// HasOverlap reports whether m and other share any attribute.
func (m *Map) HasOverlap(other *Map) bool {
	for _, attr := range other.keys {
		if m.Has(attr) {
			return true
		}
	}
	return false
}
