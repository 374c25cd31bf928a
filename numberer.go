package depeval

// Numberer assigns dense integer indices to values of type V in the
// order they are first seen. Indices cover the range [0, n) and are
// never reused or reordered; the mapping only grows.
type Numberer[V comparable] struct {
	indices map[V]int
	values  []V
}

// NewNumberer creates an empty Numberer.
func NewNumberer[V comparable]() *Numberer[V] {
	return &Numberer[V]{indices: make(map[V]int)}
}

// Number returns the index for v, assigning the next free index when v
// has not been seen before.
func (n *Numberer[V]) Number(v V) int {
	if idx, ok := n.indices[v]; ok {
		return idx
	}

	idx := len(n.values)
	n.indices[v] = idx
	n.values = append(n.values, v)
	return idx
}

// Index returns the index assigned to v without mutating the mapping.
// ok is false when v has not been numbered.
func (n *Numberer[V]) Index(v V) (idx int, ok bool) {
	idx, ok = n.indices[v]
	return idx, ok
}

// Value returns the value numbered idx. ok is false when idx is out of
// range.
func (n *Numberer[V]) Value(idx int) (v V, ok bool) {
	if idx < 0 || idx >= len(n.values) {
		return v, false
	}
	return n.values[idx], true
}

// Len returns the number of distinct values seen.
func (n *Numberer[V]) Len() int {
	return len(n.values)
}

// IsEmpty reports whether no value has been numbered yet.
func (n *Numberer[V]) IsEmpty() bool {
	return len(n.values) == 0
}
