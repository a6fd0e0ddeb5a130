package ecs

// Store is a typed arena for one component type. Values live in a slice
// indexed by entity, with a parallel presence slice.
type Store[T any] struct {
	values  []T
	present []bool
	count   int
}

// NewStore creates an empty store for component type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		values:  make([]T, 0, 16),
		present: make([]bool, 0, 16),
	}
}

// Insert attaches val to e, replacing any existing value.
func (s *Store[T]) Insert(e Entity, val T) {
	idx := int(e)
	if idx >= len(s.values) {
		grow := idx + 1 - len(s.values)
		s.values = append(s.values, make([]T, grow)...)
		s.present = append(s.present, make([]bool, grow)...)
	}
	if !s.present[idx] {
		s.count++
	}
	s.values[idx] = val
	s.present[idx] = true
}

// Get returns a pointer to e's component for in-place mutation. The pointer is
// valid until the next Insert that grows the store.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	if !s.Has(e) {
		return nil, false
	}
	return &s.values[e], true
}

// Has reports whether e holds this component.
func (s *Store[T]) Has(e Entity) bool {
	idx := int(e)
	return idx < len(s.present) && s.present[idx]
}

// Len returns the number of entities holding this component.
func (s *Store[T]) Len() int {
	return s.count
}

// Each calls fn for every entity holding the component, in ascending order.
func (s *Store[T]) Each(fn func(e Entity, val *T)) {
	for i := range s.values {
		if s.present[i] {
			fn(Entity(i), &s.values[i])
		}
	}
}

var _ Presence = (*Store[struct{}])(nil)
