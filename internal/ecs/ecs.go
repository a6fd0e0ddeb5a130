// Package ecs is a small entity/component runtime: entity allocation and
// typed component stores keyed by a dense entity index.
package ecs

// Entity is an opaque identifier. Entities are allocated densely from zero and
// carry no data of their own.
type Entity uint32

// Allocator hands out entity identifiers in creation order.
type Allocator struct {
	next Entity
}

// Create allocates a new entity.
func (a *Allocator) Create() Entity {
	e := a.next
	a.next++
	return e
}

// Count returns the number of entities allocated so far.
func (a *Allocator) Count() int {
	return int(a.next)
}

// Presence reports whether an entity holds a component.
type Presence interface {
	Has(e Entity) bool
}

// Join returns, in ascending order, every allocated entity present in all of
// the given stores.
func (a *Allocator) Join(stores ...Presence) []Entity {
	result := make([]Entity, 0, a.Count())
	for e := Entity(0); e < a.next; e++ {
		ok := true
		for _, s := range stores {
			if !s.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, e)
		}
	}
	return result
}
