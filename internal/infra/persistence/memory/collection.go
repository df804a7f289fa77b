package memory

import "slices"

// Record is an entity stored in a Collection. E is the pointer type itself,
// e.g. *entity.User.
type Record[E any] interface {
	GetID() int
	Clone() E
}

// Collection is an ordered set of records keyed by integer id. Handlers use
// the live accessors to mutate records in place; anything handed outside the
// process goes through Snapshot.
type Collection[E Record[E]] struct {
	items []E
}

// NewCollection builds a collection over the given records in order.
func NewCollection[E Record[E]](items ...E) *Collection[E] {
	return &Collection[E]{items: slices.Clone(items)}
}

// All returns the live records. Callers must not append to the result.
func (c *Collection[E]) All() []E {
	return c.items
}

// Len returns the number of records.
func (c *Collection[E]) Len() int {
	return len(c.items)
}

// Find returns the live record with the given id.
func (c *Collection[E]) Find(id int) (E, bool) {
	for _, item := range c.items {
		if item.GetID() == id {
			return item, true
		}
	}

	var zero E

	return zero, false
}

// Filter returns the live records matching keep, in insertion order.
func (c *Collection[E]) Filter(keep func(E) bool) []E {
	out := make([]E, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}

	return out
}

// Insert appends a record.
func (c *Collection[E]) Insert(item E) {
	c.items = append(c.items, item)
}

// Remove deletes the record with the given id and reports whether one was removed.
func (c *Collection[E]) Remove(id int) bool {
	return c.RemoveWhere(func(item E) bool { return item.GetID() == id }) > 0
}

// RemoveWhere deletes every matching record and returns how many were removed.
func (c *Collection[E]) RemoveWhere(match func(E) bool) int {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, match)

	return before - len(c.items)
}

// NextID returns max(existing ids, base) + 1.
func (c *Collection[E]) NextID(base int) int {
	highest := base
	for _, item := range c.items {
		highest = max(highest, item.GetID())
	}

	return highest + 1
}

// Snapshot returns deep copies of every record.
func (c *Collection[E]) Snapshot() []E {
	return CloneAll(c.items)
}

// CloneAll deep copies a slice of records.
func CloneAll[E Record[E]](items []E) []E {
	out := make([]E, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}

	return out
}
