package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const (
	columnBlockSize = 64
)

// Column stores one component kind keyed by entity.
// Values are kept in fixed-size blocks in the order they were first attached,
// so pointers returned by Get stay valid as the column grows and iteration
// follows attach order.
type Column[T any] struct {
	slots    *intmap.Map[Entity, int]
	entities []Entity
	blocks   []*[columnBlockSize]T
}

// NewColumn creates an empty column.
func NewColumn[T any]() *Column[T] {
	return &Column[T]{
		slots: intmap.New[Entity, int](columnBlockSize),
	}
}

// Set inserts or replaces the component for the entity.
func (c *Column[T]) Set(e Entity, value T) {
	if slot, ok := c.slots.Get(e); ok {
		c.blocks[slot/columnBlockSize][slot%columnBlockSize] = value
		return
	}

	slot := len(c.entities)
	blockIdx := slot / columnBlockSize
	if blockIdx >= len(c.blocks) {
		c.blocks = append(c.blocks, new([columnBlockSize]T))
	}

	c.blocks[blockIdx][slot%columnBlockSize] = value
	c.entities = append(c.entities, e)
	c.slots.Put(e, slot)
}

// Get returns a pointer to the entity's component, or false if it has none.
func (c *Column[T]) Get(e Entity) (*T, bool) {
	slot, ok := c.slots.Get(e)
	if !ok {
		return nil, false
	}
	return &c.blocks[slot/columnBlockSize][slot%columnBlockSize], true
}

// Has reports whether the entity has this component.
func (c *Column[T]) Has(e Entity) bool {
	_, ok := c.slots.Get(e)
	return ok
}

// Len returns the number of entities holding this component.
func (c *Column[T]) Len() int {
	return len(c.entities)
}

// All iterates entities and component pointers in attach order.
func (c *Column[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for slot, e := range c.entities {
			if !yield(e, &c.blocks[slot/columnBlockSize][slot%columnBlockSize]) {
				return
			}
		}
	}
}
