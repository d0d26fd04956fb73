package ecs

import (
	"iter"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Manager allocates entities and owns the component store.
// It is not safe for concurrent use; the frame loop is single-threaded.
type Manager struct {
	nextId Entity
	store  *Store
	logger zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics such as duplicate tags.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a manager with an empty store.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		store:  NewStore(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateEntity returns an identifier greater than every previously issued one.
func (m *Manager) CreateEntity() Entity {
	e := m.nextId
	m.nextId++
	return e
}

// Len returns the number of entities issued so far.
func (m *Manager) Len() int {
	return int(m.nextId)
}

// Entities iterates every issued identifier in creation order.
func (m *Manager) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for e := Entity(0); e < m.nextId; e++ {
			if !yield(e) {
				return
			}
		}
	}
}

// Components exposes the store to systems for the duration of their pass.
func (m *Manager) Components() *Store {
	return m.store
}

// AddPosition inserts or replaces the entity's position.
// The entity does not need to have been created yet.
func (m *Manager) AddPosition(e Entity, x, y uint32) {
	m.store.Positions.Set(e, Position{X: x, Y: y})
}

// AddVelocity inserts or replaces the entity's velocity.
func (m *Manager) AddVelocity(e Entity, dx, dy int32) {
	m.store.Velocities.Set(e, Velocity{DX: dx, DY: dy})
}

// AddSprite inserts or replaces the entity's sprite.
func (m *Manager) AddSprite(e Entity, width, height, color uint32) {
	m.store.Sprites.Set(e, Sprite{Width: width, Height: height, Color: color})
}

// AddTag adds tag to the entity. Adding a tag it already holds is logged and ignored.
func (m *Manager) AddTag(e Entity, tag Tag) {
	tags, ok := m.store.Tags.Get(e)
	if !ok {
		m.store.Tags.Set(e, TagSet(0).With(tag))
		return
	}

	if tags.Has(tag) {
		m.logger.Warn().
			Uint64("entity", uint64(e)).
			Stringer("tag", tag).
			Msg("entity already has tag")
		return
	}

	*tags = tags.With(tag)
}

// HasTag reports whether the entity holds tag.
func (m *Manager) HasTag(e Entity, tag Tag) bool {
	tags, ok := m.store.Tags.Get(e)
	return ok && tags.Has(tag)
}

// Tags returns the entity's tags in vocabulary order.
func (m *Manager) Tags(e Entity) []Tag {
	tags, ok := m.store.Tags.Get(e)
	if !ok {
		return nil
	}
	return tags.Tags()
}

// FindTagged returns the first entity, in tag attach order, holding tag.
func (m *Manager) FindTagged(tag Tag) (Entity, bool) {
	for e, tags := range m.store.Tags.All() {
		if tags.Has(tag) {
			return e, true
		}
	}
	return 0, false
}

// ResetVelocity zeroes the flagged axes of the entity's velocity and keeps
// the others. It fails with ErrComponentNotOnEntity if there is no velocity.
func (m *Manager) ResetVelocity(e Entity, resetX, resetY bool) error {
	vel, ok := m.store.Velocities.Get(e)
	if !ok {
		return eris.Wrapf(ErrComponentNotOnEntity, "reset velocity of entity %d", e)
	}

	if resetX {
		vel.DX = 0
	}
	if resetY {
		vel.DY = 0
	}
	return nil
}
