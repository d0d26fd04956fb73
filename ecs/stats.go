package ecs

// StoreStats summarises the contents of a manager's store.
type StoreStats struct {
	EntityCount   int
	PositionCount int
	VelocityCount int
	SpriteCount   int
	TaggedCount   int
}

// CollectStats counts issued entities and the components attached to them.
func (m *Manager) CollectStats() StoreStats {
	return StoreStats{
		EntityCount:   m.Len(),
		PositionCount: m.store.Positions.Len(),
		VelocityCount: m.store.Velocities.Len(),
		SpriteCount:   m.store.Sprites.Len(),
		TaggedCount:   m.store.Tags.Len(),
	}
}
