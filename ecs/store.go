package ecs

// Store is the columnar component storage: one column per component kind,
// all keyed by Entity. Components never reference each other.
type Store struct {
	Positions  *Column[Position]
	Velocities *Column[Velocity]
	Sprites    *Column[Sprite]
	Tags       *Column[TagSet]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Positions:  NewColumn[Position](),
		Velocities: NewColumn[Velocity](),
		Sprites:    NewColumn[Sprite](),
		Tags:       NewColumn[TagSet](),
	}
}
