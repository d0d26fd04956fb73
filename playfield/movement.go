package playfield

// MovementSystem integrates velocity into position for every entity that has
// a position, a velocity and a sprite. Entities without a velocity stay put,
// and so do entities without a sprite: the sprite is the footprint that makes
// an entity occupy space.
type MovementSystem struct{}

func (s *MovementSystem) Execute(frame *Frame) error {
	store := frame.Manager.Components()
	for e, pos := range store.Positions.All() {
		vel, ok := store.Velocities.Get(e)
		if !ok {
			continue
		}
		sprite, ok := store.Sprites.Get(e)
		if !ok {
			continue
		}

		pos.X = stepAxis(pos.X, vel.DX, sprite.Width, frame.Screen.Width)
		pos.Y = stepAxis(pos.Y, vel.DY, sprite.Height, frame.Screen.Height)
	}
	return nil
}

// stepAxis moves coord by delta, saturating into [0, limit]. The move is kept
// only if the footprint still fits; otherwise coord is returned unchanged.
func stepAxis(coord uint32, delta int32, extent uint32, limit int) uint32 {
	next := int64(coord) + int64(delta)
	next = max(0, min(next, int64(limit)))

	if next+int64(extent) <= int64(limit) {
		return uint32(next)
	}
	return coord
}
