package ecs

// Entity is an opaque identifier grouping zero or more components.
// Identifiers are issued in increasing order and never reused.
type Entity uint64

// Position is the top-left corner of an entity in pixel space.
type Position struct {
	X, Y uint32
}

// Velocity is the per-tick displacement applied by movement.
type Velocity struct {
	DX, DY int32
}

// Sprite is a solid rectangle footprint. Color is packed 0xRRGGBB.
type Sprite struct {
	Width, Height uint32
	Color         uint32
}
