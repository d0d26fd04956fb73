package playfield

import "github.com/plus3/pixecs/ecs"

// Frame is what every system sees during one tick. It is rebuilt per tick
// and must not be retained by systems.
type Frame struct {
	Tick    uint64
	Screen  Screen
	Manager *ecs.Manager
	Keys    KeyState
	Buffer  []uint32
}
