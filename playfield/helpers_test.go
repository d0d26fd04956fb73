package playfield_test

import (
	"github.com/plus3/pixecs/ecs"
	"github.com/plus3/pixecs/playfield"
)

func newFrame(m *ecs.Manager, screen playfield.Screen) *playfield.Frame {
	return &playfield.Frame{
		Tick:    1,
		Screen:  screen,
		Manager: m,
		Keys:    playfield.NoKeys,
		Buffer:  screen.NewBuffer(),
	}
}

func position(m *ecs.Manager, e ecs.Entity) ecs.Position {
	pos, ok := m.Components().Positions.Get(e)
	if !ok {
		panic("entity has no position")
	}
	return *pos
}

func velocity(m *ecs.Manager, e ecs.Entity) ecs.Velocity {
	vel, ok := m.Components().Velocities.Get(e)
	if !ok {
		panic("entity has no velocity")
	}
	return *vel
}
