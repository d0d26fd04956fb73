package playfield_test

import (
	"errors"
	"testing"

	"github.com/plus3/pixecs/ecs"
	"github.com/plus3/pixecs/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSystem(t *testing.T) {
	tests := []struct {
		name    string
		keys    playfield.Keys
		initial ecs.Velocity
		want    ecs.Velocity
	}{
		{"nothing held stops", nil, ecs.Velocity{DX: 7, DY: -7}, ecs.Velocity{}},
		{"up", playfield.Keys{playfield.KeyUp: true}, ecs.Velocity{}, ecs.Velocity{DY: -3}},
		{"down", playfield.Keys{playfield.KeyDown: true}, ecs.Velocity{}, ecs.Velocity{DY: 3}},
		{"left", playfield.Keys{playfield.KeyLeft: true}, ecs.Velocity{}, ecs.Velocity{DX: -3}},
		{"right", playfield.Keys{playfield.KeyRight: true}, ecs.Velocity{}, ecs.Velocity{DX: 3}},
		{"up beats down", playfield.Keys{playfield.KeyUp: true, playfield.KeyDown: true}, ecs.Velocity{}, ecs.Velocity{DY: -3}},
		{"left beats right", playfield.Keys{playfield.KeyLeft: true, playfield.KeyRight: true}, ecs.Velocity{}, ecs.Velocity{DX: -3}},
		{"diagonal", playfield.Keys{playfield.KeyDown: true, playfield.KeyRight: true}, ecs.Velocity{}, ecs.Velocity{DX: 3, DY: 3}},
		{"boost", playfield.Keys{playfield.KeyLeft: true, playfield.KeyBoost: true}, ecs.Velocity{}, ecs.Velocity{DX: -8}},
		{"released axis is reset", playfield.Keys{playfield.KeyUp: true}, ecs.Velocity{DX: 3, DY: 3}, ecs.Velocity{DY: -3}},
		{"boost alone stops", playfield.Keys{playfield.KeyBoost: true}, ecs.Velocity{DX: 8, DY: 8}, ecs.Velocity{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ecs.NewManager()
			player := playfield.Spawn(m, playfield.EntitySpec{Velocity: &tt.initial})
			system := &playfield.InputSystem{Player: player, Speed: 3, BoostSpeed: 8}

			frame := newFrame(m, screen100)
			frame.Keys = tt.keys
			require.NoError(t, system.Execute(frame))
			assert.Equal(t, tt.want, velocity(m, player))
		})
	}
}

func TestInputSystemOnlyTouchesPlayer(t *testing.T) {
	m := ecs.NewManager()
	player := playfield.Spawn(m, playfield.EntitySpec{Velocity: &ecs.Velocity{}})
	other := playfield.Spawn(m, playfield.EntitySpec{Velocity: &ecs.Velocity{DX: 1, DY: 1}})
	system := &playfield.InputSystem{Player: player, Speed: 3, BoostSpeed: 8}

	frame := newFrame(m, screen100)
	frame.Keys = playfield.Keys{playfield.KeyRight: true}
	require.NoError(t, system.Execute(frame))

	assert.Equal(t, ecs.Velocity{DX: 3}, velocity(m, player))
	assert.Equal(t, ecs.Velocity{DX: 1, DY: 1}, velocity(m, other))
}

func TestInputSystemWithoutVelocity(t *testing.T) {
	t.Run("idle surfaces lookup error", func(t *testing.T) {
		m := ecs.NewManager()
		player := playfield.Spawn(m, playfield.EntitySpec{})
		system := &playfield.InputSystem{Player: player, Speed: 3, BoostSpeed: 8}

		err := system.Execute(newFrame(m, screen100))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ecs.ErrComponentNotOnEntity))
	})

	t.Run("active axis attaches velocity", func(t *testing.T) {
		m := ecs.NewManager()
		player := playfield.Spawn(m, playfield.EntitySpec{})
		system := &playfield.InputSystem{Player: player, Speed: 3, BoostSpeed: 8}

		frame := newFrame(m, screen100)
		frame.Keys = playfield.Keys{playfield.KeyDown: true}
		require.NoError(t, system.Execute(frame))
		assert.Equal(t, ecs.Velocity{DY: 3}, velocity(m, player))
	})
}
