package playfield_test

import (
	"testing"

	"github.com/plus3/pixecs/ecs"
	"github.com/plus3/pixecs/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countColor(buffer []uint32, color uint32) int {
	n := 0
	for _, p := range buffer {
		if p == color {
			n++
		}
	}
	return n
}

func TestFillRect(t *testing.T) {
	screen := playfield.Screen{Width: 10, Height: 8}

	tests := []struct {
		name    string
		pos     ecs.Position
		w, h    uint32
		written int
	}{
		{"inside", ecs.Position{X: 1, Y: 1}, 3, 2, 6},
		{"clipped right", ecs.Position{X: 8, Y: 0}, 5, 2, 4},
		{"clipped bottom", ecs.Position{X: 0, Y: 6}, 2, 5, 4},
		{"clipped corner", ecs.Position{X: 9, Y: 7}, 4, 4, 1},
		{"top-left off screen", ecs.Position{X: 10, Y: 0}, 3, 3, 0},
		{"below screen", ecs.Position{X: 0, Y: 200}, 3, 3, 0},
		{"empty sprite", ecs.Position{X: 2, Y: 2}, 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := screen.NewBuffer()
			n := playfield.FillRect(buffer, screen, tt.pos, ecs.Sprite{Width: tt.w, Height: tt.h, Color: 0xABCDEF})
			assert.Equal(t, tt.written, n)
			assert.Equal(t, tt.written, countColor(buffer, 0xABCDEF))
		})
	}
}

func TestFillRectDoesNotWrapRows(t *testing.T) {
	screen := playfield.Screen{Width: 4, Height: 4}
	buffer := screen.NewBuffer()

	playfield.FillRect(buffer, screen, ecs.Position{X: 3, Y: 0}, ecs.Sprite{Width: 2, Height: 1, Color: 1})

	assert.Equal(t, []uint32{0, 0, 0, 1, 0, 0, 0, 0}, buffer[:8])
}

func TestFillRectShortBuffer(t *testing.T) {
	screen := playfield.Screen{Width: 4, Height: 4}
	buffer := make([]uint32, 6)

	n := playfield.FillRect(buffer, screen, ecs.Position{X: 0, Y: 0}, ecs.Sprite{Width: 4, Height: 4, Color: 7})

	assert.Equal(t, 6, n)
	assert.Equal(t, 6, countColor(buffer, 7))
}

func TestRenderSystem(t *testing.T) {
	t.Run("draws sprite pixels only", func(t *testing.T) {
		m := ecs.NewManager()
		playfield.Spawn(m, playfield.EntitySpec{
			Position: ecs.Position{X: 2, Y: 3},
			Sprite:   &ecs.Sprite{Width: 4, Height: 5, Color: 0x00FF00},
		})
		playfield.Spawn(m, playfield.EntitySpec{Position: ecs.Position{X: 0, Y: 0}})

		frame := newFrame(m, playfield.Screen{Width: 20, Height: 20})
		require.NoError(t, (&playfield.RenderSystem{}).Execute(frame))

		assert.Equal(t, 20, countColor(frame.Buffer, 0x00FF00))
		assert.Equal(t, uint32(0x00FF00), frame.Buffer[3*20+2])
		assert.Equal(t, uint32(0x00FF00), frame.Buffer[7*20+5])
		assert.Equal(t, uint32(0), frame.Buffer[0])
	})

	t.Run("later entity wins overlap", func(t *testing.T) {
		m := ecs.NewManager()
		playfield.Spawn(m, playfield.EntitySpec{
			Position: ecs.Position{X: 0, Y: 0},
			Sprite:   &ecs.Sprite{Width: 6, Height: 6, Color: 0xFF0000},
		})
		playfield.Spawn(m, playfield.EntitySpec{
			Position: ecs.Position{X: 4, Y: 4},
			Sprite:   &ecs.Sprite{Width: 6, Height: 6, Color: 0x0000FF},
		})

		frame := newFrame(m, playfield.Screen{Width: 10, Height: 10})
		require.NoError(t, (&playfield.RenderSystem{}).Execute(frame))

		assert.Equal(t, uint32(0x0000FF), frame.Buffer[4*10+4])
		assert.Equal(t, uint32(0x0000FF), frame.Buffer[5*10+5])
		assert.Equal(t, uint32(0xFF0000), frame.Buffer[3*10+3])
		assert.Equal(t, 36-4, countColor(frame.Buffer, 0xFF0000))
		assert.Equal(t, 36, countColor(frame.Buffer, 0x0000FF))
	})

	t.Run("partially off screen", func(t *testing.T) {
		m := ecs.NewManager()
		playfield.Spawn(m, playfield.EntitySpec{
			Position: ecs.Position{X: 95, Y: 98},
			Sprite:   &ecs.Sprite{Width: 20, Height: 20, Color: 0x123456},
		})

		frame := newFrame(m, screen100)
		require.NotPanics(t, func() {
			require.NoError(t, (&playfield.RenderSystem{}).Execute(frame))
		})
		assert.Equal(t, 5*2, countColor(frame.Buffer, 0x123456))
	})
}

func TestClearSystem(t *testing.T) {
	frame := newFrame(ecs.NewManager(), playfield.Screen{Width: 3, Height: 2})
	frame.Buffer[4] = 9

	require.NoError(t, (&playfield.ClearSystem{Color: 0x00AA11}).Execute(frame))
	assert.Equal(t, 6, countColor(frame.Buffer, 0x00AA11))
}
