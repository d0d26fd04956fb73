package playfield

import "github.com/plus3/pixecs/ecs"

// ClearSystem paints the whole buffer with one color before sprites are drawn.
type ClearSystem struct {
	Color uint32
}

func (s *ClearSystem) Execute(frame *Frame) error {
	for i := range frame.Buffer {
		frame.Buffer[i] = s.Color
	}
	return nil
}

// RenderSystem rasterizes every entity with a position and a sprite, in the
// position column's order. Later entities overwrite earlier ones.
type RenderSystem struct{}

func (s *RenderSystem) Execute(frame *Frame) error {
	store := frame.Manager.Components()
	for e, pos := range store.Positions.All() {
		sprite, ok := store.Sprites.Get(e)
		if !ok {
			continue
		}
		FillRect(frame.Buffer, frame.Screen, *pos, *sprite)
	}
	return nil
}

// FillRect draws sprite with its top-left corner at pos, dropping every pixel
// outside the screen or past the end of buffer. It returns the number of
// pixels written.
func FillRect(buffer []uint32, screen Screen, pos ecs.Position, sprite ecs.Sprite) int {
	x0, y0 := int(pos.X), int(pos.Y)
	if x0 >= screen.Width || y0 >= screen.Height {
		return 0
	}

	x1 := min(x0+int(sprite.Width), screen.Width)
	y1 := min(y0+int(sprite.Height), screen.Height)

	written := 0
	for row := y0; row < y1; row++ {
		start := row*screen.Width + x0
		end := row*screen.Width + x1
		if end > len(buffer) {
			end = len(buffer)
		}
		if start >= end {
			break
		}

		line := buffer[start:end]
		for i := range line {
			line[i] = sprite.Color
		}
		written += len(line)
	}
	return written
}
