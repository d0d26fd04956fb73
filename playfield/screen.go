package playfield

// Screen is the playfield size in pixels.
type Screen struct {
	Width, Height int
}

// Len returns the number of pixels in a buffer for this screen.
func (s Screen) Len() int {
	return s.Width * s.Height
}

// NewBuffer allocates a row-major 0xRRGGBB pixel buffer of the right size.
func (s Screen) NewBuffer() []uint32 {
	return make([]uint32, s.Len())
}
