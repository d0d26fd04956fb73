package playfield

import "github.com/rotisserie/eris"

var (
	ErrInvalidConfig = eris.New("invalid config")
	ErrBufferSize    = eris.New("pixel buffer does not match screen")
	ErrNoPlayer      = eris.New("layout has no player entity")
)
