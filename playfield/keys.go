package playfield

// Key names an input the binder understands.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyBoost
)

// KeyState is a snapshot of held keys taken once per tick by the driver.
type KeyState interface {
	IsHeld(key Key) bool
}

// Keys is a KeyState backed by a set of held keys.
type Keys map[Key]bool

func (k Keys) IsHeld(key Key) bool {
	return k[key]
}

// NoKeys is a snapshot with nothing held.
var NoKeys KeyState = Keys(nil)
