package ecs

// System performs one concern per tick over the store reachable from frame F.
// Systems must not keep references into the store between ticks.
type System[F any] interface {
	Execute(frame F) error
}

// SystemFunc adapts a function to the System interface.
type SystemFunc[F any] func(frame F) error

func (f SystemFunc[F]) Execute(frame F) error {
	return f(frame)
}
