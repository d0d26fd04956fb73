package ecs

import "github.com/rotisserie/eris"

var (
	// ErrComponentNotOnEntity is returned when an operation addresses a
	// component the entity does not have.
	ErrComponentNotOnEntity = eris.New("component not on entity")
)
