// Package playfield drives a fixed-timestep 2D loop on top of package ecs.
//
// Each call to Engine.Tick runs, in order, the input binder, the movement
// system, the clear stage and the render system against one ecs.Manager and
// writes the frame into a caller-owned pixel buffer. Window creation, frame
// pacing and presentation belong to the caller.
package playfield
