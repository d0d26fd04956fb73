package playfield

import "github.com/plus3/pixecs/ecs"

// InputSystem turns the held-key snapshot into the player's velocity.
// Up wins over down and left wins over right. An axis with no key held is
// zeroed through ResetVelocity, so a player without a velocity component
// surfaces ecs.ErrComponentNotOnEntity.
type InputSystem struct {
	Player     ecs.Entity
	Speed      int32
	BoostSpeed int32
}

func (s *InputSystem) Execute(frame *Frame) error {
	speed := s.Speed
	if frame.Keys.IsHeld(KeyBoost) {
		speed = s.BoostSpeed
	}

	dx, xActive := axis(frame.Keys, KeyLeft, KeyRight, speed)
	dy, yActive := axis(frame.Keys, KeyUp, KeyDown, speed)

	if xActive || yActive {
		var current ecs.Velocity
		if vel, ok := frame.Manager.Components().Velocities.Get(s.Player); ok {
			current = *vel
		}
		if xActive {
			current.DX = dx
		}
		if yActive {
			current.DY = dy
		}
		frame.Manager.AddVelocity(s.Player, current.DX, current.DY)
	}

	if !xActive || !yActive {
		return frame.Manager.ResetVelocity(s.Player, !xActive, !yActive)
	}
	return nil
}

func axis(keys KeyState, negative, positive Key, speed int32) (int32, bool) {
	switch {
	case keys.IsHeld(negative):
		return -speed, true
	case keys.IsHeld(positive):
		return speed, true
	}
	return 0, false
}
