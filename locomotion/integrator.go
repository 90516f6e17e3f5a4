package locomotion

// Motion reports what the integrator did during one tick. The state machine
// needs it because a speed alone can't tell walking from sprinting.
type Motion struct {
	SprintApplied bool
	Jumped        bool // a jump impulse was seeded this tick
	Landed        bool // the body touched down this tick
}

// Integrate advances body by one tick of dt seconds.
//
// Order matters: the jump impulse is seeded before gravity, gravity only
// acts on an airborne body, and the ground clamp runs last on every tick so
// the body can never end a tick below the plane or grounded with residual
// vertical speed.
func Integrate(body *PlayerBody, in Input, dt float64, t Tuning) Motion {
	if dt < 0 {
		dt = 0
	}
	var m Motion

	baseSpeed := t.BaseSpeed * dt
	sprintBonus := 0.0
	if in.Sprint {
		sprintBonus = t.SprintBonus * dt
	}

	// Right wins when both directions are held.
	switch {
	case in.Right:
		body.HorizontalSpeed = baseSpeed + sprintBonus
		body.Facing = Right
		m.SprintApplied = sprintBonus != 0
	case in.Left:
		body.HorizontalSpeed = -(baseSpeed + sprintBonus)
		body.Facing = Left
		m.SprintApplied = sprintBonus != 0
	default:
		body.HorizontalSpeed = 0
	}

	if in.JumpPressed && body.VerticalSpeed == 0 && body.Position.Y == 0 {
		body.VerticalSpeed = clamp(t.JumpImpulse*dt, 0, t.MaxJumpImpulse)
		m.Jumped = body.VerticalSpeed != 0
	}

	wasAirborne := body.Airborne()
	if wasAirborne {
		body.VerticalSpeed -= t.Gravity * dt
	}

	body.Position.X += body.HorizontalSpeed
	body.Position.Y += body.VerticalSpeed

	if body.Position.Y <= 0 {
		body.Position.Y = 0
		body.VerticalSpeed = 0
		m.Landed = wasAirborne
	}

	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
