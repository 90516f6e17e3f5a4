package locomotion

// Step is everything one tick of the pipeline produced.
type Step struct {
	Motion     Motion
	Transition Transition
	Advanced   bool // the animation timer fired and the frame moved
}

// Tick runs integrator, state machine and animation driver, in that order,
// for one entity.
func Tick(body *PlayerBody, cursor *AnimationCursor, in Input, dt float64, t Tuning) Step {
	var s Step
	s.Motion = Integrate(body, in, dt, t)
	s.Transition = Classify(body, s.Motion, dt, t)
	s.Advanced = Animate(cursor, body, s.Transition, dt, t)
	return s
}

// Player bundles the state owned by one controlled character.
type Player struct {
	Body   PlayerBody
	Cursor AnimationCursor
}

// NewPlayer returns a player ready for its first tick.
func NewPlayer(t Tuning) *Player {
	return &Player{
		Body:   NewPlayerBody(),
		Cursor: NewAnimationCursor(t),
	}
}

// Update runs one tick of the pipeline on p.
func (p *Player) Update(in Input, dt float64, t Tuning) Step {
	return Tick(&p.Body, &p.Cursor, in, dt, t)
}
