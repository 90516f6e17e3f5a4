package locomotion

// Transition records the movement state before and after a tick.
type Transition struct {
	From MovementState
	To   MovementState
}

// Changed reports whether the state switched this tick.
func (tr Transition) Changed() bool {
	return tr.From != tr.To
}

// Classify derives body.State from the speeds left by Integrate.
//
// Rules run in a fixed precedence:
//  1. vertical motion, unless already landing: Jump while rising or only
//     mildly falling, Land once falling faster than LandThreshold.
//  2. grounded horizontal motion: Run when the sprint bonus was applied,
//     otherwise Walk.
//  3. no motion at all: Idle. Checked last so it never masks a jump arc.
//
// Land is sticky while vertical speed is non-zero, so the pose does not
// flicker back to Jump during the final ticks of a fall.
func Classify(body *PlayerBody, m Motion, dt float64, t Tuning) Transition {
	if dt < 0 {
		dt = 0
	}
	tr := Transition{From: body.State}

	if body.VerticalSpeed != 0 && body.State != Land {
		if body.VerticalSpeed > -t.LandThreshold*dt {
			body.State = Jump
		} else {
			body.State = Land
		}
	}

	if body.HorizontalSpeed != 0 && body.VerticalSpeed == 0 {
		if m.SprintApplied {
			body.State = Run
		} else {
			body.State = Walk
		}
	}

	if body.HorizontalSpeed == 0 && body.VerticalSpeed == 0 {
		body.State = Idle
	}

	tr.To = body.State
	return tr
}
