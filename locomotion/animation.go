package locomotion

import gomath "math"

// Animate updates cursor for one tick and reports whether the frame timer fired.
//
// The flip is applied before the frame advances so a turn never shows the
// previous frame mirrored the wrong way for a tick.
func Animate(cursor *AnimationCursor, body *PlayerBody, tr Transition, dt float64, t Tuning) bool {
	if dt < 0 {
		dt = 0
	}
	cursor.FlipHorizontal = body.Facing == Left

	if cursor.Period <= 0 {
		cursor.Period = t.CyclePeriod
	}

	clip := t.Clips[body.State]
	if t.ResetOnTransition && tr.Changed() {
		cursor.FrameIndex = clip.First
		cursor.Elapsed = 0
	}

	cursor.Elapsed += dt
	if cursor.Elapsed < cursor.Period {
		return false
	}
	// One advance per tick; a long frame drops the extra cycles.
	cursor.Elapsed = gomath.Mod(cursor.Elapsed, cursor.Period)
	cursor.FrameIndex = clip.Next(cursor.FrameIndex)
	return true
}
