package locomotion

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned by Tuning.Validate.
var ErrInvalidTuning = errors.New("locomotion: invalid tuning")

// ClipMode selects how a clip advances when the animation timer fires.
type ClipMode int

const (
	Loop     ClipMode = iota // wrap around inside the clip
	HoldLast                 // advance until the last frame, then stay there
	Pin                      // always show the first frame
)

func (m ClipMode) String() string {
	switch m {
	case Loop:
		return "loop"
	case HoldLast:
		return "hold"
	case Pin:
		return "pin"
	}
	return fmt.Sprintf("ClipMode(%d)", int(m))
}

// ParseClipMode is the inverse of ClipMode.String.
func ParseClipMode(s string) (ClipMode, error) {
	switch s {
	case "loop":
		return Loop, nil
	case "hold":
		return HoldLast, nil
	case "pin":
		return Pin, nil
	}
	return Loop, fmt.Errorf("locomotion: unknown clip mode %q", s)
}

// Clip is a contiguous run of spritesheet cells played for one movement state.
type Clip struct {
	First int
	Count int
	Mode  ClipMode
}

// Last returns the final sheet index of the clip.
func (c Clip) Last() int {
	return c.First + c.Count - 1
}

// Next returns the sheet index shown after frame when the timer fires.
// Stepping is computed from the absolute sheet index, so a clip is entered
// at First + (frame+1) mod Count regardless of which clip frame came from.
func (c Clip) Next(frame int) int {
	switch c.Mode {
	case Pin:
		return c.First
	case HoldLast:
		if frame == c.Last() {
			return frame
		}
	}
	return c.First + (frame+1)%c.Count
}

// ClipTable holds one clip per movement state.
type ClipTable [stateCount]Clip

// Fits checks that every clip addresses cells inside a sheet of frames cells.
func (ct ClipTable) Fits(frames int) error {
	for s, c := range ct {
		if c.First < 0 || c.Last() >= frames {
			return fmt.Errorf("%w: %s clip [%d..%d] outside sheet of %d frames",
				ErrInvalidTuning, MovementState(s), c.First, c.Last(), frames)
		}
	}
	return nil
}

// Tuning holds every constant the controller uses. Speeds are per second and
// are scaled by the tick's delta time.
type Tuning struct {
	BaseSpeed      float64 // horizontal walk speed
	SprintBonus    float64 // added to BaseSpeed while sprinting
	JumpImpulse    float64 // seeds vertical speed, before clamping
	MaxJumpImpulse float64 // upper clamp for the seeded per-tick vertical speed
	Gravity        float64 // vertical speed lost per second while airborne
	LandThreshold  float64 // falling faster than this switches Jump to Land

	CyclePeriod float64 // seconds between animation frames

	// ResetOnTransition snaps the cursor to the first frame of the new
	// clip, and restarts the timer, whenever the movement state changes.
	ResetOnTransition bool

	Clips ClipTable
}

// DefaultClips is the layout of the 10x7 player spritesheet.
func DefaultClips() ClipTable {
	return ClipTable{
		Idle: {First: 0, Count: 10, Mode: Loop},
		Walk: {First: 10, Count: 8, Mode: Loop},
		Run:  {First: 50, Count: 8, Mode: Loop},
		Jump: {First: 30, Count: 3, Mode: HoldLast},
		Land: {First: 41, Count: 1, Mode: Pin},
	}
}

// DefaultTuning returns the stock controller feel.
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:      50,
		SprintBonus:    60,
		JumpImpulse:    330,
		MaxJumpImpulse: 5,
		Gravity:        300.0 / 25.0,
		LandThreshold:  200,
		CyclePeriod:    0.15,
		Clips:          DefaultClips(),
	}
}

// Validate rejects tunings that would break the per-tick update.
func (t Tuning) Validate() error {
	if t.CyclePeriod <= 0 {
		return fmt.Errorf("%w: cycle period must be positive, got %v", ErrInvalidTuning, t.CyclePeriod)
	}
	for name, v := range map[string]float64{
		"base speed":       t.BaseSpeed,
		"sprint bonus":     t.SprintBonus,
		"jump impulse":     t.JumpImpulse,
		"max jump impulse": t.MaxJumpImpulse,
		"gravity":          t.Gravity,
		"land threshold":   t.LandThreshold,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, name, v)
		}
	}
	for s, c := range t.Clips {
		if c.Count <= 0 {
			return fmt.Errorf("%w: %s clip has %d frames", ErrInvalidTuning, MovementState(s), c.Count)
		}
		if c.First < 0 {
			return fmt.Errorf("%w: %s clip starts at %d", ErrInvalidTuning, MovementState(s), c.First)
		}
		if c.Mode < Loop || c.Mode > Pin {
			return fmt.Errorf("%w: %s clip has unknown mode %d", ErrInvalidTuning, MovementState(s), int(c.Mode))
		}
	}
	return nil
}
