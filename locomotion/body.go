// Package locomotion implements the per-tick player controller: the motion
// integrator, the movement state machine and the animation driver. It must
// have zero dependencies on ebiten or any graphics library so the headless
// simulator can run it without a window.
package locomotion

import (
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// Direction is the horizontal facing of the player.
type Direction float64

const (
	Left  Direction = -1.0
	Right Direction = 1.0
)

// Sign returns -1 for Left and 1 for Right. Used as a horizontal scale when drawing.
func (d Direction) Sign() float64 {
	if d < 0 {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d < 0 {
		return "left"
	}
	return "right"
}

// MovementState is the discrete locomotion state derived every tick.
type MovementState int

const (
	Idle MovementState = iota
	Walk
	Run
	Jump
	Land
	stateCount // Must be last - used for array sizing
)

var stateNames = [stateCount]string{
	Idle: "idle",
	Walk: "walk",
	Run:  "run",
	Jump: "jump",
	Land: "land",
}

func (s MovementState) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("MovementState(%d)", int(s))
	}
	return stateNames[s]
}

// ParseMovementState maps a lowercase state name back to its MovementState.
func ParseMovementState(name string) (MovementState, error) {
	for s, n := range stateNames {
		if n == name {
			return MovementState(s), nil
		}
	}
	return Idle, fmt.Errorf("locomotion: unknown movement state %q", name)
}

// Input is the button snapshot for one tick.
type Input struct {
	Left        bool
	Right       bool
	Sprint      bool
	JumpPressed bool // Pressed this tick, not merely held
}

// PlayerBody is the controlled character.
//
// Position.Y is height above the ground plane and is never negative.
// Whenever Position.Y == 0 after a tick, VerticalSpeed == 0.
type PlayerBody struct {
	Position        math.Vec2
	Facing          Direction
	HorizontalSpeed float64 // per-tick displacement, recomputed every tick
	VerticalSpeed   float64 // per-tick displacement, carried while airborne
	State           MovementState
}

// NewPlayerBody returns a grounded, idle body at the origin facing right.
func NewPlayerBody() PlayerBody {
	return PlayerBody{
		Facing: Right,
		State:  Idle,
	}
}

// Grounded reports whether the body is standing on the ground plane.
func (b *PlayerBody) Grounded() bool {
	return b.Position.Y == 0
}

// Airborne reports whether the body is above the ground plane.
func (b *PlayerBody) Airborne() bool {
	return b.Position.Y > 0
}

// AnimationCursor tracks the current spritesheet frame for one animated entity.
type AnimationCursor struct {
	FrameIndex     int
	Elapsed        float64 // time accumulated towards the next frame
	Period         float64
	FlipHorizontal bool
}

// NewAnimationCursor returns a cursor on frame 0 using the tuning's cycle period.
func NewAnimationCursor(t Tuning) AnimationCursor {
	return AnimationCursor{
		FrameIndex: t.Clips[Idle].First,
		Period:     t.CyclePeriod,
	}
}
