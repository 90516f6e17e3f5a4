package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point drawn at the screen centre. World y grows
// upwards; the renderer flips it.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed offset in the facing direction
	Snapped    bool    // false until the first follow, which jumps straight to the target
}

var Camera = donburi.NewComponentType[CameraData]()
