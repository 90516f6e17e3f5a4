package systems

import (
	"math"

	"github.com/automoto/stride/components"
	"github.com/automoto/stride/config"
	"github.com/automoto/stride/locomotion"
	"github.com/automoto/stride/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the player horizontally. The ground stays on a fixed
// screen row so only X is tracked.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	followCamera(camera, &components.Player.Get(playerEntry).Body)
}

func followCamera(camera *components.CameraData, body *locomotion.PlayerBody) {
	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(body.HorizontalSpeed) > config.Camera.LookAheadSpeedThresh {
		target := body.Facing.Sign() * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := body.Position.X + camera.LookAheadX
	if !camera.Snapped {
		camera.Position.X = targetX
		camera.Snapped = true
		return
	}
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
}

// WorldToScreen maps a world point (y up, ground at 0) to screen pixels for a
// screen of the given width.
func WorldToScreen(camera *components.CameraData, p dmath.Vec2, width int) (float64, float64) {
	x := p.X - camera.Position.X + float64(width)/2
	y := config.Camera.GroundScreenY - (p.Y - camera.Position.Y)
	return x, y
}
