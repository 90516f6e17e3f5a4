package systems

import (
	"testing"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/locomotion"
	"github.com/yohamta/donburi/features/math"
)

func TestFollowCamera(t *testing.T) {
	body := locomotion.NewPlayerBody()
	body.Position = math.Vec2{X: 100, Y: 0}
	var camera components.CameraData

	followCamera(&camera, &body)
	if camera.Position.X != 100 || !camera.Snapped {
		t.Fatalf("first follow should snap, got %+v", camera)
	}

	// Moving right builds look-ahead to the right and the camera trails.
	body.HorizontalSpeed = 1
	body.Position.X = 110
	followCamera(&camera, &body)
	if camera.LookAheadX <= 0 {
		t.Errorf("LookAheadX = %v, want > 0", camera.LookAheadX)
	}
	if camera.Position.X <= 100 || camera.Position.X >= 110+camera.LookAheadX {
		t.Errorf("Position.X = %v, want between 100 and target", camera.Position.X)
	}

	// Standing still freezes the look-ahead.
	body.HorizontalSpeed = 0
	before := camera.LookAheadX
	followCamera(&camera, &body)
	if camera.LookAheadX != before {
		t.Errorf("LookAheadX changed while idle")
	}
}

func TestWorldToScreen(t *testing.T) {
	camera := &components.CameraData{Position: math.Vec2{X: 50, Y: 0}}

	x, y := WorldToScreen(camera, math.Vec2{X: 50, Y: 0}, 320)
	if x != 160 || y != cfg.Camera.GroundScreenY {
		t.Errorf("camera centre maps to (%v, %v)", x, y)
	}

	_, y = WorldToScreen(camera, math.Vec2{X: 50, Y: 20}, 320)
	if y != cfg.Camera.GroundScreenY-20 {
		t.Errorf("y up: got %v", y)
	}
}

func TestFrameGeoM(t *testing.T) {
	tests := []struct {
		name         string
		flip         bool
		srcX, srcY   float64
		wantX, wantY float64
	}{
		{"bottom centre lands on anchor", false, 24, 48, 100, 140},
		{"top left", false, 0, 0, 76, 92},
		{"flipped top left goes right", true, 0, 0, 124, 92},
		{"flipped bottom centre unchanged", true, 24, 48, 100, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := frameGeoM(48, 48, tt.flip, 1, 1, 100, 140)
			x, y := g.Apply(tt.srcX, tt.srcY)
			if !approxEqual(x, tt.wantX) || !approxEqual(y, tt.wantY) {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.srcX, tt.srcY, x, y, tt.wantX, tt.wantY)
			}
		})
	}

	// Squash keeps the feet on the ground.
	g := frameGeoM(48, 48, false, 1.2, 0.8, 100, 140)
	if _, y := g.Apply(24, 48); !approxEqual(y, 140) {
		t.Errorf("squashed feet at y=%v, want 140", y)
	}
}
