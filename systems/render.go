package systems

import (
	"math"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// groundMarkSpacing is the world distance between the ground tick marks that
// make horizontal motion visible.
const groundMarkSpacing = 32.0

// DrawGround fills the sky and draws the ground plane under the camera.
func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width := screen.Bounds().Dx()
	height := float32(screen.Bounds().Dy())
	groundY := float32(cfg.Camera.GroundScreenY)

	vector.FillRect(screen, 0, groundY, float32(width), height-groundY, cfg.Ground, false)
	vector.FillRect(screen, 0, groundY, float32(width), 1, cfg.GroundLine, false)

	left := camera.Position.X - float64(width)/2
	first := math.Floor(left/groundMarkSpacing) * groundMarkSpacing
	for x := first; x < left+float64(width)+groundMarkSpacing; x += groundMarkSpacing {
		sx := float32(x - left)
		vector.FillRect(screen, sx, groundY+1, 1, 4, cfg.GroundLine, false)
	}
}

// DrawPlayer draws the player's current frame anchored at the bottom centre
// of its position.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	sheet := components.Sheet.Get(playerEntry).Sheet
	if sheet == nil {
		return
	}

	frame := sheet.Frame(player.Cursor.FrameIndex)
	if frame == nil {
		return
	}

	scaleX, scaleY := 1.0, 1.0
	if playerEntry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(playerEntry)
		scaleX, scaleY = ss.ScaleX, ss.ScaleY
	}

	sx, sy := WorldToScreen(camera, player.Body.Position, screen.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = frameGeoM(frame.Bounds().Dx(), frame.Bounds().Dy(), player.Cursor.FlipHorizontal, scaleX, scaleY, sx, sy)
	screen.DrawImage(frame, op)
}

// frameGeoM places a w x h frame so its bottom centre lands on (x, y),
// mirrored when flip is set and scaled about the feet.
func frameGeoM(w, h int, flip bool, scaleX, scaleY, x, y float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(w)/2, -float64(h))
	if flip {
		g.Scale(-1, 1)
	}
	g.Scale(scaleX, scaleY)
	g.Translate(x, y)
	return g
}
