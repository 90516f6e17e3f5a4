package systems

import (
	"fmt"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/fonts"
	"github.com/automoto/stride/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(ecs)

	lines := debugLines(player, input, ebiten.ActualTPS())
	face := fonts.Mono.Get()
	lineHeight := face.Metrics().Height.Ceil()

	vector.FillRect(screen, 2, 2, 120, float32(len(lines)*lineHeight+4), cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 4, 4+(i+1)*lineHeight-2, cfg.Yellow)
	}

	// Anchor marker at the player's feet.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	x, y := WorldToScreen(components.Camera.Get(cameraEntry), player.Body.Position, screen.Bounds().Dx())
	vector.FillRect(screen, float32(x)-1, float32(y)-1, 3, 3, cfg.Purple, false)
}

func debugLines(player *components.PlayerData, input *components.InputData, tps float64) []string {
	b := &player.Body
	c := &player.Cursor
	return []string{
		fmt.Sprintf("state  %s", b.State),
		fmt.Sprintf("pos    %.1f, %.1f", b.Position.X, b.Position.Y),
		fmt.Sprintf("hs/vs  %.3f / %.3f", b.HorizontalSpeed, b.VerticalSpeed),
		fmt.Sprintf("facing %s", b.Facing),
		fmt.Sprintf("frame  %d flip=%t", c.FrameIndex, c.FlipHorizontal),
		fmt.Sprintf("tick   %d  tps %.0f", player.Ticks, tps),
		fmt.Sprintf("input  %s", input.LastInputMethod),
	}
}
