package factory

import (
	"github.com/automoto/stride/archetypes"
	"github.com/automoto/stride/assets"
	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/locomotion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player grounded at x, idle and facing right.
func CreatePlayer(ecs *ecs.ECS, x float64, sheet *assets.Spritesheet) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := locomotion.NewPlayerBody()
	body.Position = math.Vec2{X: x, Y: 0}
	components.Player.SetValue(player, components.PlayerData{
		Body:   body,
		Cursor: locomotion.NewAnimationCursor(cfg.Locomotion),
	})
	components.Sheet.SetValue(player, components.SheetData{Sheet: sheet})

	return player
}
