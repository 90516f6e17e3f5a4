package systems

import (
	"log"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/automoto/stride/locomotion"
	"github.com/automoto/stride/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one controller tick for the player entity.
// Must run after UpdateInput and the clock system.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	input := getOrCreateInput(ecs)
	dt := GetOrCreateFrameTime(ecs).Delta

	// Hot reload may have changed the period.
	player.Cursor.Period = cfg.Locomotion.CyclePeriod

	step := locomotion.Tick(&player.Body, &player.Cursor, Snapshot(input), dt, cfg.Locomotion)
	player.Last = step
	player.Ticks++

	if step.Motion.Jumped {
		TriggerSquashStretch(entry, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
	}
	if step.Motion.Landed {
		TriggerSquashStretch(entry, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
	}

	if step.Transition.Changed() && cfg.Debug.LogTransitions {
		log.Printf("player: %s -> %s (x=%.2f y=%.2f hs=%.3f vs=%.3f frame=%d)",
			step.Transition.From, step.Transition.To,
			player.Body.Position.X, player.Body.Position.Y,
			player.Body.HorizontalSpeed, player.Body.VerticalSpeed,
			player.Cursor.FrameIndex)
	}
}
