package systems

import (
	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects eases squash/stretch back to normal scale and removes the
// component once both axes are done.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(GetOrCreateFrameTime(ecs).Delta)
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		if stepSquashStretch(ss, dt) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

// stepSquashStretch advances both tweens by dt and reports whether both finished.
func stepSquashStretch(ss *components.SquashStretchData, dt float32) bool {
	doneX, doneY := true, true
	if ss.TweenX != nil {
		var x float32
		x, doneX = ss.TweenX.Update(dt)
		ss.ScaleX = float64(x)
	}
	if ss.TweenY != nil {
		var y float32
		y, doneY = ss.TweenY.Update(dt)
		ss.ScaleY = float64(y)
	}
	if doneX && doneY {
		ss.ScaleX, ss.ScaleY = 1, 1
		return true
	}
	return false
}

func newSquashStretch(scaleX, scaleY float64) components.SquashStretchData {
	d := cfg.SquashStretch.Duration
	return components.SquashStretchData{
		ScaleX: scaleX,
		ScaleY: scaleY,
		TweenX: gween.New(float32(scaleX), 1, d, ease.OutQuad),
		TweenY: gween.New(float32(scaleY), 1, d, ease.OutQuad),
	}
}

// TriggerSquashStretch adds a squash/stretch effect to an entity, restarting
// any effect already running.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, newSquashStretch(scaleX, scaleY))
}
