// Package layers holds the ECS draw layers. Entities are created on Default;
// Overlay renderers draw after it in screen space.
package layers

import "github.com/yohamta/donburi/ecs"

const (
	Default ecs.LayerID = iota
	Overlay
)
