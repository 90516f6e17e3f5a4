package components

import (
	"github.com/automoto/stride/locomotion"
	"github.com/yohamta/donburi"
)

// PlayerData holds the controller state of the player entity. The locomotion
// structs are stored as-is; systems hand pointers to them to locomotion.Tick.
type PlayerData struct {
	Body   locomotion.PlayerBody
	Cursor locomotion.AnimationCursor
	Last   locomotion.Step // result of the most recent tick
	Ticks  int
}

var Player = donburi.NewComponentType[PlayerData]()
