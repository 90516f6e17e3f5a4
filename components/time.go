package components

import "github.com/yohamta/donburi"

// FrameTimeData is the delta time for the current tick, written once by the
// clock system and read by everything after it.
type FrameTimeData struct {
	Delta float64 // seconds
	Total float64 // seconds of unpaused play
}

var FrameTime = donburi.NewComponentType[FrameTimeData]()
