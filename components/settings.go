package components

import "github.com/yohamta/donburi"

// SettingsData holds the player-facing preferences that survive restarts.
type SettingsData struct {
	Debug      bool
	ScaleIndex int
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
