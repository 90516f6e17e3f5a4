package config

// SettingsConfig lists the window scales the player can cycle through.
type SettingsConfig struct {
	WindowScales        []int
	DefaultScaleIndex   int
	PersistenceAppName  string
	PersistenceSettings string // gdata item key
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		WindowScales:        []int{2, 3, 4, 5},
		DefaultScaleIndex:   1,
		PersistenceAppName:  "stride",
		PersistenceSettings: "settings",
	}
}
