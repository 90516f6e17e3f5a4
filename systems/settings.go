package systems

import (
	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug overlay and window scale hotkeys. It runs
// while paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.Overlay = settings.Debug
		settings.Dirty = true
	}

	if GetAction(input, cfg.ActionCycleScale).JustPressed {
		settings.ScaleIndex = NextScaleIndex(settings.ScaleIndex)
		ApplyWindowScale(settings.ScaleIndex)
		settings.Dirty = true
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// NextScaleIndex wraps around cfg.Settings.WindowScales.
func NextScaleIndex(i int) int {
	n := len(cfg.Settings.WindowScales)
	if n == 0 {
		return 0
	}
	return (i + 1) % n
}

// WindowScale returns the multiplier at index i, falling back to cfg.C.Scale.
func WindowScale(i int) int {
	if i < 0 || i >= len(cfg.Settings.WindowScales) {
		return cfg.C.Scale
	}
	return cfg.Settings.WindowScales[i]
}

func ApplyWindowScale(i int) {
	s := WindowScale(i)
	ebiten.SetWindowSize(cfg.C.Width*s, cfg.C.Height*s)
}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the global configuration on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			ScaleIndex: cfg.Settings.DefaultScaleIndex,
		})
	}
	return components.Settings.Get(entry)
}
