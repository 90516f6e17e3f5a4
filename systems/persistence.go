package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	DebugOverlay bool `json:"debugOverlay"`
	ScaleIndex   int  `json:"scaleIndex"`
}

// itemStore is the part of *gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.PersistenceAppName,
	})
	if err != nil {
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Settings.PersistenceSettings)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(cfg.Settings.PersistenceSettings, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		DebugOverlay: s.Debug,
		ScaleIndex:   s.ScaleIndex,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the tuning file is loaded, so both the file and
// command-line flags applied afterwards still win.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.Overlay = saved.DebugOverlay
	if saved.ScaleIndex >= 0 && saved.ScaleIndex < len(cfg.Settings.WindowScales) {
		cfg.Settings.DefaultScaleIndex = saved.ScaleIndex
	}
}
