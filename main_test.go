package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/stride/config"
	"github.com/automoto/stride/systems"
)

func TestApplyConfigPrecedence(t *testing.T) {
	debug, settings := config.Debug, config.Settings
	t.Cleanup(func() { config.Debug, config.Settings = debug, settings })

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "stride.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name        string
		content     string // empty runs without a file
		saved       *systems.SavedSettings
		wantOverlay bool
		wantScale   int
	}{
		{
			name:        "file overrides saved overlay",
			content:     "debug:\n  overlay: true\n",
			saved:       &systems.SavedSettings{DebugOverlay: false, ScaleIndex: 2},
			wantOverlay: true,
			wantScale:   2,
		},
		{
			name:        "saved overlay kept when file is silent",
			content:     "locomotion:\n  base_speed: 50\n",
			saved:       &systems.SavedSettings{DebugOverlay: true, ScaleIndex: 0},
			wantOverlay: true,
			wantScale:   0,
		},
		{
			name:        "no file",
			saved:       &systems.SavedSettings{DebugOverlay: true, ScaleIndex: 3},
			wantOverlay: true,
			wantScale:   3,
		},
		{
			name:        "nothing saved",
			content:     "debug:\n  overlay: false\n",
			wantOverlay: false,
			wantScale:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.Debug, config.Settings = debug, settings
			config.Debug.Overlay = false
			config.Settings.DefaultScaleIndex = 1
			loco := config.Locomotion
			t.Cleanup(func() { config.Locomotion = loco })

			path := ""
			if tt.content != "" {
				path = write(t, tt.content)
			}
			if err := applyConfig(path, tt.saved); err != nil {
				t.Fatalf("applyConfig() error = %v", err)
			}
			if config.Debug.Overlay != tt.wantOverlay {
				t.Errorf("Debug.Overlay = %v, want %v", config.Debug.Overlay, tt.wantOverlay)
			}
			if config.Settings.DefaultScaleIndex != tt.wantScale {
				t.Errorf("DefaultScaleIndex = %d, want %d", config.Settings.DefaultScaleIndex, tt.wantScale)
			}
		})
	}
}
