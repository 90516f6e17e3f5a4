package config

import (
	"image/color"

	"github.com/automoto/stride/locomotion"
)

// SheetConfig describes the player spritesheet grid.
type SheetConfig struct {
	Path       string // file on disk; empty uses the embedded sheet
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
	PaddingY   int // vertical gap between rows
}

// Frames returns the number of cells in the sheet.
func (s SheetConfig) Frames() int {
	return s.Columns * s.Rows
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing      float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX   float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing   float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThresh float64 // Minimum per-tick speed to update look-ahead
	GroundScreenY        float64 // Screen row the ground plane is drawn at
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	Duration   float32 // seconds to ease back to 1.0
}

// ClockConfig selects how frame delta time is measured.
type ClockConfig struct {
	Mode     string  // "wall" or "fixed"
	MaxDelta float64 // upper bound for a single wall-clock delta, in seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay        bool // Draw the state/speed overlay
	LogTransitions bool // Log every movement state change
}

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	Scale  int // window size multiplier
}

// Global configuration instances
var C *Config
var Locomotion locomotion.Tuning
var Sheet SheetConfig
var Camera CameraConfig
var SquashStretch SquashStretchConfig
var Clock ClockConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Sky          = color.RGBA{R: 36, G: 40, B: 58, A: 255}
	Ground       = color.RGBA{R: 92, G: 84, B: 72, A: 255}
	GroundLine   = color.RGBA{R: 160, G: 148, B: 120, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Title:  "stride",
		Width:  320,
		Height: 180,
		Scale:  3,
	}

	Locomotion = locomotion.DefaultTuning()

	Sheet = SheetConfig{
		Columns:    10,
		Rows:       7,
		CellWidth:  48,
		CellHeight: 48,
		PaddingY:   2,
	}

	Camera = CameraConfig{
		FollowSmoothing:      0.1,
		LookAheadDistanceX:   40.0,
		LookAheadSmoothing:   0.05,
		LookAheadSpeedThresh: 0.1,
		GroundScreenY:        140.0,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.85,
		JumpScaleY: 1.15,
		LandScaleX: 1.2,
		LandScaleY: 0.8,
		Duration:   0.2,
	}

	Clock = ClockConfig{
		Mode:     "wall",
		MaxDelta: 0.1,
	}

	Debug = DebugConfig{
		Overlay:        false,
		LogTransitions: false,
	}
}
