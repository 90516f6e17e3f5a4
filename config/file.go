package config

import (
	"fmt"
	"os"

	"github.com/automoto/stride/locomotion"
	"gopkg.in/yaml.v3"
)

// File is the on-disk tuning file. Every field is optional; absent keys keep
// the value already in effect.
type File struct {
	Locomotion *LocomotionFile `yaml:"locomotion"`
	Sheet      *SheetFile      `yaml:"sheet"`
	Clock      *ClockFile      `yaml:"clock"`
	Debug      *DebugFile      `yaml:"debug"`
}

type LocomotionFile struct {
	BaseSpeed         *float64            `yaml:"base_speed"`
	SprintBonus       *float64            `yaml:"sprint_bonus"`
	JumpImpulse       *float64            `yaml:"jump_impulse"`
	MaxJumpImpulse    *float64            `yaml:"max_jump_impulse"`
	Gravity           *float64            `yaml:"gravity"`
	LandThreshold     *float64            `yaml:"land_threshold"`
	CyclePeriod       *float64            `yaml:"cycle_period"`
	ResetOnTransition *bool               `yaml:"reset_on_transition"`
	Clips             map[string]ClipFile `yaml:"clips"`
}

type ClipFile struct {
	First *int   `yaml:"first"`
	Count *int   `yaml:"count"`
	Mode  string `yaml:"mode"`
}

type SheetFile struct {
	Path string `yaml:"path"`
}

type ClockFile struct {
	Mode     string   `yaml:"mode"`
	MaxDelta *float64 `yaml:"max_delta"`
}

type DebugFile struct {
	Overlay        *bool `yaml:"overlay"`
	LogTransitions *bool `yaml:"log_transitions"`
}

// Parse decodes a tuning file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &f, nil
}

// ReadFile reads and decodes the tuning file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// ApplyTuning overlays the locomotion section onto base and validates the
// result against a sheet of frames cells. base is not modified.
func (f *File) ApplyTuning(base locomotion.Tuning, frames int) (locomotion.Tuning, error) {
	t := base
	if l := f.Locomotion; l != nil {
		setFloat(&t.BaseSpeed, l.BaseSpeed)
		setFloat(&t.SprintBonus, l.SprintBonus)
		setFloat(&t.JumpImpulse, l.JumpImpulse)
		setFloat(&t.MaxJumpImpulse, l.MaxJumpImpulse)
		setFloat(&t.Gravity, l.Gravity)
		setFloat(&t.LandThreshold, l.LandThreshold)
		setFloat(&t.CyclePeriod, l.CyclePeriod)
		if l.ResetOnTransition != nil {
			t.ResetOnTransition = *l.ResetOnTransition
		}

		for name, cf := range l.Clips {
			state, err := locomotion.ParseMovementState(name)
			if err != nil {
				return base, fmt.Errorf("config: clips: %w", err)
			}
			clip := t.Clips[state]
			if cf.First != nil {
				clip.First = *cf.First
			}
			if cf.Count != nil {
				clip.Count = *cf.Count
			}
			if cf.Mode != "" {
				mode, err := locomotion.ParseClipMode(cf.Mode)
				if err != nil {
					return base, fmt.Errorf("config: clips.%s: %w", name, err)
				}
				clip.Mode = mode
			}
			t.Clips[state] = clip
		}
	}

	if err := t.Validate(); err != nil {
		return base, err
	}
	if err := t.Clips.Fits(frames); err != nil {
		return base, err
	}
	return t, nil
}

// Load reads path and applies it to the global configuration. Nothing is
// changed when the file is invalid.
func Load(path string) error {
	f, err := ReadFile(path)
	if err != nil {
		return err
	}

	t, err := f.ApplyTuning(Locomotion, Sheet.Frames())
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}

	clock := Clock
	if c := f.Clock; c != nil {
		if c.Mode != "" {
			if c.Mode != "wall" && c.Mode != "fixed" {
				return fmt.Errorf("config: %s: unknown clock mode %q", path, c.Mode)
			}
			clock.Mode = c.Mode
		}
		setFloat(&clock.MaxDelta, c.MaxDelta)
	}

	Locomotion = t
	Clock = clock
	if f.Sheet != nil && f.Sheet.Path != "" {
		Sheet.Path = f.Sheet.Path
	}
	if d := f.Debug; d != nil {
		if d.Overlay != nil {
			Debug.Overlay = *d.Overlay
		}
		if d.LogTransitions != nil {
			Debug.LogTransitions = *d.LogTransitions
		}
	}
	return nil
}

// ReloadTuning re-reads only the locomotion section of path. Used for hot
// reload, where swapping the sheet or the clock mid-game is not supported.
func ReloadTuning(path string) error {
	f, err := ReadFile(path)
	if err != nil {
		return err
	}
	t, err := f.ApplyTuning(Locomotion, Sheet.Frames())
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	Locomotion = t
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
