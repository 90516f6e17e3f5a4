// Package sim drives the locomotion pipeline from a scripted button
// sequence without a window. It is used for tuning and by tests that need
// long deterministic runs.
package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidScript = errors.New("sim: invalid script")

// Button names accepted in hold and press lists.
const (
	ButtonLeft   = "left"
	ButtonRight  = "right"
	ButtonSprint = "sprint"
	ButtonJump   = "jump"
)

// Script is a sequence of segments run back to back.
type Script struct {
	Name     string    `yaml:"name"`
	DT       float64   `yaml:"dt"` // seconds per tick unless a segment overrides it
	Segments []Segment `yaml:"segments"`
}

// Segment holds buttons for a number of ticks. Buttons in Press are down on
// the first tick of the segment only, and a jump in Press counts as a new
// press even when the previous segment ended with jump held.
type Segment struct {
	Ticks int      `yaml:"ticks"`
	DT    *float64 `yaml:"dt"`
	Hold  []string `yaml:"hold"`
	Press []string `yaml:"press"`
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sim: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: read %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

func (s *Script) Validate() error {
	if s.DT < 0 {
		return fmt.Errorf("%w: negative dt %v", ErrInvalidScript, s.DT)
	}
	for i, seg := range s.Segments {
		if seg.Ticks < 0 {
			return fmt.Errorf("%w: segment %d: negative ticks", ErrInvalidScript, i)
		}
		if seg.DT != nil && *seg.DT < 0 {
			return fmt.Errorf("%w: segment %d: negative dt", ErrInvalidScript, i)
		}
		for _, b := range append(append([]string{}, seg.Hold...), seg.Press...) {
			if !validButton(b) {
				return fmt.Errorf("%w: segment %d: unknown button %q", ErrInvalidScript, i, b)
			}
		}
	}
	return nil
}

// Ticks is the total number of ticks the script runs.
func (s *Script) Ticks() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Ticks
	}
	return n
}

func validButton(b string) bool {
	switch b {
	case ButtonLeft, ButtonRight, ButtonSprint, ButtonJump:
		return true
	}
	return false
}
