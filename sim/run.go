package sim

import (
	"slices"

	"github.com/automoto/stride/locomotion"
)

// Sample is the observable state after one tick.
type Sample struct {
	Tick   int     `yaml:"tick"`
	DT     float64 `yaml:"dt"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	HS     float64 `yaml:"hs"`
	VS     float64 `yaml:"vs"`
	Facing string  `yaml:"facing"`
	State  string  `yaml:"state"`
	Frame  int     `yaml:"frame"`
	Flip   bool    `yaml:"flip"`
}

// buttons tracks the jump button across ticks so a held jump is only a
// press on its first tick, matching the game's input edge detection. A jump
// listed in a segment's Press is always a new press.
type buttons struct {
	jumpDown bool
}

func (b *buttons) input(seg Segment, first bool) locomotion.Input {
	down := func(name string) bool {
		return slices.Contains(seg.Hold, name) || (first && slices.Contains(seg.Press, name))
	}
	jump := down(ButtonJump)
	if first && slices.Contains(seg.Press, ButtonJump) {
		b.jumpDown = false
	}
	in := locomotion.Input{
		Left:        down(ButtonLeft),
		Right:       down(ButtonRight),
		Sprint:      down(ButtonSprint),
		JumpPressed: jump && !b.jumpDown,
	}
	b.jumpDown = jump
	return in
}

// Run executes script against a fresh player and returns one sample per tick.
func Run(script *Script, t locomotion.Tuning) ([]Sample, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	player := locomotion.NewPlayer(t)
	samples := make([]Sample, 0, script.Ticks())
	var btn buttons
	tick := 0

	for _, seg := range script.Segments {
		dt := script.DT
		if seg.DT != nil {
			dt = *seg.DT
		}
		for i := 0; i < seg.Ticks; i++ {
			player.Update(btn.input(seg, i == 0), dt, t)
			tick++
			samples = append(samples, sample(tick, dt, player))
		}
	}
	return samples, nil
}

func sample(tick int, dt float64, p *locomotion.Player) Sample {
	return Sample{
		Tick:   tick,
		DT:     dt,
		X:      p.Body.Position.X,
		Y:      p.Body.Position.Y,
		HS:     p.Body.HorizontalSpeed,
		VS:     p.Body.VerticalSpeed,
		Facing: p.Body.Facing.String(),
		State:  p.Body.State.String(),
		Frame:  p.Cursor.FrameIndex,
		Flip:   p.Cursor.FlipHorizontal,
	}
}
