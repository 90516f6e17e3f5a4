package systems

import (
	"time"

	"github.com/automoto/stride/components"
	cfg "github.com/automoto/stride/config"
	"github.com/yohamta/donburi/ecs"
)

// Clock supplies the elapsed seconds since the previous tick.
type Clock interface {
	Delta() float64
	// Reset forgets the previous reading so time spent paused is not
	// delivered to the next tick.
	Reset()
}

// WallClock measures real elapsed time. The first reading after creation or
// Reset is 0.
type WallClock struct {
	MaxDelta float64 // 0 disables the cap
	now      func() time.Time
	last     time.Time
}

func NewWallClock(maxDelta float64) *WallClock {
	return &WallClock{MaxDelta: maxDelta, now: time.Now}
}

func (c *WallClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		d = 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		d = c.MaxDelta
	}
	return d
}

func (c *WallClock) Reset() {
	c.last = time.Time{}
}

// FixedClock returns the same step every tick, 1/TPS seconds.
type FixedClock struct {
	Step float64
}

func NewFixedClock(tps int) *FixedClock {
	if tps <= 0 {
		tps = 60
	}
	return &FixedClock{Step: 1 / float64(tps)}
}

func (c *FixedClock) Delta() float64 { return c.Step }
func (c *FixedClock) Reset()         {}

// NewClock builds the clock selected by cfg.Clock.
func NewClock(tps int) Clock {
	if cfg.Clock.Mode == "fixed" {
		return NewFixedClock(tps)
	}
	return NewWallClock(cfg.Clock.MaxDelta)
}

// NewClockSystem returns a system that writes the clock's delta into the
// FrameTime singleton. While paused the delta is 0 and the clock is reset.
// Must run after UpdatePause and before any system that reads FrameTime.
func NewClockSystem(clock Clock) ecs.System {
	return func(e *ecs.ECS) {
		ft := GetOrCreateFrameTime(e)
		if GetOrCreatePause(e).IsPaused {
			clock.Reset()
			ft.Delta = 0
			return
		}
		ft.Delta = clock.Delta()
		ft.Total += ft.Delta
	}
}

// GetOrCreateFrameTime returns the singleton FrameTime component, creating if needed.
func GetOrCreateFrameTime(e *ecs.ECS) *components.FrameTimeData {
	entry, ok := components.FrameTime.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.FrameTime))
	}
	return components.FrameTime.Get(entry)
}
