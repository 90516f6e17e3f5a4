package locomotion

import (
	gomath "math"
	"math/rand"
	"testing"
)

func approxEqual(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-9
}

func TestIntegrateHorizontal(t *testing.T) {
	tuning := DefaultTuning()
	const dt = 0.02

	cases := []struct {
		name        string
		in          Input
		startFacing Direction
		wantSpeed   float64
		wantFacing  Direction
		wantSprint  bool
	}{
		{"right", Input{Right: true}, Left, 1.0, Right, false},
		{"left", Input{Left: true}, Right, -1.0, Left, false},
		{"right_sprint", Input{Right: true, Sprint: true}, Left, 2.2, Right, true},
		{"left_sprint", Input{Left: true, Sprint: true}, Right, -2.2, Left, true},
		{"both_right_wins", Input{Left: true, Right: true}, Left, 1.0, Right, false},
		{"none_keeps_left", Input{}, Left, 0, Left, false},
		{"none_keeps_right", Input{}, Right, 0, Right, false},
		{"sprint_only", Input{Sprint: true}, Left, 0, Left, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := NewPlayerBody()
			body.Facing = c.startFacing
			body.HorizontalSpeed = 123 // stale value must be overwritten

			m := Integrate(&body, c.in, dt, tuning)

			if !approxEqual(body.HorizontalSpeed, c.wantSpeed) {
				t.Fatalf("HorizontalSpeed = %v, want %v", body.HorizontalSpeed, c.wantSpeed)
			}
			if body.Facing != c.wantFacing {
				t.Fatalf("Facing = %v, want %v", body.Facing, c.wantFacing)
			}
			if m.SprintApplied != c.wantSprint {
				t.Fatalf("SprintApplied = %v, want %v", m.SprintApplied, c.wantSprint)
			}
			if !approxEqual(body.Position.X, c.wantSpeed) {
				t.Fatalf("Position.X = %v, want %v", body.Position.X, c.wantSpeed)
			}
		})
	}
}

func TestIntegrateJumpSeed(t *testing.T) {
	tuning := DefaultTuning()

	cases := []struct {
		name      string
		dt        float64
		wantSpeed float64
	}{
		{"clamped", 0.02, 5.0},
		{"below_clamp", 0.01, 3.3},
		{"frame_spike_still_clamped", 0.5, 5.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := NewPlayerBody()
			m := Integrate(&body, Input{JumpPressed: true}, c.dt, tuning)

			if !m.Jumped {
				t.Fatalf("expected jump to be seeded")
			}
			// Gravity does not act on the seeding tick because the body
			// started on the ground.
			if !approxEqual(body.VerticalSpeed, c.wantSpeed) {
				t.Fatalf("VerticalSpeed = %v, want %v", body.VerticalSpeed, c.wantSpeed)
			}
			if !approxEqual(body.Position.Y, c.wantSpeed) {
				t.Fatalf("Position.Y = %v, want %v", body.Position.Y, c.wantSpeed)
			}
		})
	}
}

func TestIntegrateJumpIgnoredWhenNotGrounded(t *testing.T) {
	tuning := DefaultTuning()

	cases := []struct {
		name string
		y    float64
		vs   float64
	}{
		{"rising", 10, 3},
		{"falling", 10, -2},
		{"apex", 10, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := NewPlayerBody()
			body.Position.Y = c.y
			body.VerticalSpeed = c.vs

			m := Integrate(&body, Input{JumpPressed: true}, 0.02, tuning)
			if m.Jumped {
				t.Fatalf("jump must be ignored while airborne")
			}
			want := c.vs - tuning.Gravity*0.02
			if !approxEqual(body.VerticalSpeed, want) {
				t.Fatalf("VerticalSpeed = %v, want %v", body.VerticalSpeed, want)
			}
		})
	}
}

func TestIntegrateGravityAndGroundClamp(t *testing.T) {
	tuning := DefaultTuning()

	t.Run("airborne_gravity", func(t *testing.T) {
		body := NewPlayerBody()
		body.Position.Y = 20
		body.VerticalSpeed = 1

		Integrate(&body, Input{}, 0.02, tuning)

		if !approxEqual(body.VerticalSpeed, 1-0.24) {
			t.Fatalf("VerticalSpeed = %v, want %v", body.VerticalSpeed, 0.76)
		}
		if !approxEqual(body.Position.Y, 20.76) {
			t.Fatalf("Position.Y = %v, want 20.76", body.Position.Y)
		}
	})

	t.Run("overshoot_clamped", func(t *testing.T) {
		body := NewPlayerBody()
		body.Position.Y = 1
		body.VerticalSpeed = -3

		m := Integrate(&body, Input{}, 0.02, tuning)

		if body.Position.Y != 0 || body.VerticalSpeed != 0 {
			t.Fatalf("expected clamp to ground, got y=%v vs=%v", body.Position.Y, body.VerticalSpeed)
		}
		if !m.Landed {
			t.Fatalf("expected Landed on touchdown tick")
		}
	})

	t.Run("residual_speed_on_ground", func(t *testing.T) {
		body := NewPlayerBody()
		body.VerticalSpeed = -0.5

		m := Integrate(&body, Input{}, 0.02, tuning)

		if body.Position.Y != 0 || body.VerticalSpeed != 0 {
			t.Fatalf("expected clamp to ground, got y=%v vs=%v", body.Position.Y, body.VerticalSpeed)
		}
		if m.Landed {
			t.Fatalf("a grounded body cannot land")
		}
	})

	t.Run("negative_dt_is_zero", func(t *testing.T) {
		body := NewPlayerBody()
		Integrate(&body, Input{Right: true, JumpPressed: true}, -1, tuning)
		if body.HorizontalSpeed != 0 || body.VerticalSpeed != 0 || body.Position.Y != 0 {
			t.Fatalf("negative dt must not move the body: %+v", body)
		}
	})
}

func TestGroundInvariant(t *testing.T) {
	tuning := DefaultTuning()
	rng := rand.New(rand.NewSource(7))
	body := NewPlayerBody()

	for i := 0; i < 20000; i++ {
		in := Input{
			Left:        rng.Intn(3) == 0,
			Right:       rng.Intn(3) == 0,
			Sprint:      rng.Intn(2) == 0,
			JumpPressed: rng.Intn(10) == 0,
		}
		dt := rng.Float64() * 0.05

		Integrate(&body, in, dt, tuning)

		if body.Position.Y < 0 {
			t.Fatalf("tick %d: Position.Y = %v < 0", i, body.Position.Y)
		}
		if body.Position.Y == 0 && body.VerticalSpeed != 0 {
			t.Fatalf("tick %d: grounded with VerticalSpeed = %v", i, body.VerticalSpeed)
		}
	}
}

func TestJumpHonoredOnlyFromGround(t *testing.T) {
	tuning := DefaultTuning()
	body := NewPlayerBody()
	const dt = 0.02

	jumps := 0
	for i := 0; i < 200; i++ {
		wasGrounded := body.Grounded() && body.VerticalSpeed == 0
		m := Integrate(&body, Input{JumpPressed: true}, dt, tuning)
		if m.Jumped {
			if !wasGrounded {
				t.Fatalf("tick %d: jump honored while airborne", i)
			}
			jumps++
		}
	}
	if jumps < 2 {
		t.Fatalf("expected the jump to repeat after each landing, got %d jumps", jumps)
	}
}
