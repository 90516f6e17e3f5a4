package locomotion

import "testing"

func TestClassifyPrecedence(t *testing.T) {
	tuning := DefaultTuning()
	const dt = 0.02 // land threshold per tick: -4

	cases := []struct {
		name   string
		from   MovementState
		hs, vs float64
		sprint bool
		want   MovementState
	}{
		{"rising", Idle, 0, 3, false, Jump},
		{"rising_while_moving", Walk, 1, 3, false, Jump},
		{"mild_fall", Jump, 0, -3.9, false, Jump},
		{"fast_fall", Jump, 0, -4.5, false, Land},
		{"threshold_is_land", Jump, 0, -4, false, Land},
		{"land_sticky_even_if_slow", Land, 0, -1, false, Land},
		{"land_sticky_while_moving", Land, 1, -1, false, Land},
		{"walk", Idle, 1, 0, false, Walk},
		{"walk_left", Run, -1, 0, false, Walk},
		{"run", Walk, 2.2, 0, true, Run},
		{"idle_from_walk", Walk, 0, 0, false, Idle},
		{"idle_from_land", Land, 0, 0, false, Idle},
		{"idle_from_jump", Jump, 0, 0, false, Idle},
		{"walk_after_landing", Land, 1, 0, false, Walk},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := NewPlayerBody()
			body.State = c.from
			body.HorizontalSpeed = c.hs
			body.VerticalSpeed = c.vs
			if c.vs != 0 {
				body.Position.Y = 10
			}

			tr := Classify(&body, Motion{SprintApplied: c.sprint}, dt, tuning)

			if body.State != c.want {
				t.Fatalf("State = %v, want %v", body.State, c.want)
			}
			if tr.From != c.from || tr.To != c.want {
				t.Fatalf("Transition = %+v, want {%v %v}", tr, c.from, c.want)
			}
			if tr.Changed() != (c.from != c.want) {
				t.Fatalf("Changed = %v", tr.Changed())
			}
		})
	}
}

func TestWalkScenario(t *testing.T) {
	tuning := DefaultTuning()
	p := NewPlayer(tuning)

	for i := 0; i < 10; i++ {
		p.Update(Input{Right: true}, 0.02, tuning)
	}

	if !approxEqual(p.Body.HorizontalSpeed, 1.0) {
		t.Fatalf("HorizontalSpeed = %v, want 1.0", p.Body.HorizontalSpeed)
	}
	if !approxEqual(p.Body.Position.X, 10.0) {
		t.Fatalf("Position.X = %v, want 10.0", p.Body.Position.X)
	}
	if p.Body.State != Walk {
		t.Fatalf("State = %v, want walk", p.Body.State)
	}
	if p.Body.Facing != Right {
		t.Fatalf("Facing = %v, want right", p.Body.Facing)
	}
}

func TestJumpScenario(t *testing.T) {
	tuning := DefaultTuning()
	p := NewPlayer(tuning)

	step := p.Update(Input{JumpPressed: true}, 0.02, tuning)
	if !step.Motion.Jumped {
		t.Fatalf("jump not seeded")
	}
	if !approxEqual(p.Body.VerticalSpeed, 5.0) {
		t.Fatalf("VerticalSpeed = %v, want 5.0", p.Body.VerticalSpeed)
	}

	p.Update(Input{}, 0.02, tuning)
	if p.Body.State != Jump {
		t.Fatalf("State = %v, want jump", p.Body.State)
	}
}

func TestJumpArcReachesLandThenIdle(t *testing.T) {
	tuning := DefaultTuning()
	p := NewPlayer(tuning)
	const dt = 0.02

	p.Update(Input{JumpPressed: true}, dt, tuning)

	sawLand := false
	for i := 0; i < 200 && p.Body.Airborne(); i++ {
		prev := p.Body.State
		p.Update(Input{}, dt, tuning)
		if p.Body.State == Land {
			sawLand = true
		}
		if prev == Land && p.Body.State == Jump {
			t.Fatalf("tick %d: went from land back to jump", i)
		}
	}

	if p.Body.Airborne() {
		t.Fatalf("body never landed")
	}
	if !sawLand {
		t.Fatalf("expected a land pose before touchdown")
	}
	if p.Body.State != Idle {
		t.Fatalf("State after touchdown = %v, want idle", p.Body.State)
	}
}

func TestIdleConvergenceAndStickyFacing(t *testing.T) {
	tuning := DefaultTuning()

	for _, dir := range []Direction{Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			p := NewPlayer(tuning)
			in := Input{Left: dir == Left, Right: dir == Right, Sprint: true}
			for i := 0; i < 5; i++ {
				p.Update(in, 0.02, tuning)
			}
			if p.Body.State != Run {
				t.Fatalf("State = %v, want run", p.Body.State)
			}

			for i := 0; i < 5; i++ {
				p.Update(Input{}, 0.02, tuning)
				if p.Body.State != Idle {
					t.Fatalf("tick %d after release: State = %v, want idle", i, p.Body.State)
				}
				if p.Body.HorizontalSpeed != 0 {
					t.Fatalf("HorizontalSpeed = %v, want 0", p.Body.HorizontalSpeed)
				}
				if p.Body.Facing != dir {
					t.Fatalf("Facing = %v, want %v", p.Body.Facing, dir)
				}
			}
		})
	}
}
