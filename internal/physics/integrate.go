package physics

import "github.com/chewxy/math32"

// Step advances s by dt seconds under c using explicit Euler: speed first, then steering,
// then position along the new heading. A reset overwrites the result of the whole step.
func Step(s State, c Controls, p Params, dt float32) State {
	if c.Reset {
		return Reset(s, p)
	}
	if dt <= 0 {
		return s
	}

	s.Speed = nextSpeed(s.Speed, c, p, dt)

	// Steering authority scales with signed speed, so reversing swaps the turn direction.
	if math32.Abs(s.Speed) > p.DeadZone && p.MaxSpeed > 0 {
		turn := p.TurnRate * dt * (s.Speed / p.MaxSpeed)
		if c.Left {
			s.Heading += turn
		}
		if c.Right {
			s.Heading -= turn
		}
	}

	s.Position = s.Position.Add(s.Forward().Mul(s.Speed * dt))
	s.WheelSpin = wrapDegrees(s.WheelSpin + s.Speed*dt*p.WheelSpin)
	return s
}

// nextSpeed applies throttle, brake or coasting and clamps to [MinSpeed, MaxSpeed].
func nextSpeed(v float32, c Controls, p Params, dt float32) float32 {
	switch {
	case c.Accelerate:
		v += p.Acceleration * dt
	case c.Brake:
		v -= p.Acceleration * dt
	case v > 0:
		v = math32.Max(0, v-p.Deceleration*dt)
	case v < 0:
		v = math32.Min(0, v+p.Deceleration*dt)
	}
	return clamp(v, p.MinSpeed(), p.MaxSpeed)
}

// Reset puts the vehicle back on its spawn point at rest, facing +Z. Wheel spin is cosmetic
// and kept.
func Reset(s State, p Params) State {
	return State{Position: p.Spawn, WheelSpin: s.WheelSpin}
}

// Spin rotates the vehicle in place by deg degrees.
func Spin(s State, deg float32) State {
	s.Heading += deg
	return s
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
