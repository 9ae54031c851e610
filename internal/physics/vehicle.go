package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// State is the vehicle's kinematic state. Angles are in degrees.
type State struct {
	Position  mgl32.Vec3
	Heading   float32
	Speed     float32
	WheelSpin float32
}

// Forward returns the unit heading direction (sin(heading), 0, cos(heading)).
func (s State) Forward() mgl32.Vec3 {
	return Direction(s.Heading)
}

// Direction returns the unit XZ-plane vector for a heading in degrees.
func Direction(headingDeg float32) mgl32.Vec3 {
	r := mgl32.DegToRad(headingDeg)
	return mgl32.Vec3{math32.Sin(r), 0, math32.Cos(r)}
}

// Params are the integrator constants.
type Params struct {
	MaxSpeed     float32 // forward cap; reverse cap is half of it
	Acceleration float32 // units/s² while accelerating or braking
	Deceleration float32 // units/s² coasting toward rest
	TurnRate     float32 // degrees/s at full speed
	DeadZone     float32 // |speed| at or below which steering has no effect
	WheelSpin    float32 // degrees of wheel rotation per unit travelled
	Spawn        mgl32.Vec3
}

// DefaultParams returns the tuning used by the simulator.
func DefaultParams() Params {
	return Params{
		MaxSpeed:     15,
		Acceleration: 8,
		Deceleration: 5,
		TurnRate:     90,
		DeadZone:     0.1,
		WheelSpin:    mgl32.RadToDeg(2),
		Spawn:        mgl32.Vec3{0, 0.5, 0},
	}
}

// MinSpeed returns the reverse speed limit.
func (p Params) MinSpeed() float32 { return -p.MaxSpeed * 0.5 }

// Controls is the per-frame input to the integrator. The four driving controls are
// held-state; Reset is set only on the frame the reset action fired.
type Controls struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
	Reset      bool
}

// NewState returns the vehicle at rest on its spawn point.
func NewState(p Params) State {
	return State{Position: p.Spawn}
}
