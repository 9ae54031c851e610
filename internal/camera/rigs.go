package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"racing-sim/internal/physics"
)

// Rig is the state and placement rule of one camera mode. Only the active rig is reachable
// from the controller, so parameters of other modes cannot leak into the current pose.
type Rig interface {
	Mode() Mode
	// Update advances any per-frame state and returns the pose for vehicle v.
	Update(v physics.State) Pose
}

// ChaseRig follows from behind and above, turning with the vehicle.
type ChaseRig struct{}

func (ChaseRig) Mode() Mode { return ModeChase }

func (ChaseRig) Update(v physics.State) Pose {
	back := v.Forward().Mul(-8)
	return Pose{
		Position: v.Position.Add(back).Add(mgl32.Vec3{0, 4, 0}),
		Target:   v.Position,
	}
}

// CockpitRig sits at the driver's eye and looks far ahead along the heading.
type CockpitRig struct{}

func (CockpitRig) Mode() Mode { return ModeCockpit }

func (CockpitRig) Update(v physics.State) Pose {
	eye := mgl32.Vec3{0, 1.2, 0}
	return Pose{
		Position: v.Position.Add(eye),
		Target:   v.Position.Add(eye).Add(v.Forward().Mul(10)),
	}
}

// SideRig stands at a fixed lateral offset, sliding along the track's long axis only.
type SideRig struct{}

func (SideRig) Mode() Mode { return ModeSide }

func (SideRig) Update(v physics.State) Pose {
	return Pose{
		Position: mgl32.Vec3{15, 5, v.Position.Z()},
		Target:   v.Position,
	}
}

const (
	orbitRadius = 12
	orbitHeight = 6
	// OrbitStep is the orbital advance in degrees per frame.
	OrbitStep = 0.05
)

// OrbitalRig circles the vehicle at a fixed radius and height. The angle accumulates in
// float64 so thousands of small steps still land on exact revolutions.
type OrbitalRig struct {
	Angle       float64 // degrees, in [0, 360)
	Direction   float64 // +1 or -1
	Revolutions int     // completed wraps in either direction
}

// NewOrbitalRig starts at angle 0 turning in the positive direction.
func NewOrbitalRig() *OrbitalRig { return &OrbitalRig{Direction: 1} }

func (r *OrbitalRig) Mode() Mode { return ModeOrbital }

// Reverse flips the direction of travel.
func (r *OrbitalRig) Reverse() { r.Direction = -r.Direction }

func (r *OrbitalRig) Update(v physics.State) Pose {
	a := r.Angle + OrbitStep*r.Direction
	if a >= 360 || a < 0 {
		r.Revolutions++
		a = math.Mod(a, 360)
		if a < 0 {
			a += 360
		}
	}
	r.Angle = a
	rad := a * math.Pi / 180
	offset := mgl32.Vec3{
		float32(orbitRadius * math.Cos(rad)),
		orbitHeight,
		float32(orbitRadius * math.Sin(rad)),
	}
	return Pose{Position: v.Position.Add(offset), Target: v.Position}
}

const (
	FreeMinDistance = 2
	FreeMaxDistance = 50
	FreeMaxPitch    = 89
)

// FreeRig is a pointer-driven camera on a sphere around the vehicle, plus a screen-plane pan.
type FreeRig struct {
	Distance float64
	Yaw      float64 // degrees
	Pitch    float64 // degrees, in [-89, 89]
	PanX     float64
	PanY     float64
}

// NewFreeRig returns the starting free camera: 12 units out, looking down -Z onto the vehicle.
func NewFreeRig() *FreeRig { return &FreeRig{Distance: 12, Yaw: -90} }

func (r *FreeRig) Mode() Mode { return ModeFree }

func (r *FreeRig) Update(v physics.State) Pose {
	yaw := r.Yaw * math.Pi / 180
	pitch := r.Pitch * math.Pi / 180
	pan := mgl32.Vec3{float32(r.PanX), float32(r.PanY), 0}
	offset := mgl32.Vec3{
		float32(r.Distance * math.Cos(pitch) * math.Cos(yaw)),
		float32(r.Distance * math.Sin(pitch)),
		float32(r.Distance * math.Cos(pitch) * math.Sin(yaw)),
	}
	return Pose{
		Position: v.Position.Add(offset).Add(pan),
		Target:   v.Position.Add(pan),
	}
}

// Orbit turns the camera by yaw/pitch degrees, keeping pitch off the poles.
func (r *FreeRig) Orbit(dyaw, dpitch float64) {
	r.Yaw += dyaw
	r.Pitch = clamp(r.Pitch+dpitch, -FreeMaxPitch, FreeMaxPitch)
}

// Pan shifts the camera and its target together.
func (r *FreeRig) Pan(dx, dy float64) {
	r.PanX += dx
	r.PanY += dy
}

// Zoom moves the camera toward (positive) or away from (negative) the vehicle.
func (r *FreeRig) Zoom(delta float64) {
	r.Distance = clamp(r.Distance-delta, FreeMinDistance, FreeMaxDistance)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// newRig builds the starting rig for a mode.
func newRig(m Mode) Rig {
	switch m {
	case ModeCockpit:
		return CockpitRig{}
	case ModeSide:
		return SideRig{}
	case ModeOrbital:
		return NewOrbitalRig()
	case ModeFree:
		return NewFreeRig()
	default:
		return ChaseRig{}
	}
}
