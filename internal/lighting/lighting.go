// Package lighting derives the per-frame light parameters shared by every draw call.
package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"racing-sim/internal/env"
	"racing-sim/internal/physics"
)

// HeadlightCutoffDeg is the half-angle of the headlight cone.
const HeadlightCutoffDeg = 20

// DisabledCutoff is the cutoff cosine sent when no spotlight is active.
const DisabledCutoff = -1

// Params is the light state for one frame. A zero SpotDirection means the spotlight is off.
type Params struct {
	Position      mgl32.Vec3
	Color         mgl32.Vec3
	Intensity     float32
	SpotDirection mgl32.Vec3
	SpotCutoff    float32
}

// SpotEnabled reports whether a spotlight cone applies this frame.
func (p Params) SpotEnabled() bool {
	return p.SpotDirection.Len() > 0
}

type preset struct {
	position  mgl32.Vec3
	color     mgl32.Vec3
	intensity float32
}

var (
	dayPreset   = preset{mgl32.Vec3{10, 20, 10}, mgl32.Vec3{1, 1, 0.9}, 3.0}
	nightPreset = preset{mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0.3, 0.3, 0.5}, 0.6}
	beamPreset  = preset{mgl32.Vec3{0, 0.8, 1.5}, mgl32.Vec3{1, 1, 0.9}, 2.0} // position is a vehicle-local offset
)

// Compute returns the light for this frame. Headlights replace the day/night light with a
// spotlight mounted ahead of the vehicle and aimed along its heading.
func Compute(e env.Config, v physics.State) Params {
	base := dayPreset
	if e.Night {
		base = nightPreset
	}
	p := Params{
		Position:   base.position,
		Color:      base.color,
		Intensity:  base.intensity,
		SpotCutoff: DisabledCutoff,
	}
	if !e.Headlights {
		return p
	}
	fwd := v.Forward()
	p.Position = v.Position.Add(fwd.Mul(beamPreset.position.Z())).Add(mgl32.Vec3{0, beamPreset.position.Y(), 0})
	p.Color = beamPreset.color
	p.Intensity = beamPreset.intensity
	p.SpotDirection = fwd
	p.SpotCutoff = math32.Cos(mgl32.DegToRad(HeadlightCutoffDeg))
	return p
}

// SpotFactor is the spotlight attenuation for a fragment, given the normalized direction from
// the fragment toward the light. Inside the cone it falls off as cos⁴ of the angle to the
// axis; outside it is zero. With the spotlight disabled every fragment gets the full term.
// The fragment shader implements the same rule.
func SpotFactor(p Params, toLight mgl32.Vec3) float32 {
	if !p.SpotEnabled() {
		return 1
	}
	theta := toLight.Dot(p.SpotDirection.Normalize().Mul(-1))
	if theta <= p.SpotCutoff {
		return 0
	}
	return math32.Pow(theta, 4)
}

// SkyColor is the clear color for the frame.
func SkyColor(e env.Config) mgl32.Vec3 {
	if e.Night {
		return mgl32.Vec3{0.1, 0.1, 0.2}
	}
	return mgl32.Vec3{0.5, 0.7, 1.0}
}
