// Package camera implements the five camera modes and the switching rules between them.
package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode is a camera mode.
type Mode uint8

const (
	ModeChase Mode = iota
	ModeCockpit
	ModeSide
	ModeOrbital
	ModeFree
)

func (m Mode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModeCockpit:
		return "cockpit"
	case ModeSide:
		return "side"
	case ModeOrbital:
		return "orbital"
	case ModeFree:
		return "free"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

const (
	fovDeg = 45
	near   = 0.1
	far    = 100
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Pose is where the camera sits and what it looks at.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// View returns the world-to-camera matrix.
func (p Pose) View() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Target, worldUp)
}

// Projection returns the perspective projection for the given viewport aspect ratio.
func Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}
