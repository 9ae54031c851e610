package scene

import "github.com/go-gl/mathgl/mgl32"

// TRS composes translate, then orient, then scale. Swapping orient and scale changes the
// result for any non-uniform scale, so every part in the scene goes through this one function.
func TRS(t mgl32.Vec3, orient mgl32.Mat4, s mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(t.X(), t.Y(), t.Z()).
		Mul4(orient).
		Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// RotX returns a rotation of deg degrees about +X.
func RotX(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DX(mgl32.DegToRad(deg)) }

// RotY returns a rotation of deg degrees about +Y.
func RotY(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DY(mgl32.DegToRad(deg)) }

// RotZ returns a rotation of deg degrees about +Z.
func RotZ(deg float32) mgl32.Mat4 { return mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)) }

var noRotation = mgl32.Ident4()
