package lighting

import "github.com/go-gl/mathgl/mgl32"

// Appearance is the base color and emissive term of one light fixture.
type Appearance struct {
	Color    mgl32.Vec3
	Emissive mgl32.Vec3
}

// Fixtures are the appearances of the vehicle's light housings for one frame.
type Fixtures struct {
	Headlight Appearance
	TailLight Appearance
}

var (
	headlightOn  = fixture(mgl32.Vec3{1, 1, 0.9}, 4)
	headlightOff = fixture(mgl32.Vec3{0.2, 0.2, 0.2}, 0.2)
	tailBraking  = fixture(mgl32.Vec3{1, 0, 0}, 3)
	tailIdle     = fixture(mgl32.Vec3{0.3, 0, 0}, 1)
)

func fixture(color mgl32.Vec3, glow float32) Appearance {
	return Appearance{Color: color, Emissive: color.Mul(glow)}
}

// FixturesFor selects the fixture presets. Tail lights follow the brake control being held,
// whether or not the vehicle is actually slowing down.
func FixturesFor(headlights, brakeHeld bool) Fixtures {
	f := Fixtures{Headlight: headlightOff, TailLight: tailIdle}
	if headlights {
		f.Headlight = headlightOn
	}
	if brakeHeld {
		f.TailLight = tailBraking
	}
	return f
}
