package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racing-sim/internal/physics"
)

func newTestController() *Controller {
	return NewController(zerolog.Nop(), DefaultSensitivity)
}

func TestController_StartsInChase(t *testing.T) {
	c := newTestController()
	assert.Equal(t, ModeChase, c.Mode())
	assert.False(t, c.PointerControl())

	v := physics.State{Position: mgl32.Vec3{0, 0.5, 0}}
	p := c.Update(v)
	assert.InDelta(t, 0, p.Position.X(), 1e-5)
	assert.InDelta(t, 4.5, p.Position.Y(), 1e-5)
	assert.InDelta(t, -8, p.Position.Z(), 1e-5)
	assert.Equal(t, v.Position, p.Target)
}

func TestRigs_Placement(t *testing.T) {
	v := physics.State{Position: mgl32.Vec3{3, 0.5, 7}, Heading: 90}

	cockpit := CockpitRig{}.Update(v)
	assert.InDelta(t, 1.7, cockpit.Position.Y(), 1e-5)
	assert.InDelta(t, 13, cockpit.Target.X(), 1e-4)

	side := SideRig{}.Update(v)
	assert.Equal(t, mgl32.Vec3{15, 5, 7}, side.Position)
	assert.Equal(t, v.Position, side.Target)

	free := NewFreeRig().Update(v)
	assert.InDelta(t, 3, free.Position.X(), 1e-4)
	assert.InDelta(t, 0.5, free.Position.Y(), 1e-4)
	assert.InDelta(t, 7-12, free.Position.Z(), 1e-4)
}

func TestOrbital_FullRevolutionIn7200Frames(t *testing.T) {
	c := newTestController()
	c.Select(ModeOrbital)
	o, ok := c.Rig().(*OrbitalRig)
	require.True(t, ok)

	for i := 0; i < 7200; i++ {
		c.Update(physics.State{})
		require.GreaterOrEqual(t, o.Angle, 0.0)
		require.Less(t, o.Angle, 360.0)
	}
	assert.Equal(t, 1, o.Revolutions)
	assert.InDelta(t, 0, o.Angle, 1e-6)
}

func TestOrbital_ReverseStaysInRange(t *testing.T) {
	c := newTestController()
	c.Select(ModeOrbital)
	c.Select(ModeOrbital)
	o := c.Rig().(*OrbitalRig)
	assert.Equal(t, -1.0, o.Direction)

	for i := 0; i < 7200; i++ {
		c.Update(physics.State{})
		require.GreaterOrEqual(t, o.Angle, 0.0)
		require.Less(t, o.Angle, 360.0)
	}
	// Back at the start, modulo float rounding on either side of 0.
	dist := math.Min(o.Angle, 360-o.Angle)
	assert.InDelta(t, 0, dist, 1e-6)
}

func TestOrbital_StateRestoredOnReselect(t *testing.T) {
	c := newTestController()
	c.Select(ModeOrbital)
	for i := 0; i < 100; i++ {
		c.Update(physics.State{})
	}
	c.Select(ModeChase)
	c.Select(ModeOrbital)

	o := c.Rig().(*OrbitalRig)
	assert.InDelta(t, 5, o.Angle, 1e-9)
	assert.Equal(t, 1.0, o.Direction)
}

func TestPointer_FirstSampleOnlySeeds(t *testing.T) {
	c := newTestController()
	c.Select(ModeFree)
	c.SetPointerControl(true)
	c.Buttons(true, false)

	c.PointerMoved(500, 300)
	free := c.Rig().(*FreeRig)
	assert.Equal(t, -90.0, free.Yaw)
	assert.Equal(t, 0.0, free.Pitch)

	c.PointerMoved(510, 290)
	assert.InDelta(t, -88, free.Yaw, 1e-9)
	assert.InDelta(t, 2, free.Pitch, 1e-9)
}

func TestPointer_ReseedOnEnteringFree(t *testing.T) {
	c := newTestController()
	c.SetPointerControl(true)
	c.Buttons(true, false)
	c.PointerMoved(0, 0)

	c.Select(ModeFree)
	c.PointerMoved(1000, 1000)
	free := c.Rig().(*FreeRig)
	assert.Equal(t, -90.0, free.Yaw, "jump from the stale position must be discarded")
}

func TestPointer_PitchClamped(t *testing.T) {
	c := newTestController()
	c.Select(ModeFree)
	c.SetPointerControl(true)
	c.Buttons(true, false)
	c.PointerMoved(0, 0)
	c.PointerMoved(0, -10000)

	assert.Equal(t, float64(FreeMaxPitch), c.Rig().(*FreeRig).Pitch)

	c.PointerMoved(0, 20000)
	assert.Equal(t, -float64(FreeMaxPitch), c.Rig().(*FreeRig).Pitch)
}

func TestPointer_PanWithRightButton(t *testing.T) {
	c := newTestController()
	c.Select(ModeFree)
	c.SetPointerControl(true)
	c.Buttons(false, true)
	c.PointerMoved(100, 100)
	c.PointerMoved(120, 80)

	free := c.Rig().(*FreeRig)
	assert.InDelta(t, 0.1, free.PanX, 1e-9)
	assert.InDelta(t, 0.1, free.PanY, 1e-9)
	assert.Equal(t, -90.0, free.Yaw)
}

func TestScroll_DistanceClamped(t *testing.T) {
	c := newTestController()
	c.Select(ModeFree)
	c.SetPointerControl(true)

	c.Scrolled(2)
	free := c.Rig().(*FreeRig)
	assert.InDelta(t, 11, free.Distance, 1e-9)

	c.Scrolled(1000)
	assert.Equal(t, float64(FreeMinDistance), free.Distance)
	c.Scrolled(-1000)
	assert.Equal(t, float64(FreeMaxDistance), free.Distance)
}

func TestPointer_IgnoredWhenDisabledOrOutOfMode(t *testing.T) {
	c := newTestController()
	c.Select(ModeFree)
	c.Buttons(true, true)
	c.PointerMoved(0, 0)
	c.PointerMoved(50, 50)
	c.Scrolled(3)

	free := c.Rig().(*FreeRig)
	assert.Equal(t, *NewFreeRig(), *free)

	// Enabled but in chase: gestures go nowhere and the free rig stays untouched.
	c.Select(ModeChase)
	c.SetPointerControl(true)
	c.Buttons(true, false)
	c.PointerMoved(0, 0)
	c.PointerMoved(50, 50)
	c.Scrolled(3)
	assert.Equal(t, ModeChase, c.Mode())

	c.Select(ModeFree)
	assert.Equal(t, *NewFreeRig(), *c.Rig().(*FreeRig))
}

func TestProjection(t *testing.T) {
	p := Projection(1.5)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 1.5, 0.1, 100), p)
	assert.Equal(t, Projection(1), Projection(0))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "orbital", ModeOrbital.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}
