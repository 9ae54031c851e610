// Package sim holds the simulation state aggregate and the frame loop that drives it.
package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"racing-sim/internal/camera"
	"racing-sim/internal/env"
	"racing-sim/internal/input"
	"racing-sim/internal/lighting"
	"racing-sim/internal/physics"
	"racing-sim/internal/scene"
)

// SpinStep is the in-place rotation applied by ActionSpin, in degrees.
const SpinStep = 90

// Options configures a new simulation.
type Options struct {
	Vehicle     physics.Params
	Layout      scene.Layout
	Sensitivity float64
	// Rand drives random tree colors. Nil seeds one from the clock.
	Rand *rand.Rand
}

// Sim is the whole mutable simulation state. Each component receives only its own slice.
type Sim struct {
	log    zerolog.Logger
	params physics.Params
	layout scene.Layout
	rng    *rand.Rand

	Vehicle physics.State
	Env     env.Config
	Camera  *camera.Controller
}

// Output is everything one simulation step hands to rendering and the window.
type Output struct {
	Items     []scene.DrawItem
	View      scene.Viewpoint
	Sky       mgl32.Vec3
	Quit      bool
	ToggleHUD bool
	// PointerCapture is set when pointer control was toggled this frame.
	PointerCapture *bool
}

// New returns a simulation at its initial state: vehicle at spawn, daytime, chase camera.
func New(opts Options, log zerolog.Logger) *Sim {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Sim{
		log:     log.With().Str("component", "sim").Logger(),
		params:  opts.Vehicle,
		layout:  opts.Layout,
		rng:     rng,
		Vehicle: physics.NewState(opts.Vehicle),
		Env:     env.Default(),
		Camera:  camera.NewController(log.With().Str("component", "camera").Logger(), opts.Sensitivity),
	}
}

// Step advances one frame: pointer gestures, discrete actions, physics, camera, lighting and
// scene composition, in that order. The pointer sample of the frame that enables pointer
// control predates the capture and is dropped; the next sample only seeds.
func (s *Sim) Step(dt float32, f input.Frame, aspect float32) Output {
	s.Camera.Buttons(f.Pointer.Left, f.Pointer.Right)
	s.Camera.PointerMoved(f.Pointer.X, f.Pointer.Y)
	s.Camera.Scrolled(f.Pointer.Scroll)

	var out Output
	controls := f.Held
	for _, a := range f.Pressed {
		switch a {
		case input.ActionQuit:
			out.Quit = true
		case input.ActionToggleHUD:
			out.ToggleHUD = true
		case input.ActionReset:
			controls.Reset = true
		case input.ActionTogglePointer:
			on := s.Camera.TogglePointerControl()
			out.PointerCapture = &on
		default:
			s.Apply(a)
		}
	}

	s.Vehicle = physics.Step(s.Vehicle, controls, s.params, dt)
	pose := s.Camera.Update(s.Vehicle)
	light := lighting.Compute(s.Env, s.Vehicle)
	fx := lighting.FixturesFor(s.Env.Headlights, f.Held.Brake)

	out.Items = s.layout.Compose(s.Env, s.Vehicle, fx)
	out.View = scene.Viewpoint{
		View:       pose.View(),
		Projection: camera.Projection(aspect),
		Eye:        pose.Position,
		Light:      light,
	}
	out.Sky = lighting.SkyColor(s.Env)
	return out
}

// Apply handles the environment, vehicle and camera actions that change simulation state
// directly. Actions owned by the loop (quit, HUD, reset, pointer) are ignored here.
func (s *Sim) Apply(a input.Action) {
	switch a {
	case input.ActionSpin:
		s.Vehicle = physics.Spin(s.Vehicle, SpinStep)
	case input.ActionToggleNight:
		s.Env.ToggleNight()
	case input.ActionToggleHeadlights:
		s.Env.ToggleHeadlights()
	case input.ActionRotateTrack15:
		s.Env.RotateTrack(15)
	case input.ActionRotateTrack45:
		s.Env.RotateTrack(45)
	case input.ActionRandomTreeColor:
		s.Env.RandomTreeColor(s.rng)
	case input.ActionCycleTreeSize:
		s.Env.CycleTreeSize()
	case input.ActionToggleTreeShape:
		s.Env.ToggleTreeShape()
	case input.ActionCameraChase:
		s.Camera.Select(camera.ModeChase)
	case input.ActionCameraCockpit:
		s.Camera.Select(camera.ModeCockpit)
	case input.ActionCameraSide:
		s.Camera.Select(camera.ModeSide)
	case input.ActionCameraOrbital:
		s.Camera.Select(camera.ModeOrbital)
	case input.ActionCameraFree:
		s.Camera.Select(camera.ModeFree)
	default:
		return
	}
	s.log.Debug().Stringer("action", a).Msg("applied")
}
