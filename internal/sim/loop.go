package sim

import (
	"context"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"racing-sim/internal/debug"
	"racing-sim/internal/input"
	"racing-sim/internal/scene"
)

// maxFrameTime caps dt so a stall (window drag, breakpoint) does not teleport the vehicle.
const maxFrameTime = 0.25

// Window is the platform surface the loop runs on: key and pointer state, frame timing, and
// frame presentation.
type Window interface {
	input.KeySource
	input.PointerSource

	ShouldClose() bool
	// FrameTime is the wall time in seconds since the previous frame.
	FrameTime() float32
	Aspect() float32
	SetPointerCapture(captured bool)

	BeginFrame(clear mgl32.Vec3)
	DrawOverlay(lines []string)
	// EndFrame presents the frame, blocking on display sync when enabled.
	EndFrame()
}

// Drawer issues the composed draw list.
type Drawer interface {
	Render(items []scene.DrawItem, vp scene.Viewpoint) scene.Stats
}

// Loop sequences one iteration per frame: poll input, step the simulation, render, present.
type Loop struct {
	win    Window
	sim    *Sim
	poller *input.Poller
	drawer Drawer
	hud    *debug.Overlay
	log    zerolog.Logger

	frames uint64
}

// NewLoop wires a loop. hud may be nil.
func NewLoop(win Window, s *Sim, poller *input.Poller, drawer Drawer, hud *debug.Overlay, log zerolog.Logger) *Loop {
	if hud == nil {
		hud = debug.New(false)
	}
	return &Loop{
		win:    win,
		sim:    s,
		poller: poller,
		drawer: drawer,
		hud:    hud,
		log:    log.With().Str("component", "loop").Logger(),
	}
}

// Frames returns the number of completed iterations.
func (l *Loop) Frames() uint64 { return l.frames }

// Run iterates until the window asks to close, a quit action fires, or ctx is cancelled.
// Cancellation returns ctx.Err(); the other two return nil.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().Msg("loop started")
	defer func() {
		l.log.Info().Uint64("frames", l.frames).Msg("loop stopped")
	}()

	for !l.win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := l.frame(); quit {
			return nil
		}
	}
	return nil
}

func (l *Loop) frame() (quit bool) {
	dt := l.win.FrameTime()
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	in := l.poller.Poll(l.win, l.win)
	out := l.sim.Step(dt, in, l.win.Aspect())
	if out.Quit {
		return true
	}
	if out.ToggleHUD {
		l.hud.Toggle()
	}
	if out.PointerCapture != nil {
		l.win.SetPointerCapture(*out.PointerCapture)
		l.log.Info().Bool("enabled", *out.PointerCapture).Msg("pointer control")
	}

	l.win.BeginFrame(out.Sky)
	st := l.drawer.Render(out.Items, out.View)
	lines := l.hud.Tick(dt, debug.Status{
		Camera:         l.sim.Camera.Mode().String(),
		Speed:          l.sim.Vehicle.Speed,
		Heading:        l.sim.Vehicle.Heading,
		Night:          l.sim.Env.Night,
		Headlights:     l.sim.Env.Headlights,
		PointerControl: l.sim.Camera.PointerControl(),
		FailedDraws:    st.Failed,
	})
	if lines != nil {
		l.win.DrawOverlay(lines)
	}
	l.win.EndFrame()
	l.frames++
	return false
}
