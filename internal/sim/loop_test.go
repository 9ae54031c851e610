package sim

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"racing-sim/internal/camera"
	"racing-sim/internal/debug"
	"racing-sim/internal/input"
	"racing-sim/internal/scene"
)

// fakeWindow replays one key set per frame and asks to close once the script runs out.
// Pointer positions are scripted per frame; while captured they are offsets from centre,
// like a cursor recentred by the capture.
type fakeWindow struct {
	script   []map[input.Key]bool
	pointer  [][2]float64
	left     bool
	centre   [2]float64
	captured bool

	frame   int
	dt      float32
	events  []string
	clears  []mgl32.Vec3
	capture []bool
	hud     [][]string
}

func (w *fakeWindow) IsKeyDown(k input.Key) bool {
	if w.frame >= len(w.script) {
		return false
	}
	return w.script[w.frame][k]
}

func (w *fakeWindow) PointerPosition() (float64, float64) {
	var p [2]float64
	if w.frame < len(w.pointer) {
		p = w.pointer[w.frame]
	}
	if w.captured {
		return w.centre[0] + p[0], w.centre[1] + p[1]
	}
	return p[0], p[1]
}

func (w *fakeWindow) PointerButtons() (bool, bool) { return w.left, false }
func (w *fakeWindow) ScrollDelta() float64         { return 0 }

func (w *fakeWindow) ShouldClose() bool  { return w.frame >= len(w.script) }
func (w *fakeWindow) FrameTime() float32 { return w.dt }
func (w *fakeWindow) Aspect() float32    { return 1.5 }

func (w *fakeWindow) SetPointerCapture(c bool) {
	w.capture = append(w.capture, c)
	w.captured = c
}

func (w *fakeWindow) BeginFrame(clear mgl32.Vec3) {
	w.events = append(w.events, "begin")
	w.clears = append(w.clears, clear)
}

func (w *fakeWindow) DrawOverlay(lines []string) {
	w.events = append(w.events, "overlay")
	w.hud = append(w.hud, lines)
}

func (w *fakeWindow) EndFrame() {
	w.events = append(w.events, "end")
	w.frame++
}

type fakeDrawer struct {
	w     *fakeWindow
	calls int
	items int
}

func (d *fakeDrawer) Render(items []scene.DrawItem, _ scene.Viewpoint) scene.Stats {
	d.w.events = append(d.w.events, "render")
	d.calls++
	d.items = len(items)
	return scene.Stats{Drawn: len(items)}
}

func newTestLoop(w *fakeWindow, hud *debug.Overlay) (*Loop, *fakeDrawer, *Sim) {
	s := newTestSim()
	d := &fakeDrawer{w: w}
	return NewLoop(w, s, input.NewPoller(input.DefaultBindings()), d, hud, zerolog.Nop()), d, s
}

func frames(n int, keys map[input.Key]bool) []map[input.Key]bool {
	out := make([]map[input.Key]bool, n)
	for i := range out {
		out[i] = keys
	}
	return out
}

func TestLoop_RunsUntilCloseRequest(t *testing.T) {
	w := &fakeWindow{script: frames(3, nil), dt: dt}
	l, d, _ := newTestLoop(w, nil)

	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, uint64(3), l.Frames())
	assert.Equal(t, 3, d.calls)
	assert.Equal(t, []string{"begin", "render", "end", "begin", "render", "end", "begin", "render", "end"}, w.events)
}

func TestLoop_HeldKeyTogglesOnce(t *testing.T) {
	w := &fakeWindow{script: frames(10, map[input.Key]bool{input.KeyN: true}), dt: dt}
	l, _, s := newTestLoop(w, nil)

	require.NoError(t, l.Run(context.Background()))

	assert.True(t, s.Env.Night)
	require.Len(t, w.clears, 10)
	for _, c := range w.clears {
		assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.2}, c)
	}
}

func TestLoop_QuitAction(t *testing.T) {
	script := frames(5, nil)
	script[1] = map[input.Key]bool{input.KeyEscape: true}
	w := &fakeWindow{script: script, dt: dt}
	l, d, _ := newTestLoop(w, nil)

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, uint64(1), l.Frames())
	assert.Equal(t, 1, d.calls)
}

func TestLoop_CancelledContext(t *testing.T) {
	w := &fakeWindow{script: frames(5, nil), dt: dt}
	l, d, _ := newTestLoop(w, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.Run(ctx), context.Canceled)
	assert.Zero(t, d.calls)
}

func TestLoop_ClampsLongFrames(t *testing.T) {
	w := &fakeWindow{script: frames(1, map[input.Key]bool{input.KeyW: true}), dt: 5}
	l, _, s := newTestLoop(w, nil)

	require.NoError(t, l.Run(context.Background()))
	assert.InDelta(t, 8*maxFrameTime, s.Vehicle.Speed, 1e-5)
}

func TestLoop_PointerCaptureAndHUD(t *testing.T) {
	script := frames(4, nil)
	script[0] = map[input.Key]bool{input.KeyM: true}
	script[2] = map[input.Key]bool{input.KeyF1: true}
	w := &fakeWindow{script: script, dt: dt}
	l, _, _ := newTestLoop(w, debug.New(false))

	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, []bool{true}, w.capture)
	require.Len(t, w.hud, 2, "overlay drawn on frames after F1")
	assert.Equal(t, "Camera: chase", w.hud[0][1])
	assert.Contains(t, w.hud[0][3], "Mouse: on")
}

func TestLoop_PointerCaptureRecentreDoesNotJump(t *testing.T) {
	w := &fakeWindow{
		script: []map[input.Key]bool{
			{input.KeyFive: true},
			{input.KeyM: true},
			{},
			{},
		},
		// Frame 1 is sampled before the capture; frames 2 and 3 are relative to centre.
		pointer: [][2]float64{{0, 0}, {100, 100}, {0, 0}, {10, 0}},
		left:    true,
		centre:  [2]float64{600, 400},
	}
	loop, _, s := newTestLoop(w, debug.New(false))

	loop.frame()
	loop.frame()
	require.True(t, s.Camera.PointerControl())
	require.Equal(t, []bool{true}, w.capture)

	loop.frame()
	free := s.Camera.Rig().(*camera.FreeRig)
	assert.Equal(t, -90.0, free.Yaw)
	assert.Equal(t, 0.0, free.Pitch)

	loop.frame()
	assert.InDelta(t, -88, free.Yaw, 1e-9)
	assert.Equal(t, 0.0, free.Pitch)
}
