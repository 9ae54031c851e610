package graphics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"racing-sim/internal/input"
)

// ErrWindow marks a window or GL context that could not be created.
var ErrWindow = errors.New("graphics: window creation failed")

const (
	hudFontSize   = 20
	hudPadding    = 12
	hudLineHeight = hudFontSize + 4
)

// WindowConfig sizes and titles the window.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// Window is the raylib window and its input state. It implements the frame loop's platform
// surface; all methods must be called from the thread that opened it.
type Window struct {
	in3D bool
	// depthCam only exists so BeginMode3D turns on depth testing; the lit shader takes its
	// matrices from uniforms.
	depthCam rl.Camera3D
}

// Open creates the window. ESC is not raylib's exit key here; it arrives as a quit action.
func Open(cfg WindowConfig) (*Window, error) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: %dx%d", ErrWindow, cfg.Width, cfg.Height)
	}
	rl.SetExitKey(rl.KeyNull)
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	return &Window{
		depthCam: rl.Camera3D{
			Position:   rl.NewVector3(0, 0, 1),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}, nil
}

// Close destroys the window.
func (w *Window) Close() { rl.CloseWindow() }

func (w *Window) IsKeyDown(k input.Key) bool { return rl.IsKeyDown(int32(k)) }

func (w *Window) PointerPosition() (float64, float64) {
	p := rl.GetMousePosition()
	return float64(p.X), float64(p.Y)
}

func (w *Window) PointerButtons() (bool, bool) {
	return rl.IsMouseButtonDown(rl.MouseButtonLeft), rl.IsMouseButtonDown(rl.MouseButtonRight)
}

func (w *Window) ScrollDelta() float64 { return float64(rl.GetMouseWheelMove()) }

func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }

func (w *Window) FrameTime() float32 { return rl.GetFrameTime() }

func (w *Window) Aspect() float32 {
	h := rl.GetScreenHeight()
	if h == 0 {
		return 1
	}
	return float32(rl.GetScreenWidth()) / float32(h)
}

// SetPointerCapture hides and locks the cursor while pointer control is on.
func (w *Window) SetPointerCapture(captured bool) {
	if captured {
		rl.DisableCursor()
		return
	}
	rl.EnableCursor()
}

// BeginFrame clears to the sky color and enters 3D drawing.
func (w *Window) BeginFrame(clear mgl32.Vec3) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.ColorFromNormalized(rl.NewVector4(clear.X(), clear.Y(), clear.Z(), 1)))
	rl.BeginMode3D(w.depthCam)
	w.in3D = true
}

func (w *Window) end3D() {
	if w.in3D {
		rl.EndMode3D()
		w.in3D = false
	}
}

// DrawOverlay draws HUD lines at the top-right in green.
func (w *Window) DrawOverlay(lines []string) {
	w.end3D()
	screenW := int32(rl.GetScreenWidth())
	y := int32(hudPadding)
	for _, text := range lines {
		x := screenW - rl.MeasureText(text, hudFontSize) - hudPadding
		rl.DrawText(text, x, y, hudFontSize, rl.Green)
		y += hudLineHeight
	}
}

// EndFrame presents the frame.
func (w *Window) EndFrame() {
	w.end3D()
	rl.EndDrawing()
}
