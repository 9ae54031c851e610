package debug

import (
	"fmt"
	"runtime"
)

// updateInterval: only refresh HUD text every N frames to reduce allocations.
const updateInterval = 30

// Status is the simulation state shown on the HUD.
type Status struct {
	Camera         string
	Speed          float32
	Heading        float32
	Night          bool
	Headlights     bool
	PointerControl bool
	FailedDraws    int
}

// Overlay holds the HUD text and a frame-rate meter. Hidden by default.
type Overlay struct {
	Visible      bool
	ShowMemAlloc bool

	frameCount uint32
	elapsed    float32
	fps        int
	lines      []string
	memStats   runtime.MemStats
}

// New returns an overlay, visible when show is set.
func New(show bool) *Overlay {
	return &Overlay{Visible: show}
}

// Toggle flips visibility and returns the new state. The next Lines call refreshes the text.
func (o *Overlay) Toggle() bool {
	o.Visible = !o.Visible
	o.lines = nil
	return o.Visible
}

// Tick records one frame of dt seconds and returns the HUD lines to draw, or nil when hidden.
// Text is only recomputed every updateInterval frames.
func (o *Overlay) Tick(dt float32, s Status) []string {
	o.frameCount++
	o.elapsed += dt
	update := o.frameCount%updateInterval == 0
	if update {
		if o.elapsed > 0 {
			o.fps = int(float32(updateInterval)/o.elapsed + 0.5)
		}
		o.elapsed = 0
	}
	if !o.Visible {
		return nil
	}
	if update || o.lines == nil {
		o.lines = o.format(s)
	}
	return o.lines
}

func (o *Overlay) format(s Status) []string {
	lines := []string{
		fmt.Sprintf("FPS: %d", o.fps),
		fmt.Sprintf("Camera: %s", s.Camera),
		fmt.Sprintf("Speed: %.1f  Heading: %.0f", s.Speed, s.Heading),
		fmt.Sprintf("Night: %s  Headlights: %s  Mouse: %s", onOff(s.Night), onOff(s.Headlights), onOff(s.PointerControl)),
	}
	if s.FailedDraws > 0 {
		lines = append(lines, fmt.Sprintf("Failed draws: %d", s.FailedDraws))
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.memStats)
		mb := float64(o.memStats.Alloc) / (1024 * 1024)
		lines = append(lines, fmt.Sprintf("Mem: %.2f MiB", mb))
	}
	return lines
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
