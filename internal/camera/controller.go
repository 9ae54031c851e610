package camera

import (
	"github.com/rs/zerolog"

	"racing-sim/internal/physics"
)

// DefaultSensitivity scales raw pointer deltas before the per-gesture factors apply.
const DefaultSensitivity = 0.1

const (
	orbitGain = 2.0  // degrees per scaled pointer unit
	panGain   = 0.05 // world units per scaled pointer unit
	zoomGain  = 0.5  // world units per scroll notch
)

type pointer struct {
	enabled bool
	seeded  bool
	lastX   float64
	lastY   float64
	left    bool
	right   bool
}

// Controller owns the active camera rig and the pointer state that drives the free camera.
// Rigs left behind on a mode switch are stashed and restored when their mode is selected again.
type Controller struct {
	log         zerolog.Logger
	active      Rig
	stash       map[Mode]Rig
	ptr         pointer
	sensitivity float64
}

// NewController starts in chase mode with pointer control off.
func NewController(log zerolog.Logger, sensitivity float64) *Controller {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Controller{
		log:         log,
		active:      ChaseRig{},
		stash:       make(map[Mode]Rig),
		sensitivity: sensitivity,
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.active.Mode() }

// Rig returns the active rig.
func (c *Controller) Rig() Rig { return c.active }

// Select switches to mode m. Selecting orbital while already orbital reverses its direction.
func (c *Controller) Select(m Mode) {
	if m == c.active.Mode() {
		if o, ok := c.active.(*OrbitalRig); ok {
			o.Reverse()
			c.log.Debug().Float64("direction", o.Direction).Msg("orbital camera reversed")
		}
		return
	}
	c.stash[c.active.Mode()] = c.active
	next, ok := c.stash[m]
	if !ok {
		next = newRig(m)
	}
	c.active = next
	if m == ModeFree {
		c.ptr.seeded = false
	}
	c.log.Debug().Stringer("mode", m).Msg("camera mode")
}

// Update advances the active rig one frame and returns the camera pose for vehicle v.
func (c *Controller) Update(v physics.State) Pose {
	return c.active.Update(v)
}

// PointerControl reports whether pointer gestures are being applied.
func (c *Controller) PointerControl() bool { return c.ptr.enabled }

// SetPointerControl turns pointer gestures on or off. The next pointer sample after enabling
// only seeds the reference position.
func (c *Controller) SetPointerControl(enabled bool) {
	if enabled && !c.ptr.enabled {
		c.ptr.seeded = false
	}
	c.ptr.enabled = enabled
	if !enabled {
		c.ptr.left, c.ptr.right = false, false
	}
}

// TogglePointerControl flips pointer control and returns the new state.
func (c *Controller) TogglePointerControl() bool {
	c.SetPointerControl(!c.ptr.enabled)
	return c.ptr.enabled
}

// Buttons records which pointer buttons are held. Ignored while pointer control is off.
func (c *Controller) Buttons(left, right bool) {
	if !c.ptr.enabled {
		return
	}
	c.ptr.left, c.ptr.right = left, right
}

// PointerMoved feeds an absolute pointer position. With the left button held the free camera
// orbits; with the right button held it pans. Vertical deltas are inverted so moving up raises
// the camera.
func (c *Controller) PointerMoved(x, y float64) {
	if !c.ptr.enabled {
		return
	}
	if !c.ptr.seeded {
		c.ptr.lastX, c.ptr.lastY = x, y
		c.ptr.seeded = true
		return
	}
	dx := (x - c.ptr.lastX) * c.sensitivity
	dy := (c.ptr.lastY - y) * c.sensitivity
	c.ptr.lastX, c.ptr.lastY = x, y

	free, ok := c.active.(*FreeRig)
	if !ok {
		return
	}
	if c.ptr.left {
		free.Orbit(dx*orbitGain, dy*orbitGain)
	}
	if c.ptr.right {
		free.Pan(dx*panGain, dy*panGain)
	}
}

// Scrolled zooms the free camera. Positive dy moves toward the vehicle.
func (c *Controller) Scrolled(dy float64) {
	if !c.ptr.enabled || dy == 0 {
		return
	}
	if free, ok := c.active.(*FreeRig); ok {
		free.Zoom(dy * zoomGain)
	}
}
