package input

import "racing-sim/internal/physics"

// KeySource reports whether a key is currently down.
type KeySource interface {
	IsKeyDown(k Key) bool
}

// PointerSource reports raw pointer state for the current frame.
type PointerSource interface {
	PointerPosition() (x, y float64)
	PointerButtons() (left, right bool)
	// ScrollDelta is the vertical wheel movement since the previous frame.
	ScrollDelta() float64
}

// Pointer is the pointer sample for one frame.
type Pointer struct {
	X, Y        float64
	Left, Right bool
	Scroll      float64
}

// Frame is everything the loop consumes from input in one iteration.
type Frame struct {
	// Held drives physics. Reset is never set here; it arrives as ActionReset.
	Held    physics.Controls
	Pressed []Action
	Pointer Pointer
}

// Poller samples key state once per frame and derives press edges from the previous sample,
// so a key held across frames fires its action exactly once.
type Poller struct {
	bindings Bindings
	keys     []Key
	prev     map[Key]bool
}

// NewPoller builds a poller over the given bindings.
func NewPoller(b Bindings) *Poller {
	return &Poller{
		bindings: b,
		keys:     b.Keys(),
		prev:     make(map[Key]bool),
	}
}

// Poll samples keys and pointer. ptr may be nil.
func (p *Poller) Poll(keys KeySource, ptr PointerSource) Frame {
	down := make(map[Key]bool, len(p.keys))
	for _, k := range p.keys {
		down[k] = keys.IsKeyDown(k)
	}

	var f Frame
	for _, h := range p.bindings.Held {
		if !down[h.Key] {
			continue
		}
		switch h.Control {
		case ControlAccelerate:
			f.Held.Accelerate = true
		case ControlBrake:
			f.Held.Brake = true
		case ControlLeft:
			f.Held.Left = true
		case ControlRight:
			f.Held.Right = true
		}
	}
	for _, b := range p.bindings.Press {
		if down[b.Key] && !p.prev[b.Key] {
			f.Pressed = append(f.Pressed, b.Action)
		}
	}
	p.prev = down

	if ptr != nil {
		f.Pointer.X, f.Pointer.Y = ptr.PointerPosition()
		f.Pointer.Left, f.Pointer.Right = ptr.PointerButtons()
		f.Pointer.Scroll = ptr.ScrollDelta()
	}
	return f
}
