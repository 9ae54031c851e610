package input

// Key is a keyboard key. Values match raylib's KeyboardKey codes so adapters can convert
// with a plain cast.
type Key int32

const (
	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265
	KeyF1     Key = 290

	KeyOne   Key = '1'
	KeyTwo   Key = '2'
	KeyThree Key = '3'
	KeyFour  Key = '4'
	KeyFive  Key = '5'

	KeyA Key = 'A'
	KeyD Key = 'D'
	KeyG Key = 'G'
	KeyH Key = 'H'
	KeyJ Key = 'J'
	KeyL Key = 'L'
	KeyM Key = 'M'
	KeyN Key = 'N'
	KeyR Key = 'R'
	KeyS Key = 'S'
	KeyT Key = 'T'
	KeyU Key = 'U'
	KeyW Key = 'W'
	KeyY Key = 'Y'
)

// HeldBinding maps a key to a continuous control.
type HeldBinding struct {
	Key     Key
	Control Control
}

// PressBinding maps a key to an action fired on the frame the key goes down.
type PressBinding struct {
	Key    Key
	Action Action
}

// Bindings is an ordered key table. Actions from the same frame are reported in table order.
type Bindings struct {
	Held  []HeldBinding
	Press []PressBinding
}

// DefaultBindings returns the stock layout: WASD or arrows to drive, letters and digits for
// toggles.
func DefaultBindings() Bindings {
	return Bindings{
		Held: []HeldBinding{
			{KeyW, ControlAccelerate},
			{KeyUp, ControlAccelerate},
			{KeyS, ControlBrake},
			{KeyDown, ControlBrake},
			{KeyA, ControlLeft},
			{KeyLeft, ControlLeft},
			{KeyD, ControlRight},
			{KeyRight, ControlRight},
		},
		Press: []PressBinding{
			{KeyEscape, ActionQuit},
			{KeyF1, ActionToggleHUD},
			{KeyR, ActionReset},
			{KeyU, ActionSpin},
			{KeyN, ActionToggleNight},
			{KeyL, ActionToggleHeadlights},
			{KeyT, ActionRotateTrack15},
			{KeyY, ActionRotateTrack45},
			{KeyG, ActionRandomTreeColor},
			{KeyH, ActionCycleTreeSize},
			{KeyJ, ActionToggleTreeShape},
			{KeyOne, ActionCameraChase},
			{KeyTwo, ActionCameraCockpit},
			{KeyThree, ActionCameraSide},
			{KeyFour, ActionCameraOrbital},
			{KeyFive, ActionCameraFree},
			{KeyM, ActionTogglePointer},
		},
	}
}

// Keys returns every key the table refers to, without duplicates.
func (b Bindings) Keys() []Key {
	seen := make(map[Key]bool, len(b.Held)+len(b.Press))
	var keys []Key
	add := func(k Key) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, h := range b.Held {
		add(h.Key)
	}
	for _, p := range b.Press {
		add(p.Key)
	}
	return keys
}
