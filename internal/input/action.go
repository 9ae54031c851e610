// Package input turns raw key and pointer state into a per-frame held-control snapshot and a
// stream of edge-triggered actions.
package input

// Action is a discrete, edge-triggered command.
type Action uint8

const (
	ActionNone Action = iota

	// System
	ActionQuit      // ESC
	ActionToggleHUD // F1

	// Vehicle
	ActionReset // R
	ActionSpin  // U, +90° in place

	// Environment
	ActionToggleNight      // N
	ActionToggleHeadlights // L
	ActionRotateTrack15    // T
	ActionRotateTrack45    // Y
	ActionRandomTreeColor  // G
	ActionCycleTreeSize    // H
	ActionToggleTreeShape  // J

	// Camera
	ActionCameraChase   // 1
	ActionCameraCockpit // 2
	ActionCameraSide    // 3
	ActionCameraOrbital // 4
	ActionCameraFree    // 5
	ActionTogglePointer // M
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionToggleHUD:        "toggle_hud",
	ActionReset:            "reset",
	ActionSpin:             "spin",
	ActionToggleNight:      "toggle_night",
	ActionToggleHeadlights: "toggle_headlights",
	ActionRotateTrack15:    "rotate_track_15",
	ActionRotateTrack45:    "rotate_track_45",
	ActionRandomTreeColor:  "random_tree_color",
	ActionCycleTreeSize:    "cycle_tree_size",
	ActionToggleTreeShape:  "toggle_tree_shape",
	ActionCameraChase:      "camera_chase",
	ActionCameraCockpit:    "camera_cockpit",
	ActionCameraSide:       "camera_side",
	ActionCameraOrbital:    "camera_orbital",
	ActionCameraFree:       "camera_free",
	ActionTogglePointer:    "toggle_pointer",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Control is a continuous control sampled every frame.
type Control uint8

const (
	ControlAccelerate Control = iota
	ControlBrake
	ControlLeft
	ControlRight
)
