package input

import (
	"fmt"
	"io"
	"strings"
)

var legendRows = [][2]string{
	{"W / Up", "accelerate"},
	{"S / Down", "brake / reverse"},
	{"A D / Left Right", "steer"},
	{"R", "reset car"},
	{"U", "spin car 90°"},
	{"1-5", "camera: chase, cockpit, side, orbital (again reverses), free"},
	{"M", "toggle mouse control (free camera: left drag orbits, right drag pans, wheel zooms)"},
	{"N", "toggle night"},
	{"L", "toggle headlights"},
	{"T / Y", "rotate track 15° / 45°"},
	{"G", "random tree color"},
	{"H", "cycle tree size"},
	{"J", "toggle tree shape"},
	{"F1", "toggle HUD"},
	{"ESC", "quit"},
}

// Legend returns the static control summary printed at startup.
func Legend() string {
	var b strings.Builder
	b.WriteString("Racing Car Simulator controls:\n")
	for _, row := range legendRows {
		fmt.Fprintf(&b, "  %-18s %s\n", row[0], row[1])
	}
	return b.String()
}

// PrintLegend writes the legend to w.
func PrintLegend(w io.Writer) error {
	_, err := io.WriteString(w, Legend())
	return err
}
