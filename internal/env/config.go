package env

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	treeSizeMin  = 0.5
	treeSizeMax  = 1.5
	treeSizeStep = 0.3
)

// Config holds the environment flags toggled by discrete input. Read by lighting and the
// scene composer; mutated only by the frame loop through the methods below.
type Config struct {
	Night         bool
	Headlights    bool
	TrackRotation float32 // degrees about Y
	TreeSize      float32
	TreeColor     mgl32.Vec3
	TreeRound     bool
}

// Default returns daytime, headlights off, green pointed trees at unit size.
func Default() Config {
	return Config{
		TreeSize:  1,
		TreeColor: mgl32.Vec3{0.2, 0.8, 0.2},
	}
}

// ToggleNight switches between the day and night presets.
func (c *Config) ToggleNight() { c.Night = !c.Night }

// ToggleHeadlights switches the headlights.
func (c *Config) ToggleHeadlights() { c.Headlights = !c.Headlights }

// RotateTrack adds deg to the track rotation, kept in [0, 360).
func (c *Config) RotateTrack(deg float32) {
	r := c.TrackRotation + deg
	for r >= 360 {
		r -= 360
	}
	for r < 0 {
		r += 360
	}
	c.TrackRotation = r
}

// CycleTreeSize grows the trees by a fixed step and wraps back to the smallest size once
// they are past the largest.
func (c *Config) CycleTreeSize() {
	if c.TreeSize > treeSizeMax {
		c.TreeSize = treeSizeMin
		return
	}
	c.TreeSize += treeSizeStep
}

// RandomTreeColor picks a new crown color from rng.
func (c *Config) RandomTreeColor(rng *rand.Rand) {
	c.TreeColor = mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
}

// ToggleTreeShape switches between pointed and round crowns.
func (c *Config) ToggleTreeShape() { c.TreeRound = !c.TreeRound }
