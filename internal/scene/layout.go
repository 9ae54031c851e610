package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"racing-sim/internal/primitives"
)

//go:embed layout.yaml
var defaultLayout []byte

// ErrLayout is returned for a layout file that parses but cannot be drawn.
var ErrLayout = errors.New("scene: invalid layout")

// Block is one scaled unit cube with a flat color.
type Block struct {
	Position mgl32.Vec3 `yaml:"position"`
	Offset   mgl32.Vec3 `yaml:"offset"`
	Scale    mgl32.Vec3 `yaml:"scale"`
	Color    mgl32.Vec3 `yaml:"color"`
}

// Crown is the tree top. Its scale depends on the current crown shape.
type Crown struct {
	Offset       mgl32.Vec3 `yaml:"offset"`
	PointedScale mgl32.Vec3 `yaml:"pointedScale"`
	RoundScale   mgl32.Vec3 `yaml:"roundScale"`
	Segments     int        `yaml:"segments"`
}

// Trees places identical trees. Crown color and overall size come from the environment.
type Trees struct {
	Positions []mgl32.Vec3 `yaml:"positions"`
	Trunk     Block        `yaml:"trunk"`
	Crown     Crown        `yaml:"crown"`
}

// Buildings places identical textured blocks.
type Buildings struct {
	Positions []mgl32.Vec3 `yaml:"positions"`
	Offset    mgl32.Vec3   `yaml:"offset"`
	Scale     mgl32.Vec3   `yaml:"scale"`
	Color     mgl32.Vec3   `yaml:"color"`
}

// Barriers are a mirrored pair at ±X along the track.
type Barriers struct {
	X     float32    `yaml:"x"`
	Y     float32    `yaml:"y"`
	Scale mgl32.Vec3 `yaml:"scale"`
	Color mgl32.Vec3 `yaml:"color"`
}

// Track is the rotatable driving surface and its barriers.
type Track struct {
	Surface  Block    `yaml:"surface"`
	Barriers Barriers `yaml:"barriers"`
}

// Layout describes the static world around the vehicle.
type Layout struct {
	Ground    Block     `yaml:"ground"`
	Trees     Trees     `yaml:"trees"`
	Buildings Buildings `yaml:"buildings"`
	Track     Track     `yaml:"track"`
}

// DefaultLayout returns the built-in layout.
func DefaultLayout() Layout {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded layout: %v", err))
	}
	return l
}

// LoadLayout reads a layout file. An empty path selects the built-in layout.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("scene: read layout %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes and validates YAML layout data.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("scene: parse layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) validate() error {
	if len(l.Trees.Positions) > 0 && l.Trees.Crown.Segments < primitives.MinSegments {
		return fmt.Errorf("%w: crown segments %d, need at least %d", ErrLayout, l.Trees.Crown.Segments, primitives.MinSegments)
	}
	scales := map[string]mgl32.Vec3{
		"ground":          l.Ground.Scale,
		"track.surface":   l.Track.Surface.Scale,
		"track.barriers":  l.Track.Barriers.Scale,
		"buildings.scale": l.Buildings.Scale,
	}
	for name, s := range scales {
		if s.X() <= 0 || s.Y() <= 0 || s.Z() <= 0 {
			return fmt.Errorf("%w: %s scale %v must be positive", ErrLayout, name, s)
		}
	}
	return nil
}

// Meshes lists every primitive the layout and the vehicle assembly draw with, for warm-up.
func (l Layout) Meshes() []primitives.Key {
	keys := []primitives.Key{primitives.CubeKey(), wheelMesh, headlightMesh}
	if len(l.Trees.Positions) > 0 {
		keys = append(keys, primitives.ConeKey(l.Trees.Crown.Segments))
	}
	return keys
}
