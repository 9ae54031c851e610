package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"racing-sim/internal/env"
	"racing-sim/internal/lighting"
	"racing-sim/internal/physics"
	"racing-sim/internal/primitives"
)

// TextureSlot is a logical texture asset. SlotNone draws with the flat object color.
type TextureSlot uint8

const (
	SlotNone TextureSlot = iota
	SlotGround
	SlotTrack
	SlotBody
	SlotBuilding
)

func (s TextureSlot) String() string {
	switch s {
	case SlotGround:
		return "ground"
	case SlotTrack:
		return "track"
	case SlotBody:
		return "body"
	case SlotBuilding:
		return "building"
	default:
		return "none"
	}
}

// DrawItem is one primitive draw in world space.
type DrawItem struct {
	Part     string
	Mesh     primitives.Key
	Model    mgl32.Mat4
	Color    mgl32.Vec3
	Emissive mgl32.Vec3
	Texture  TextureSlot
}

var (
	cubeMesh      = primitives.CubeKey()
	wheelMesh     = primitives.CylinderKey(32)
	headlightMesh = primitives.ConeKey(16)
)

// Vehicle part placement, relative to the vehicle transform.
var (
	bodyScale = mgl32.Vec3{2, 0.8, 4}
	bodyColor = mgl32.Vec3{0.8, 0.2, 0.2}

	spoilerOffset = mgl32.Vec3{0, 0.6, -2.2}
	spoilerScale  = mgl32.Vec3{1.8, 0.3, 0.4}

	// Headlight offsets place the cone base; the mesh itself is centred.
	headlightOffsets = [2]mgl32.Vec3{{-0.5, 0, 2.1}, {0.5, 0, 2.1}}
	headlightToeIn   = [2]float32{-15, 15}
	headlightScale   = mgl32.Vec3{0.3, 1.5, 0.3}

	tailOffsets = [2]mgl32.Vec3{{-0.5, 0.2, -2}, {0.5, 0.2, -2}}
	tailScale   = mgl32.Vec3{0.2, 0.2, 0.1}

	wheelOffsets = [4]mgl32.Vec3{{-1.2, 0, 1.5}, {1.2, 0, 1.5}, {-1.2, 0, -1.5}, {1.2, 0, -1.5}}
	wheelScale   = mgl32.Vec3{0.6, 0.6, 0.6}

	darkTrim = mgl32.Vec3{0.1, 0.1, 0.1}
)

// Compose returns the frame's draw list in drawing order: static environment, then the track,
// then the vehicle.
func (l Layout) Compose(e env.Config, v physics.State, fx lighting.Fixtures) []DrawItem {
	items := make([]DrawItem, 0, 32)
	items = l.appendEnvironment(items, e)
	items = l.appendTrack(items, e)
	items = appendVehicle(items, v, fx)
	return items
}

func (l Layout) appendEnvironment(items []DrawItem, e env.Config) []DrawItem {
	g := l.Ground
	items = append(items, DrawItem{
		Part:    "ground",
		Mesh:    cubeMesh,
		Model:   TRS(g.Position, noRotation, g.Scale),
		Color:   g.Color,
		Texture: SlotGround,
	})

	t := l.Trees
	crownMesh, crownScale := primitives.ConeKey(t.Crown.Segments), t.Crown.PointedScale
	if e.TreeRound {
		crownMesh, crownScale = cubeMesh, t.Crown.RoundScale
	}
	for _, pos := range t.Positions {
		items = append(items,
			DrawItem{
				Part:  "tree.trunk",
				Mesh:  cubeMesh,
				Model: TRS(pos.Add(t.Trunk.Offset), noRotation, t.Trunk.Scale.Mul(e.TreeSize)),
				Color: t.Trunk.Color,
			},
			DrawItem{
				Part:  "tree.crown",
				Mesh:  crownMesh,
				Model: TRS(pos.Add(t.Crown.Offset), noRotation, crownScale.Mul(e.TreeSize)),
				Color: e.TreeColor,
			},
		)
	}

	b := l.Buildings
	for _, pos := range b.Positions {
		items = append(items, DrawItem{
			Part:    "building",
			Mesh:    cubeMesh,
			Model:   TRS(pos.Add(b.Offset), noRotation, b.Scale),
			Color:   b.Color,
			Texture: SlotBuilding,
		})
	}
	return items
}

func (l Layout) appendTrack(items []DrawItem, e env.Config) []DrawItem {
	root := RotY(e.TrackRotation)
	s := l.Track.Surface
	items = append(items, DrawItem{
		Part:    "track.surface",
		Mesh:    cubeMesh,
		Model:   root.Mul4(TRS(s.Offset, noRotation, s.Scale)),
		Color:   s.Color,
		Texture: SlotTrack,
	})
	br := l.Track.Barriers
	for _, side := range [2]float32{-1, 1} {
		items = append(items, DrawItem{
			Part:  "track.barrier",
			Mesh:  cubeMesh,
			Model: root.Mul4(TRS(mgl32.Vec3{side * br.X, br.Y, 0}, noRotation, br.Scale)),
			Color: br.Color,
		})
	}
	return items
}

// VehicleTransform places the vehicle root: translate to its position, then yaw by heading.
func VehicleTransform(v physics.State) mgl32.Mat4 {
	return TRS(v.Position, RotY(v.Heading), mgl32.Vec3{1, 1, 1})
}

func appendVehicle(items []DrawItem, v physics.State, fx lighting.Fixtures) []DrawItem {
	root := VehicleTransform(v)
	part := func(offset mgl32.Vec3, orient mgl32.Mat4, scale mgl32.Vec3) mgl32.Mat4 {
		return root.Mul4(TRS(offset, orient, scale))
	}

	items = append(items,
		DrawItem{
			Part:    "car.body",
			Mesh:    cubeMesh,
			Model:   part(mgl32.Vec3{}, noRotation, bodyScale),
			Color:   bodyColor,
			Texture: SlotBody,
		},
		DrawItem{
			Part:  "car.spoiler",
			Mesh:  cubeMesh,
			Model: part(spoilerOffset, noRotation, spoilerScale),
			Color: darkTrim,
		},
	)
	for i, off := range headlightOffsets {
		orient := RotX(270).Mul4(RotZ(headlightToeIn[i]))
		items = append(items, DrawItem{
			Part:     "car.headlight",
			Mesh:     headlightMesh,
			Model:    part(headlightCentre(off, orient), orient, headlightScale),
			Color:    fx.Headlight.Color,
			Emissive: fx.Headlight.Emissive,
		})
	}
	for _, off := range tailOffsets {
		items = append(items, DrawItem{
			Part:     "car.taillight",
			Mesh:     cubeMesh,
			Model:    part(off, noRotation, tailScale),
			Color:    fx.TailLight.Color,
			Emissive: fx.TailLight.Emissive,
		})
	}
	for _, off := range wheelOffsets {
		items = append(items, DrawItem{
			Part:  "car.wheel",
			Mesh:  wheelMesh,
			Model: part(off, RotX(v.WheelSpin).Mul4(RotZ(90)), wheelScale),
			Color: darkTrim,
		})
	}
	return items
}

// headlightCentre moves a lamp from its base offset to the centre of the oriented, scaled cone.
func headlightCentre(base mgl32.Vec3, orient mgl32.Mat4) mgl32.Vec3 {
	half := orient.Mul4x1(mgl32.Vec4{0, headlightScale.Y() / 2, 0, 0}).Vec3()
	return base.Add(half)
}
