package primitives

import (
	"errors"
	"fmt"
	"math"
)

// MinSegments is the smallest segment count that yields a closed triangle fan.
const MinSegments = 3

// ErrSegments is returned for segment counts below MinSegments.
var ErrSegments = errors.New("primitives: segment count below 3")

// cubeFaces lists each face as normal plus four corners (counter-clockwise seen from outside)
// with their texture coordinates.
var cubeFaces = [6]struct {
	normal  [3]float32
	corners [4][3]float32
	uvs     [4][2]float32
}{
	{ // front
		normal:  [3]float32{0, 0, 1},
		corners: [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // back
		normal:  [3]float32{0, 0, -1},
		corners: [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // left
		normal:  [3]float32{-1, 0, 0},
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // right
		normal:  [3]float32{1, 0, 0},
		corners: [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // top
		normal:  [3]float32{0, 1, 0},
		corners: [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
	{ // bottom
		normal:  [3]float32{0, -1, 0},
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
		uvs:     [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	},
}

// Cube returns a unit cube centered at the origin: 24 vertices (4 per face, so each face
// keeps its own flat normal) and 36 indices (two triangles per face).
func Cube() *Mesh {
	m := &Mesh{
		Key:      CubeKey(),
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	for _, f := range cubeFaces {
		base := uint16(len(m.Vertices))
		for i := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: f.corners[i], Normal: f.normal, UV: f.uvs[i]})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}

// ring returns the unit-circle point at segment i of n on the XZ plane.
func ring(i, n int) (x, z float32) {
	a := 2 * math.Pi * float64(i) / float64(n)
	return float32(math.Cos(a)), float32(math.Sin(a))
}

// Cylinder returns a cylinder of radius 1 spanning y in [-0.5, 0.5], built as a plain
// triangle list: per segment one bottom cap triangle, one top cap triangle and two side
// triangles, so 12 vertices per segment.
func Cylinder(segments int) (*Mesh, error) {
	if segments < MinSegments {
		return nil, fmt.Errorf("cylinder(%d): %w", segments, ErrSegments)
	}
	m := &Mesh{Key: CylinderKey(segments), Vertices: make([]Vertex, 0, 12*segments)}
	down := [3]float32{0, -1, 0}
	up := [3]float32{0, 1, 0}
	capUV := func(x, z float32) [2]float32 { return [2]float32{(x + 1) * 0.5, (z + 1) * 0.5} }
	for i := 0; i < segments; i++ {
		x0, z0 := ring(i, segments)
		x1, z1 := ring(i+1, segments)
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{0, -0.5, 0}, Normal: down, UV: [2]float32{0.5, 0.5}},
			Vertex{Position: [3]float32{x0, -0.5, z0}, Normal: down, UV: capUV(x0, z0)},
			Vertex{Position: [3]float32{x1, -0.5, z1}, Normal: down, UV: capUV(x1, z1)},

			Vertex{Position: [3]float32{0, 0.5, 0}, Normal: up, UV: [2]float32{0.5, 0.5}},
			Vertex{Position: [3]float32{x1, 0.5, z1}, Normal: up, UV: capUV(x1, z1)},
			Vertex{Position: [3]float32{x0, 0.5, z0}, Normal: up, UV: capUV(x0, z0)},

			Vertex{Position: [3]float32{x0, -0.5, z0}, Normal: [3]float32{x0, 0, z0}, UV: [2]float32{u0, 0}},
			Vertex{Position: [3]float32{x0, 0.5, z0}, Normal: [3]float32{x0, 0, z0}, UV: [2]float32{u0, 1}},
			Vertex{Position: [3]float32{x1, 0.5, z1}, Normal: [3]float32{x1, 0, z1}, UV: [2]float32{u1, 1}},

			Vertex{Position: [3]float32{x0, -0.5, z0}, Normal: [3]float32{x0, 0, z0}, UV: [2]float32{u0, 0}},
			Vertex{Position: [3]float32{x1, 0.5, z1}, Normal: [3]float32{x1, 0, z1}, UV: [2]float32{u1, 1}},
			Vertex{Position: [3]float32{x1, -0.5, z1}, Normal: [3]float32{x1, 0, z1}, UV: [2]float32{u1, 0}},
		)
	}
	return m, nil
}

// Cone returns a cone of base radius 1 with its base at y=-0.5 and apex at y=0.5. Each
// segment contributes one flat-shaded side triangle and one base fan triangle (6 vertices).
func Cone(segments int) (*Mesh, error) {
	if segments < MinSegments {
		return nil, fmt.Errorf("cone(%d): %w", segments, ErrSegments)
	}
	m := &Mesh{Key: ConeKey(segments), Vertices: make([]Vertex, 0, 6*segments)}
	apex := [3]float32{0, 0.5, 0}
	down := [3]float32{0, -1, 0}
	for i := 0; i < segments; i++ {
		x0, z0 := ring(i, segments)
		x1, z1 := ring(i+1, segments)
		p0 := [3]float32{x0, -0.5, z0}
		p1 := [3]float32{x1, -0.5, z1}
		n := faceNormal(apex, p1, p0)

		m.Vertices = append(m.Vertices,
			Vertex{Position: apex, Normal: n, UV: [2]float32{0.5, 1}},
			Vertex{Position: p1, Normal: n, UV: [2]float32{1, 0}},
			Vertex{Position: p0, Normal: n, UV: [2]float32{0, 0}},

			Vertex{Position: [3]float32{0, -0.5, 0}, Normal: down, UV: [2]float32{0.5, 0.5}},
			Vertex{Position: p0, Normal: down, UV: [2]float32{(x0 + 1) * 0.5, (z0 + 1) * 0.5}},
			Vertex{Position: p1, Normal: down, UV: [2]float32{(x1 + 1) * 0.5, (z1 + 1) * 0.5}},
		)
	}
	return m, nil
}

// faceNormal returns the normalized (b-a)x(c-a); the triangle winds counter-clockwise
// seen from the side the normal points to.
func faceNormal(a, b, c [3]float32) [3]float32 {
	e1 := [3]float64{float64(b[0] - a[0]), float64(b[1] - a[1]), float64(b[2] - a[2])}
	e2 := [3]float64{float64(c[0] - a[0]), float64(c[1] - a[1]), float64(c[2] - a[2])}
	n := [3]float64{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{float32(n[0] / l), float32(n[1] / l), float32(n[2] / l)}
}

// Generate builds the mesh for key.
func Generate(key Key) (*Mesh, error) {
	switch key.Kind {
	case KindCube:
		return Cube(), nil
	case KindCylinder:
		return Cylinder(key.Segments)
	case KindCone:
		return Cone(key.Segments)
	default:
		return nil, fmt.Errorf("primitives: unknown shape %s", key.Kind)
	}
}
