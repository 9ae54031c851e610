package primitives

import "fmt"

// FloatsPerVertex is the interleaved layout width: position (3), normal (3), texcoord (2).
const FloatsPerVertex = 8

// Kind names a procedural primitive shape.
type Kind uint8

const (
	KindCube Kind = iota
	KindCylinder
	KindCone
)

func (k Kind) String() string {
	switch k {
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Key identifies one generated mesh: shape plus its parameter (segment count; 0 for cube).
type Key struct {
	Kind     Kind
	Segments int
}

func (k Key) String() string {
	if k.Kind == KindCube {
		return k.Kind.String()
	}
	return fmt.Sprintf("%s/%d", k.Kind, k.Segments)
}

// CubeKey, CylinderKey and ConeKey build registry keys.
func CubeKey() Key                 { return Key{Kind: KindCube} }
func CylinderKey(segments int) Key { return Key{Kind: KindCylinder, Segments: segments} }
func ConeKey(segments int) Key     { return Key{Kind: KindCone, Segments: segments} }

// Vertex is one interleaved vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Mesh is an immutable vertex sequence with optional indices. Indices are nil for
// non-indexed (triangle list) meshes.
type Mesh struct {
	Key      Key
	Vertices []Vertex
	Indices  []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// Indexed reports whether the mesh is drawn through its index sequence.
func (m *Mesh) Indexed() bool { return len(m.Indices) > 0 }

// Interleaved returns the vertices flattened to FloatsPerVertex floats each.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1])
	}
	return out
}
