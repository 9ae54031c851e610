package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube_Counts(t *testing.T) {
	m := Cube()

	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)
	assert.True(t, m.Indexed())
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), m.VertexCount())
	}
}

func TestCylinderAndCone_VertexCountLaw(t *testing.T) {
	for s := MinSegments; s <= 64; s++ {
		cyl, err := Cylinder(s)
		require.NoError(t, err)
		assert.Equal(t, 12*s, cyl.VertexCount(), "cylinder(%d)", s)
		assert.False(t, cyl.Indexed())

		cone, err := Cone(s)
		require.NoError(t, err)
		assert.Equal(t, 6*s, cone.VertexCount(), "cone(%d)", s)
		assert.False(t, cone.Indexed())
	}
}

func TestGenerators_RejectDegenerateSegments(t *testing.T) {
	for _, s := range []int{-1, 0, 1, 2} {
		_, err := Cylinder(s)
		assert.ErrorIs(t, err, ErrSegments)
		_, err = Cone(s)
		assert.ErrorIs(t, err, ErrSegments)
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	a, err := Cylinder(32)
	require.NoError(t, err)
	b, err := Cylinder(32)
	require.NoError(t, err)
	assert.Equal(t, a.Interleaved(), b.Interleaved())

	c, err := Cone(16)
	require.NoError(t, err)
	d, err := Cone(16)
	require.NoError(t, err)
	assert.Equal(t, c.Interleaved(), d.Interleaved())

	assert.Equal(t, Cube().Interleaved(), Cube().Interleaved())
	assert.Equal(t, Cube().Indices, Cube().Indices)
}

func TestInterleaved_Layout(t *testing.T) {
	m := Cube()
	flat := m.Interleaved()

	require.Len(t, flat, m.VertexCount()*FloatsPerVertex)
	v := m.Vertices[5]
	off := 5 * FloatsPerVertex
	assert.Equal(t, v.Position[:], flat[off:off+3])
	assert.Equal(t, v.Normal[:], flat[off+3:off+6])
	assert.Equal(t, v.UV[:], flat[off+6:off+8])
}

// triangles returns the mesh as vertex triples, resolving indices when present.
func triangles(m *Mesh) [][3]Vertex {
	var out [][3]Vertex
	if m.Indexed() {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			out = append(out, [3]Vertex{m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]})
		}
		return out
	}
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		out = append(out, [3]Vertex{m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]})
	}
	return out
}

func TestGenerators_WindingMatchesNormals(t *testing.T) {
	cyl, err := Cylinder(12)
	require.NoError(t, err)
	cone, err := Cone(12)
	require.NoError(t, err)

	for _, m := range []*Mesh{Cube(), cyl, cone} {
		for i, tri := range triangles(m) {
			n := faceNormal(tri[0].Position, tri[1].Position, tri[2].Position)
			for _, v := range tri {
				dot := n[0]*v.Normal[0] + n[1]*v.Normal[1] + n[2]*v.Normal[2]
				assert.Greater(t, dot, float32(0), "%s triangle %d faces inward", m.Key, i)
			}
		}
	}
}

func TestGenerators_CenteredUnitBounds(t *testing.T) {
	cyl, err := Cylinder(8)
	require.NoError(t, err)
	cone, err := Cone(8)
	require.NoError(t, err)

	for _, m := range []*Mesh{Cube(), cyl, cone} {
		var minY, maxY float32
		for _, v := range m.Vertices {
			minY = min(minY, v.Position[1])
			maxY = max(maxY, v.Position[1])
			assert.LessOrEqual(t, v.Position[0], float32(1.0001))
			assert.GreaterOrEqual(t, v.Position[0], float32(-1.0001))
		}
		assert.Equal(t, float32(-0.5), minY, m.Key.String())
		assert.Equal(t, float32(0.5), maxY, m.Key.String())
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	m, err := Generate(ConeKey(5))
	require.NoError(t, err)
	assert.Equal(t, ConeKey(5), m.Key)

	_, err = Generate(Key{Kind: Kind(42)})
	assert.Error(t, err)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "cube", CubeKey().String())
	assert.Equal(t, "cylinder/32", CylinderKey(32).String())
	assert.Equal(t, "cone/16", ConeKey(16).String())
}
