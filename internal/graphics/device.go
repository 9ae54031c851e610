package graphics

import (
	"errors"
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"racing-sim/internal/primitives"
	"racing-sim/internal/scene"
)

// ErrHandle is returned by Draw for a handle this device never issued.
var ErrHandle = errors.New("graphics: unknown mesh handle")

// Device uploads meshes and issues lit draw calls through one shared material.
// The material's albedo map is the device's "bound texture".
type Device struct {
	shader   *Shader
	textures *Textures
	material rl.Material
	blank    rl.Texture2D
	meshes   []rl.Mesh
	// Uploaded meshes keep pointers into Go slices for the process lifetime.
	pinner runtime.Pinner
}

// NewDevice returns a device drawing with shader and resolving texture slots through textures.
func NewDevice(shader *Shader, textures *Textures) *Device {
	mat := rl.LoadMaterialDefault()
	mat.Shader = shader.prog
	return &Device{
		shader:   shader,
		textures: textures,
		material: mat,
		blank:    mat.GetMap(rl.MapDiffuse).Texture,
	}
}

// Upload splits the interleaved vertex stream into raylib's per-attribute arrays and creates the
// GPU buffers.
func (d *Device) Upload(m *primitives.Mesh) (primitives.Handle, error) {
	n := m.VertexCount()
	if n == 0 {
		return 0, fmt.Errorf("%w: %s has no vertices", primitives.ErrUpload, m.Key)
	}
	data := m.Interleaved()
	pos := make([]float32, 0, n*3)
	nrm := make([]float32, 0, n*3)
	uv := make([]float32, 0, n*2)
	for i := 0; i < n; i++ {
		v := data[i*primitives.FloatsPerVertex : (i+1)*primitives.FloatsPerVertex]
		pos = append(pos, v[0:3]...)
		nrm = append(nrm, v[3:6]...)
		uv = append(uv, v[6:8]...)
	}

	mesh := rl.Mesh{
		VertexCount: int32(n),
		Vertices:    &pos[0],
		Normals:     &nrm[0],
		Texcoords:   &uv[0],
	}
	d.pinner.Pin(&pos[0])
	d.pinner.Pin(&nrm[0])
	d.pinner.Pin(&uv[0])
	if m.Indexed() {
		idx := append([]uint16(nil), m.Indices...)
		mesh.Indices = &idx[0]
		mesh.TriangleCount = int32(len(idx) / 3)
		d.pinner.Pin(&idx[0])
	} else {
		mesh.TriangleCount = int32(n / 3)
	}

	rl.UploadMesh(&mesh, false)
	if mesh.VaoID == 0 {
		return 0, fmt.Errorf("%w: %s", primitives.ErrUpload, m.Key)
	}
	d.meshes = append(d.meshes, mesh)
	return primitives.Handle(len(d.meshes)), nil
}

// BindTexture makes slot the albedo map. A slot without loaded data leaves the blank map bound.
func (d *Device) BindTexture(slot scene.TextureSlot) bool {
	tex, ok := d.textures.Get(slot)
	if !ok {
		d.ClearTexture()
		return false
	}
	rl.SetMaterialTexture(&d.material, rl.MapDiffuse, tex)
	return true
}

// ClearTexture binds the blank map.
func (d *Device) ClearTexture() {
	rl.SetMaterialTexture(&d.material, rl.MapDiffuse, d.blank)
}

// Draw sets every uniform and draws mesh h. The model matrix travels as a uniform, so DrawMesh
// gets an identity transform.
func (d *Device) Draw(h primitives.Handle, u scene.Uniforms) error {
	if h == 0 || int(h) > len(d.meshes) {
		return fmt.Errorf("%w: %d", ErrHandle, h)
	}
	prog, loc := d.shader.prog, d.shader.locs

	rl.SetShaderValueMatrix(prog, loc.model, toMatrix(u.Model))
	rl.SetShaderValueMatrix(prog, loc.view, toMatrix(u.View))
	rl.SetShaderValueMatrix(prog, loc.projection, toMatrix(u.Projection))

	setVec3(prog, loc.objectColor, u.Color)
	useTex := float32(0)
	if u.UseTexture {
		useTex = 1
	}
	rl.SetShaderValue(prog, loc.useTexture, []float32{useTex}, rl.ShaderUniformFloat)
	setVec3(prog, loc.emissive, u.Emissive)

	setVec3(prog, loc.lightPos, u.Light.Position)
	setVec3(prog, loc.lightColor, u.Light.Color)
	setVec3(prog, loc.viewPos, u.ViewPos)
	rl.SetShaderValue(prog, loc.intensity, []float32{u.Light.Intensity}, rl.ShaderUniformFloat)
	setVec3(prog, loc.spotDir, u.Light.SpotDirection)
	rl.SetShaderValue(prog, loc.spotCutoff, []float32{u.Light.SpotCutoff}, rl.ShaderUniformFloat)

	rl.DrawMesh(d.meshes[h-1], d.material, rl.MatrixIdentity())
	return nil
}

func setVec3(prog rl.Shader, loc int32, v mgl32.Vec3) {
	if loc < 0 {
		return
	}
	rl.SetShaderValue(prog, loc, v[:], rl.ShaderUniformVec3)
}

// toMatrix converts a column-major mgl32 matrix. raylib names its fields by the same
// column-major index.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
