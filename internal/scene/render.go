// Package scene composes the per-frame draw list and issues it against a render device.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"racing-sim/internal/lighting"
	"racing-sim/internal/primitives"
)

// Uniforms is the full per-draw shader input.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Color      mgl32.Vec3
	UseTexture bool
	Emissive   mgl32.Vec3
	Light      lighting.Params
	ViewPos    mgl32.Vec3
}

// Device issues draw calls. Texture binding is global device state that persists across Draw.
type Device interface {
	// BindTexture makes slot the active texture. It returns false, leaving nothing bound, when
	// the slot has no loaded data.
	BindTexture(slot TextureSlot) bool
	ClearTexture()
	Draw(h primitives.Handle, u Uniforms) error
}

// MeshSource resolves primitive keys to uploaded handles.
type MeshSource interface {
	Get(key primitives.Key) (primitives.Handle, error)
}

// Viewpoint is the camera and light state shared by every draw in a frame.
type Viewpoint struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Light      lighting.Params
}

// Stats summarizes one Render call.
type Stats struct {
	Drawn      int
	Failed     int
	Untextured int // textured items drawn with flat color because their slot had no data
}

// texture binding tracked across draws; slotUnknown forces the first item to set it.
const slotUnknown TextureSlot = 0xff

// Renderer draws composed items. It binds or clears the device texture only when an item's
// texturing differs from the previous draw.
type Renderer struct {
	dev    Device
	meshes MeshSource
	log    zerolog.Logger

	bound   TextureSlot
	boundOK bool
}

// NewRenderer returns a renderer over dev that looks meshes up in meshes.
func NewRenderer(dev Device, meshes MeshSource, log zerolog.Logger) *Renderer {
	return &Renderer{
		dev:    dev,
		meshes: meshes,
		log:    log.With().Str("component", "scene").Logger(),
		bound:  slotUnknown,
	}
}

// Render draws items in order. A failed item is logged and skipped; the rest of the frame
// still draws.
func (r *Renderer) Render(items []DrawItem, vp Viewpoint) Stats {
	// Other drawing between frames (HUD, clear) may have touched the binding.
	r.bound = slotUnknown

	var st Stats
	for _, it := range items {
		useTex := r.prepareTexture(it.Texture)
		if it.Texture != SlotNone && !useTex {
			st.Untextured++
		}

		h, err := r.meshes.Get(it.Mesh)
		if err != nil {
			st.Failed++
			r.log.Warn().Err(err).Str("part", it.Part).Stringer("mesh", it.Mesh).Msg("mesh unavailable")
			continue
		}
		err = r.dev.Draw(h, Uniforms{
			Model:      it.Model,
			View:       vp.View,
			Projection: vp.Projection,
			Color:      it.Color,
			UseTexture: useTex,
			Emissive:   it.Emissive,
			Light:      vp.Light,
			ViewPos:    vp.Eye,
		})
		if err != nil {
			st.Failed++
			r.log.Warn().Err(err).Str("part", it.Part).Stringer("mesh", it.Mesh).Msg("draw failed")
			continue
		}
		st.Drawn++
	}
	return st
}

func (r *Renderer) prepareTexture(slot TextureSlot) bool {
	if slot == r.bound {
		return r.boundOK
	}
	r.bound = slot
	if slot == SlotNone {
		r.dev.ClearTexture()
		r.boundOK = false
		return false
	}
	r.boundOK = r.dev.BindTexture(slot)
	return r.boundOK
}
