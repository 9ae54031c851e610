package primitives

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrUpload marks a failed GPU resource creation.
var ErrUpload = errors.New("primitives: upload failed")

// Handle is an opaque reference to a GPU-resident mesh. The zero value is never a valid handle.
type Handle uint32

// Uploader creates the GPU representation of a mesh. Implemented by the render device.
type Uploader interface {
	Upload(m *Mesh) (Handle, error)
}

// entry is one memoized registry slot: the handle on success, or the error that must be
// returned again instead of retrying the upload.
type entry struct {
	handle Handle
	err    error
}

// Registry maps primitive keys to uploaded meshes. A mesh is generated and uploaded the first
// time its key is requested; every later request returns the same handle.
//
// Registry is not safe for concurrent use. All callers run on the render thread; a parallel
// renderer would have to guard the first-use path in get.
type Registry struct {
	dev     Uploader
	log     zerolog.Logger
	entries map[Key]entry
}

// NewRegistry returns an empty registry that uploads through dev.
func NewRegistry(dev Uploader, log zerolog.Logger) *Registry {
	return &Registry{
		dev:     dev,
		log:     log.With().Str("component", "primitives").Logger(),
		entries: make(map[Key]entry),
	}
}

// Warm uploads every key up front. Call once after the render context exists; a failure here
// is a startup failure.
func (r *Registry) Warm(keys ...Key) error {
	for _, k := range keys {
		if _, err := r.Get(k); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the handle for key, generating and uploading the mesh on first use.
func (r *Registry) Get(key Key) (Handle, error) {
	e := r.get(key)
	return e.handle, e.err
}

// Len returns the number of keys that have been requested, including failed ones.
func (r *Registry) Len() int { return len(r.entries) }

func (r *Registry) get(key Key) entry {
	if e, ok := r.entries[key]; ok {
		return e
	}
	mesh, err := Generate(key)
	if err != nil {
		e := entry{err: err}
		r.entries[key] = e
		return e
	}
	h, err := r.dev.Upload(mesh)
	if err != nil {
		if !errors.Is(err, ErrUpload) {
			err = fmt.Errorf("%w: %s: %v", ErrUpload, key, err)
		}
		e := entry{err: err}
		r.entries[key] = e
		r.log.Error().Err(err).Str("mesh", key.String()).Msg("mesh upload failed")
		return e
	}
	e := entry{handle: h}
	r.entries[key] = e
	r.log.Debug().Str("mesh", key.String()).Int("vertices", mesh.VertexCount()).Uint32("handle", uint32(h)).Msg("mesh uploaded")
	return e
}
