package graphics

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"racing-sim/internal/scene"
)

// texturePrefixes are tried in order so assets are found whether run from repo root or cmd/racesim.
var texturePrefixes = []string{"", "../.."}

// Textures resolves logical slots to loaded textures. A slot whose file is missing or unreadable
// stays empty and its objects draw with their flat color.
type Textures struct {
	loaded map[scene.TextureSlot]rl.Texture2D
}

// LoadTextures loads every slot in paths. Call after the window exists. Failures are logged,
// never fatal.
func LoadTextures(paths map[scene.TextureSlot]string, log zerolog.Logger) *Textures {
	t := &Textures{loaded: make(map[scene.TextureSlot]rl.Texture2D)}
	for slot, path := range paths {
		resolved, ok := resolveAsset(path)
		if !ok {
			log.Warn().Stringer("slot", slot).Str("path", path).Msg("texture not found, using flat color")
			continue
		}
		tex := rl.LoadTexture(resolved)
		if !rl.IsTextureValid(tex) {
			log.Warn().Stringer("slot", slot).Str("path", resolved).Msg("texture unreadable, using flat color")
			continue
		}
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		rl.SetTextureWrap(tex, rl.WrapRepeat)
		t.loaded[slot] = tex
		log.Info().Stringer("slot", slot).Str("path", resolved).Int32("width", tex.Width).Int32("height", tex.Height).Msg("texture loaded")
	}
	return t
}

func resolveAsset(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	for _, prefix := range texturePrefixes {
		p := filepath.Clean(filepath.Join(prefix, path))
		if rl.FileExists(p) {
			return p, true
		}
	}
	return "", false
}

// Get returns the texture for slot, if one loaded.
func (t *Textures) Get(slot scene.TextureSlot) (rl.Texture2D, bool) {
	tex, ok := t.loaded[slot]
	return tex, ok
}

// Unload releases every loaded texture.
func (t *Textures) Unload() {
	for slot, tex := range t.loaded {
		rl.UnloadTexture(tex)
		delete(t.loaded, slot)
	}
}
