package graphics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrShader marks a shader program that failed to compile or link.
var ErrShader = errors.New("graphics: shader program invalid")

// Attribute names match raylib's defaults so UploadMesh buffers bind to them. Matrix uniforms
// deliberately avoid raylib's default names (matModel, mvp, ...) so DrawMesh never overwrites them;
// the sampler is texture0 so DrawMesh binds the material's albedo map to it.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
in vec2 vertexTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragTexCoord;

void main() {
  fragPos = vec3(model * vec4(vertexPosition, 1.0));
  fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
  fragTexCoord = vertexTexCoord;
  gl_Position = projection * view * vec4(fragPos, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragTexCoord;

uniform sampler2D texture0;
uniform vec3 objectColor;
uniform float useTexture;
uniform vec3 emissiveColor;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform vec3 viewPos;
uniform float lightIntensity;
uniform vec3 spotDir;
uniform float spotCutoff;

out vec4 finalColor;

void main() {
  vec3 baseColor = useTexture > 0.5 ? texture(texture0, fragTexCoord).rgb : objectColor;

  vec3 norm = normalize(fragNormal);
  vec3 lightDir = normalize(lightPos - fragPos);

  float spot = 1.0;
  if (length(spotDir) > 0.0) {
    float theta = dot(lightDir, normalize(-spotDir));
    spot = theta > spotCutoff ? pow(theta, 4.0) : 0.0;
  }

  vec3 ambient = 0.3 * lightColor;
  vec3 diffuse = max(dot(norm, lightDir), 0.0) * spot * lightColor;
  vec3 viewDir = normalize(viewPos - fragPos);
  vec3 reflectDir = reflect(-lightDir, norm);
  vec3 specular = 0.5 * pow(max(dot(viewDir, reflectDir), 0.0), 32.0) * spot * lightColor;

  vec3 result = (ambient + diffuse + specular) * baseColor * lightIntensity + emissiveColor;
  finalColor = vec4(result, 1.0);
}
`
)

// uniformLocs caches every uniform of the lit program.
type uniformLocs struct {
	model, view, projection int32
	objectColor, useTexture int32
	emissive                int32
	lightPos, lightColor    int32
	viewPos, intensity      int32
	spotDir, spotCutoff     int32
}

// Shader is the linked lit program.
type Shader struct {
	prog rl.Shader
	locs uniformLocs
}

// LoadShader compiles and links the lit program. Call after the window exists.
func LoadShader() (*Shader, error) {
	prog := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(prog) {
		return nil, fmt.Errorf("%w: lit program", ErrShader)
	}
	loc := func(name string) int32 { return rl.GetShaderLocation(prog, name) }
	s := &Shader{
		prog: prog,
		locs: uniformLocs{
			model:       loc("model"),
			view:        loc("view"),
			projection:  loc("projection"),
			objectColor: loc("objectColor"),
			useTexture:  loc("useTexture"),
			emissive:    loc("emissiveColor"),
			lightPos:    loc("lightPos"),
			lightColor:  loc("lightColor"),
			viewPos:     loc("viewPos"),
			intensity:   loc("lightIntensity"),
			spotDir:     loc("spotDir"),
			spotCutoff:  loc("spotCutoff"),
		},
	}
	if s.locs.model < 0 || s.locs.view < 0 || s.locs.projection < 0 {
		rl.UnloadShader(prog)
		return nil, fmt.Errorf("%w: missing matrix uniforms", ErrShader)
	}
	return s, nil
}

// Unload releases the program.
func (s *Shader) Unload() { rl.UnloadShader(s.prog) }
