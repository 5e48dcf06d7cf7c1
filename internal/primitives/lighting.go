package primitives

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is the scene lighting: an ambient term plus one point light.
// Intensities and color channels are 0..1.
type Light struct {
	Ambient float32
	Point   float32
	Color   [3]float32
}

// Surface holds the per-draw material terms the lit shader reads.
type Surface struct {
	Roughness float32
	Metalness float32
	Flat      bool // face normals from screen-space derivatives
}

// Lighting owns the lit shader shared by primitives and models.
type Lighting struct {
	Shader rl.Shader
	locs   map[string]int32
}

var litUniforms = []string{
	"viewPos", "lightPos", "lightColor", "ambient", "lightIntensity",
	"roughness", "metalness", "flatShading",
}

// LoadLighting compiles the lit shader. Requires a GL context.
func LoadLighting() (*Lighting, error) {
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return nil, errors.New("primitives: lit shader did not compile")
	}
	l := &Lighting{Shader: shader, locs: make(map[string]int32, len(litUniforms))}
	for _, name := range litUniforms {
		l.locs[name] = rl.GetShaderLocation(shader, name)
	}
	return l, nil
}

func (l *Lighting) set(name string, v []float32, typ rl.ShaderUniformDataType) {
	if loc := l.locs[name]; loc >= 0 {
		rl.SetShaderValue(l.Shader, loc, v, typ)
	}
}

// SetFrame places the point light on the camera at eye. Call once per frame.
func (l *Lighting) SetFrame(eye [3]float32, light Light) {
	pos := []float32{eye[0], eye[1], eye[2]}
	l.set("viewPos", pos, rl.ShaderUniformVec3)
	l.set("lightPos", pos, rl.ShaderUniformVec3)
	l.set("lightColor", []float32{light.Color[0], light.Color[1], light.Color[2]}, rl.ShaderUniformVec3)
	l.set("ambient", []float32{light.Ambient}, rl.ShaderUniformFloat)
	l.set("lightIntensity", []float32{light.Point}, rl.ShaderUniformFloat)
}

// SetSurface sets the material terms for the next draws.
func (l *Lighting) SetSurface(s Surface) {
	flat := float32(0)
	if s.Flat {
		flat = 1
	}
	l.set("roughness", []float32{s.Roughness}, rl.ShaderUniformFloat)
	l.set("metalness", []float32{s.Metalness}, rl.ShaderUniformFloat)
	l.set("flatShading", []float32{flat}, rl.ShaderUniformFloat)
}

// Use assigns the lit shader to every material.
func (l *Lighting) Use(materials []rl.Material) {
	for i := range materials {
		materials[i].Shader = l.Shader
	}
}

// Unload frees the shader.
func (l *Lighting) Unload() {
	rl.UnloadShader(l.Shader)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matNormal) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: albedo from texture0 and colDiffuse, ambient, diffuse damped by
	// metalness, Blinn highlight tinted toward albedo as metalness rises.
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform float ambient;
uniform float lightIntensity;
uniform float roughness;
uniform float metalness;
uniform float flatShading;
out vec4 finalColor;
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  if (flatShading > 0.5) {
    N = normalize(cross(dFdx(fragPosition), dFdy(fragPosition)));
  }
  vec3 L = normalize(lightPos - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  float r = max(roughness, 0.05);
  float shininess = 2.0 / (r * r * r * r) - 2.0;
  vec3 H = normalize(L + V);
  float spec = NdotL > 0.0 ? pow(max(dot(N, H), 0.0), shininess) * metalness : 0.0;
  vec3 specColor = mix(lightColor, albedo.rgb, metalness);
  vec3 color = albedo.rgb * lightColor * ambient
    + albedo.rgb * lightColor * lightIntensity * NdotL * (1.0 - 0.5 * metalness)
    + specColor * lightIntensity * spec;
  finalColor = vec4(clamp(color, 0.0, 1.0), albedo.a);
}
`
)
