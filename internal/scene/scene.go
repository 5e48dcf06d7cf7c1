// Package scene renders a portfolio FrameState with raylib: loaded models and
// generated primitives under one lit shader, plus the particle field.
// LoadModels, Draw and Unload must run on the window's thread after InitWindow.
package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scroll-portfolio/internal/assets"
	"scroll-portfolio/internal/layout"
	"scroll-portfolio/internal/particles"
	"scroll-portfolio/internal/portfolio"
	"scroll-portfolio/internal/primitives"
	"scroll-portfolio/internal/section"
)

// Scene holds the camera and GPU-side resources for one layout.
type Scene struct {
	Camera rl.Camera3D

	layout    *layout.Layout
	registry  *primitives.Registry
	lit       *primitives.Lighting
	models    map[string]rl.Model
	surfaces  map[string]primitives.Surface // per model, from its first material
	particles *particles.Field
	surface   primitives.Surface // shared by the primitives
	light     primitives.Light
	dotColor  rl.Color
}

func unit(c layout.Color) [3]float32 {
	return [3]float32{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255}
}

func color(c layout.Color) rl.Color {
	return rl.NewColor(c[0], c[1], c[2], c[3])
}

// New prepares a scene for l. Nothing touches the GPU until LoadModels.
func New(l *layout.Layout, field *particles.Field) (*Scene, error) {
	for i := range l.Sections {
		if def := l.Primitive(i); def != nil {
			if err := primitives.Check(def); err != nil {
				return nil, fmt.Errorf("scene: section %s: %w", l.Sections[i].Name, err)
			}
		}
	}
	s := &Scene{
		layout:    l,
		registry:  primitives.NewRegistry(color(l.Material.Color)),
		models:    make(map[string]rl.Model),
		surfaces:  make(map[string]primitives.Surface),
		particles: field,
		surface: primitives.Surface{
			Roughness: l.Material.Roughness,
			Metalness: l.Material.Metalness,
			Flat:      l.Material.FlatShading,
		},
		light: primitives.Light{
			Ambient: l.Lights.Ambient,
			Point:   l.Lights.Point,
			Color:   unit(l.Lights.Color),
		},
		dotColor: color(l.Particles.Color),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = l.Camera.Fov
	s.Camera.Projection = rl.CameraPerspective
	return s, nil
}

// LoadModels compiles the lit shader and uploads validated models to the GPU.
// Models keep their own materials and textures but draw with the lit shader.
func (s *Scene) LoadModels(models []assets.Model) error {
	if s.lit == nil {
		lit, err := primitives.LoadLighting()
		if err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		s.lit = lit
	}
	for _, m := range models {
		model := rl.LoadModel(m.Path)
		if model.MeshCount == 0 {
			return fmt.Errorf("scene: %s: no meshes in %s", m.Name, m.Path)
		}
		materials := model.GetMaterials()
		s.lit.Use(materials)
		s.surfaces[m.Name] = modelSurface(materials)
		s.models[m.Name] = model
	}
	return nil
}

// modelSurface reads the glTF metallic/roughness factors raylib stores in the
// first material's maps.
func modelSurface(materials []rl.Material) primitives.Surface {
	surface := primitives.Surface{Roughness: 1}
	if len(materials) == 0 {
		return surface
	}
	if m := materials[0].GetMap(rl.MapRoughness); m != nil {
		surface.Roughness = m.Value
	}
	if m := materials[0].GetMap(rl.MapMetalness); m != nil {
		surface.Metalness = m.Value
	}
	return surface
}

// Unload frees GPU models, primitive meshes and the lit shader.
func (s *Scene) Unload() {
	for name, m := range s.models {
		rl.UnloadModel(m)
		delete(s.models, name)
	}
	s.registry.Unload()
	if s.lit != nil {
		s.lit.Unload()
		s.lit = nil
	}
}

// Draw renders one frame. Call between BeginDrawing and EndDrawing, after
// LoadModels. The camera looks down -Z from the rig; the point light sits on
// the camera.
func (s *Scene) Draw(fs portfolio.FrameState) {
	if s.lit == nil {
		return
	}
	eye := fs.Camera.Position
	s.Camera.Position = rl.NewVector3(eye[0], eye[1], eye[2])
	s.Camera.Target = rl.NewVector3(eye[0], eye[1], eye[2]-1)
	s.lit.SetFrame(eye, s.light)

	rl.BeginMode3D(s.Camera)
	for _, t := range fs.Sections {
		if t.Kind == section.KindModel {
			s.drawModel(t)
			continue
		}
		s.drawPrimitive(t)
	}
	s.drawParticles()
	rl.EndMode3D()
}

func (s *Scene) drawModel(t portfolio.Transform) {
	model, ok := s.models[t.Model]
	if !ok {
		return
	}
	s.lit.SetSurface(s.surfaces[t.Model])
	model.Transform = primitives.Transform(t.Position, t.Rotation, t.Scale)
	rl.DrawModel(model, rl.NewVector3(0, 0, 0), 1, rl.White)
}

func (s *Scene) drawPrimitive(t portfolio.Transform) {
	def := s.layout.Primitive(t.Index)
	if def == nil {
		return
	}
	s.lit.SetSurface(s.surface)
	// Definitions were checked in New.
	_ = s.registry.Draw(def, primitives.Transform(t.Position, t.Rotation, t.Scale), s.lit)
}

func (s *Scene) drawParticles() {
	if s.particles == nil {
		return
	}
	size := s.layout.Particles.Size
	for i := 0; i < s.particles.Len(); i++ {
		p := s.particles.At(i)
		rl.DrawCube(rl.NewVector3(p[0], p[1], p[2]), size, size, size, s.dotColor)
	}
}
