package primitives

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scroll-portfolio/internal/layout"
)

// cached holds mesh and material for one primitive definition.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry maps primitive definitions to mesh+material. Meshes are created on
// first Draw so that GPU resources are allocated after the window exists.
type Registry struct {
	cache map[string]cached
	color rl.Color
}

// NewRegistry returns an empty registry whose materials are tinted color.
func NewRegistry(color rl.Color) *Registry {
	return &Registry{cache: make(map[string]cached), color: color}
}

func key(def *layout.PrimitiveDef) string {
	return fmt.Sprintf("%s/%g/%g/%d/%d/%d", def.Type, def.Radius, def.Tube, def.RadialSegments, def.TubularSegments, def.Detail)
}

// Check reports whether def names a primitive the registry can build.
// It needs no GL context.
func Check(def *layout.PrimitiveDef) error {
	if def == nil {
		return fmt.Errorf("primitives: nil definition")
	}
	switch def.Type {
	case "torus", "octahedron":
		return nil
	}
	return fmt.Errorf("primitives: unknown type %q", def.Type)
}

func genMesh(def *layout.PrimitiveDef) rl.Mesh {
	if def.Type == "torus" {
		size, ratio := TorusParams(def.Radius, def.Tube)
		return rl.GenMeshTorus(ratio, size, max(def.TubularSegments, 3), max(def.RadialSegments, 3))
	}
	return OctahedronMesh(def.Radius, def.Detail)
}

// ensure creates the mesh and material for def if not yet cached.
func (r *Registry) ensure(def *layout.PrimitiveDef, lit *Lighting) (cached, error) {
	k := key(def)
	if c, ok := r.cache[k]; ok {
		return c, nil
	}
	if err := Check(def); err != nil {
		return cached{}, err
	}
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = r.color
	}
	if lit != nil {
		mtl.Shader = lit.Shader
	}
	c := cached{mesh: genMesh(def), mtl: mtl}
	r.cache[k] = c
	return c, nil
}

// Draw draws def with the given model matrix. Must be called between
// BeginMode3D and EndMode3D, after the lit surface is set.
func (r *Registry) Draw(def *layout.PrimitiveDef, transform rl.Matrix, lit *Lighting) error {
	c, err := r.ensure(def, lit)
	if err != nil {
		return err
	}
	rl.DrawMesh(c.mesh, c.mtl, transform)
	return nil
}

// Unload frees cached meshes. The shared shader belongs to Lighting.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
}

// Len is the number of cached primitives.
func (r *Registry) Len() int {
	return len(r.cache)
}
