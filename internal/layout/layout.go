// Package layout describes what the portfolio shows: the section list, the
// models they use, the particle field, camera and lights. A layout is plain
// data read from YAML; the default one is embedded.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"scroll-portfolio/internal/section"
)

//go:embed default.yaml
var defaultYAML []byte

// Model names a 3D model asset. Path is relative to the asset directory or an http(s) URL.
type Model struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// PrimitiveDef is a generated mesh standing in for a model.
// Torus uses Radius, Tube and both segment counts; octahedron uses Radius and Detail.
type PrimitiveDef struct {
	Type            string  `yaml:"type"`
	Radius          float32 `yaml:"radius,omitempty"`
	Tube            float32 `yaml:"tube,omitempty"`
	RadialSegments  int     `yaml:"radial_segments,omitempty"`
	TubularSegments int     `yaml:"tubular_segments,omitempty"`
	Detail          int     `yaml:"detail,omitempty"`
}

// SectionDef is one entry of the section list. Exactly one of Model and Primitive is set.
type SectionDef struct {
	Name      string        `yaml:"name"`
	Model     string        `yaml:"model,omitempty"`
	Primitive *PrimitiveDef `yaml:"primitive,omitempty"`
	Scale     float32       `yaml:"scale,omitempty"`
	X         float32       `yaml:"x"`
	Turned    bool          `yaml:"turned,omitempty"` // starts rotated half a turn about Y
	Spin      [3]float32    `yaml:"spin,omitempty"`
}

type Material struct {
	Color       Color   `yaml:"color"`
	Roughness   float32 `yaml:"roughness"`
	Metalness   float32 `yaml:"metalness"`
	FlatShading bool    `yaml:"flat_shading"`
}

type Particles struct {
	Count  int     `yaml:"count"`
	Spread float32 `yaml:"spread"`
	Color  Color   `yaml:"color"`
	Size   float32 `yaml:"size"`
}

type Camera struct {
	Fov      float32 `yaml:"fov"`
	Distance float32 `yaml:"distance"`
	Parallax float32 `yaml:"parallax"`
	Damping  float32 `yaml:"damping"`
}

type Lights struct {
	Ambient float32 `yaml:"ambient"`
	Point   float32 `yaml:"point"`
	Color   Color   `yaml:"color"`
}

// Layout is the whole scene description.
type Layout struct {
	Spacing   float32      `yaml:"spacing"`
	Models    []Model      `yaml:"models"`
	Sections  []SectionDef `yaml:"sections"`
	Material  Material     `yaml:"material"`
	Particles Particles    `yaml:"particles"`
	Camera    Camera       `yaml:"camera"`
	Lights    Lights       `yaml:"lights"`
}

// Default returns the embedded layout.
func Default() *Layout {
	l, err := Parse(defaultYAML)
	if err != nil {
		panic("layout: embedded default is invalid: " + err.Error())
	}
	return l
}

// Parse decodes YAML on top of zero values and validates the result.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a layout file. An empty path means the embedded default.
func Load(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return Parse(data)
}

// Validate reports the first problem that would make the scene unbuildable.
func (l *Layout) Validate() error {
	if l.Spacing <= 0 {
		return errors.New("layout: spacing must be positive")
	}
	if len(l.Sections) == 0 {
		return errors.New("layout: no sections")
	}
	models := make(map[string]bool, len(l.Models))
	for _, m := range l.Models {
		if m.Name == "" || m.Path == "" {
			return fmt.Errorf("layout: model %q needs a name and a path", m.Name)
		}
		if models[m.Name] {
			return fmt.Errorf("layout: duplicate model %q", m.Name)
		}
		models[m.Name] = true
	}
	for i, s := range l.Sections {
		switch {
		case s.Model != "" && s.Primitive != nil:
			return fmt.Errorf("layout: section %d (%s) has both a model and a primitive", i, s.Name)
		case s.Model != "":
			if !models[s.Model] {
				return fmt.Errorf("layout: section %d (%s) uses unknown model %q", i, s.Name, s.Model)
			}
		case s.Primitive != nil:
			if _, err := s.Primitive.kind(); err != nil {
				return fmt.Errorf("layout: section %d (%s): %w", i, s.Name, err)
			}
		default:
			return fmt.Errorf("layout: section %d (%s) has neither a model nor a primitive", i, s.Name)
		}
	}
	if l.Particles.Count < 0 {
		return errors.New("layout: negative particle count")
	}
	if l.Camera.Fov <= 0 || l.Camera.Fov >= 180 {
		return fmt.Errorf("layout: camera fov %v out of range", l.Camera.Fov)
	}
	return nil
}

func (p *PrimitiveDef) kind() (section.Kind, error) {
	switch section.Kind(p.Type) {
	case section.KindTorus:
		return section.KindTorus, nil
	case section.KindOctahedron:
		return section.KindOctahedron, nil
	}
	return "", fmt.Errorf("unknown primitive %q", p.Type)
}

// UsedModels returns the models referenced by at least one section, in section order.
func (l *Layout) UsedModels() []Model {
	byName := make(map[string]Model, len(l.Models))
	for _, m := range l.Models {
		byName[m.Name] = m
	}
	var out []Model
	seen := make(map[string]bool)
	for _, s := range l.Sections {
		if s.Model == "" || seen[s.Model] {
			continue
		}
		seen[s.Model] = true
		out = append(out, byName[s.Model])
	}
	return out
}

// Build creates the section objects: index i sits at y = -i * spacing.
func (l *Layout) Build() []*section.Section {
	out := make([]*section.Section, len(l.Sections))
	for i, def := range l.Sections {
		s := &section.Section{
			Index:    i,
			Name:     def.Name,
			Kind:     section.KindModel,
			Model:    def.Model,
			Position: [3]float32{def.X, -l.Spacing * float32(i), 0},
			Scale:    [3]float32{1, 1, 1},
			Spin:     def.Spin,
		}
		if def.Primitive != nil {
			s.Kind, _ = def.Primitive.kind()
		}
		if def.Scale != 0 {
			s.Scale = [3]float32{def.Scale, def.Scale, def.Scale}
		}
		if def.Turned {
			s.Rotation[1] = math32.Pi
		}
		out[i] = s
	}
	return out
}

// Primitive returns the primitive definition for section i, or nil for a model section.
func (l *Layout) Primitive(i int) *PrimitiveDef {
	if i < 0 || i >= len(l.Sections) {
		return nil
	}
	return l.Sections[i].Primitive
}
