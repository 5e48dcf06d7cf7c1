package section

// Kind says what a section draws: a loaded model or a generated primitive.
type Kind string

const (
	KindModel      Kind = "model"
	KindTorus      Kind = "torus"
	KindOctahedron Kind = "octahedron"
)

// Axis selects one Euler rotation component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Section is one fixed "page" of the scroll experience and the object anchored to it.
// Index and Position never change after construction; Rotation is animated.
type Section struct {
	Index    int
	Name     string
	Kind     Kind
	Model    string     // asset name when Kind is KindModel
	Position [3]float32 // x alternates left/right, y = -Index * spacing
	Rotation [3]float32 // Euler XYZ in radians
	Scale    [3]float32
	Spin     [3]float32 // ambient angular rate per axis (rad/s); zero for most sections
}

// RotationOf returns a pointer to one rotation component so tweens can drive it.
func (s *Section) RotationOf(a Axis) *float32 {
	return &s.Rotation[a]
}

// Advance applies the ambient spin for dt seconds.
func (s *Section) Advance(dt float32) {
	s.Rotation[0] += s.Spin[0] * dt
	s.Rotation[1] += s.Spin[1] * dt
	s.Rotation[2] += s.Spin[2] * dt
}

// Spinning reports whether the section rotates continuously.
func (s *Section) Spinning() bool {
	return s.Spin != [3]float32{}
}
