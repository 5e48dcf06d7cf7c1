package portfolio

import "scroll-portfolio/internal/section"

// Transform is the pose of one section object for drawing.
type Transform struct {
	Index    int
	Kind     section.Kind
	Model    string
	Position [3]float32
	Rotation [3]float32
	Scale    [3]float32
}

// CameraState places the camera: the rig offset plus the camera's local
// position inside the rig.
type CameraState struct {
	Rig      [3]float32
	Local    [3]float32
	Position [3]float32 // Rig + Local
}

// FrameState is everything the renderer needs for one frame.
type FrameState struct {
	Frame    uint64
	Current  int
	Scroll   float32
	Camera   CameraState
	Sections []Transform
}

// Snapshot copies the current pose of the scene. distance is the camera's
// local Z inside the rig.
func (p *Portfolio) Snapshot(distance float32) FrameState {
	fs := FrameState{
		Frame:    p.frames,
		Current:  p.tracker.Current(),
		Scroll:   p.scroll.Offset,
		Sections: make([]Transform, len(p.sections)),
	}
	fs.Camera.Rig = [3]float32{p.rig.X, p.rig.Y, 0}
	fs.Camera.Local = [3]float32{0, p.rig.CameraY, distance}
	for i := range fs.Camera.Position {
		fs.Camera.Position[i] = fs.Camera.Rig[i] + fs.Camera.Local[i]
	}
	for i, s := range p.sections {
		fs.Sections[i] = Transform{
			Index:    s.Index,
			Kind:     s.Kind,
			Model:    s.Model,
			Position: s.Position,
			Rotation: s.Rotation,
			Scale:    s.Scale,
		}
	}
	return fs
}
