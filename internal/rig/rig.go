// Package rig implements the camera rig: a parent transform that follows the
// pointer through a first-order low-pass filter, and the scroll-driven
// vertical camera offset.
package rig

// Defaults from the original scene.
const (
	DefaultParallax = 0.5
	DefaultDamping  = 5
	DefaultDistance = 8
)

// Rig holds the damped rig position and the undamped camera height.
type Rig struct {
	Parallax float32 // pointer offset to world units
	Damping  float32 // fraction of remaining distance closed per second

	X, Y    float32 // rig position
	CameraY float32 // camera local Y, set from scroll
}

// New returns a rig at rest at the origin.
func New(parallax, damping float32) *Rig {
	return &Rig{Parallax: parallax, Damping: damping}
}

// Target returns the rig position the pointer asks for. Screen Y grows
// downward, world Y grows upward.
func (r *Rig) Target(pointerX, pointerY float32) (x, y float32) {
	return pointerX * r.Parallax, -pointerY * r.Parallax
}

// Step moves the rig toward (tx, ty) by position += (target - position) * rate,
// rate = Damping * dt. The rate is capped at 1 so a long frame lands on the
// target instead of overshooting it.
func (r *Rig) Step(tx, ty, dt float32) {
	rate := min(r.Damping*dt, 1)
	if rate <= 0 {
		return
	}
	r.X += (tx - r.X) * rate
	r.Y += (ty - r.Y) * rate
}

// Follow is Target followed by Step.
func (r *Rig) Follow(pointerX, pointerY, dt float32) {
	tx, ty := r.Target(pointerX, pointerY)
	r.Step(tx, ty, dt)
}

// CameraY maps a scroll offset to the camera height: one viewport of scroll
// moves the camera down by one section spacing.
func CameraY(offset, viewportHeight, spacing float32) float32 {
	if viewportHeight <= 0 {
		return 0
	}
	return -offset / viewportHeight * spacing
}

// Scroll sets the camera height from the scroll offset.
func (r *Rig) Scroll(offset, viewportHeight, spacing float32) {
	r.CameraY = CameraY(offset, viewportHeight, spacing)
}
