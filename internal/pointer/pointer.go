package pointer

// Tracker keeps the latest cursor position normalized to roughly [-0.5, 0.5]
// on each axis, with (0, 0) at the viewport center. Last write wins.
type Tracker struct {
	x, y float32
}

// Move records a cursor position given in window pixels.
// An axis with a non-positive viewport extent is left at 0.
func (t *Tracker) Move(clientX, clientY, width, height float32) {
	t.x, t.y = 0, 0
	if width > 0 {
		t.x = clientX/width - 0.5
	}
	if height > 0 {
		t.y = clientY/height - 0.5
	}
}

// Offset returns the last normalized position.
func (t *Tracker) Offset() (x, y float32) {
	return t.x, t.y
}
