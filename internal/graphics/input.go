package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scroll-portfolio/internal/portfolio"
)

// Input turns raylib's per-frame input state into portfolio events.
type Input struct {
	// ScrollStep is the scroll distance in pixels of one wheel notch or arrow key.
	ScrollStep float32
	// Sections is the page count, for End.
	Sections int

	lastW, lastH int
	lastMouse    rl.Vector2
	primed       bool
}

// Poll returns the events for this frame: a resize first, then scroll, then
// pointer, then the frame tick. The first call always reports the window size.
func (in *Input) Poll() []portfolio.Event {
	var evs []portfolio.Event

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if !in.primed || rl.IsWindowResized() || w != in.lastW || h != in.lastH {
		in.lastW, in.lastH = w, h
		evs = append(evs, portfolio.Resized{Width: w, Height: h, PixelRatio: rl.GetWindowScaleDPI().X})
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		evs = append(evs, portfolio.ScrollBy{Delta: -wheel * in.ScrollStep})
	}
	switch {
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressedRepeat(rl.KeyDown):
		evs = append(evs, portfolio.ScrollBy{Delta: in.ScrollStep})
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressedRepeat(rl.KeyUp):
		evs = append(evs, portfolio.ScrollBy{Delta: -in.ScrollStep})
	case rl.IsKeyPressed(rl.KeyPageDown) || rl.IsKeyPressed(rl.KeySpace):
		evs = append(evs, portfolio.ScrollBy{Delta: float32(h)})
	case rl.IsKeyPressed(rl.KeyPageUp):
		evs = append(evs, portfolio.ScrollBy{Delta: -float32(h)})
	case rl.IsKeyPressed(rl.KeyHome):
		evs = append(evs, portfolio.ScrollTo{Index: 0})
	case rl.IsKeyPressed(rl.KeyEnd):
		evs = append(evs, portfolio.ScrollTo{Index: in.Sections - 1})
	}

	mouse := rl.GetMousePosition()
	if !in.primed || mouse != in.lastMouse {
		in.lastMouse = mouse
		evs = append(evs, portfolio.PointerMoved{X: mouse.X, Y: mouse.Y})
	}
	in.primed = true

	return append(evs, portfolio.FrameTick{Delta: rl.GetFrameTime()})
}
