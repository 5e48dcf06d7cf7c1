package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the native window.
type Window struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	Background rl.Color
	// Close, if set, runs while the GL context is still alive.
	Close      func()
}

// Run opens the window and runs the main loop until it is closed or update
// returns false. Each frame it calls update, then clears the screen and calls
// draw. Frame pacing follows vsync; there is no FPS cap. ESC closes the window.
func Run(w Window, update func() bool, draw func()) {
	flags := uint32(rl.FlagVsyncHint | rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := int32(w.Width), int32(w.Height)
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	if w.Close != nil {
		defer w.Close()
	}
	if w.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(rl.GetCurrentMonitor()), rl.GetMonitorHeight(rl.GetCurrentMonitor()))
	}

	for !rl.WindowShouldClose() {
		if !update() {
			return
		}

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
}
