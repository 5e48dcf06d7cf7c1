package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Status is what the section readout shows.
type Status struct {
	Title   string
	Index   int
	Count   int
	Scroll  float32
	Tweens  int
	Pointer [2]float32
	Clock   float64
	Log     []string // recent log lines, oldest first
}

// Debug holds runtime overlays (FPS, memory, section readout). All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowSection  bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	status       Status
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used for overlay text. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetStatus records the section readout for the next Draw.
func (d *Debug) SetStatus(s Status) {
	d.status = s
}

// Toggle flips every overlay on or off together.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS || d.ShowMemAlloc || d.ShowSection)
	d.ShowFPS, d.ShowMemAlloc, d.ShowSection = on, on, on
}

// sectionText formats the readout line.
func (s Status) sectionText() string {
	return fmt.Sprintf("%s  %d/%d  scroll %.0f  tweens %d  pointer %+.2f,%+.2f  t %.1fs",
		s.Title, s.Index+1, s.Count, s.Scroll, s.Tweens, s.Pointer[0], s.Pointer[1], s.Clock)
}

func (d *Debug) drawRight(text string, y int32, c rl.Color) {
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(padding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, c)
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}

// Draw renders the enabled overlays top-right: FPS, then memory, then the
// section readout. FPS and memory text refresh every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && d.lastFpsText == "" || d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowSection && d.status.Count > 0 {
		d.drawRight(d.status.sectionText(), y, rl.RayWhite)
		y += lineHeight
		for _, line := range d.status.Log {
			d.drawRight(line, y, rl.LightGray)
			y += lineHeight
		}
	}
}
