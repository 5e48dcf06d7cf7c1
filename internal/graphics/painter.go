package graphics

import (
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scroll-portfolio/internal/ui"
)

// Painter draws UI nodes with raylib. If a font is loaded (LoadFont), text is
// drawn with it; otherwise raylib's default font is used.
type Painter struct {
	font rl.Font
}

// LoadFont loads a TTF font. On failure the painter keeps the default font.
// Call after the window exists.
func (p *Painter) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if p.font.Texture.ID != 0 {
		rl.UnloadFont(p.font)
	}
	p.font = f
	return nil
}

// Font is the loaded font, zero when using the default.
func (p *Painter) Font() rl.Font {
	return p.font
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (p *Painter) ScreenSize() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (p *Painter) FillRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, r.Width, r.Height), toRL(c))
}

func (p *Painter) StrokeRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(r.X, r.Y, r.Width, r.Height), 1, toRL(c))
}

func (p *Painter) Text(text string, x, y, size int32, c color.RGBA) {
	if p.font.Texture.ID != 0 {
		rl.DrawTextEx(p.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, toRL(c))
		return
	}
	rl.DrawText(text, x, y, size, toRL(c))
}
